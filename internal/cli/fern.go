package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yonesuke/fractal/fern"
)

// fernOpts holds the command-line flags for the fern command.
type fernOpts struct {
	points int
	seed   int64
	out    outputOpts
}

// newFernCmd creates the fern command. Without --seed every invocation
// draws a fresh fern; with it the output is reproducible.
func newFernCmd() *cobra.Command {
	opts := fernOpts{points: 100_000}

	cmd := &cobra.Command{
		Use:   "fern",
		Short: "Generate Barnsley fern points",
		Long: `Generate the Barnsley fern as a cloud of points.

Examples:
  fractal fern --points 50000 > fern.dat
  fractal fern --seed 42 --format json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if err := opts.out.validate(); err != nil {
				return err
			}

			var genOpts []fern.Option
			var seed *int64
			if c.Flags().Changed("seed") {
				genOpts = append(genOpts, fern.WithSeed(opts.seed))
				seed = &opts.seed
			}

			prog := newProgress(loggerFromContext(c.Context()))
			p := fern.Generate(opts.points, genOpts...)
			b := p.Bounds()
			prog.done(fmt.Sprintf("Generated %d fern points spanning [%g, %g] x [%g, %g]",
				p.Len(), b.MinX, b.MaxX, b.MinY, b.MaxY))

			if opts.out.format == formatJSON {
				return writeJSON(c.OutOrStdout(), fernJSON{
					Fractal: "fern",
					Seed:    seed,
					Points:  p.Len(),
					Bounds:  newBoundsJSON(b),
					X:       p.X,
					Y:       p.Y,
				})
			}

			return writePlainPath(c.OutOrStdout(), p)
		},
	}

	cmd.Flags().IntVarP(&opts.points, "points", "n", opts.points, "number of points to generate")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (omit for a different fern each run)")
	opts.out.register(cmd)

	return cmd
}
