package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yonesuke/fractal/dragon"
	"github.com/yonesuke/fractal/geom"
	"github.com/yonesuke/fractal/hilbert"
)

// pathSpec parameterizes a command whose fractal is a single traversal
// generated from an order.
type pathSpec struct {
	name         string
	short        string
	long         string
	defaultOrder int
	generate     func(int) (geom.PointSet, error)
}

// newPathCmd builds the shared order-to-path command shape used by the
// hilbert and dragon subcommands. Order validation stays with the
// generator packages.
func newPathCmd(spec pathSpec) *cobra.Command {
	order := spec.defaultOrder
	var out outputOpts

	cmd := &cobra.Command{
		Use:   spec.name,
		Short: spec.short,
		Long:  spec.long,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(c.Context()))
			p, err := spec.generate(order)
			if err != nil {
				return err
			}
			b := p.Bounds()
			prog.done(fmt.Sprintf("Generated %d %s points spanning [%g, %g] x [%g, %g]",
				p.Len(), spec.name, b.MinX, b.MaxX, b.MinY, b.MaxY))

			if out.format == formatJSON {
				return writeJSON(c.OutOrStdout(), pathJSON{
					Fractal: spec.name,
					Order:   order,
					Points:  p.Len(),
					Bounds:  newBoundsJSON(b),
					X:       p.X,
					Y:       p.Y,
				})
			}

			return writePlainPath(c.OutOrStdout(), p)
		},
	}

	cmd.Flags().IntVarP(&order, "order", "n", order, "curve order")
	out.register(cmd)

	return cmd
}

func newHilbertCmd() *cobra.Command {
	return newPathCmd(pathSpec{
		name:  "hilbert",
		short: "Generate Hilbert curve points",
		long: `Generate the order-n Hilbert curve: a single traversal visiting every
cell of the 2^n x 2^n grid exactly once, one unit step at a time.

Examples:
  fractal hilbert --order 6 > hilbert.dat
  fractal hilbert --order 3 --format json`,
		defaultOrder: 5,
		generate:     hilbert.Curve,
	})
}

func newDragonCmd() *cobra.Command {
	return newPathCmd(pathSpec{
		name:  "dragon",
		short: "Generate dragon curve points",
		long: `Generate the order-n Heighway dragon: the base segment folded n times,
with beveled corners so the plotted curve never touches itself.

Examples:
  fractal dragon --order 14 > dragon.dat
  fractal dragon --order 4 --format json`,
		defaultOrder: 10,
		generate:     dragon.Curve,
	})
}
