package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yonesuke/fractal/sierpinski"
)

// newSierpinskiCmd creates the sierpinski command. Unlike the path
// commands it emits a list of closed outlines rather than one traversal.
func newSierpinskiCmd() *cobra.Command {
	order := 5
	var out outputOpts

	cmd := &cobra.Command{
		Use:   "sierpinski",
		Short: "Generate Sierpinski triangle outlines",
		Long: `Generate the order-n Sierpinski gasket as 3^(n-1) closed unit-triangle
outlines. Plain output writes each triangle as its own block of "x y"
lines, blocks separated by a blank line, so gnuplot draws disjoint
polygons.

Examples:
  fractal sierpinski --order 6 > gasket.dat
  fractal sierpinski --order 2 --format json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(c.Context()))
			tris, err := sierpinski.Triangles(order)
			if err != nil {
				return err
			}
			b := tris[0].Bounds()
			for _, tri := range tris[1:] {
				b = b.Union(tri.Bounds())
			}
			prog.done(fmt.Sprintf("Generated %d triangles spanning [%g, %g] x [%g, %g]",
				len(tris), b.MinX, b.MaxX, b.MinY, b.MaxY))

			if out.format == formatJSON {
				doc := gasketJSON{
					Fractal:   "sierpinski",
					Order:     order,
					Bounds:    newBoundsJSON(b),
					Triangles: make([]xyJSON, len(tris)),
				}
				for i, tri := range tris {
					doc.Triangles[i] = xyJSON{X: tri.X, Y: tri.Y}
				}

				return writeJSON(c.OutOrStdout(), doc)
			}

			return writePlainTriangles(c.OutOrStdout(), tris)
		},
	}

	cmd.Flags().IntVarP(&order, "order", "n", order, "gasket order")
	out.register(cmd)

	return cmd
}
