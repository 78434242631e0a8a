package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yonesuke/fractal/geom"
)

// Output format names accepted by --format.
const (
	formatPlain = "plain"
	formatJSON  = "json"
)

// errFormat rejects anything but the two supported encodings.
var errFormat = errors.New("cli: format must be plain or json")

// outputOpts holds the encoding flag shared by every generator command.
// Point data always goes to the command's stdout so it can be redirected
// or piped; only diagnostics use stderr.
type outputOpts struct {
	format string
}

// register binds the shared format flag onto cmd.
func (o *outputOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", formatPlain, "output format: plain or json")
}

// validate rejects unknown formats before any generation work happens.
func (o *outputOpts) validate() error {
	if o.format != formatPlain && o.format != formatJSON {
		return fmt.Errorf("%w, got %q", errFormat, o.format)
	}

	return nil
}

// boundsJSON is the axis-aligned bounding box of the emitted coordinates.
type boundsJSON struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// newBoundsJSON converts a geometry box into its wire form.
func newBoundsJSON(b geom.BBox) boundsJSON {
	return boundsJSON{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
}

// pathJSON is the envelope for single-path fractals driven by an order.
type pathJSON struct {
	Fractal string     `json:"fractal"`
	Order   int        `json:"order"`
	Points  int        `json:"points"`
	Bounds  boundsJSON `json:"bounds"`
	X       []float64  `json:"x"`
	Y       []float64  `json:"y"`
}

// fernJSON is the envelope for the fern point cloud. Seed is present only
// when the caller pinned one.
type fernJSON struct {
	Fractal string     `json:"fractal"`
	Seed    *int64     `json:"seed,omitempty"`
	Points  int        `json:"points"`
	Bounds  boundsJSON `json:"bounds"`
	X       []float64  `json:"x"`
	Y       []float64  `json:"y"`
}

// gasketJSON is the envelope for the Sierpinski triangle list. Bounds covers
// the union of all outlines.
type gasketJSON struct {
	Fractal   string     `json:"fractal"`
	Order     int        `json:"order"`
	Bounds    boundsJSON `json:"bounds"`
	Triangles []xyJSON   `json:"triangles"`
}

// xyJSON is one closed outline as parallel coordinate arrays.
type xyJSON struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// writeJSON emits v with two-space indentation and a trailing newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cli: encode json: %w", err)
	}
	data = append(data, '\n')

	_, err = w.Write(data)

	return err
}

// writePlainPath writes one "x y" line per point.
func writePlainPath(w io.Writer, p geom.PointSet) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < p.Len(); i++ {
		if _, err := fmt.Fprintf(bw, "%g %g\n", p.X[i], p.Y[i]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// writePlainTriangles writes each outline as its own block of "x y" lines,
// blocks separated by a blank line, so gnuplot treats them as disjoint
// polygons.
func writePlainTriangles(w io.Writer, tris []geom.PointSet) error {
	bw := bufio.NewWriter(w)
	for i, tri := range tris {
		if i > 0 {
			if _, err := fmt.Fprintln(bw); err != nil {
				return err
			}
		}
		for j := 0; j < tri.Len(); j++ {
			if _, err := fmt.Fprintf(bw, "%g %g\n", tri.X[j], tri.Y[j]); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
