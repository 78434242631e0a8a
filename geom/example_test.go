package geom_test

import (
	"fmt"

	"github.com/yonesuke/fractal/geom"
)

// ExamplePointSet_Rotate90 turns a two-point path a quarter turn
// anticlockwise about the origin.
func ExamplePointSet_Rotate90() {
	p, _ := geom.FromSlices([]float64{1, 3}, []float64{2, 4})
	p.Rotate90(1)
	fmt.Println(p.X, p.Y)
	// Output: [-2 -4] [1 3]
}

// ExampleConcat stitches two paths into one, preserving traversal order.
func ExampleConcat() {
	left, _ := geom.FromSlices([]float64{0, 1}, []float64{0, 1})
	right, _ := geom.FromSlices([]float64{2}, []float64{3})

	joined := geom.Concat(left, right)
	fmt.Println(joined.X, joined.Y)
	// Output: [0 1 2] [0 1 3]
}

// ExamplePointSet_Bounds reports the axis-aligned box enclosing a path.
func ExamplePointSet_Bounds() {
	p, _ := geom.FromSlices([]float64{1, -2, 0}, []float64{-1, 4, 0})
	fmt.Println(p.Bounds())
	// Output: {-2 -1 1 4}
}
