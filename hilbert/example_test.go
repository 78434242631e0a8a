package hilbert_test

import (
	"fmt"

	"github.com/yonesuke/fractal/hilbert"
)

// ExampleCurve walks the order-2 curve over the 4x4 grid.
func ExampleCurve() {
	p, err := hilbert.Curve(2)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(p.X)
	fmt.Println(p.Y)
	// Output:
	// [0 1 1 0 0 0 1 1 2 2 3 3 3 2 2 3]
	// [3 3 2 2 1 0 0 1 1 0 0 1 2 2 3 3]
}
