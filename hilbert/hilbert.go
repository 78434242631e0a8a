// SPDX-License-Identifier: MIT
// Package: fractal/hilbert
//
// hilbert.go - quadrant assembly of the Hilbert curve.
//
// Contract:
//   - Curve(n) requires n >= 1 (else ErrOrder) and returns 4^n points with
//     integer coordinates in [0, 2^n-1]^2, each visited exactly once, every
//     consecutive pair one unit step apart.
//   - Order 1 is (0,1) (0,0) (1,0) (1,1).
//   - The traversal enters at (0, 2^n-1) and leaves at (2^n-1, 2^n-1).
//   - Growth places the previous curve (spanning [0,m]^2, m = 2^(n-1)-1)
//     four times: top-left rotated anticlockwise, shifted by (m, m+1),
//     reversed; bottom-left as is; bottom-right shifted by (m+1, 0);
//     top-right rotated clockwise, shifted by (m+1, 2m+1), reversed.
//
// Complexity:
//   - Time: O(4^n), each growth step copies every point a constant number
//     of times.
//   - Space: O(4^n) for the result.
//
// Determinism:
//   - Fully deterministic: equal orders yield identical output.

package hilbert

import (
	"errors"

	"github.com/yonesuke/fractal/geom"
)

// ErrOrder indicates the requested order is below the smallest drawable
// curve.
var ErrOrder = errors.New("hilbert: order must be at least 1")

// Curve returns the order-n Hilbert traversal of the (2^n)x(2^n) grid.
// Returns ErrOrder when n < 1.
func Curve(n int) (geom.PointSet, error) {
	if n < 1 {
		return geom.PointSet{}, ErrOrder
	}

	p := baseCell()
	for k := 2; k <= n; k++ {
		p = grow(p)
	}

	return p, nil
}

// baseCell returns the order-1 traversal, a U open at the top.
func baseCell() geom.PointSet {
	return geom.PointSet{
		X: []float64{0, 0, 1, 1},
		Y: []float64{1, 0, 0, 1},
	}
}

// grow assembles the next order from four placed copies of p. The rotated
// quadrants are reversed so each quadrant's exit lands one unit step from
// the next quadrant's entry.
func grow(p geom.PointSet) geom.PointSet {
	mx, my := p.MaxX(), p.MaxY()

	topLeft := p.Clone()
	topLeft.Rotate90(1)
	topLeft.Translate(mx, my+1)
	topLeft.Reverse()

	bottomRight := p.Clone()
	bottomRight.Translate(mx+1, 0)

	topRight := p.Clone()
	topRight.Rotate90(3)
	topRight.Translate(mx+1, 2*my+1)
	topRight.Reverse()

	// p itself serves as the bottom-left quadrant, untouched.
	return geom.Concat(topLeft, p, bottomRight, topRight)
}
