// SPDX-License-Identifier: MIT
// Package: fractal/sierpinski
//
// sierpinski.go - triadic copy-and-shift construction of the gasket.
//
// Contract:
//   - Triangles(n) requires n >= 1 (else ErrOrder) and returns 3^(n-1)
//     closed unit-triangle outlines, 4 points each.
//   - Order 1 is the base outline (0,0) (1,0) (1/2, sqrt(3)/2) (0,0).
//   - Each order lists the apex copy first, then the bottom-left copy, then
//     the bottom-right copy, preserving order within each copy.
//   - Growth step k shifts the apex copy by (2^(k-3), 2^(k-3)*sqrt(3)) and
//     the bottom-right copy by (2^(k-2), 0); exponents are exact powers of
//     two, fractional at k = 2.
//
// Complexity:
//   - Time: O(3^n) point copies over n-1 growth steps.
//   - Space: O(3^n) for the result.
//
// Determinism:
//   - Fully deterministic: equal orders yield identical output.

package sierpinski

import (
	"errors"
	"math"

	"github.com/yonesuke/fractal/geom"
)

// ErrOrder indicates the requested order is below the smallest drawable
// gasket.
var ErrOrder = errors.New("sierpinski: order must be at least 1")

var sqrt3 = math.Sqrt(3)

// Triangles returns the unit-triangle outlines of the order-n gasket.
// Returns ErrOrder when n < 1.
func Triangles(n int) ([]geom.PointSet, error) {
	if n < 1 {
		return nil, ErrOrder
	}

	tris := []geom.PointSet{baseTriangle()}
	for k := 2; k <= n; k++ {
		// Half the horizontal span of the previous generation.
		dx := math.Ldexp(1, k-3)

		apex := cloneAll(tris)
		translateAll(apex, dx, dx*sqrt3)

		right := cloneAll(tris)
		translateAll(right, 2*dx, 0)

		next := make([]geom.PointSet, 0, 3*len(tris))
		next = append(next, apex...)
		next = append(next, tris...) // bottom-left keeps its coordinates
		next = append(next, right...)
		tris = next
	}

	return tris, nil
}

// baseTriangle returns the order-1 outline: a unit triangle traversed
// anticlockwise and closed back onto its first corner.
func baseTriangle() geom.PointSet {
	return geom.PointSet{
		X: []float64{0, 1, 0.5, 0},
		Y: []float64{0, 0, 0.5 * sqrt3, 0},
	}
}

func cloneAll(tris []geom.PointSet) []geom.PointSet {
	out := make([]geom.PointSet, len(tris))
	for i, t := range tris {
		out[i] = t.Clone()
	}

	return out
}

func translateAll(tris []geom.PointSet, dx, dy float64) {
	for i := range tris {
		tris[i].Translate(dx, dy)
	}
}
