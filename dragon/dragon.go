// SPDX-License-Identifier: MIT
// Package: fractal/dragon
//
// dragon.go - fold-and-bevel construction of the Heighway dragon.
//
// Contract:
//   - Curve(n) requires n >= 0 (else ErrOrder) and returns 2^(n+1) points.
//   - Order 0 is the segment (0,0) (0,1); the first point is always the
//     origin.
//   - A fold rotates the whole path a quarter turn anticlockwise about its
//     last point, reverses the copy, and appends it. The rotation pivot is
//     taken before beveling.
//   - The bevel replaces each of the two junction endpoints with
//     (1-r)*self + r*neighbor, r = 1/(2+sqrt(2)), the inner neighbor being
//     the adjacent point on the same half.
//
// Complexity:
//   - Time: O(2^n), each fold copies the path once.
//   - Space: O(2^n) for the result.
//
// Determinism:
//   - Fully deterministic: equal orders yield identical output.

package dragon

import (
	"errors"
	"math"

	"github.com/yonesuke/fractal/geom"
)

// ErrOrder indicates a negative order.
var ErrOrder = errors.New("dragon: order must be non-negative")

// foldRatio is the bevel pull toward the inner neighbor. At this ratio the
// two chamfered corners of a fold clear each other exactly.
const foldRatio = 1 / (2 + math.Sqrt2)

// Curve returns the order-n dragon, folding the base segment n times.
// Returns ErrOrder when n < 0.
func Curve(n int) (geom.PointSet, error) {
	if n < 0 {
		return geom.PointSet{}, ErrOrder
	}

	p := baseSegment()
	for k := 1; k <= n; k++ {
		p = fold(p)
	}

	return p, nil
}

// baseSegment returns the order-0 curve, a vertical unit segment.
func baseSegment() geom.PointSet {
	return geom.PointSet{
		X: []float64{0, 0},
		Y: []float64{0, 1},
	}
}

// fold consumes p and returns the once-folded path: p followed by its
// quarter-turned, reversed image, with the junction beveled.
func fold(p geom.PointSet) geom.PointSet {
	last := p.Len() - 1
	pivotX, pivotY := p.X[last], p.Y[last]

	next := p.Clone()
	next.Translate(-pivotX, -pivotY)
	next.Rotate90(1)
	next.Translate(pivotX, pivotY)
	next.Reverse()

	// Bevel the junction. p's endpoint moves toward its predecessor, the
	// image's start toward its successor; the pivot was captured above.
	p.X[last] = (1-foldRatio)*p.X[last] + foldRatio*p.X[last-1]
	p.Y[last] = (1-foldRatio)*p.Y[last] + foldRatio*p.Y[last-1]
	next.X[0] = (1-foldRatio)*next.X[0] + foldRatio*next.X[1]
	next.Y[0] = (1-foldRatio)*next.Y[0] + foldRatio*next.Y[1]

	return geom.Concat(p, next)
}
