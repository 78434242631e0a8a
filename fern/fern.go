// SPDX-License-Identifier: MIT
// Package: fractal/fern
//
// fern.go - chaos-game generator for the Barnsley fern.
//
// Contract:
//   - Generate(n) returns exactly max(n, 0) points; n <= 0 yields the empty
//     set, n == 1 only the origin seed.
//   - Point 0 is always (0, 0); point i (i >= 1) applies one of four affine
//     contractions to point i-1, chosen by a uniform draw in [0, 1).
//   - Selection weights: stem 1%, main frond 85%, left leaflet 7%, right
//     leaflet 7% (cumulative cutoffs 0.01, 0.86, 0.93).
//   - Never returns an error; every count and option combination is
//     serviceable.
//
// Complexity:
//   - Time: O(n), one uniform draw and one contraction per point.
//   - Space: O(n) result, O(1) auxiliary.
//
// Determinism:
//   - WithSeed (or WithRand over a caller-seeded source) reproduces the
//     same fern point for point.
//   - Otherwise a private source is seeded from the process-global
//     generator, so separate runs diverge.

package fern

import (
	"math/rand"

	"github.com/yonesuke/fractal/geom"
)

// Cumulative selection cutoffs for a uniform draw in [0, 1). The gaps
// between them are the classic fern weights: 1% stem, 85% main frond,
// 7% left leaflet, 7% right leaflet.
const (
	stemCutoff  = 0.01
	frondCutoff = 0.86
	leftCutoff  = 0.93
)

// Generate draws n points of the Barnsley fern. The first point is the
// origin; each subsequent point is an affine image of its predecessor under
// a randomly selected contraction. n <= 0 yields the empty set.
func Generate(n int, opts ...Option) geom.PointSet {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// p.X[0], p.Y[0] already hold the origin seed; up to one point needs
	// no randomness at all.
	p := geom.New(n)
	if p.Len() <= 1 {
		return p
	}

	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	for i := 1; i < n; i++ {
		r := rng.Float64()
		x, y := p.X[i-1], p.Y[i-1]
		switch {
		case r <= stemCutoff:
			p.X[i], p.Y[i] = 0, 0.16*y
		case r <= frondCutoff:
			p.X[i], p.Y[i] = 0.85*x+0.04*y, -0.04*x+0.85*y+1.6
		case r <= leftCutoff:
			p.X[i], p.Y[i] = 0.2*x-0.26*y, 0.23*x+0.22*y+1.6
		default:
			p.X[i], p.Y[i] = -0.15*x+0.28*y, 0.26*x+0.24*y+0.44
		}
	}

	return p
}
