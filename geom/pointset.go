package geom

import (
	"errors"
	"math"
)

// ErrLengthMismatch indicates that FromSlices received coordinate slices of
// different lengths.
var ErrLengthMismatch = errors.New("geom: x and y must have equal length")

// PointSet is an ordered sequence of points in the plane, stored as two
// parallel coordinate slices.
//
// Invariant: len(X) == len(Y). Constructors establish it and every operation
// in this package preserves it. Code that builds a PointSet literal by hand
// is responsible for keeping the slices aligned.
type PointSet struct {
	X []float64
	Y []float64
}

// New returns a PointSet of n points, all at the origin.
// n <= 0 yields the empty set.
func New(n int) PointSet {
	if n <= 0 {
		return PointSet{}
	}
	return PointSet{
		X: make([]float64, n),
		Y: make([]float64, n),
	}
}

// FromSlices builds a PointSet holding copies of x and y, so later writes to
// the arguments do not leak into the set.
//
// Returns ErrLengthMismatch when len(x) != len(y).
func FromSlices(x, y []float64) (PointSet, error) {
	if len(x) != len(y) {
		return PointSet{}, ErrLengthMismatch
	}
	p := New(len(x))
	copy(p.X, x)
	copy(p.Y, y)
	return p, nil
}

// Len reports the number of points in the set.
func (p PointSet) Len() int { return len(p.X) }

// Clone returns a deep copy of p. The copy shares no storage with p, so it
// can be transformed freely without disturbing the original.
func (p PointSet) Clone() PointSet {
	c := New(p.Len())
	copy(c.X, p.X)
	copy(c.Y, p.Y)
	return c
}

// MaxX returns the largest x coordinate, or -Inf for an empty set.
func (p PointSet) MaxX() float64 { return maxOf(p.X) }

// MaxY returns the largest y coordinate, or -Inf for an empty set.
func (p PointSet) MaxY() float64 { return maxOf(p.Y) }

func maxOf(s []float64) float64 {
	m := math.Inf(-1)
	for _, v := range s {
		if v > m {
			m = v
		}
	}
	return m
}

// BBox is an axis-aligned bounding box.
type BBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Bounds returns the bounding box of the set. The first point seeds the box
// and every further point expands it. An empty set yields the zero BBox.
func (p PointSet) Bounds() BBox {
	if p.Len() == 0 {
		return BBox{}
	}
	b := BBox{MinX: p.X[0], MinY: p.Y[0], MaxX: p.X[0], MaxY: p.Y[0]}
	for i := 1; i < p.Len(); i++ {
		b.MinX = math.Min(b.MinX, p.X[i])
		b.MinY = math.Min(b.MinY, p.Y[i])
		b.MaxX = math.Max(b.MaxX, p.X[i])
		b.MaxY = math.Max(b.MaxY, p.Y[i])
	}
	return b
}

// Union returns the smallest box covering both b and o.
func (b BBox) Union(o BBox) BBox {
	return BBox{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}
