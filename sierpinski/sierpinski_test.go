// Package sierpinski_test checks the gasket construction against its
// geometric invariants: count, closure, unit sides and the triadic layout.
package sierpinski_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yonesuke/fractal/geom"
	"github.com/yonesuke/fractal/sierpinski"
)

const coordTol = 1e-9

// TestTriangles_OrderTooSmall confirms the sentinel for orders below 1.
func TestTriangles_OrderTooSmall(t *testing.T) {
	for _, n := range []int{0, -1, -7} {
		tris, err := sierpinski.Triangles(n)

		require.Error(t, err, "n=%d", n)
		assert.ErrorIs(t, err, sierpinski.ErrOrder, "n=%d", n)
		assert.Nil(t, tris, "n=%d", n)
	}
}

// TestTriangles_BaseOutline pins the order-1 figure exactly.
func TestTriangles_BaseOutline(t *testing.T) {
	tris, err := sierpinski.Triangles(1)
	require.NoError(t, err)
	require.Len(t, tris, 1)

	assert.Equal(t, []float64{0, 1, 0.5, 0}, tris[0].X)
	assert.Equal(t, []float64{0, 0, 0.5 * math.Sqrt(3), 0}, tris[0].Y)
}

// TestTriangles_CountTriplesPerOrder confirms 3^(n-1) outlines.
func TestTriangles_CountTriplesPerOrder(t *testing.T) {
	want := 1
	for n := 1; n <= 6; n++ {
		tris, err := sierpinski.Triangles(n)

		require.NoError(t, err, "n=%d", n)
		assert.Len(t, tris, want, "n=%d", n)
		want *= 3
	}
}

// TestTriangles_OutlinesClosed confirms every outline has four points and
// returns to its first corner.
func TestTriangles_OutlinesClosed(t *testing.T) {
	tris, err := sierpinski.Triangles(4)
	require.NoError(t, err)

	for i, tri := range tris {
		require.Equal(t, 4, tri.Len(), "triangle %d", i)
		assert.Equal(t, tri.X[0], tri.X[3], "triangle %d", i)
		assert.Equal(t, tri.Y[0], tri.Y[3], "triangle %d", i)
	}
}

// TestTriangles_UnitSides confirms all copies keep side length 1: the
// construction only translates, never scales.
func TestTriangles_UnitSides(t *testing.T) {
	tris, err := sierpinski.Triangles(5)
	require.NoError(t, err)

	for i, tri := range tris {
		for j := 1; j < tri.Len(); j++ {
			side := math.Hypot(tri.X[j]-tri.X[j-1], tri.Y[j]-tri.Y[j-1])
			assert.InDelta(t, 1, side, coordTol, "triangle %d side %d", i, j)
		}
	}
}

// TestTriangles_TriadicLayout confirms order n is three placed copies of
// order n-1: apex copy first, untouched bottom-left copy, then the
// right-shifted copy.
func TestTriangles_TriadicLayout(t *testing.T) {
	prev, err := sierpinski.Triangles(3)
	require.NoError(t, err)

	got, err := sierpinski.Triangles(4)
	require.NoError(t, err)
	require.Len(t, got, 3*len(prev))

	apex := got[:len(prev)]
	bottomLeft := got[len(prev) : 2*len(prev)]
	bottomRight := got[2*len(prev):]

	for i := range prev {
		up := prev[i].Clone()
		up.Translate(2, 2*math.Sqrt(3))
		assert.Equal(t, up, apex[i], "apex copy %d", i)

		assert.Equal(t, prev[i], bottomLeft[i], "bottom-left copy %d", i)

		over := prev[i].Clone()
		over.Translate(4, 0)
		assert.Equal(t, over, bottomRight[i], "bottom-right copy %d", i)
	}
}

// TestTriangles_BoundsDoublePerOrder confirms the figure spans
// [0, 2^(n-1)] x [0, 2^(n-2)*sqrt(3)].
func TestTriangles_BoundsDoublePerOrder(t *testing.T) {
	for n := 2; n <= 6; n++ {
		tris, err := sierpinski.Triangles(n)
		require.NoError(t, err)

		box := geom.Concat(tris...).Bounds()
		assert.InDelta(t, 0, box.MinX, 0, "n=%d", n)
		assert.InDelta(t, 0, box.MinY, 0, "n=%d", n)
		assert.InDelta(t, math.Ldexp(1, n-1), box.MaxX, coordTol, "n=%d", n)
		assert.InDelta(t, math.Ldexp(math.Sqrt(3), n-2), box.MaxY, coordTol, "n=%d", n)
	}
}
