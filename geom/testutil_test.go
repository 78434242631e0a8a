// Package geom_test verifies the point-set container and its rigid
// transforms from the outside, the way the generator packages consume them.
// Shared helpers live here; behavior-focused cases live in the sibling files.
package geom_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/yonesuke/fractal/geom"
)

// diff fails the test with a readable want/got diff when the two values are
// not equal under go-cmp semantics.
func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// set builds a PointSet from literal coordinates, failing fast on misuse so
// individual cases stay focused on the behavior under test.
func set(t *testing.T, x, y []float64) geom.PointSet {
	t.Helper()
	p, err := geom.FromSlices(x, y)
	require.NoError(t, err)

	return p
}
