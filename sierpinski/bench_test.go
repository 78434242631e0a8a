package sierpinski_test

import (
	"testing"

	"github.com/yonesuke/fractal/sierpinski"
)

// benchOrder yields 3^9 = 19683 outlines, a realistic plotting size.
const benchOrder = 10

func BenchmarkTriangles(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = sierpinski.Triangles(benchOrder)
	}
}
