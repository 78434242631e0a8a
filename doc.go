// Package fractal is a small toolkit for generating classic fractals as
// plain 2-D point sets, ready to hand to any plotting frontend.
//
// What is inside?
//
//	Four generator families, each in its own subpackage:
//		* fern/       - Barnsley fern, a stochastic iterated function system
//		* hilbert/    - Hilbert space-filling curve on the integer grid
//		* sierpinski/ - Sierpinski gasket as closed triangle outlines
//		* dragon/     - Heighway dragon built by folding, with beveled corners
//
//	Shared plumbing:
//		* geom/       - the PointSet container and the rigid transforms
//		                (translate, quarter-turn rotate, reverse, concat)
//		                the curve constructions are assembled from
//
// Every generator returns geom.PointSet values (or a slice of them): two
// parallel coordinate slices X and Y in traversal order. The constructive
// curves (hilbert, sierpinski, dragon) are fully deterministic, equal
// orders always reproduce identical output. The fern is random by default
// and reproducible with fern.WithSeed.
//
// A command-line frontend lives in cmd/fractal. It prints any family as
// "x y" columns or JSON, logging progress to stderr:
//
//	fractal fern --points 100000 --seed 42 > fern.dat
//	fractal hilbert --order 6 --format json
//
// Quick start in code:
//
//	cloud := fern.Generate(100_000, fern.WithSeed(42))
//	curve, err := hilbert.Curve(5)
//	tris, err := sierpinski.Triangles(7)
//	zigzag, err := dragon.Curve(12)
//
//	go get github.com/yonesuke/fractal
package fractal
