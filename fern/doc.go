// Package fern generates the Barnsley fern, a stochastic iterated function
// system.
//
// What
//
//   - Generate plays the chaos game: starting from the origin, each step
//     applies one of four affine contractions to the previous point, picked
//     at random with the classic fern weights (1% stem, 85% main frond,
//     7% left leaflet, 7% right leaflet).
//   - The result is a geom.PointSet in generation order; plotted as dots it
//     renders the fern silhouette.
//
// Why
//
//   - The fern is the canonical iterated-function-system attractor: four
//     affine maps whose repeated random application condenses onto a
//     detailed self-similar shape.
//
// Determinism
//
//   - WithSeed or WithRand pins the random stream, making output
//     reproducible point for point. Unseeded calls differ from run to run
//     on purpose.
//
// Complexity
//
//   - O(n) time and space for n points. Generate has no error paths.
package fern
