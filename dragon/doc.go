// Package dragon generates the Heighway dragon curve by repeated folding.
//
// What
//
//   - Curve(n) returns the order-n dragon as a single geom.PointSet of
//     2^(n+1) points. Order 0 is the unit segment (0,0) (0,1); every fold
//     appends a copy of the path rotated a quarter turn anticlockwise about
//     its endpoint, traversed backwards so the walk continues smoothly.
//   - Each fold also bevels the junction: the two endpoints meeting at the
//     fold are pulled toward their inner neighbors by the ratio
//     1/(2+sqrt(2)), so the rendered curve never touches itself.
//
// Why
//
//   - The dragon is the paper-folding fractal: the fold sequence of a strip
//     of paper halved n times, unfolded to right angles. The bevel is the
//     classic rounding that turns the self-touching polyline into a clean
//     plotted curve.
//
// Complexity
//
//   - O(2^n) time and space; the curve itself is exponential in n.
//
// Errors
//
//   - ErrOrder: the order was negative.
package dragon
