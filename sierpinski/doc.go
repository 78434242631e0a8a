// Package sierpinski generates the Sierpinski triangle as a list of closed
// triangle outlines.
//
// What
//
//   - Triangles(n) returns the 3^(n-1) unit triangles of the order-n gasket,
//     each a closed four-point geom.PointSet (first point repeated last).
//   - Order 1 is a single unit triangle with corners (0,0), (1,0) and
//     (1/2, sqrt(3)/2). Each further order arranges three copies of the
//     previous figure in the gasket layout: one shifted up to the apex, one
//     kept at the bottom left, one shifted right.
//
// Why
//
//   - Returning outlines rather than one merged path lets a frontend stroke
//     or fill each triangle independently, which is how the gasket is
//     usually drawn.
//
// Complexity
//
//   - O(3^n) time and space; the figure itself is exponential in n.
//
// Errors
//
//   - ErrOrder: the order was below 1.
package sierpinski
