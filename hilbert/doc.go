// Package hilbert generates the Hilbert space-filling curve on the integer
// grid.
//
// What
//
//   - Curve(n) returns the order-n traversal as a single geom.PointSet of
//     4^n points covering the (2^n)x(2^n) grid, one unit step at a time,
//     visiting every cell exactly once.
//   - Order 1 is the U shape (0,1) (0,0) (1,0) (1,1). Each further order
//     assembles four placed copies of the previous curve: the top-left and
//     top-right quadrants are rotated a quarter turn (opposite ways) and
//     re-reversed so the traversal stays continuous, the bottom quadrants
//     are translated copies.
//
// Why
//
//   - The Hilbert curve is the classic locality-preserving linearization of
//     a grid; as a point set it doubles as a stress fixture for the rigid
//     transforms in geom.
//
// Complexity
//
//   - O(4^n) time and space; the curve itself is exponential in n.
//
// Errors
//
//   - ErrOrder: the order was below 1.
package hilbert
