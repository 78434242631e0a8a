// Package geom provides the 2-D point-set primitive shared by the fractal
// generators, together with the rigid transforms (quarter-turn rotation,
// translation, traversal reversal) the curve constructions are built from.
//
// What
//
//   - PointSet holds an ordered path of N points as two parallel coordinate
//     slices X and Y. Order is significant: it is the traversal of a curve
//     or the outline of a shape.
//   - BBox is the axis-aligned bounding box of a set.
//   - Translate, Rotate90 and Reverse mutate a set's own storage in place;
//     derived copies are taken with Clone first, so sibling derivations never
//     observe each other's writes.
//   - Concat stitches sets into a single fresh set without aliasing inputs.
//
// Why
//
//   - Every generator in this module returns its result as a PointSet (or a
//     slice of them), ready to hand to a plotting frontend as x/y arrays.
//   - The Hilbert and dragon constructions are compositions of exactly these
//     rigid transforms; keeping them here keeps the curve packages free of
//     coordinate bookkeeping.
//
// Complexity
//
//   - Translate, Rotate90, Reverse: O(N) time, O(1) extra space (in place).
//   - Clone, Concat, FromSlices: O(N) time and space (fresh storage).
//
// Errors
//
//   - ErrLengthMismatch: FromSlices was given x and y of different lengths.
package geom
