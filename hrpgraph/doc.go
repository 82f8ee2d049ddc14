// Package hrpgraph treats a hyper-rectangular prism (HRP) of grid vertices as
// a graph: every vertex is joined to its predecessor and successor along each
// axis. It is the structure the permutations of package symmetry act on.
//
// What:
//
//   - Graph wraps a shape.Dims; vertex ids are the linear indices of
//     package shape (axis 0 least significant).
//   - Forward / Backward step one unit along an axis, NoVertex at a face.
//   - Directions lists those steps in a fixed slot order; Neighbors lists the
//     existing ones in ascending id order.
//   - IsAutomorphism verifies that a permutation maps edges onto edges.
//   - ConnectedComponents finds the components induced by a vertex subset.
//
// Complexity:
//
//   - Coord, Forward, Backward: O(1).
//   - Directions, Neighbors, HasEdge: O(k) for k axes.
//   - IsAutomorphism: O(V·k).
//   - ConnectedComponents: O(V·k) time, O(V) memory.
//
// Errors:
//
//   - shape.ErrZeroExtent / shape.ErrOverflow from New.
//   - ErrTooManyVertices: the prism has more than 2^32 vertices.
//   - ErrMaskSize: a vertex mask is shorter than the vertex count.
package hrpgraph
