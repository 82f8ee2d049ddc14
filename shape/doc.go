// Package shape describes the extents of a hyper-rectangular prism (HRP) of
// grid vertices and the mixed-radix arithmetic that addresses them.
//
// What:
//
//   - Dims: ordered per-axis extents; axis 0 is the least significant digit
//     of a linear vertex index.
//   - PrefixProducts: place values [1, d0, d0·d1, …, Πd] mapping a
//     multi-index to a linear index and back.
//   - Multiplicities / Squeeze / DegenerateAxes: the equal-extent structure
//     used by the symmetry counting formula.
//   - Parse: reads "3x3x2", "3,3,2", "[3 3 2]" or "[]" into Dims.
//
// Complexity:
//
//   - PrefixProducts, VertexCount, Index, Coords: O(k) for k axes.
//   - Coord: O(1) given precomputed prefix products.
//
// Errors:
//
//   - ErrZeroExtent: an axis has extent 0 (no vertices, not a prism).
//   - ErrOverflow: the vertex count does not fit in 64 bits.
//   - ErrRankMismatch: a multi-index has the wrong number of coordinates.
//   - ErrCoordRange: a coordinate is outside its axis extent.
//   - ErrIndexRange: a linear index is outside [0, VertexCount).
//   - ErrNegativeExtent: FromInts received a negative extent.
//   - ErrParse: Parse could not read the expression.
package shape
