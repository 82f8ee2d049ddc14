// Package symmetry builds the vertex permutations of a hyper-rectangular
// prism (HRP) that come from its geometric symmetries: reversal of any axis
// and exchange of two axes with equal extent.
//
// What:
//
//   - Generate: the permutation list for a shape.Dims, built by folding over
//     axes. Each new axis lifts every permutation of the sub-prism into the
//     larger prism in forward and reversed orientation, plus variants that
//     swap the new axis with every earlier axis of equal extent.
//   - Count: the closed-form length of that list,
//     2^(k-m) · Π_{v≠1} multiplicity(v)!, with m the number of extent-1 axes.
//   - Permutation: a bijection on [0, vertexCount) with Inverse, Compose,
//     IsBijection and lexicographic Compare.
//   - Scatter / Gather: apply a permutation to per-vertex data.
//   - Orbit / Canonical / Distinct: deduplicate labelings that differ only
//     by a symmetry of the prism.
//
// Why:
//
//   - Subgraph enumeration on an HRP grid visits many vertex subsets that are
//     images of each other under a symmetry; Canonical lets a search keep a
//     single representative and Orbit expands a representative back.
//
// Determinism:
//
//   - Generate returns the same order for the same input, with or without
//     WithWorkers. For each permutation of the sub-prism the swapped variants
//     come first (earlier swap axis first, forwards before backwards), then
//     the plain forwards and backwards lifts.
//
// Complexity:
//
//   - Count:    O(k).
//   - Generate: O(Count(dims) · VertexCount(dims)) time and memory.
//
// Preconditions and errors:
//
//   - Every extent must be ≥ 1 (shape.ErrZeroExtent otherwise); extent-1
//     axes are skipped silently.
//   - ErrOverflow: the count does not fit in uint64, or the vertex count
//     exceeds the 32-bit vertex id range.
//   - ErrTooLarge: Count·VertexCount exceeds the element budget
//     (WithMaxElements).
//   - ErrLengthMismatch: a permutation and its operand differ in length.
//   - ErrNoPermutations: Canonical was given an empty permutation list.
package symmetry
