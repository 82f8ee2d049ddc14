// Package hrpsym computes the symmetry permutations of a hyper-rectangular
// prism (HRP) of grid vertices: reversals of any axis combined with
// exchanges of axes that have equal extent, each expressed as a
// vertex-index remapping.
//
// What is inside:
//
//	shape/    - Dims, prefix products, linear ⇄ multi-index arithmetic, dims parser
//	symmetry/ - Count (closed form), Generate (the permutation builder),
//	            Permutation, Scatter/Gather, Orbit/Canonical deduplication
//	hrpgraph/ - the grid graph the permutations act on: neighbors, outer shell,
//	            automorphism check, connected components of a vertex subset
//	bridge/   - boundary for foreign callers, one carrier Record per permutation
//	cmd/hrpsym - CLI: count, perms, verify, orbit
//
// Quick ASCII example, the 2×2 square and one of its 8 symmetries:
//
//	2───3        1───3
//	│   │   →    │   │      [0 2 1 3]: swap axis 0 and axis 1
//	0───1        0───2
//
// Everything is pure and deterministic; the only concurrency is the opt-in
// worker pool of symmetry.WithWorkers, which keeps the output order.
//
//	go get github.com/katalvlaran/hrpsym
package hrpsym
