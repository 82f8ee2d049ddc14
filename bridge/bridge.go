// Package bridge is the function-call boundary for foreign callers.
//
// A caller that cannot receive nested variable-length containers gets each
// permutation wrapped in a single-field Record. Dims arrive as plain []uint
// so the boundary does not leak package shape. Both functions are pure and
// synchronous; precondition violations (zero extents, overflow) come back as
// errors rather than undefined behavior.
package bridge

import (
	"fmt"

	"github.com/katalvlaran/hrpsym/shape"
	"github.com/katalvlaran/hrpsym/symmetry"
)

// Record carries one vertex-index remapping across the boundary.
type Record struct {
	Value []uint32
}

// SymmetryCount returns the number of records PermutationSet returns for dims.
// Use it to size buffers before calling PermutationSet.
func SymmetryCount(dims []uint) (uint64, error) {
	n, err := symmetry.Count(shape.Dims(dims))
	if err != nil {
		return 0, fmt.Errorf("bridge.SymmetryCount: %w", err)
	}

	return n, nil
}

// PermutationSet returns the symmetry permutations of dims, one Record each,
// in the deterministic order of symmetry.Generate. Ownership of the records
// passes to the caller.
func PermutationSet(dims []uint) ([]Record, error) {
	perms, err := symmetry.Generate(shape.Dims(dims))
	if err != nil {
		return nil, fmt.Errorf("bridge.PermutationSet: %w", err)
	}
	out := make([]Record, len(perms))
	for i, p := range perms {
		out[i] = Record{Value: p}
	}

	return out, nil
}
