// SPDX-License-Identifier: MIT
// Package: hrpsym/shape
//
// prefix.go: mixed-radix place values (prefix products) of a Dims.
//
// Invariants of the returned vector p for k axes:
//   • len(p) == k+1, p[0] == 1, p[i+1] == p[i]*dims[i].
//   • p[k] is the vertex count; p[i] is the block size of axis i, i.e. the
//     number of linear-index steps between consecutive coordinates on axis i.

package shape

import (
	"fmt"
	"math/bits"
)

// methodPrefixProducts tags PrefixProducts errors.
const methodPrefixProducts = "PrefixProducts"

// PrefixProducts returns the place values [1, d0, d0·d1, …, Πd] of dims.
// Returns ErrZeroExtent for a zero axis and ErrOverflow when Πd exceeds uint64.
// Complexity: O(k) time and memory.
func PrefixProducts(dims Dims) ([]uint64, error) {
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("%s(%v): %w", methodPrefixProducts, dims, err)
	}
	p := make([]uint64, len(dims)+1)
	p[0] = 1
	for i, e := range dims {
		hi, lo := bits.Mul64(p[i], uint64(e))
		if hi != 0 {
			return nil, fmt.Errorf("%s(%v): axis %d: %w", methodPrefixProducts, dims, i, ErrOverflow)
		}
		p[i+1] = lo
	}

	return p, nil
}

// VertexCount returns the number of vertices of the prism, 1 for no axes.
func (d Dims) VertexCount() (uint64, error) {
	p, err := PrefixProducts(d)
	if err != nil {
		return 0, err
	}

	return p[len(p)-1], nil
}
