// SPDX-License-Identifier: MIT
// Package: hrpsym/symmetry
//
// count.go: closed-form length of the Generate result.
//
// Formula, for k axes of which m have extent 1:
//
//	Count = 2^(k-m) · Π over distinct extents v ≠ 1 of multiplicity(v)!
//
// Each non-degenerate axis contributes a forwards/backwards pair and the i-th
// axis of a given extent adds i-1 swap partners, so a run of c equal axes
// multiplies the count by c!. The value is derived from the construction,
// not an independent estimate, and is safe to use as a capacity hint.

package symmetry

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/hrpsym/shape"
)

const methodCount = "Count"

// Count returns the number of permutations Generate emits for dims.
// The empty prism and any all-ones prism have exactly one (the identity).
// Complexity: O(k).
func Count(dims shape.Dims) (uint64, error) {
	if err := dims.Validate(); err != nil {
		return 0, fmt.Errorf("%s(%v): %w", methodCount, dims, err)
	}

	reflections := len(dims) - dims.DegenerateAxes()
	if reflections >= 64 {
		return 0, fmt.Errorf("%s(%v): 2^%d: %w", methodCount, dims, reflections, ErrOverflow)
	}
	total := uint64(1) << reflections

	for extent, mult := range dims.Multiplicities() {
		if extent == 1 {
			continue
		}
		f, err := Factorial(uint(mult))
		if err != nil {
			return 0, fmt.Errorf("%s(%v): extent %d: %w", methodCount, dims, extent, err)
		}
		hi, lo := bits.Mul64(total, f)
		if hi != 0 {
			return 0, fmt.Errorf("%s(%v): %w", methodCount, dims, ErrOverflow)
		}
		total = lo
	}

	return total, nil
}
