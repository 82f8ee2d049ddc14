// SPDX-License-Identifier: MIT
// Package: hrpsym/shape
//
// dims.go: the Dims type and its equal-extent structure.
//
// Contract:
//   • Dims are read-only for every function in this package; results are fresh slices.
//   • Axis order is significant: it fixes the linear-index weighting.
//   • Extent-1 axes are legal and contribute no vertices or symmetries.

package shape

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// methodFromInts tags FromInts errors.
const methodFromInts = "FromInts"

// Dims lists per-axis extents of a hyper-rectangular prism.
// dims[i] is the number of vertices along axis i.
type Dims []uint

// FromInts converts any integer slice into Dims.
// Negative values are rejected with ErrNegativeExtent; zero extents are kept
// so that Validate reports them with the axis position.
// Complexity: O(k).
func FromInts[T constraints.Integer](extents []T) (Dims, error) {
	out := make(Dims, len(extents))
	for i, e := range extents {
		if e < 0 {
			return nil, fmt.Errorf("%s: axis %d has extent %d: %w", methodFromInts, i, int64(e), ErrNegativeExtent)
		}
		out[i] = uint(e)
	}

	return out, nil
}

// Validate reports ErrZeroExtent for the first axis of extent 0.
// Complexity: O(k).
func (d Dims) Validate() error {
	for i, e := range d {
		if e == 0 {
			return fmt.Errorf("axis %d: %w", i, ErrZeroExtent)
		}
	}

	return nil
}

// Rank returns the number of axes, degenerate ones included.
func (d Dims) Rank() int { return len(d) }

// Clone returns an independent copy of d.
func (d Dims) Clone() Dims {
	if d == nil {
		return nil
	}
	out := make(Dims, len(d))
	copy(out, d)

	return out
}

// Squeeze returns d without its extent-1 axes, preserving axis order.
// The squeezed prism has the same vertex count and the same vertex numbering.
func (d Dims) Squeeze() Dims {
	out := make(Dims, 0, len(d))
	for _, e := range d {
		if e != 1 {
			out = append(out, e)
		}
	}

	return out
}

// DegenerateAxes counts the axes of extent 1.
func (d Dims) DegenerateAxes() int {
	n := 0
	for _, e := range d {
		if e == 1 {
			n++
		}
	}

	return n
}

// Multiplicities maps every distinct extent to the number of axes carrying it.
// Extent 1 is reported like any other value; the symmetry counting formula
// drops it and uses DegenerateAxes instead.
// Complexity: O(k) time, O(distinct extents) memory.
func (d Dims) Multiplicities() map[uint]int {
	m := make(map[uint]int, len(d))
	for _, e := range d {
		m[e]++
	}

	return m
}

// String renders d as "3x3x2"; the 0-dimensional prism renders as "[]".
func (d Dims) String() string {
	if len(d) == 0 {
		return "[]"
	}
	parts := make([]string, len(d))
	for i, e := range d {
		parts[i] = strconv.FormatUint(uint64(e), 10)
	}

	return strings.Join(parts, "x")
}
