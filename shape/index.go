// SPDX-License-Identifier: MIT
// Package: hrpsym/shape
//
// index.go: linear index ⇄ multi-index conversion.

package shape

import "fmt"

const (
	methodIndex  = "Index"
	methodCoords = "Coords"
)

// Coord extracts the coordinate of index along axis using precomputed
// prefix products: (index / prefix[axis]) mod dims[axis].
// No bounds checks; prefix must come from PrefixProducts(dims).
// Complexity: O(1).
func Coord(prefix []uint64, dims Dims, index uint64, axis int) uint64 {
	return (index / prefix[axis]) % uint64(dims[axis])
}

// Index maps a multi-index to its linear vertex index.
// Complexity: O(k).
func (d Dims) Index(coords []uint) (uint64, error) {
	if len(coords) != len(d) {
		return 0, fmt.Errorf("%s: got %d coordinates for %d axes: %w", methodIndex, len(coords), len(d), ErrRankMismatch)
	}
	prefix, err := PrefixProducts(d)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodIndex, err)
	}
	var idx uint64
	for axis, c := range coords {
		if c >= d[axis] {
			return 0, fmt.Errorf("%s: axis %d coordinate %d ≥ extent %d: %w", methodIndex, axis, c, d[axis], ErrCoordRange)
		}
		idx += uint64(c) * prefix[axis]
	}

	return idx, nil
}

// Coords maps a linear vertex index to its multi-index.
// Complexity: O(k).
func (d Dims) Coords(index uint64) ([]uint, error) {
	prefix, err := PrefixProducts(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCoords, err)
	}
	if n := prefix[len(prefix)-1]; index >= n {
		return nil, fmt.Errorf("%s: index %d ≥ vertex count %d: %w", methodCoords, index, n, ErrIndexRange)
	}
	out := make([]uint, len(d))
	for axis := range d {
		out[axis] = uint(Coord(prefix, d, index, axis))
	}

	return out, nil
}
