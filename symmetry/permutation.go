package symmetry

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Permutation relabels the vertices of a prism: vertex i maps to p[i].
// Values are 32-bit vertex ids. A Permutation returned by Generate is a
// bijection on [0, len(p)) and is never mutated afterwards.
type Permutation []uint32

// Identity returns the identity permutation on n vertices.
func Identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = uint32(i)
	}

	return p
}

// IsBijection reports whether p hits every value of [0, len(p)) exactly once.
// Complexity: O(n) time, n bits of memory.
func (p Permutation) IsBijection() bool {
	n := uint(len(p))
	seen := bitset.New(n)
	for _, v := range p {
		if uint(v) >= n || seen.Test(uint(v)) {
			return false
		}
		seen.Set(uint(v))
	}

	return seen.Count() == n
}

// IsIdentity reports whether p maps every vertex to itself.
func (p Permutation) IsIdentity() bool {
	for i, v := range p {
		if uint32(i) != v {
			return false
		}
	}

	return true
}

// Inverse returns q with q[p[i]] = i. p must be a bijection.
func (p Permutation) Inverse() Permutation {
	q := make(Permutation, len(p))
	for i, v := range p {
		q[v] = uint32(i)
	}

	return q
}

// Compose returns the permutation applying p first and q second:
// out[i] = q[p[i]].
func (p Permutation) Compose(q Permutation) (Permutation, error) {
	if len(p) != len(q) {
		return nil, fmt.Errorf("Compose: %d vs %d: %w", len(p), len(q), ErrLengthMismatch)
	}
	out := make(Permutation, len(p))
	for i, v := range p {
		out[i] = q[v]
	}

	return out, nil
}

// Compare orders permutations lexicographically; a shorter prefix sorts first.
func (p Permutation) Compare(q Permutation) int {
	for i := 0; i < len(p) && i < len(q); i++ {
		switch {
		case p[i] < q[i]:
			return -1
		case p[i] > q[i]:
			return 1
		}
	}
	switch {
	case len(p) < len(q):
		return -1
	case len(p) > len(q):
		return 1
	}

	return 0
}

// Clone returns an independent copy of p.
func (p Permutation) Clone() Permutation {
	out := make(Permutation, len(p))
	copy(out, p)

	return out
}

// Scatter moves the value at vertex i to vertex p[i]: out[p[i]] = values[i].
// This relabels a per-vertex state (e.g. a subtree membership vector) by the
// symmetry p.
func Scatter[T any](p Permutation, values []T) ([]T, error) {
	if len(p) != len(values) {
		return nil, fmt.Errorf("Scatter: permutation %d vs values %d: %w", len(p), len(values), ErrLengthMismatch)
	}
	out := make([]T, len(values))
	for i, v := range p {
		out[v] = values[i]
	}

	return out, nil
}

// Gather reads vertex p[i] into slot i: out[i] = values[p[i]].
// Gather(p, x) equals Scatter(p.Inverse(), x).
func Gather[T any](p Permutation, values []T) ([]T, error) {
	if len(p) != len(values) {
		return nil, fmt.Errorf("Gather: permutation %d vs values %d: %w", len(p), len(values), ErrLengthMismatch)
	}
	out := make([]T, len(values))
	for i, v := range p {
		out[i] = values[v]
	}

	return out, nil
}
