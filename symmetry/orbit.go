package symmetry

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/emirpasic/gods/sets/treeset"
)

// permutationComparator orders Permutation values for gods containers.
func permutationComparator(a, b interface{}) int {
	return a.(Permutation).Compare(b.(Permutation))
}

// Distinct reports whether perms holds no repeated permutation.
// Complexity: O(P·log P·n) for P permutations of n vertices.
func Distinct(perms []Permutation) bool {
	set := treeset.NewWith(permutationComparator)
	for _, p := range perms {
		if set.Contains(p) {
			return false
		}
		set.Add(p)
	}

	return true
}

// Orbit returns every distinct image of labels under Scatter by a permutation
// of perms, in ascending lexicographic order. labels holds one value per
// vertex, e.g. membership flags of a vertex subset.
func Orbit[T cmp.Ordered](perms []Permutation, labels []T) ([][]T, error) {
	set := treeset.NewWith(func(a, b interface{}) int {
		return slices.Compare(a.([]T), b.([]T))
	})
	for i, p := range perms {
		img, err := Scatter(p, labels)
		if err != nil {
			return nil, fmt.Errorf("Orbit: permutation %d: %w", i, err)
		}
		set.Add(img)
	}

	out := make([][]T, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.([]T))
	}

	return out, nil
}

// Canonical returns the lexicographically smallest Gather image of labels
// over perms and the index of the first permutation producing it.
// Two labelings related by a symmetry in perms share the same canonical
// form when perms is closed under inversion, which holds for Generate output.
func Canonical[T cmp.Ordered](perms []Permutation, labels []T) ([]T, int, error) {
	if len(perms) == 0 {
		return nil, -1, fmt.Errorf("Canonical: %w", ErrNoPermutations)
	}
	var best []T
	bestIdx := -1
	for i, p := range perms {
		img, err := Gather(p, labels)
		if err != nil {
			return nil, -1, fmt.Errorf("Canonical: permutation %d: %w", i, err)
		}
		if best == nil || slices.Compare(img, best) < 0 {
			best, bestIdx = img, i
		}
	}

	return best, bestIdx, nil
}

// IsCanonical reports whether no permutation of perms maps labels to a
// lexicographically smaller labeling. A search can prune every state for
// which this is false.
func IsCanonical[T cmp.Ordered](perms []Permutation, labels []T) (bool, error) {
	for i, p := range perms {
		img, err := Gather(p, labels)
		if err != nil {
			return false, fmt.Errorf("IsCanonical: permutation %d: %w", i, err)
		}
		if slices.Compare(img, labels) < 0 {
			return false, nil
		}
	}

	return true, nil
}
