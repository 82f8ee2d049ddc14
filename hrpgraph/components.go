package hrpgraph

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// ConnectedComponents finds the components of the subgraph induced by the
// vertices set in mask; a nil mask selects every vertex.
// Components are returned in ascending order of their smallest vertex; each
// lists its vertices in BFS order from that vertex.
//
// Time:   O(V·k), where k = number of axes.
// Memory: O(V) for visited flags and output.
func (g *Graph) ConnectedComponents(mask *bitset.BitSet) ([][]uint32, error) {
	total := uint(g.VertexCount())
	if mask != nil && mask.Len() < total {
		return nil, fmt.Errorf("ConnectedComponents: mask of %d bits for %d vertices: %w", mask.Len(), total, ErrMaskSize)
	}
	in := func(v uint32) bool { return mask == nil || mask.Test(uint(v)) }

	seen := bitset.New(total)
	var comps [][]uint32

	for v0 := uint32(0); uint(v0) < total; v0++ {
		if !in(v0) || seen.Test(uint(v0)) {
			continue
		}
		// BFS to collect component
		queue := []uint32{v0}
		seen.Set(uint(v0))
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, w := range g.Neighbors(u) {
				if !in(w) || seen.Test(uint(w)) {
					continue
				}
				seen.Set(uint(w))
				queue = append(queue, w)
			}
		}
		comps = append(comps, queue)
	}

	return comps, nil
}

// MaskOf builds a vertex mask from a list of vertex ids.
func (g *Graph) MaskOf(vertices ...uint32) *bitset.BitSet {
	mask := bitset.New(uint(g.VertexCount()))
	for _, v := range vertices {
		mask.Set(uint(v))
	}

	return mask
}
