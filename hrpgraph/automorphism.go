package hrpgraph

import "github.com/katalvlaran/hrpsym/symmetry"

// IsAutomorphism reports whether p is a bijection on the vertices of g that
// maps every edge onto an edge. Since p is a bijection on a finite edge set,
// this also means non-edges map onto non-edges.
// Complexity: O(V·k).
func (g *Graph) IsAutomorphism(p symmetry.Permutation) bool {
	if len(p) != g.VertexCount() || !p.IsBijection() {
		return false
	}
	for u := range p {
		for d := range g.dims {
			w := g.Forward(d, uint32(u))
			if w == NoVertex {
				continue
			}
			if !g.HasEdge(p[u], p[w]) {
				return false
			}
		}
	}

	return true
}
