package hrpgraph

import (
	"fmt"

	"github.com/katalvlaran/hrpsym/shape"
)

// New builds the grid graph of dims. dims is copied.
// Complexity: O(k).
func New(dims shape.Dims) (*Graph, error) {
	sizes, err := shape.PrefixProducts(dims)
	if err != nil {
		return nil, fmt.Errorf("hrpgraph.New: %w", err)
	}
	if n := sizes[len(sizes)-1]; n > uint64(NoVertex) {
		return nil, fmt.Errorf("hrpgraph.New(%v): %d vertices: %w", dims, n, ErrTooManyVertices)
	}

	return &Graph{dims: dims.Clone(), sizes: sizes}, nil
}

// Dims returns a copy of the extents.
func (g *Graph) Dims() shape.Dims { return g.dims.Clone() }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return int(g.sizes[len(g.dims)]) }

// SizeOfDim returns the vertex count of the prism truncated to its first d
// axes; it is also the block size of axis d.
func (g *Graph) SizeOfDim(d int) uint64 { return g.sizes[d] }

// Coord returns the coordinate of v along axis d. No bounds checks.
// Complexity: O(1).
func (g *Graph) Coord(d int, v uint32) uint32 {
	return uint32(shape.Coord(g.sizes, g.dims, uint64(v), d))
}

// Forward returns the neighbor one step up axis d, or NoVertex on the far face.
func (g *Graph) Forward(d int, v uint32) uint32 {
	if uint(g.Coord(d, v)) == g.dims[d]-1 {
		return NoVertex
	}
	return v + uint32(g.sizes[d])
}

// Backward returns the neighbor one step down axis d, or NoVertex on the near face.
func (g *Graph) Backward(d int, v uint32) uint32 {
	if g.Coord(d, v) == 0 {
		return NoVertex
	}
	return v - uint32(g.sizes[d])
}

// Directions returns 2k slots: slot k-1-d holds Backward(d, v) and slot k+d
// holds Forward(d, v). The highest axis owns the outermost slots, so the
// existing entries read in ascending id order.
// Complexity: O(k).
func (g *Graph) Directions(v uint32) []uint32 {
	k := len(g.dims)
	dirs := make([]uint32, 2*k)
	for d := 0; d < k; d++ {
		dirs[k-d-1] = g.Backward(d, v)
		dirs[k+d] = g.Forward(d, v)
	}

	return dirs
}

// Neighbors returns the adjacent vertices of v in ascending order.
func (g *Graph) Neighbors(v uint32) []uint32 {
	dirs := g.Directions(v)
	out := dirs[:0]
	for _, n := range dirs {
		if n != NoVertex {
			out = append(out, n)
		}
	}

	return out
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v uint32) int {
	deg := 0
	for d := range g.dims {
		if g.Forward(d, v) != NoVertex {
			deg++
		}
		if g.Backward(d, v) != NoVertex {
			deg++
		}
	}

	return deg
}

// IsOnOuterShell reports whether v lies on a face of the prism, i.e. misses
// a neighbor in some direction. Extent-1 axes put every vertex on the shell.
func (g *Graph) IsOnOuterShell(v uint32) bool {
	return g.Degree(v) != 2*len(g.dims)
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(k).
func (g *Graph) HasEdge(u, v uint32) bool {
	n := uint32(g.VertexCount())
	if u >= n || v >= n || u == v {
		return false
	}
	if u > v {
		u, v = v, u
	}
	for d := range g.dims {
		if g.Forward(d, u) == v {
			return true
		}
	}

	return false
}

// EdgeCount returns the number of edges: Σ_d (dims[d]-1)·V/dims[d].
func (g *Graph) EdgeCount() int {
	total := uint64(0)
	n := g.sizes[len(g.dims)]
	for _, e := range g.dims {
		total += (uint64(e) - 1) * (n / uint64(e))
	}

	return int(total)
}
