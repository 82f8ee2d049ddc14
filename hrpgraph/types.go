// Package hrpgraph defines the Graph type and sentinel errors.
package hrpgraph

import (
	"errors"
	"math"

	"github.com/katalvlaran/hrpsym/shape"
)

// Sentinel errors for hrpgraph operations.
var (
	// ErrTooManyVertices indicates vertex ids would not fit in 32 bits.
	ErrTooManyVertices = errors.New("hrpgraph: vertex count exceeds 32-bit ids")
	// ErrMaskSize indicates a vertex mask shorter than the vertex count.
	ErrMaskSize = errors.New("hrpgraph: mask does not cover every vertex")
)

// NoVertex marks a missing step off the boundary of the prism.
const NoVertex uint32 = math.MaxUint32

// Graph is an immutable HRP grid graph.
// dims[i] is the extent of axis i; sizes[i] is the block size of axis i
// (the prefix product) and sizes[k] the vertex count.
type Graph struct {
	dims  shape.Dims
	sizes []uint64
}
