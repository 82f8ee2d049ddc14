// SPDX-License-Identifier: MIT
// Package: hrpsym/symmetry
//
// generate.go: the permutation builder.
//
// Construction (fold over axes, bottom-up from the 0-dimensional prism):
//   • Start from {[0]}: one vertex, identity only.
//   • Extent-1 axes add no vertices and no symmetries; they are skipped.
//   • Adding axis a of extent e turns each sub-prism permutation p (over
//     s = prefix[a] vertices) into, for layer h ∈ [0,e):
//       forwards [h·s + j] = p[j] + h·s          (layer h → layer h)
//       backwards[h·s + j] = p[j] + (e-1-h)·s    (layer h → layer e-1-h)
//   • For every earlier axis d with extent e, both lifts are also emitted
//     with the coordinates on axes d and a exchanged in every value.
//
// Output order per sub-permutation:
//   swap(d0,fwd), swap(d0,bwd), swap(d1,fwd), swap(d1,bwd), …, fwd, bwd.

package symmetry

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/alitto/pond/v2"

	"github.com/katalvlaran/hrpsym/shape"
)

const methodGenerate = "Generate"

// Generate returns the symmetry permutations of the prism described by dims.
// len(result) == Count(dims) and every element is a bijection on
// [0, VertexCount(dims)). Inserting or removing extent-1 axes does not change
// the result.
//
// Complexity: O(Count·VertexCount) time and memory.
func Generate(dims shape.Dims, opts ...Option) ([]Permutation, error) {
	cfg := gatherOptions(opts...)

	total, err := Count(dims)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	prefix, err := shape.PrefixProducts(dims)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	vertices := prefix[len(prefix)-1]
	if vertices-1 > math.MaxUint32 {
		return nil, fmt.Errorf("%s(%v): %d vertices exceed 32-bit ids: %w", methodGenerate, dims, vertices, ErrOverflow)
	}
	if hi, lo := bits.Mul64(total, vertices); hi != 0 || lo > cfg.maxElements {
		return nil, fmt.Errorf("%s(%v): %d permutations of %d vertices: %w", methodGenerate, dims, total, vertices, ErrTooLarge)
	}

	var pool pond.Pool
	if cfg.workers > 1 {
		pool = pond.NewPool(cfg.workers)
		defer pool.StopAndWait()
	}

	perms := []Permutation{{0}}
	for axis, extent := range dims {
		if extent == 1 {
			continue
		}
		l := newLifter(dims, prefix, axis)
		if perms, err = l.liftAll(perms, pool); err != nil {
			return nil, fmt.Errorf("%s(%v): axis %d: %w", methodGenerate, dims, axis, err)
		}
	}

	return perms, nil
}

// lifter carries the geometry of one fold step: adding axis `axis` to the
// prism spanned by the axes before it.
type lifter struct {
	extent    uint64   // extent of the added (primary) axis
	block     uint64   // vertices of the sub-prism; block size of the primary axis
	vertices  uint64   // vertices after adding the primary axis
	swapAxes  []int    // earlier axes with the same extent, ascending
	swapBlock []uint64 // block size of each swap axis
}

func newLifter(dims shape.Dims, prefix []uint64, axis int) lifter {
	l := lifter{
		extent:   uint64(dims[axis]),
		block:    prefix[axis],
		vertices: prefix[axis+1],
	}
	for d := 0; d < axis; d++ {
		if dims[d] == dims[axis] {
			l.swapAxes = append(l.swapAxes, d)
			l.swapBlock = append(l.swapBlock, prefix[d])
		}
	}

	return l
}

// perSub is the number of permutations produced from one sub-permutation.
func (l lifter) perSub() int {
	return 2 * (len(l.swapAxes) + 1)
}

// liftAll lifts every sub-permutation into out[i*perSub : (i+1)*perSub].
// With a pool the slots are filled concurrently; the layout is identical.
func (l lifter) liftAll(sub []Permutation, pool pond.Pool) ([]Permutation, error) {
	per := l.perSub()
	out := make([]Permutation, len(sub)*per)
	if pool == nil {
		for i, p := range sub {
			l.liftInto(p, out[i*per:(i+1)*per])
		}
		return out, nil
	}

	group := pool.NewGroup()
	for i, p := range sub {
		p := p
		dst := out[i*per : (i+1)*per]
		group.Submit(func() {
			l.liftInto(p, dst)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// liftInto writes the lifts of p into dst, len(dst) == perSub.
func (l lifter) liftInto(p Permutation, dst []Permutation) {
	forwards := make(Permutation, l.vertices)
	backwards := make(Permutation, l.vertices)
	for h := uint64(0); h < l.extent; h++ {
		fwdOff := h * l.block
		bwdOff := (l.extent - 1 - h) * l.block
		base := h * l.block
		for j, v := range p {
			forwards[base+uint64(j)] = uint32(uint64(v) + fwdOff)
			backwards[base+uint64(j)] = uint32(uint64(v) + bwdOff)
		}
	}

	slot := 0
	for k := range l.swapAxes {
		dst[slot] = l.swap(forwards, l.swapBlock[k])
		dst[slot+1] = l.swap(backwards, l.swapBlock[k])
		slot += 2
	}
	dst[slot] = forwards
	dst[slot+1] = backwards
}

// swap exchanges, in every value of base, the coordinate on the axis with
// block size dBlock and the coordinate on the primary axis.
func (l lifter) swap(base Permutation, dBlock uint64) Permutation {
	out := make(Permutation, len(base))
	for i, v := range base {
		x := uint64(v)
		dimValue := (x / dBlock) % l.extent
		primaryValue := x / l.block
		x = x - dimValue*dBlock - primaryValue*l.block + dimValue*l.block + primaryValue*dBlock
		out[i] = uint32(x)
	}

	return out
}
