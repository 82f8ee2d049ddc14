// SPDX-License-Identifier: MIT
// Package: hrpsym/symmetry
//
// options.go: functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless values;
//     Generate itself never panics.
//   • Every option leaves the output order unchanged.

package symmetry

// Defaults.
const (
	// DefaultWorkers lifts permutations on the calling goroutine.
	DefaultWorkers = 1

	// DefaultMaxElements caps Count·VertexCount (1<<28 entries, 1 GiB of uint32).
	DefaultMaxElements uint64 = 1 << 28
)

// Option customizes Generate.
type Option func(*config)

type config struct {
	workers     int
	maxElements uint64
}

// WithWorkers lifts sub-prism permutations on a pool of n goroutines.
// Each task writes its own output slots, so the result order is the same as
// with one worker. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("symmetry: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithMaxElements sets the largest Count·VertexCount Generate will allocate.
// Panics if n == 0.
func WithMaxElements(n uint64) Option {
	if n == 0 {
		panic("symmetry: WithMaxElements(0)")
	}
	return func(c *config) {
		c.maxElements = n
	}
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) config {
	c := config{
		workers:     DefaultWorkers,
		maxElements: DefaultMaxElements,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
