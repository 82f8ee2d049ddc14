package symmetry_test

import (
	"testing"

	"github.com/katalvlaran/hrpsym/shape"
	"github.com/katalvlaran/hrpsym/symmetry"
)

// BenchmarkGenerate measures the builder on a 5-cube of extent 3
// (3840 permutations of 243 vertices).
// Complexity: O(Count·VertexCount).
func BenchmarkGenerate(b *testing.B) {
	dims := shape.Dims{3, 3, 3, 3, 3}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := symmetry.Generate(dims); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerateWorkers is BenchmarkGenerate on a 4-worker pool.
func BenchmarkGenerateWorkers(b *testing.B) {
	dims := shape.Dims{3, 3, 3, 3, 3}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := symmetry.Generate(dims, symmetry.WithWorkers(4)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCount measures the closed-form formula.
func BenchmarkCount(b *testing.B) {
	dims := shape.Dims{4, 3, 4, 3, 2, 1, 2}
	for i := 0; i < b.N; i++ {
		_, _ = symmetry.Count(dims)
	}
}
