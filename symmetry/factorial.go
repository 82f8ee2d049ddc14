package symmetry

import (
	"fmt"
	"math/bits"
)

// Factorial returns n! with 0! = 1! = 1.
// n! fits in uint64 up to n = 20; larger n returns ErrOverflow.
func Factorial(n uint) (uint64, error) {
	f := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		hi, lo := bits.Mul64(f, i)
		if hi != 0 {
			return 0, fmt.Errorf("Factorial(%d): %w", n, ErrOverflow)
		}
		f = lo
	}

	return f, nil
}
