// SPDX-License-Identifier: MIT
// Package: hrpsym/symmetry
//
// errors.go: sentinel errors for the symmetry package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Call sites add method context with %w ("Generate(3x3): ...: %w").
//   • Generate and Count never panic; option constructors do on nonsense input.

package symmetry

import "errors"

// ErrOverflow indicates a factorial, count or vertex id exceeds its integer width.
var ErrOverflow = errors.New("symmetry: integer overflow")

// ErrTooLarge indicates Generate would allocate more permutation entries than
// the configured element budget.
var ErrTooLarge = errors.New("symmetry: permutation set exceeds element budget")

// ErrLengthMismatch indicates operands of different lengths.
var ErrLengthMismatch = errors.New("symmetry: length mismatch")

// ErrNoPermutations indicates an empty permutation list where one is required.
var ErrNoPermutations = errors.New("symmetry: empty permutation list")
