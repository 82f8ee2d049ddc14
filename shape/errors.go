// SPDX-License-Identifier: MIT
// Package: hrpsym/shape
//
// errors.go: sentinel errors for the shape package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Context is attached at the call site with %w, never baked into the sentinel.

package shape

import "errors"

// ErrZeroExtent indicates an axis of extent 0. A zero-length axis leaves the
// prism without vertices, so every caller must supply extents ≥ 1.
var ErrZeroExtent = errors.New("shape: extent must be ≥ 1")

// ErrNegativeExtent indicates a negative value passed to FromInts.
var ErrNegativeExtent = errors.New("shape: extent must not be negative")

// ErrOverflow indicates the product of extents does not fit in uint64.
var ErrOverflow = errors.New("shape: vertex count overflows uint64")

// ErrRankMismatch indicates a multi-index whose length differs from len(Dims).
var ErrRankMismatch = errors.New("shape: coordinate count does not match axis count")

// ErrCoordRange indicates a coordinate ≥ its axis extent.
var ErrCoordRange = errors.New("shape: coordinate out of range")

// ErrIndexRange indicates a linear index ≥ VertexCount.
var ErrIndexRange = errors.New("shape: index out of range")

// ErrParse indicates a malformed dims expression.
var ErrParse = errors.New("shape: cannot parse dims expression")
