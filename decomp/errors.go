// SPDX-License-Identifier: MIT
// Package decomp: sentinel error set.
// Construction-time checks fail fast before a representation is usable;
// reconstruction-time checks fail before any partial result is returned.
// Nothing is silently coerced: a mismatched rank is never truncated or padded.

package decomp

import "errors"

var (
	// ErrShapeMismatch indicates inconsistent factor/core dimensions at
	// construction: differing CP column counts, a Tucker factor whose column
	// count differs from the core size, a broken Train bond chain, or a full
	// shape that disagrees with the one implied by the parameters.
	ErrShapeMismatch = errors.New("decomp: shape mismatch")

	// ErrIndexOutOfRange indicates a Train core index outside [0, Order()-1]
	// or a factor index outside [0, Order()-1].
	ErrIndexOutOfRange = errors.New("decomp: index out of range")

	// ErrNilRepresentation indicates that a nil Representation was used.
	ErrNilRepresentation = errors.New("decomp: nil representation")

	// ErrZeroNorm indicates a relative error requested against an all-zero reference.
	ErrZeroNorm = errors.New("decomp: reference tensor has zero norm")
)
