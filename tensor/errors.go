// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// All tensor operations return these sentinels (wrapped with an operation
// tag) and tests match them via errors.Is. No operation panics on user input.

package tensor

import "errors"

// Every message is prefixed with "tensor: ..." for consistency and grepping.
//
// ERROR PRIORITY (documented, enforced in validators):
// nil -> shape/sizes -> mode index -> dimension mismatch -> numeric policy.

var (
	// ErrInvalidDimensions indicates an empty size list or a non-positive mode size.
	ErrInvalidDimensions = errors.New("tensor: mode sizes must be > 0")

	// ErrBadShape indicates that a flat buffer length does not equal the
	// product of the requested mode sizes (construction, Reshape, Fold).
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates an element index or a mode index outside bounds.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDimensionMismatch indicates incompatible operands: a mode-n product
	// whose matrix column count differs from the size of mode n, a multi-index
	// of the wrong arity, or elementwise ops on differently shaped tensors.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values.
	ErrNaNInf = errors.New("tensor: NaN or Inf encountered")

	// ErrNilTensor indicates that a nil *Dense (receiver or argument) was used.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrModeNames indicates that the number of supplied mode names differs
	// from the tensor order.
	ErrModeNames = errors.New("tensor: mode names do not match order")
)
