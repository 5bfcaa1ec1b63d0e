// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//  - Canonical validation checks shared by products, folds and elementwise ops.
//  - Return sentinels tagged with the validator name; callers match with errors.Is.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Mode → Size).

package tensor

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/matrix"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the tensor reference is non-nil.
// Returns ErrNilTensor if t == nil.
// Complexity: O(1).
func ValidateNotNil(t *Dense) error {
	if t == nil {
		return validatorErrorf("ValidateNotNil", ErrNilTensor)
	}

	return nil
}

// ValidateMode ensures 0 <= mode < t.Order().
// Assumes t is non-nil.
// Errors: ErrOutOfRange.
func ValidateMode(t *Dense, mode int) error {
	if mode < 0 || mode >= t.Order() {
		return validatorErrorf("ValidateMode", fmt.Errorf("mode %d for order %d: %w", mode, t.Order(), ErrOutOfRange))
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with identical mode sizes.
// Errors: ErrNilTensor, ErrDimensionMismatch.
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if !SameSizes(a.sizes, b.sizes) {
		return validatorErrorf("ValidateSameShape", fmt.Errorf("%v vs %v: %w", a.sizes, b.sizes, ErrDimensionMismatch))
	}

	return nil
}

// ValidateModeProduct checks the operands of a mode-n product:
// t non-nil, m non-nil, valid mode, m.Cols() == t.Size(mode).
// This is the single compatibility check shared by every reconstruction path.
//
// Errors:
//   - ErrNilTensor, matrix.ErrNilMatrix, ErrOutOfRange, ErrDimensionMismatch.
//
// Complexity: O(1).
func ValidateModeProduct(t *Dense, m matrix.Matrix, mode int) error {
	if err := ValidateNotNil(t); err != nil {
		return validatorErrorf("ValidateModeProduct", err)
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateModeProduct", err)
	}
	if err := ValidateMode(t, mode); err != nil {
		return validatorErrorf("ValidateModeProduct", err)
	}
	if m.Cols() != t.sizes[mode] {
		return validatorErrorf("ValidateModeProduct",
			fmt.Errorf("matrix %dx%d vs mode %d of size %d: %w", m.Rows(), m.Cols(), mode, t.sizes[mode], ErrDimensionMismatch))
	}

	return nil
}
