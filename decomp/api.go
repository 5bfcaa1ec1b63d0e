// SPDX-License-Identifier: MIT

// Package decomp - representation-agnostic helpers.
package decomp

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/tensor"
)

const (
	opRelativeError    = "RelativeError"
	opCompressionRatio = "CompressionRatio"
)

// RelativeError returns ‖Reconstruct(rep) − ref‖_F / ‖ref‖_F.
// MAIN DESCRIPTION:
//   - Measures how well a representation approximates a reference tensor.
//     Exact representations (e.g. identity factors) give 0.
//
// Errors:
//   - ErrNilRepresentation, tensor.ErrNilTensor, tensor.ErrDimensionMismatch
//     (FullShape differs from ref), ErrZeroNorm, Reconstruct errors.
//
// Complexity:
//   - Reconstruct cost + O(len(ref)).
func RelativeError(rep Representation, ref *tensor.Dense) (float64, error) {
	if rep == nil {
		return 0, decompErrorf(opRelativeError, ErrNilRepresentation)
	}
	if err := tensor.ValidateNotNil(ref); err != nil {
		return 0, decompErrorf(opRelativeError, err)
	}
	den := ref.Norm()
	if den == 0 {
		return 0, decompErrorf(opRelativeError, ErrZeroNorm)
	}
	full, err := rep.Reconstruct()
	if err != nil {
		return 0, decompErrorf(opRelativeError, err)
	}
	diff, err := tensor.Sub(full, ref)
	if err != nil {
		return 0, decompErrorf(opRelativeError, err)
	}

	return diff.Norm() / den, nil
}

// CompressionRatio returns Π FullShape / NumParams: how many dense entries
// each stored parameter stands for. Values above 1 mean the representation
// is smaller than the dense tensor.
// Errors: ErrNilRepresentation.
func CompressionRatio(rep Representation) (float64, error) {
	if rep == nil {
		return 0, decompErrorf(opCompressionRatio, ErrNilRepresentation)
	}
	dense := 1
	for _, s := range rep.FullShape() {
		dense *= s
	}
	params := rep.NumParams()
	if params == 0 {
		return 0, decompErrorf(opCompressionRatio, fmt.Errorf("no parameters: %w", ErrShapeMismatch))
	}

	return float64(dense) / float64(params), nil
}
