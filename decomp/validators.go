// SPDX-License-Identifier: MIT
// Package: decomp
//
// Purpose:
//  - Construction-time validation shared by CP and Tucker (factor lists) and
//    the Train chain checks.
//  - Every violation is reported as ErrShapeMismatch (optionally joined with
//    the lower-level sentinel, e.g. matrix.ErrNilMatrix).

package decomp

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

// decompErrorf wraps err with an operation tag, preserving sentinels via %w.
func decompErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateFactors checks a non-empty list of non-nil factor matrices and,
// when cols != nil, that factor n has exactly cols(n) columns.
// Complexity: O(N).
func validateFactors(factors []matrix.Matrix, cols func(n int) int) error {
	if len(factors) == 0 {
		return fmt.Errorf("no factor matrices: %w", ErrShapeMismatch)
	}
	for n, f := range factors {
		if err := matrix.ValidateNotNil(f); err != nil {
			return fmt.Errorf("factor %d: %w: %w", n, ErrShapeMismatch, err)
		}
		if cols != nil && f.Cols() != cols(n) {
			return fmt.Errorf("factor %d has %d columns, want %d: %w", n, f.Cols(), cols(n), ErrShapeMismatch)
		}
	}

	return nil
}

// validateChain checks the Train core layout and bond dimensions and returns
// the full shape implied by the chain.
// Layout: first (I_1,R_1), middle (R_{k-1},I_k,R_k), last (R_{N-1},I_N).
// Complexity: O(N).
func validateChain(cores []*tensor.Dense) ([]int, error) {
	if len(cores) < 2 {
		return nil, fmt.Errorf("%d cores, want at least 2: %w", len(cores), ErrShapeMismatch)
	}
	last := len(cores) - 1
	for k, c := range cores {
		if err := tensor.ValidateNotNil(c); err != nil {
			return nil, fmt.Errorf("core %d: %w: %w", k, ErrShapeMismatch, err)
		}
		want := 3
		if k == 0 || k == last {
			want = 2
		}
		if c.Order() != want {
			return nil, fmt.Errorf("core %d has order %d, want %d: %w", k, c.Order(), want, ErrShapeMismatch)
		}
	}
	for k := 0; k < last; k++ {
		trailing := cores[k].Size(cores[k].Order() - 1)
		leading := cores[k+1].Size(0)
		if trailing != leading {
			return nil, fmt.Errorf("bond %d: core %d ends with %d, core %d starts with %d: %w",
				k, k, trailing, k+1, leading, ErrShapeMismatch)
		}
	}

	shape := make([]int, len(cores))
	shape[0] = cores[0].Size(0)
	for k := 1; k < last; k++ {
		shape[k] = cores[k].Size(1)
	}
	shape[last] = cores[last].Size(1)

	return shape, nil
}

// cloneFactors deep-copies a factor list.
func cloneFactors(factors []matrix.Matrix) []matrix.Matrix {
	out := make([]matrix.Matrix, len(factors))
	for n, f := range factors {
		out[n] = matrix.CloneMatrix(f)
	}

	return out
}

// factorRows returns the row count of every factor (the full shape).
func factorRows(factors []matrix.Matrix) []int {
	rows := make([]int, len(factors))
	for n, f := range factors {
		rows[n] = f.Rows()
	}

	return rows
}

// factorParams counts the entries of every factor matrix.
func factorParams(factors []matrix.Matrix) int {
	total := 0
	for _, f := range factors {
		total += f.Rows() * f.Cols()
	}

	return total
}

// factorAt returns a clone of factor n or ErrIndexOutOfRange.
func factorAt(factors []matrix.Matrix, n int) (matrix.Matrix, error) {
	if n < 0 || n >= len(factors) {
		return nil, fmt.Errorf("factor %d of %d: %w", n, len(factors), ErrIndexOutOfRange)
	}

	return matrix.CloneMatrix(factors[n]), nil
}
