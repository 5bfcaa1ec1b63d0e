// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, transpose, scalar scaling, elementwise product and
// the two structured products used by tensor algebra (Khatri–Rao, Kronecker).
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast path over the flat buffer and an
//     interface fallback with a fixed i→j order; both produce identical results.
//   - Inputs are never mutated; every result is a freshly allocated Dense.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opHadamard   = "Hadamard"
	opKhatriRao  = "KhatriRao"
	opKronecker  = "Kronecker"
	opScaleCols  = "ScaleCols"
	opToRowMajor = "ToRowMajor"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// rowMajor exposes the row-major contents of m for read-only use by kernels.
// Implementation:
//   - Stage 1: *Dense returns its backing slice directly (no copy).
//   - Stage 2: other implementations are gathered through At in i→j order.
//
// Notes:
//   - Callers MUST NOT write into the returned slice.
//
// Complexity:
//   - Time O(1) for *Dense, O(r*c) otherwise.
func rowMajor(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.data, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}

// ToRowMajor returns a caller-owned row-major copy of any Matrix.
// It is the bridge used by the tensor package to fold/unfold matrices.
//
// Errors:
//   - ErrNilMatrix; At errors of exotic implementations.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToRowMajor(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToRowMajor, err)
	}
	src, err := rowMajor(m)
	if err != nil {
		return nil, matrixErrorf(opToRowMajor, err)
	}
	out := make([]float64, len(src))
	copy(out, src)

	return out, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies,
//     which matters for the mostly-zero super-diagonal CP core.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: gather the row-major source once, scatter into the transposed layout.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := rowMajor(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = src[base+j]
		}
	}

	return res, nil
}

// ScaleCols returns m·diag(w): column j of the result is w[j]·m[:,j].
// This is how CP weights are folded into a factor matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(w) != m.Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ScaleCols(m Matrix, w []float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	if len(w) != m.Cols() {
		return nil, matrixErrorf(opScaleCols, ErrDimensionMismatch)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	src, err := rowMajor(m)
	if err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			res.data[base+j] = src[base+j] * w[j]
		}
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ∘ b) with a fresh Dense result.
// Both inputs must be non-nil and have identical shapes.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Hadamard(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	av, err := rowMajor(a)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	bv, err := rowMajor(b)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	for idx := range res.data {
		res.data[idx] = av[idx] * bv[idx]
	}

	return res, nil
}

// KhatriRao computes the column-wise Kronecker product A ⊙ B.
// MAIN DESCRIPTION:
//   - For A (I×R) and B (J×R) the result is (I·J)×R with
//     (A ⊙ B)[i·J + j, r] = A[i,r]·B[j,r].
//
// Implementation:
//   - Stage 1: ValidateSameCols(a, b).
//   - Stage 2: gather both operands row-major; fill rows in i→j→r order.
//
// Behavior highlights:
//   - Row ordering matches the row-major mode-n unfolding of the tensor package:
//     X_(0) of a CP tensor equals A·diag(w)·(B ⊙ C)ᵀ.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (column counts differ).
//
// Complexity:
//   - Time O(I·J·R), Space O(I·J·R).
func KhatriRao(a, b Matrix) (Matrix, error) {
	if err := ValidateSameCols(a, b); err != nil {
		return nil, matrixErrorf(opKhatriRao, err)
	}
	ar, br, rank := a.Rows(), b.Rows(), a.Cols()
	res, err := NewDense(ar*br, rank)
	if err != nil {
		return nil, matrixErrorf(opKhatriRao, err)
	}
	av, err := rowMajor(a)
	if err != nil {
		return nil, matrixErrorf(opKhatriRao, err)
	}
	bv, err := rowMajor(b)
	if err != nil {
		return nil, matrixErrorf(opKhatriRao, err)
	}

	var i, j, r, dst int
	for i = 0; i < ar; i++ {
		for j = 0; j < br; j++ {
			dst = (i*br + j) * rank
			for r = 0; r < rank; r++ {
				res.data[dst+r] = av[i*rank+r] * bv[j*rank+r]
			}
		}
	}

	return res, nil
}

// Kronecker computes A ⊗ B for A (m×n) and B (p×q): a (m·p)×(n·q) matrix with
// (A ⊗ B)[i·p + k, j·q + l] = A[i,j]·B[k,l].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(m·n·p·q), Space O(m·n·p·q).
func Kronecker(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	m, n := a.Rows(), a.Cols()
	p, q := b.Rows(), b.Cols()
	res, err := NewDense(m*p, n*q)
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	av, err := rowMajor(a)
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	bv, err := rowMajor(b)
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}

	cols := n * q
	var i, j, k, l int
	var aij float64
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			aij = av[i*n+j]
			for k = 0; k < p; k++ {
				for l = 0; l < q; l++ {
					res.data[(i*p+k)*cols+j*q+l] = aij * bv[k*q+l]
				}
			}
		}
	}

	return res, nil
}
