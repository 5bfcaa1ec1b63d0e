// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics used when rescaling factor matrices: per-column L2
//     norms and L2 column normalization.
//
// Exposed API:
//   - ColumnNorms(X)       -> norms      // ‖X[:,j]‖₂ for every column
//   - NormalizeColumns(X)  -> (Y, norms) // Y[:,j] = X[:,j]/‖X[:,j]‖₂ (zero columns unchanged)
//
// Determinism & Performance:
//   - Fixed i→j traversal; Dense fast path reads the flat buffer directly.

package matrix

import "math"

const (
	opColumnNorms      = "ColumnNorms"
	opNormalizeColumns = "NormalizeColumns"
)

// ColumnNorms returns the Euclidean norm of every column of X.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: accumulate squares row by row into one slot per column.
//   - Stage 3: take square roots.
//
// Errors:
//   - ErrNilMatrix; At errors of exotic implementations.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnNorms(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnNorms, err)
	}
	src, err := rowMajor(X)
	if err != nil {
		return nil, matrixErrorf(opColumnNorms, err)
	}
	r, c := X.Rows(), X.Cols()
	norms := make([]float64, c)
	var i, j, base int
	var v float64
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			v = src[base+j]
			norms[j] += v * v
		}
	}
	for j = range norms {
		norms[j] = math.Sqrt(norms[j])
	}

	return norms, nil
}

// NormalizeColumns scales every column of X to unit L2 norm.
// Implementation:
//   - Stage 1: ColumnNorms(X).
//   - Stage 2: divide each entry by its column norm; degenerate (all-zero)
//     columns are copied unchanged.
//
// Returns:
//   - Matrix: normalized copy (r×c).
//   - []float64: the original column norms, so X = Y·diag(norms).
//
// Notes:
//   - Each entry is one correctly rounded division X[i,j]/‖X[:,j]‖.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Pair with the returned norms to move column scale into CP weights.
func NormalizeColumns(X Matrix) (Matrix, []float64, error) {
	norms, err := ColumnNorms(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumns, err)
	}
	src, err := rowMajor(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumns, err)
	}
	r, c := X.Rows(), X.Cols()
	Y, err := NewDense(r, c)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumns, err)
	}
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			if norms[j] > 0 {
				Y.data[base+j] = src[base+j] / norms[j]
			} else {
				Y.data[base+j] = src[base+j]
			}
		}
	}

	return Y, norms, nil
}
