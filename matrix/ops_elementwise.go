// SPDX-License-Identifier: MIT
// Package matrix: elementwise comparisons and reductions.
//
// Purpose:
//   - Tolerance-based comparison of two matrices (AllClose).
//   - Frobenius norm of any Matrix.
//
// Determinism:
//   - Fixed flat 0..n-1 traversal over row-major data.

package matrix

import (
	"math"
)

const (
	opAllClose = "AllClose"
	opNorm     = "FrobeniusNorm"
)

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances yield ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense operands.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	av, err := rowMajor(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	bv, err := rowMajor(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range av {
		if math.Abs(av[idx]-bv[idx]) > atol+rtol*math.Abs(bv[idx]) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// ewFrobenius returns sqrt(Σ m[i,j]²).
// Complexity: O(r*c).
func ewFrobenius(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	src, err := rowMajor(m)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	var sum float64
	for _, v := range src {
		sum += v * v
	}

	return math.Sqrt(sum), nil
}
