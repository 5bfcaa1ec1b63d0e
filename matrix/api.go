// SPDX-License-Identifier: MIT

// Package matrix: public facade.
// Thin, documented entry points over the impl_* kernels. Keep the logic in
// the kernels; this file only names things for callers.
package matrix

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewSequence returns an r×c matrix filled row-major with start, start+1, ...
// It mirrors `arange(start, start+r*c).reshape(r, c)` and is handy for
// deterministic fixtures.
func NewSequence(rows, cols int, start float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.data {
		m.data[idx] = start + float64(idx)
	}

	return m, nil
}

// CloneMatrix returns a deep copy of m, or nil when m is nil.
func CloneMatrix(m Matrix) Matrix {
	if ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds elementwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (tolerances).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }

// FrobeniusNorm returns sqrt(Σ m[i,j]²).
func FrobeniusNorm(m Matrix) (float64, error) { return ewFrobenius(m) }
