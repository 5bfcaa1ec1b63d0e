// SPDX-License-Identifier: MIT

// Package tensor - elementwise operations and outer products.
//
// All operations allocate a fresh result and never mutate their inputs.
// Result mode names are taken from the left operand.
package tensor

import "math"

const (
	opAdd      = "Add"
	opSub      = "Sub"
	opScale    = "Scale"
	opAllClose = "AllClose"
	opOuter    = "OuterProduct"
)

// addSub computes out = a + sign*b for identically shaped tensors.
func addSub(a, b *Dense, sign float64, tag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, tensorErrorf(tag, err)
	}
	out := newLike(a, a.sizes, a.names)
	for off := range out.data {
		out.data[off] = a.data[off] + sign*b.data[off]
	}

	return out, nil
}

// Add returns the elementwise sum a + b.
// Errors: ErrNilTensor, ErrDimensionMismatch.
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns the elementwise difference a - b.
// Errors: ErrNilTensor, ErrDimensionMismatch.
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha·t.
// Errors: ErrNilTensor.
func Scale(t *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, tensorErrorf(opScale, err)
	}
	out := newLike(t, t.sizes, t.names)
	for off, v := range t.data {
		out.data[off] = alpha * v
	}

	return out, nil
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds elementwise.
// Errors: ErrNilTensor, ErrDimensionMismatch, ErrNaNInf (tolerances).
// Complexity: O(len), early exit on the first violation.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, tensorErrorf(opAllClose, ErrNaNInf)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, tensorErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for off := range a.data {
		if math.Abs(a.data[off]-b.data[off]) > atol+rtol*math.Abs(b.data[off]) {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports exact equality of sizes and elements (names are ignored).
// Nil tensors are equal only to nil.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !SameSizes(a.sizes, b.sizes) {
		return false
	}
	for off := range a.data {
		if a.data[off] != b.data[off] {
			return false
		}
	}

	return true
}

// OuterProduct returns the rank-one tensor v_0 ∘ v_1 ∘ … ∘ v_{N-1} of order N.
// Element (i_0, …, i_{N-1}) equals Π_k v_k[i_k].
//
// Errors:
//   - ErrInvalidDimensions (no vectors or an empty vector), ErrModeNames.
//
// Complexity:
//   - Time O(Π len(v_k)), Space O(Π len(v_k)).
func OuterProduct(vectors [][]float64, opts ...Option) (*Dense, error) {
	sizes := make([]int, len(vectors))
	for k, v := range vectors {
		sizes[k] = len(v)
	}
	out, err := NewDense(sizes, opts...)
	if err != nil {
		return nil, tensorErrorf(opOuter, err)
	}

	// Grow the product one mode at a time: after step k the first Π_{m≤k} I_m
	// entries hold the order-(k+1) outer product, row-major.
	out.data[0] = 1
	n := 1
	for _, v := range vectors {
		for p := n - 1; p >= 0; p-- {
			base := out.data[p]
			for i := len(v) - 1; i >= 0; i-- {
				out.data[p*len(v)+i] = base * v[i]
			}
		}
		n *= len(v)
	}

	return out, nil
}
