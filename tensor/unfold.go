// SPDX-License-Identifier: MIT

// Package tensor - mode-n unfolding (matricization) and its inverse.
//
// Layout:
//   - The buffer of a row-major tensor splits around mode n as
//     [outer][i_n][inner] with outer = Π_{k<n} I_k and inner = Π_{k>n} I_k.
//   - Unfold(n)[i_n, o*inner + r] = data[(o*I_n + i_n)*inner + r].
//   - Mode 0 unfolding is a pure reinterpretation of the buffer.
package tensor

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/matrix"
)

const (
	ctxUnfold = "Unfold"
	ctxFold   = "Fold"
)

// Unfold returns the mode-n unfolding of t as an I_n × (len/I_n) matrix.
// MAIN DESCRIPTION:
//   - Materialize T_(n): row i holds every element whose mode-n index is i,
//     remaining modes enumerated in increasing mode order, row-major.
//
// Implementation:
//   - Stage 1: ValidateMode.
//   - Stage 2: walk outer blocks, copy each contiguous inner run into its column window.
//
// Errors:
//   - ErrOutOfRange (bad mode).
//
// Complexity:
//   - Time O(len), Space O(len).
func (t *Dense) Unfold(mode int) (*matrix.Dense, error) {
	if err := ValidateMode(t, mode); err != nil {
		return nil, tensorErrorf(ctxUnfold, err)
	}
	in := t.sizes[mode]
	outer, inner := splitAt(t.sizes, mode)
	cols := outer * inner
	buf := make([]float64, len(t.data))

	var o, i, src, dst int
	for o = 0; o < outer; o++ {
		for i = 0; i < in; i++ {
			src = (o*in + i) * inner
			dst = i*cols + o*inner
			copy(buf[dst:dst+inner], t.data[src:src+inner])
		}
	}

	u, err := matrix.NewDenseFrom(in, cols, buf, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, tensorErrorf(ctxUnfold, err)
	}

	return u, nil
}

// Fold is the inverse of Unfold: it rebuilds a tensor of the given sizes from
// its mode-n unfolding m.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrInvalidDimensions, ErrOutOfRange (bad mode),
//     ErrDimensionMismatch (m is not I_n × Π others), ErrModeNames.
//
// Complexity:
//   - Time O(len), Space O(len).
func Fold(m matrix.Matrix, mode int, sizes []int, opts ...Option) (*Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, tensorErrorf(ctxFold, err)
	}
	t, err := NewDense(sizes, opts...)
	if err != nil {
		return nil, tensorErrorf(ctxFold, err)
	}
	if err = ValidateMode(t, mode); err != nil {
		return nil, tensorErrorf(ctxFold, err)
	}
	in := t.sizes[mode]
	outer, inner := splitAt(t.sizes, mode)
	cols := outer * inner
	if m.Rows() != in || m.Cols() != cols {
		return nil, tensorErrorf(ctxFold, fmt.Errorf("matrix %dx%d, want %dx%d: %w", m.Rows(), m.Cols(), in, cols, ErrDimensionMismatch))
	}
	src, err := matrix.ToRowMajor(m)
	if err != nil {
		return nil, tensorErrorf(ctxFold, err)
	}

	var o, i, from, to int
	for o = 0; o < outer; o++ {
		for i = 0; i < in; i++ {
			from = i*cols + o*inner
			to = (o*in + i) * inner
			copy(t.data[to:to+inner], src[from:from+inner])
		}
	}

	return t, nil
}
