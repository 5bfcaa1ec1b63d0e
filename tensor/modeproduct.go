// SPDX-License-Identifier: MIT

// Package tensor - mode-n product kernel.
//
// Purpose:
//   - Contract a tensor with a matrix along one mode:
//     T'[o, j, r] = Σ_i M[j, i] · T[o, i, r]
//     where o enumerates the modes before n and r the modes after n.
//   - Provide the in-order sweep (MultiModeProduct) shared by CP and Tucker.
//
// Determinism:
//   - Each output fibre (o, j) is written by exactly one worker with a fixed
//     i→r summation order, so parallel and sequential runs agree bitwise.
//
// Complexity:
//   - Time O(outer · J · I_n · inner) = O(len(T) · J), Space O(len(T') ).
package tensor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtensor/internal/parallel"
	"github.com/katalvlaran/lvtensor/matrix"
)

const (
	opModeProduct      = "ModeProduct"
	opMultiModeProduct = "MultiModeProduct"
)

// ModeProduct returns T ×_n M: mode n of t (size I_n) is replaced by M.Rows().
// MAIN DESCRIPTION:
//   - Equivalent to Fold(M · Unfold(T, n)) without materializing the unfolding.
//   - All other mode sizes, their order and all mode names are preserved.
//
// Implementation:
//   - Stage 1: ValidateModeProduct (nil checks, mode range, M.Cols == I_n).
//   - Stage 2: gather M row-major once; allocate the result.
//   - Stage 3: run the fibre kernel over outer·J fibres, optionally in parallel.
//
// Inputs:
//   - t: tensor of order N.
//   - m: J×I_n matrix.
//   - mode: 0 <= mode < N.
//   - opts: WithWorkers / WithMinChunk / WithSequential control the kernel.
//
// Errors:
//   - ErrNilTensor, matrix.ErrNilMatrix, ErrOutOfRange, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(len(t) · J), Space O(len(t) · J / I_n).
//
// Notes:
//   - Zero entries of M are skipped only when every entry of t is finite, so
//     0·Inf and 0·NaN terms still reach the sum for tensors built with
//     WithNoValidateNaNInf. The result always equals Fold(M · Unfold(T, n)).
//
// AI-Hints:
//   - Sparse-ish factors are cheap on finite tensors.
func ModeProduct(t *Dense, m matrix.Matrix, mode int, opts ...Option) (*Dense, error) {
	if err := ValidateModeProduct(t, m, mode); err != nil {
		return nil, tensorErrorf(opModeProduct, err)
	}
	mv, err := matrix.ToRowMajor(m)
	if err != nil {
		return nil, tensorErrorf(opModeProduct, err)
	}
	o := gatherOptions(opts...)

	sizes := cloneInts(t.sizes)
	sizes[mode] = m.Rows()
	out := newLike(t, sizes, t.names)
	modeProductKernel(out.data, t.data, mv, t.sizes, mode, m.Rows(), allFinite(t.data), o.par)

	return out, nil
}

// modeProductKernel writes dst = src ×_mode M for a row-major src.
// dst must be zeroed and sized outer·rows·inner. skipZeros is only sound
// when src holds no NaN or Inf.
func modeProductKernel(dst, src, mv []float64, sizes []int, mode, rows int, skipZeros bool, cfg parallel.Config) {
	in := sizes[mode]
	outer, inner := splitAt(sizes, mode)

	parallel.ForRange(outer*rows, func(start, end int) {
		var p, o, j, i, r, dBase, sBase int
		var mji float64
		for p = start; p < end; p++ {
			o, j = p/rows, p%rows
			dBase = p * inner // (o*rows + j) * inner
			for i = 0; i < in; i++ {
				mji = mv[j*in+i]
				if mji == 0 && skipZeros {
					continue
				}
				sBase = (o*in + i) * inner
				for r = 0; r < inner; r++ {
					dst[dBase+r] += mji * src[sBase+r]
				}
			}
		}
	}, cfg)
}

// allFinite reports whether data holds no NaN or Inf.
func allFinite(data []float64) bool {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// MultiModeProduct returns T ×_0 M_0 ×_1 M_1 … ×_{N-1} M_{N-1}.
// MAIN DESCRIPTION:
//   - Applies exactly one matrix per mode, in mode order 0..N-1. Contractions
//     along distinct modes commute, so the order only affects cost.
//
// Errors:
//   - ErrNilTensor, ErrDimensionMismatch (len(mats) != Order() or a column
//     count differs from the current mode size), matrix.ErrNilMatrix.
//
// Complexity:
//   - Σ_n cost of each ModeProduct.
func MultiModeProduct(t *Dense, mats []matrix.Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, tensorErrorf(opMultiModeProduct, err)
	}
	if len(mats) != t.Order() {
		return nil, tensorErrorf(opMultiModeProduct,
			fmt.Errorf("%d matrices for order %d: %w", len(mats), t.Order(), ErrDimensionMismatch))
	}

	cur := t
	var err error
	for n, m := range mats {
		if cur, err = ModeProduct(cur, m, n, opts...); err != nil {
			return nil, tensorErrorf(fmt.Sprintf("%s[%d]", opMultiModeProduct, n), err)
		}
	}

	return cur, nil
}
