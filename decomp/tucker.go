// SPDX-License-Identifier: MIT

// Package decomp - Tucker representation.
//
// X = G ×_0 A_0 ×_1 A_1 … ×_{N-1} A_{N-1}, G dense of shape (R_0,…,R_{N-1}).
// The single semantic difference from CP is the dense (not diagonal) core.
package decomp

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

const (
	opNewTucker         = "NewTucker"
	opTuckerCore        = "Tucker.Core"
	opTuckerReconstruct = "Tucker.Reconstruct"
	opTuckerFactor      = "Tucker.Factor"
)

// Tucker stores factor matrices A_n (I_n×R_n) and the dense core G.
type Tucker struct {
	factors []matrix.Matrix
	core    *tensor.Dense
	opts    Options
}

// NewTucker builds a Tucker representation.
// MAIN DESCRIPTION:
//   - Validate len(factors) == core.Order() and factors[n].Cols() == core.Size(n).
//
// Errors:
//   - ErrShapeMismatch (joined with tensor.ErrNilTensor / matrix.ErrNilMatrix
//     for nil inputs), tensor.ErrModeNames.
//
// Notes:
//   - Takes ownership of factors and core (no copy).
//
// Complexity:
//   - Time O(N), Space O(1).
func NewTucker(factors []matrix.Matrix, core *tensor.Dense, opts ...Option) (*Tucker, error) {
	if err := tensor.ValidateNotNil(core); err != nil {
		return nil, decompErrorf(opNewTucker, fmt.Errorf("core: %w: %w", ErrShapeMismatch, err))
	}
	if len(factors) != core.Order() {
		return nil, decompErrorf(opNewTucker,
			fmt.Errorf("%d factors for core of order %d: %w", len(factors), core.Order(), ErrShapeMismatch))
	}
	if err := validateFactors(factors, core.Size); err != nil {
		return nil, decompErrorf(opNewTucker, err)
	}
	o := gatherOptions(opts...)
	if err := o.checkNames(len(factors)); err != nil {
		return nil, decompErrorf(opNewTucker, err)
	}

	return &Tucker{factors: factors, core: core, opts: o}, nil
}

// Kind returns KindTucker.
func (t *Tucker) Kind() Kind { return KindTucker }

// Order returns the number of modes.
func (t *Tucker) Order() int { return len(t.factors) }

// Rank returns the multilinear rank (R_0, …, R_{N-1}) = core sizes.
func (t *Tucker) Rank() []int { return t.core.Sizes() }

// FullShape returns (rows(A_0), …, rows(A_{N-1})).
func (t *Tucker) FullShape() []int { return factorRows(t.factors) }

// ModeNames returns the labels of the full-tensor modes.
func (t *Tucker) ModeNames() []string { return t.opts.modeNames(t.Order()) }

// Factor returns a copy of factor matrix n.
// Errors: ErrIndexOutOfRange.
func (t *Tucker) Factor(n int) (matrix.Matrix, error) {
	f, err := factorAt(t.factors, n)
	if err != nil {
		return nil, decompErrorf(opTuckerFactor, err)
	}

	return f, nil
}

// NumParams returns Σ_n I_n·R_n + Π_n R_n.
func (t *Tucker) NumParams() int { return factorParams(t.factors) + t.core.Len() }

// Core returns the core values as a tensor, without any transformation.
// The result is a caller-owned copy labelled with the representation's mode
// names.
// Complexity: O(Π R_n).
func (t *Tucker) Core() (*tensor.Dense, error) {
	core, err := tensor.NewDenseFrom(t.core.Data(), t.core.Sizes(), t.opts.tensorOptions()...)
	if err != nil {
		return nil, decompErrorf(opTuckerCore, err)
	}

	return core, nil
}

// Reconstruct expands the representation into the full tensor via the same
// mode-n product sweep as CP, starting from the dense core.
// Errors: tensor.ErrDimensionMismatch if a retained factor was swapped for an
// incompatible one after construction.
func (t *Tucker) Reconstruct() (*tensor.Dense, error) {
	core, err := t.Core()
	if err != nil {
		return nil, decompErrorf(opTuckerReconstruct, err)
	}
	full, err := tensor.MultiModeProduct(core, t.factors, t.opts.product...)
	if err != nil {
		return nil, decompErrorf(opTuckerReconstruct, err)
	}

	return full, nil
}

// Clone returns a deep copy with the concrete type.
func (t *Tucker) Clone() *Tucker {
	return &Tucker{
		factors: cloneFactors(t.factors),
		core:    t.core.Clone(),
		opts:    t.opts.clone(),
	}
}

// Copy returns a deep, fully independent duplicate.
func (t *Tucker) Copy() Representation { return t.Clone() }
