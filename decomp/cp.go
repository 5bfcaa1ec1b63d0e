// SPDX-License-Identifier: MIT

// Package decomp - Canonical Polyadic (CP) representation.
//
// The full tensor is
//
//	X = Σ_r w_r · a_r^(0) ∘ a_r^(1) ∘ … ∘ a_r^(N-1)
//	  = D ×_0 A_0 ×_1 A_1 … ×_{N-1} A_{N-1},  D = superdiag(w) of shape (R,…,R).
package decomp

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

const (
	opNewCP         = "NewCP"
	opCPCore        = "CP.Core"
	opCPReconstruct = "CP.Reconstruct"
	opCPFactor      = "CP.Factor"
	opCPNormalize   = "CP.Normalize"
)

// CP stores factor matrices A_n (I_n×R) and weights w (length R).
type CP struct {
	factors []matrix.Matrix
	weights []float64
	opts    Options
}

// NewCP builds a CP representation.
// MAIN DESCRIPTION:
//   - Validate that every factor is non-nil and has exactly R = len(weights) columns.
//
// Implementation:
//   - Stage 1: R >= 1 and at least one factor.
//   - Stage 2: per-factor column check (single source: validateFactors).
//   - Stage 3: mode names (if any) must match the order.
//
// Errors:
//   - ErrShapeMismatch (joined with matrix.ErrNilMatrix for nil factors),
//     tensor.ErrModeNames.
//
// Notes:
//   - Takes ownership of factors and weights (no copy); use Copy for an
//     independent instance.
//
// Complexity:
//   - Time O(N), Space O(1).
func NewCP(factors []matrix.Matrix, weights []float64, opts ...Option) (*CP, error) {
	if len(weights) == 0 {
		return nil, decompErrorf(opNewCP, fmt.Errorf("rank 0: %w", ErrShapeMismatch))
	}
	rank := len(weights)
	if err := validateFactors(factors, func(int) int { return rank }); err != nil {
		return nil, decompErrorf(opNewCP, err)
	}
	o := gatherOptions(opts...)
	if err := o.checkNames(len(factors)); err != nil {
		return nil, decompErrorf(opNewCP, err)
	}

	return &CP{factors: factors, weights: weights, opts: o}, nil
}

// Kind returns KindCP.
func (c *CP) Kind() Kind { return KindCP }

// Order returns the number of factor matrices (modes of the full tensor).
func (c *CP) Order() int { return len(c.factors) }

// Rank returns R, the number of rank-one terms.
func (c *CP) Rank() int { return len(c.weights) }

// FullShape returns (rows(A_0), …, rows(A_{N-1})).
func (c *CP) FullShape() []int { return factorRows(c.factors) }

// ModeNames returns the labels of the full-tensor modes.
func (c *CP) ModeNames() []string { return c.opts.modeNames(c.Order()) }

// Weights returns a copy of the diagonal values.
func (c *CP) Weights() []float64 { return append([]float64(nil), c.weights...) }

// Factor returns a copy of factor matrix n.
// Errors: ErrIndexOutOfRange.
func (c *CP) Factor(n int) (matrix.Matrix, error) {
	f, err := factorAt(c.factors, n)
	if err != nil {
		return nil, decompErrorf(opCPFactor, err)
	}

	return f, nil
}

// NumParams returns Σ_n I_n·R + R.
func (c *CP) NumParams() int { return factorParams(c.factors) + len(c.weights) }

// Core builds the super-diagonal core tensor.
// MAIN DESCRIPTION:
//   - Order-N tensor of shape (R,…,R), zero everywhere except core[r,…,r] = w[r].
//
// Implementation:
//   - Stage 1: allocate the zero buffer.
//   - Stage 2: the flat offset of (r,…,r) is r·Σ_k R^k; write w[r] there.
//   - Stage 3: wrap with the representation mode names and numeric policy.
//
// Errors:
//   - tensor.ErrNaNInf when a weight is not finite.
//
// Complexity:
//   - Time O(R^N), Space O(R^N). Recomputed on every call.
func (c *CP) Core() (*tensor.Dense, error) {
	n, rank := c.Order(), c.Rank()
	sizes := make([]int, n)
	total, step := 1, 0
	for k := range sizes {
		sizes[k] = rank
		step += total // Σ_k R^k: flat distance between consecutive diagonal cells
		total *= rank
	}
	data := make([]float64, total)
	for r, w := range c.weights {
		data[r*step] = w
	}
	core, err := tensor.NewDenseFrom(data, sizes, c.opts.tensorOptions()...)
	if err != nil {
		return nil, decompErrorf(opCPCore, err)
	}

	return core, nil
}

// Reconstruct expands the representation into the full tensor.
// MAIN DESCRIPTION:
//   - Core() ×_0 A_0 ×_1 A_1 … ×_{N-1} A_{N-1}, one mode-n product per mode.
//
// Errors:
//   - Core errors; tensor.ErrDimensionMismatch if an entry of the retained
//     factor slice was swapped for an incompatible matrix after construction.
//
// Complexity:
//   - Dominated by the first products on the R^N core.
func (c *CP) Reconstruct() (*tensor.Dense, error) {
	core, err := c.Core()
	if err != nil {
		return nil, decompErrorf(opCPReconstruct, err)
	}
	full, err := tensor.MultiModeProduct(core, c.factors, c.opts.product...)
	if err != nil {
		return nil, decompErrorf(opCPReconstruct, err)
	}

	return full, nil
}

// Normalize returns an equivalent CP whose factor columns have unit L2 norm,
// with the column norms absorbed into the weights:
// w'_r = w_r · Π_n ‖A_n[:,r]‖. All-zero columns are left as they are.
// The receiver is not modified; Reconstruct of both agrees up to rounding.
// Errors: Factor errors from exotic Matrix implementations.
// Complexity: O(Σ_n I_n·R).
func (c *CP) Normalize() (*CP, error) {
	weights := append([]float64(nil), c.weights...)
	factors := make([]matrix.Matrix, len(c.factors))
	for n, f := range c.factors {
		unit, norms, err := matrix.NormalizeColumns(f)
		if err != nil {
			return nil, decompErrorf(opCPNormalize, fmt.Errorf("factor %d: %w", n, err))
		}
		for r, nr := range norms {
			if nr > 0 {
				weights[r] *= nr
			}
		}
		factors[n] = unit
	}

	return &CP{factors: factors, weights: weights, opts: c.opts.clone()}, nil
}

// Clone returns a deep copy with the concrete type.
func (c *CP) Clone() *CP {
	return &CP{
		factors: cloneFactors(c.factors),
		weights: append([]float64(nil), c.weights...),
		opts:    c.opts.clone(),
	}
}

// Copy returns a deep, fully independent duplicate.
func (c *CP) Copy() Representation { return c.Clone() }
