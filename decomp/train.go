// SPDX-License-Identifier: MIT

// Package decomp - Tensor-Train (TT) representation.
//
// X[i_1,…,i_N] = G_1[i_1,:] · G_2[:,i_2,:] · … · G_N[:,i_N]
//
// Core layout: first (I_1,R_1), middle (R_{k-1},I_k,R_k), last (R_{N-1},I_N).
// The full shape is derived from the chain; an explicitly supplied shape is
// only a redundant validation input.
package decomp

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

const (
	opNewTrain         = "NewTrain"
	opTrainCoreAt      = "Train.CoreAt"
	opTrainReconstruct = "Train.Reconstruct"
)

// Train stores the chain of TT cores and the full shape derived from it.
type Train struct {
	cores []*tensor.Dense
	shape []int // derived from the chain at construction
	opts  Options
}

// NewTrain builds a Tensor-Train representation.
// MAIN DESCRIPTION:
//   - Validate core orders (2, 3, …, 3, 2), the bond chain
//     (trailing size of core k == leading size of core k+1) and, when ftShape
//     is non-nil, that the chain's full shape equals ftShape elementwise.
//
// Implementation:
//   - Stage 1: validateChain derives (I_1, …, I_N) from the cores.
//   - Stage 2: compare with ftShape when supplied.
//   - Stage 3: mode names (if any) must match the order.
//
// Errors:
//   - ErrShapeMismatch (joined with tensor.ErrNilTensor for nil cores),
//     tensor.ErrModeNames.
//
// Notes:
//   - Takes ownership of the cores (no copy). Pass ftShape == nil to rely on
//     the chain alone.
//
// Complexity:
//   - Time O(N), Space O(N).
func NewTrain(cores []*tensor.Dense, ftShape []int, opts ...Option) (*Train, error) {
	shape, err := validateChain(cores)
	if err != nil {
		return nil, decompErrorf(opNewTrain, err)
	}
	if ftShape != nil && !tensor.SameSizes(shape, ftShape) {
		return nil, decompErrorf(opNewTrain,
			fmt.Errorf("chain implies %v, got %v: %w", shape, ftShape, ErrShapeMismatch))
	}
	o := gatherOptions(opts...)
	if err = o.checkNames(len(cores)); err != nil {
		return nil, decompErrorf(opNewTrain, err)
	}

	return &Train{cores: cores, shape: shape, opts: o}, nil
}

// Kind returns KindTrain.
func (t *Train) Kind() Kind { return KindTrain }

// Order returns the number of cores (== order of the full tensor).
func (t *Train) Order() int { return len(t.cores) }

// FullShape returns (I_1, …, I_N).
func (t *Train) FullShape() []int { return append([]int(nil), t.shape...) }

// ModeNames returns the labels of the full-tensor modes.
func (t *Train) ModeNames() []string { return t.opts.modeNames(t.Order()) }

// Rank returns the TT-ranks (R_1, …, R_{N-1}), one per bond.
func (t *Train) Rank() []int {
	ranks := make([]int, len(t.cores)-1)
	for k := range ranks {
		ranks[k] = t.cores[k+1].Size(0)
	}

	return ranks
}

// NumParams returns the total number of core entries.
func (t *Train) NumParams() int {
	total := 0
	for _, c := range t.cores {
		total += c.Len()
	}

	return total
}

// Cores returns a copy of every core, in chain order.
// Complexity: O(total core size), materializes everything.
func (t *Train) Cores() []*tensor.Dense {
	out := make([]*tensor.Dense, len(t.cores))
	for k, c := range t.cores {
		out[k] = c.Clone()
	}

	return out
}

// CoreAt returns a copy of core i only; CoreAt(i) equals Cores()[i].
// Errors: ErrIndexOutOfRange when i is outside [0, Order()-1].
// Complexity: O(size of core i).
func (t *Train) CoreAt(i int) (*tensor.Dense, error) {
	if i < 0 || i >= len(t.cores) {
		return nil, decompErrorf(opTrainCoreAt, fmt.Errorf("core %d of %d: %w", i, len(t.cores), ErrIndexOutOfRange))
	}

	return t.cores[i].Clone(), nil
}

// Reconstruct contracts the chain left-to-right into the full tensor.
// MAIN DESCRIPTION:
//   - Keep an accumulator P of shape (I_1·…·I_{k-1}, R_{k-1}). The next core
//     G_k has R_{k-1} as its leading mode, so G_k ×_0 P has shape
//     (I_1·…·I_{k-1}, I_k, R_k) and its row-major buffer is exactly the
//     matrix product P·G_k. Read it back as (I_1·…·I_k, R_k) and continue.
//     The last core has no trailing bond; its product is the full tensor.
//
// Implementation:
//   - Stage 1: accumulator ← core 0 as a matrix.
//   - Stage 2: one tensor.ModeProduct on mode 0 per remaining core; each
//     eliminates one bond and honours WithWorkers / WithSequential.
//   - Stage 3: wrap the buffer as a tensor of FullShape.
//
// Errors:
//   - tensor.ErrDimensionMismatch if a retained core was edited into an
//     incompatible bond size after construction.
//
// Complexity:
//   - Time Σ_k (Π_{m<k} I_m)·R_{k-1}·I_k·R_k, Space O(Π I_n).
func (t *Train) Reconstruct() (*tensor.Dense, error) {
	first := t.cores[0]
	acc, err := coreMatrix(first.Data(), first.Size(0), first.Size(1))
	if err != nil {
		return nil, decompErrorf(opTrainReconstruct, err)
	}
	var step *tensor.Dense
	last := len(t.cores) - 1
	for k := 1; k <= last; k++ {
		if step, err = tensor.ModeProduct(t.cores[k], acc, 0, t.opts.product...); err != nil {
			return nil, decompErrorf(opTrainReconstruct, fmt.Errorf("core %d: %w", k, err))
		}
		if k == last {
			break
		}
		// (P, I_k, R_k) → (P·I_k, R_k): same row-major buffer.
		bond := step.Size(2)
		if acc, err = coreMatrix(step.Data(), step.Len()/bond, bond); err != nil {
			return nil, decompErrorf(opTrainReconstruct, err)
		}
	}

	full, err := tensor.NewDenseFrom(step.Data(), t.shape, t.opts.tensorOptions()...)
	if err != nil {
		return nil, decompErrorf(opTrainReconstruct, err)
	}

	return full, nil
}

// Clone returns a deep copy with the concrete type.
func (t *Train) Clone() *Train {
	cores := make([]*tensor.Dense, len(t.cores))
	for k, c := range t.cores {
		cores[k] = c.Clone()
	}

	return &Train{cores: cores, shape: append([]int(nil), t.shape...), opts: t.opts.clone()}
}

// Copy returns a deep, fully independent duplicate.
func (t *Train) Copy() Representation { return t.Clone() }

// coreMatrix wraps a row-major buffer as a rows×cols matrix (copied).
func coreMatrix(data []float64, rows, cols int) (*matrix.Dense, error) {
	return matrix.NewDenseFrom(rows, cols, data, matrix.WithNoValidateNaNInf())
}
