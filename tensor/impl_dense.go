// SPDX-License-Identifier: MIT

// Package tensor - Dense N-way storage (row-major) & safe accessors.
//
// Purpose:
//   - Flat row-major buffer with precomputed strides: offset = Σ idx[k]*stride[k].
//   - Safe public surface: At/Set return errors instead of panicking.
//   - One label per mode (ModeNames) carried through mode-n products.
//   - Numeric policy (optional NaN/Inf rejection) mirrored from the matrix package.
//
// AI-Hints:
//   - Treat a Dense returned by a decomposition as immutable; Clone before editing.
//   - Internal kernels (modeproduct.go, unfold.go) index the flat buffer directly.
//
// Complexity quicksheet:
//   - NewDense: O(len) zero-init; At/Set: O(order); Clone/Data/Norm: O(len).

package tensor

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew     = "NewDense"
	ctxFrom    = "NewDenseFrom"
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxApply   = "Apply"
	ctxReshape = "Reshape"
	ctxNames   = "WithModeNames"
)

// tensorErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps err with the method name and the offending multi-index.
func indexErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Dense.%s(%v): %w", method, idx, err)
}

// Dense is a concrete row-major N-way array of float64 values.
//   - sizes[k] is the size of mode k; strides are derived from sizes.
//   - data holds Π sizes elements, last mode fastest.
//   - names[k] labels mode k ("mode-k" by default).
type Dense struct {
	sizes          []int
	strides        []int
	data           []float64
	names          []string
	validateNaNInf bool
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates a zero tensor with the given mode sizes.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate sizes (non-empty, all > 0).
//   - Stage 2: resolve options (mode names, numeric policy).
//   - Stage 3: allocate zero-filled buffer and strides.
//
// Errors:
//   - ErrInvalidDimensions, ErrModeNames.
//
// Complexity:
//   - Time O(Π sizes), Space O(Π sizes).
func NewDense(sizes []int, opts ...Option) (*Dense, error) {
	if err := validateSizes(sizes); err != nil {
		return nil, tensorErrorf(ctxNew, err)
	}
	o := gatherOptions(opts...)
	names, err := o.resolveNames(len(sizes))
	if err != nil {
		return nil, tensorErrorf(ctxNames, err)
	}

	return &Dense{
		sizes:          cloneInts(sizes),
		strides:        rowMajorStrides(sizes),
		data:           make([]float64, numElements(sizes)),
		names:          names,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom builds a tensor from a row-major buffer (copied).
// MAIN DESCRIPTION:
//   - Ingestion entry point; the caller keeps ownership of data.
//
// Implementation:
//   - Stage 1: validate sizes and len(data) == Π sizes.
//   - Stage 2: enforce the numeric policy when enabled.
//   - Stage 3: copy into a fresh buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape, ErrNaNInf, ErrModeNames.
//
// Complexity:
//   - Time O(Π sizes), Space O(Π sizes).
//
// AI-Hints:
//   - numpy `arange(24).reshape(2, 3, 4)` is NewSequence([]int{2,3,4}, 0).
func NewDenseFrom(data []float64, sizes []int, opts ...Option) (*Dense, error) {
	t, err := NewDense(sizes, opts...)
	if err != nil {
		return nil, tensorErrorf(ctxFrom, err)
	}
	if len(data) != len(t.data) {
		return nil, tensorErrorf(ctxFrom, fmt.Errorf("len %d for sizes %v: %w", len(data), sizes, ErrBadShape))
	}
	if t.validateNaNInf {
		for off, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				idx := make([]int, len(sizes))
				indexFrom1D(t.sizes, off, idx)
				return nil, indexErrorf(ctxFrom, idx, ErrNaNInf)
			}
		}
	}
	copy(t.data, data)

	return t, nil
}

// NewSequence returns a tensor filled row-major with start, start+1, ...
// It mirrors `arange(start, start+n).reshape(sizes)`.
func NewSequence(sizes []int, start float64, opts ...Option) (*Dense, error) {
	t, err := NewDense(sizes, opts...)
	if err != nil {
		return nil, err
	}
	for off := range t.data {
		t.data[off] = start + float64(off)
	}

	return t, nil
}

// newLike allocates a zero tensor of the given sizes that inherits the
// numeric policy of t. Names are supplied by the caller (already validated).
func newLike(t *Dense, sizes []int, names []string) *Dense {
	return &Dense{
		sizes:          cloneInts(sizes),
		strides:        rowMajorStrides(sizes),
		data:           make([]float64, numElements(sizes)),
		names:          append([]string(nil), names...),
		validateNaNInf: t.validateNaNInf,
	}
}

// Order returns the number of modes.
func (t *Dense) Order() int { return len(t.sizes) }

// Sizes returns a copy of the mode sizes.
func (t *Dense) Sizes() []int { return cloneInts(t.sizes) }

// Size returns the size of one mode, or 0 when mode is out of range.
func (t *Dense) Size(mode int) int {
	if mode < 0 || mode >= len(t.sizes) {
		return 0
	}

	return t.sizes[mode]
}

// Len returns the total number of elements (Π sizes).
func (t *Dense) Len() int { return len(t.data) }

// ModeNames returns a copy of the mode labels.
func (t *Dense) ModeNames() []string { return append([]string(nil), t.names...) }

// ModeName returns the label of one mode, or "" when mode is out of range.
func (t *Dense) ModeName(mode int) string {
	if mode < 0 || mode >= len(t.names) {
		return ""
	}

	return t.names[mode]
}

// offsetOf validates a multi-index and returns its flat offset.
// Errors: ErrDimensionMismatch (arity), ErrOutOfRange (bounds).
// Complexity: O(order).
func (t *Dense) offsetOf(idx []int) (int, error) {
	if len(idx) != len(t.sizes) {
		return 0, ErrDimensionMismatch
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= t.sizes[k] {
			return 0, ErrOutOfRange
		}
		off += i * t.strides[k]
	}

	return off, nil
}

// At returns the element at the multi-index idx.
// Never panics on invalid indices.
//
// Errors:
//   - ErrDimensionMismatch when len(idx) != Order(); ErrOutOfRange on bounds.
//
// Complexity:
//   - Time O(order), Space O(1).
func (t *Dense) At(idx ...int) (float64, error) {
	off, err := t.offsetOf(idx)
	if err != nil {
		return 0, indexErrorf(ctxAt, idx, err)
	}

	return t.data[off], nil
}

// Set stores v at the multi-index idx.
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Errors:
//   - ErrDimensionMismatch, ErrOutOfRange, ErrNaNInf (policy).
//
// Complexity:
//   - Time O(order), Space O(1).
func (t *Dense) Set(idx []int, v float64) error {
	off, err := t.offsetOf(idx)
	if err != nil {
		return indexErrorf(ctxSet, idx, err)
	}
	if t.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return indexErrorf(ctxSet, idx, ErrNaNInf)
	}
	t.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same sizes, names and policy).
// Complexity: O(len).
func (t *Dense) Clone() *Dense {
	cp := newLike(t, t.sizes, t.names)
	copy(cp.data, t.data)

	return cp
}

// Data returns a caller-owned row-major copy of the elements.
// Complexity: O(len).
func (t *Dense) Data() []float64 {
	out := make([]float64, len(t.data))
	copy(out, t.data)

	return out
}

// Norm returns the Frobenius norm sqrt(Σ x²).
// Complexity: O(len), no allocations.
func (t *Dense) Norm() float64 {
	var sum float64
	for _, v := range t.data {
		sum += v * v
	}

	return math.Sqrt(sum)
}

// Reshape returns a copy of t with new mode sizes and default mode names.
// Errors: ErrInvalidDimensions, ErrBadShape (element count differs).
// Complexity: O(len).
func (t *Dense) Reshape(sizes ...int) (*Dense, error) {
	if err := validateSizes(sizes); err != nil {
		return nil, tensorErrorf(ctxReshape, err)
	}
	if numElements(sizes) != len(t.data) {
		return nil, tensorErrorf(ctxReshape, fmt.Errorf("%v -> %v: %w", t.sizes, sizes, ErrBadShape))
	}
	out := newLike(t, sizes, defaultModeNames(len(sizes)))
	copy(out.data, t.data)

	return out, nil
}

// WithNames returns a copy of t relabelled with names.
// Errors: ErrModeNames when len(names) != Order().
func (t *Dense) WithNames(names ...string) (*Dense, error) {
	if len(names) != len(t.sizes) {
		return nil, tensorErrorf(ctxNames, fmt.Errorf("got %d names for order %d: %w", len(names), len(t.sizes), ErrModeNames))
	}
	out := t.Clone()
	copy(out.names, names)

	return out, nil
}

// Do visits every element in row-major order and calls f(idx, v).
// The idx slice is reused between calls; copy it to retain it.
// Stops early when f returns false.
// Complexity: O(len · order).
func (t *Dense) Do(f func(idx []int, v float64) bool) {
	idx := make([]int, len(t.sizes))
	for off, v := range t.data {
		indexFrom1D(t.sizes, off, idx)
		if !f(idx, v) {
			return
		}
	}
}

// Apply replaces each element with f(idx, v) in-place.
// Behavior highlights:
//   - Respects the numeric policy; the first violation aborts with ErrNaNInf,
//     elements written before it remain updated.
//
// Complexity:
//   - Time O(len · order).
func (t *Dense) Apply(f func(idx []int, v float64) float64) error {
	idx := make([]int, len(t.sizes))
	var nv float64
	for off, v := range t.data {
		indexFrom1D(t.sizes, off, idx)
		nv = f(idx, v)
		if t.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
			return indexErrorf(ctxApply, idx, ErrNaNInf)
		}
		t.data[off] = nv
	}

	return nil
}

// Describe returns a human-readable summary: order, element count, Frobenius
// norm, mode sizes and mode names.
func (t *Dense) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "This tensor is of order %d and consists of %d elements.\n", t.Order(), t.Len())
	fmt.Fprintf(&b, "Sizes and names of its modes are %v and %v respectively.\n", t.sizes, t.names)
	fmt.Fprintf(&b, "Frobenius norm: %g", t.Norm())

	return b.String()
}

// String renders a compact one-line header; values are omitted for large tensors.
func (t *Dense) String() string {
	if len(t.data) <= 16 {
		return fmt.Sprintf("Dense%v%v", t.sizes, t.data)
	}

	return fmt.Sprintf("Dense%v[%d elements]", t.sizes, len(t.data))
}
