// SPDX-License-Identifier: MIT
// Package tensor_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures (sequences, hand-made matrices).
//   • A naive reference mode-n product used to cross-check the kernel.

package tensor_test

import (
	"testing"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

// hide wraps a Matrix to mask its concrete type and force generic paths.
type hide struct{ matrix.Matrix }

// MustSequence allocates arange(start, start+n).reshape(sizes) or fails the test.
func MustSequence(t *testing.T, sizes []int, start float64) *tensor.Dense {
	t.Helper()
	x, err := tensor.NewSequence(sizes, start)
	if err != nil {
		t.Fatalf("NewSequence(%v): %v", sizes, err)
	}

	return x
}

// MustMatrix builds a Dense matrix from a row literal or fails the test.
func MustMatrix(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustSeqMatrix allocates arange(start, start+r*c).reshape(r, c) or fails the test.
func MustSeqMatrix(t *testing.T, r, c int, start float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSequence(r, c, start)
	if err != nil {
		t.Fatalf("NewSequence(%d,%d): %v", r, c, err)
	}

	return m
}

// naiveModeProduct is the textbook definition via At/Set on every multi-index.
func naiveModeProduct(t *testing.T, x *tensor.Dense, m matrix.Matrix, mode int) *tensor.Dense {
	t.Helper()
	sizes := x.Sizes()
	sizes[mode] = m.Rows()
	out, err := tensor.NewDense(sizes)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	src := make([]int, x.Order())
	err = out.Apply(func(idx []int, _ float64) float64 {
		copy(src, idx)
		var sum float64
		for i := 0; i < x.Size(mode); i++ {
			src[mode] = i
			tv, e := x.At(src...)
			if e != nil {
				t.Fatalf("At: %v", e)
			}
			mv, e := m.At(idx[mode], i)
			if e != nil {
				t.Fatalf("At: %v", e)
			}
			sum += tv * mv
		}
		return sum
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	return out
}
