// SPDX-License-Identifier: MIT
// Package decomp_test contains shared fixtures.
//
// Fixtures follow the worked examples used throughout the package docs:
// full shape (5, 6, 7) built from arange-filled parameters.

package decomp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtensor/decomp"
	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/stretchr/testify/require"
)

var fullShape = []int{5, 6, 7}

// seqMatrix allocates arange(start, start+r*c).reshape(r, c).
func seqMatrix(t testing.TB, r, c int, start float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSequence(r, c, start)
	require.NoError(t, err)

	return m
}

// seqTensor allocates arange(start, start+n).reshape(sizes).
func seqTensor(t testing.TB, sizes []int, start float64) *tensor.Dense {
	t.Helper()
	x, err := tensor.NewSequence(sizes, start)
	require.NoError(t, err)

	return x
}

// identity allocates the n×n identity.
func identity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// cpFactors returns (5,R), (6,R), (7,R) arange factors.
func cpFactors(t testing.TB, rank int) []matrix.Matrix {
	t.Helper()

	return []matrix.Matrix{
		seqMatrix(t, 5, rank, 0),
		seqMatrix(t, 6, rank, 0),
		seqMatrix(t, 7, rank, 0),
	}
}

// newCP builds the rank-4 CP fixture with weights (0, 1, 2, 3).
func newCP(t testing.TB, opts ...decomp.Option) *decomp.CP {
	t.Helper()
	cp, err := decomp.NewCP(cpFactors(t, 4), []float64{0, 1, 2, 3}, opts...)
	require.NoError(t, err)

	return cp
}

// newTucker builds the (2,3,4)-rank Tucker fixture with an arange core.
func newTucker(t testing.TB, opts ...decomp.Option) *decomp.Tucker {
	t.Helper()
	factors := []matrix.Matrix{
		seqMatrix(t, 5, 2, 0),
		seqMatrix(t, 6, 3, 0),
		seqMatrix(t, 7, 4, 0),
	}
	tk, err := decomp.NewTucker(factors, seqTensor(t, []int{2, 3, 4}, 0), opts...)
	require.NoError(t, err)

	return tk
}

// trainCores returns cores (5,2), (2,6,3), (3,7).
func trainCores(t testing.TB) []*tensor.Dense {
	t.Helper()

	return []*tensor.Dense{
		seqTensor(t, []int{5, 2}, 0),
		seqTensor(t, []int{2, 6, 3}, 0),
		seqTensor(t, []int{3, 7}, 0),
	}
}

// newTrain builds the TT fixture over trainCores.
func newTrain(t testing.TB, opts ...decomp.Option) *decomp.Train {
	t.Helper()
	tt, err := decomp.NewTrain(trainCores(t), fullShape, opts...)
	require.NoError(t, err)

	return tt
}

// mustAt reads one tensor element.
func mustAt(t testing.TB, x *tensor.Dense, idx ...int) float64 {
	t.Helper()
	v, err := x.At(idx...)
	require.NoError(t, err)

	return v
}

// mustMAt reads one matrix element.
func mustMAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func nan() float64 { return math.NaN() }
