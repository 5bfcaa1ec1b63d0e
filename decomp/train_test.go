// SPDX-License-Identifier: MIT

package decomp_test

import (
	"testing"

	"github.com/katalvlaran/lvtensor/decomp"
	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/stretchr/testify/require"
)

// TestTrainCoresAndReconstruct covers the (5,2)(2,6,3)(3,7) worked example.
func TestTrainCoresAndReconstruct(t *testing.T) {
	tt := newTrain(t)
	require.Equal(t, decomp.KindTrain, tt.Kind())
	require.Equal(t, 3, tt.Order())
	require.Equal(t, []int{2, 3}, tt.Rank())
	require.Equal(t, fullShape, tt.FullShape())
	require.Equal(t, 10+36+21, tt.NumParams())

	first, err := tt.CoreAt(0)
	require.NoError(t, err)
	require.Equal(t, []int{5, 2}, first.Sizes())

	full, err := tt.Reconstruct()
	require.NoError(t, err)
	require.Equal(t, fullShape, full.Sizes())
}

// TestTrainCoreAtMatchesCores: CoreAt(i) equals Cores()[i] for every i.
func TestTrainCoreAtMatchesCores(t *testing.T) {
	tt := newTrain(t)
	all := tt.Cores()
	require.Len(t, all, tt.Order())
	for i := range all {
		c, err := tt.CoreAt(i)
		require.NoError(t, err)
		require.True(t, tensor.Equal(all[i], c), "core %d", i)
	}

	_, err := tt.CoreAt(-1)
	require.ErrorIs(t, err, decomp.ErrIndexOutOfRange)
	_, err = tt.CoreAt(3)
	require.ErrorIs(t, err, decomp.ErrIndexOutOfRange)
}

// TestTrainReconstructMatchesDefinition checks
// X[i,j,k] = Σ_{a,b} G1[i,a]·G2[a,j,b]·G3[b,k].
func TestTrainReconstructMatchesDefinition(t *testing.T) {
	tt := newTrain(t)
	full, err := tt.Reconstruct()
	require.NoError(t, err)
	g := tt.Cores()

	full.Do(func(idx []int, v float64) bool {
		var want float64
		for a := 0; a < 2; a++ {
			for b := 0; b < 3; b++ {
				want += mustAt(t, g[0], idx[0], a) * mustAt(t, g[1], a, idx[1], b) * mustAt(t, g[2], b, idx[2])
			}
		}
		require.InDeltaf(t, want, v, 1e-9*(1+want), "at %v", idx)
		return true
	})
}

// TestTrainFourCores exercises more than one middle core.
func TestTrainFourCores(t *testing.T) {
	cores := []*tensor.Dense{
		seqTensor(t, []int{2, 3}, 1),
		seqTensor(t, []int{3, 4, 2}, -4),
		seqTensor(t, []int{2, 2, 5}, 0.5),
		seqTensor(t, []int{5, 3}, 2),
	}
	tt, err := decomp.NewTrain(cores, nil)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 2, 3}, tt.FullShape())
	require.Equal(t, []int{3, 2, 5}, tt.Rank())

	full, err := tt.Reconstruct()
	require.NoError(t, err)
	full.Do(func(idx []int, v float64) bool {
		var want float64
		for a := 0; a < 3; a++ {
			for b := 0; b < 2; b++ {
				for c := 0; c < 5; c++ {
					want += mustAt(t, cores[0], idx[0], a) *
						mustAt(t, cores[1], a, idx[1], b) *
						mustAt(t, cores[2], b, idx[2], c) *
						mustAt(t, cores[3], c, idx[3])
				}
			}
		}
		require.InDeltaf(t, want, v, 1e-9*(1+want), "at %v", idx)
		return true
	})
}

// TestTrainRankOneIsOuterProduct: unit bonds give v_0 ∘ v_1 ∘ v_2.
func TestTrainRankOneIsOuterProduct(t *testing.T) {
	v0, v1, v2 := []float64{1, -2, 3}, []float64{0.5, 4}, []float64{2, 0, -1, 7}
	g0, err := tensor.NewDenseFrom(v0, []int{3, 1})
	require.NoError(t, err)
	g1, err := tensor.NewDenseFrom(v1, []int{1, 2, 1})
	require.NoError(t, err)
	g2, err := tensor.NewDenseFrom(v2, []int{1, 4})
	require.NoError(t, err)

	tt, err := decomp.NewTrain([]*tensor.Dense{g0, g1, g2}, []int{3, 2, 4})
	require.NoError(t, err)
	full, err := tt.Reconstruct()
	require.NoError(t, err)

	want, err := tensor.OuterProduct([][]float64{v0, v1, v2})
	require.NoError(t, err)
	ok, err := tensor.AllClose(full, want, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestTrainConstructionErrors covers every rejected chain.
func TestTrainConstructionErrors(t *testing.T) {
	c := trainCores(t)

	_, err := decomp.NewTrain(c[:1], nil)
	require.ErrorIs(t, err, decomp.ErrShapeMismatch)

	_, err = decomp.NewTrain(nil, nil)
	require.ErrorIs(t, err, decomp.ErrShapeMismatch)

	// broken bond: (5,2) then (3,6,3)
	_, err = decomp.NewTrain([]*tensor.Dense{c[0], seqTensor(t, []int{3, 6, 3}, 0), c[2]}, nil)
	require.ErrorIs(t, err, decomp.ErrShapeMismatch)

	// middle core of order 2
	_, err = decomp.NewTrain([]*tensor.Dense{c[0], seqTensor(t, []int{2, 3}, 0), c[2]}, nil)
	require.ErrorIs(t, err, decomp.ErrShapeMismatch)

	// edge core of order 3
	_, err = decomp.NewTrain([]*tensor.Dense{seqTensor(t, []int{1, 5, 2}, 0), c[1], c[2]}, nil)
	require.ErrorIs(t, err, decomp.ErrShapeMismatch)

	// explicit shape disagreeing with the chain
	_, err = decomp.NewTrain(c, []int{5, 6, 8})
	require.ErrorIs(t, err, decomp.ErrShapeMismatch)
	_, err = decomp.NewTrain(c, []int{5, 6})
	require.ErrorIs(t, err, decomp.ErrShapeMismatch)

	_, err = decomp.NewTrain([]*tensor.Dense{c[0], nil, c[2]}, nil)
	require.ErrorIs(t, err, decomp.ErrShapeMismatch)
	require.ErrorIs(t, err, tensor.ErrNilTensor)

	_, err = decomp.NewTrain(c, nil, decomp.WithModeNames("a", "b"))
	require.ErrorIs(t, err, tensor.ErrModeNames)
}

// TestTrainCopyIsIndependent mutates a caller-retained core after Copy.
func TestTrainCopyIsIndependent(t *testing.T) {
	cores := trainCores(t)
	tt, err := decomp.NewTrain(cores, nil)
	require.NoError(t, err)

	dup := tt.Copy()
	before, err := dup.Reconstruct()
	require.NoError(t, err)

	require.NoError(t, cores[1].Set([]int{1, 5, 2}, -77))

	after, err := dup.Reconstruct()
	require.NoError(t, err)
	require.True(t, tensor.Equal(before, after))

	got, err := tt.CoreAt(1)
	require.NoError(t, err)
	require.Equal(t, -77.0, mustAt(t, got, 1, 5, 2))

	// returned cores are copies too
	first, err := tt.CoreAt(0)
	require.NoError(t, err)
	require.NoError(t, first.Set([]int{0, 0}, 1e9))
	again, err := tt.CoreAt(0)
	require.NoError(t, err)
	require.Equal(t, 0.0, mustAt(t, again, 0, 0))
}
