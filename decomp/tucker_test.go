// SPDX-License-Identifier: MIT

package decomp_test

import (
	"testing"

	"github.com/katalvlaran/lvtensor/decomp"
	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/stretchr/testify/require"
)

// TestTuckerCoreAndReconstruct covers the (2,3,4) worked example.
func TestTuckerCoreAndReconstruct(t *testing.T) {
	tk := newTucker(t)
	require.Equal(t, decomp.KindTucker, tk.Kind())
	require.Equal(t, 3, tk.Order())
	require.Equal(t, []int{2, 3, 4}, tk.Rank())
	require.Equal(t, fullShape, tk.FullShape())
	require.Equal(t, 5*2+6*3+7*4+24, tk.NumParams())

	core, err := tk.Core()
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4}, core.Sizes())
	require.Equal(t, 0.0, mustAt(t, core, 0, 0, 0))
	require.Equal(t, 23.0, mustAt(t, core, 1, 2, 3))

	full, err := tk.Reconstruct()
	require.NoError(t, err)
	require.Equal(t, fullShape, full.Sizes())
}

// TestTuckerIdentityFactorsReturnCore: G ×_n I == G exactly.
func TestTuckerIdentityFactorsReturnCore(t *testing.T) {
	core := seqTensor(t, []int{2, 3, 4}, -5)
	tk, err := decomp.NewTucker([]matrix.Matrix{identity(t, 2), identity(t, 3), identity(t, 4)}, core.Clone())
	require.NoError(t, err)

	full, err := tk.Reconstruct()
	require.NoError(t, err)
	require.True(t, tensor.Equal(core, full))
}

// TestTuckerReconstructMatchesDefinition checks elements against the
// quadruple sum Σ G[a,b,c]·A[i,a]·B[j,b]·C[k,c].
func TestTuckerReconstructMatchesDefinition(t *testing.T) {
	tk := newTucker(t)
	full, err := tk.Reconstruct()
	require.NoError(t, err)
	core, err := tk.Core()
	require.NoError(t, err)
	a, _ := tk.Factor(0)
	b, _ := tk.Factor(1)
	c, _ := tk.Factor(2)

	full.Do(func(idx []int, v float64) bool {
		var want float64
		core.Do(func(g []int, gv float64) bool {
			want += gv * mustMAt(t, a, idx[0], g[0]) * mustMAt(t, b, idx[1], g[1]) * mustMAt(t, c, idx[2], g[2])
			return true
		})
		require.InDeltaf(t, want, v, 1e-9*(1+want), "at %v", idx)
		return true
	})
}

// TestTuckerKroneckerUnfolding checks X_(0) = A·G_(0)·(B ⊗ C)ᵀ.
func TestTuckerKroneckerUnfolding(t *testing.T) {
	tk := newTucker(t)
	full, err := tk.Reconstruct()
	require.NoError(t, err)
	unfolded, err := full.Unfold(0)
	require.NoError(t, err)

	core, err := tk.Core()
	require.NoError(t, err)
	g0, err := core.Unfold(0)
	require.NoError(t, err)
	a, _ := tk.Factor(0)
	b, _ := tk.Factor(1)
	c, _ := tk.Factor(2)

	kron, err := matrix.Kronecker(b, c)
	require.NoError(t, err)
	require.Equal(t, 6*7, kron.Rows())
	require.Equal(t, 3*4, kron.Cols())
	kronT, err := matrix.Transpose(kron)
	require.NoError(t, err)
	ag, err := matrix.Mul(a, g0)
	require.NoError(t, err)
	want, err := matrix.Mul(ag, kronT)
	require.NoError(t, err)

	ok, err := matrix.AllClose(unfolded, want, 1e-12, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestTuckerConstructionErrors covers every rejected input.
func TestTuckerConstructionErrors(t *testing.T) {
	core := seqTensor(t, []int{2, 3, 4}, 0)
	a, b, c := seqMatrix(t, 5, 2, 0), seqMatrix(t, 6, 3, 0), seqMatrix(t, 7, 4, 0)

	// factor column count differs from the core size
	_, err := decomp.NewTucker([]matrix.Matrix{a, b, seqMatrix(t, 7, 3, 0)}, core)
	require.ErrorIs(t, err, decomp.ErrShapeMismatch)

	// factor count differs from the core order
	_, err = decomp.NewTucker([]matrix.Matrix{a, b}, core)
	require.ErrorIs(t, err, decomp.ErrShapeMismatch)

	_, err = decomp.NewTucker([]matrix.Matrix{a, b, c}, nil)
	require.ErrorIs(t, err, decomp.ErrShapeMismatch)
	require.ErrorIs(t, err, tensor.ErrNilTensor)

	_, err = decomp.NewTucker([]matrix.Matrix{a, nil, c}, core)
	require.ErrorIs(t, err, decomp.ErrShapeMismatch)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = decomp.NewTucker([]matrix.Matrix{a, b, c}, core, decomp.WithModeNames("x"))
	require.ErrorIs(t, err, tensor.ErrModeNames)
}

// TestTuckerCopyIsIndependent mutates the caller-retained core after Copy.
func TestTuckerCopyIsIndependent(t *testing.T) {
	core := seqTensor(t, []int{2, 3, 4}, 0)
	factors := []matrix.Matrix{seqMatrix(t, 5, 2, 0), seqMatrix(t, 6, 3, 0), seqMatrix(t, 7, 4, 0)}
	tk, err := decomp.NewTucker(factors, core)
	require.NoError(t, err)

	dup := tk.Copy()
	before, err := dup.Reconstruct()
	require.NoError(t, err)

	require.NoError(t, core.Set([]int{1, 1, 1}, 1e6))
	require.NoError(t, factors[2].Set(0, 0, -3))

	after, err := dup.Reconstruct()
	require.NoError(t, err)
	require.True(t, tensor.Equal(before, after))

	got, err := tk.Core()
	require.NoError(t, err)
	require.Equal(t, 1e6, mustAt(t, got, 1, 1, 1))
}

// TestTuckerCoreIsACopy edits the returned core.
func TestTuckerCoreIsACopy(t *testing.T) {
	tk := newTucker(t)
	core, err := tk.Core()
	require.NoError(t, err)
	require.NoError(t, core.Set([]int{0, 0, 0}, 7))

	again, err := tk.Core()
	require.NoError(t, err)
	require.Equal(t, 0.0, mustAt(t, again, 0, 0, 0))

	_, err = tk.Factor(3)
	require.ErrorIs(t, err, decomp.ErrIndexOutOfRange)
}
