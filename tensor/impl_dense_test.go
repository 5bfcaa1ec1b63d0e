// SPDX-License-Identifier: MIT

// Package tensor_test contains unit tests for the Dense N-way tensor.
package tensor_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects empty and non-positive sizes.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := tensor.NewDense(nil)
	require.ErrorIs(t, err, tensor.ErrInvalidDimensions)

	_, err = tensor.NewDense([]int{3, 0, 2})
	require.ErrorIs(t, err, tensor.ErrInvalidDimensions)

	_, err = tensor.NewDense([]int{-1})
	require.ErrorIs(t, err, tensor.ErrInvalidDimensions)
}

func TestNewDenseShapeAndDefaults(t *testing.T) {
	x, err := tensor.NewDense([]int{5, 6, 7})
	require.NoError(t, err)

	require.Equal(t, 3, x.Order())
	require.Equal(t, []int{5, 6, 7}, x.Sizes())
	require.Equal(t, 210, x.Len())
	require.Equal(t, 6, x.Size(1))
	require.Equal(t, 0, x.Size(3))
	require.Equal(t, []string{"mode-0", "mode-1", "mode-2"}, x.ModeNames())
	require.Equal(t, "", x.ModeName(-1))
	require.Zero(t, x.Norm())
}

func TestNewDenseFrom(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	x, err := tensor.NewDenseFrom(data, []int{2, 3})
	require.NoError(t, err)

	data[0] = 100 // caller keeps ownership; tensor holds a copy
	v, err := x.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	v, err = x.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = tensor.NewDenseFrom([]float64{1, 2, 3}, []int{2, 2})
	require.ErrorIs(t, err, tensor.ErrBadShape)

	_, err = tensor.NewDenseFrom([]float64{1, math.NaN()}, []int{2})
	require.ErrorIs(t, err, tensor.ErrNaNInf)

	_, err = tensor.NewDenseFrom([]float64{1, math.Inf(1)}, []int{2}, tensor.WithNoValidateNaNInf())
	require.NoError(t, err)
}

func TestModeNames(t *testing.T) {
	x, err := tensor.NewDense([]int{2, 3}, tensor.WithModeNames("time", "space"))
	require.NoError(t, err)
	require.Equal(t, "space", x.ModeName(1))

	_, err = tensor.NewDense([]int{2, 3}, tensor.WithModeNames("only-one"))
	require.ErrorIs(t, err, tensor.ErrModeNames)

	y, err := x.WithNames("a", "b")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, y.ModeNames())
	require.Equal(t, []string{"time", "space"}, x.ModeNames(), "original must keep its names")

	_, err = x.WithNames("a")
	require.ErrorIs(t, err, tensor.ErrModeNames)
}

// TestAtSetOutOfRange ensures At/Set never panic and return the right sentinels.
func TestAtSetOutOfRange(t *testing.T) {
	x := MustSequence(t, []int{2, 3, 4}, 0)

	_, err := x.At(2, 0, 0)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)

	_, err = x.At(0, -1, 0)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)

	_, err = x.At(0, 0)
	require.ErrorIs(t, err, tensor.ErrDimensionMismatch)

	err = x.Set([]int{0, 0, 4}, 1)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)

	err = x.Set([]int{0, 0, 0}, math.NaN())
	require.ErrorIs(t, err, tensor.ErrNaNInf)
}

func TestSetGetRowMajor(t *testing.T) {
	x := MustSequence(t, []int{2, 3, 4}, 0)

	v, err := x.At(1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 23.0, v) // last element of arange(24)

	v, err = x.At(1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 12.0, v) // stride of mode 0 is 3*4

	require.NoError(t, x.Set([]int{0, 1, 2}, -7.5))
	v, err = x.At(0, 1, 2)
	require.NoError(t, err)
	require.Equal(t, -7.5, v)
}

// TestCloneIndependence ensures Clone returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	x := MustSequence(t, []int{2, 2}, 1)
	c := x.Clone()

	require.NoError(t, c.Set([]int{0, 0}, 42))

	v, err := x.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	d := x.Data()
	d[0] = 99
	v, err = x.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "Data must return a copy")
}

func TestNorm(t *testing.T) {
	x, err := tensor.NewDenseFrom([]float64{3, 4, 0, 0}, []int{2, 2})
	require.NoError(t, err)
	require.Equal(t, 5.0, x.Norm())
}

func TestReshape(t *testing.T) {
	x := MustSequence(t, []int{2, 3, 4}, 0)

	y, err := x.Reshape(6, 4)
	require.NoError(t, err)
	require.Equal(t, []int{6, 4}, y.Sizes())
	require.Equal(t, x.Data(), y.Data())
	require.Equal(t, []string{"mode-0", "mode-1"}, y.ModeNames())

	_, err = x.Reshape(5, 5)
	require.ErrorIs(t, err, tensor.ErrBadShape)

	_, err = x.Reshape()
	require.ErrorIs(t, err, tensor.ErrInvalidDimensions)
}

func TestDoVisitsRowMajorAndStops(t *testing.T) {
	x := MustSequence(t, []int{2, 2}, 0)
	var seen [][]int
	x.Do(func(idx []int, v float64) bool {
		seen = append(seen, append([]int(nil), idx...))
		return v < 2
	})
	require.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}}, seen)
}

func TestApplyPolicy(t *testing.T) {
	x := MustSequence(t, []int{3}, 1)
	require.NoError(t, x.Apply(func(_ []int, v float64) float64 { return 2 * v }))
	require.Equal(t, []float64{2, 4, 6}, x.Data())

	err := x.Apply(func(idx []int, v float64) float64 {
		if idx[0] == 1 {
			return math.Inf(-1)
		}
		return v
	})
	require.ErrorIs(t, err, tensor.ErrNaNInf)
}

func TestDescribe(t *testing.T) {
	x, err := tensor.NewDenseFrom([]float64{3, 4}, []int{2}, tensor.WithModeNames("country"))
	require.NoError(t, err)

	d := x.Describe()
	require.True(t, strings.Contains(d, "order 1"))
	require.True(t, strings.Contains(d, "2 elements"))
	require.True(t, strings.Contains(d, "[country]"))
	require.True(t, strings.Contains(d, "Frobenius norm: 5"))

	require.Equal(t, "Dense[2][3 4]", x.String())
	big := MustSequence(t, []int{5, 6}, 0)
	require.Equal(t, "Dense[5 6][30 elements]", big.String())
}
