// SPDX-License-Identifier: MIT
// Package matrix_test contains shared helpers.
//
// Purpose:
//   • Fatal constructors for literal fixtures.
//   • hide wrapper to mask *Dense and force the interface fallback paths.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix to mask its concrete type and force generic paths.
type hide struct{ matrix.Matrix }

// MustRows builds a Dense from a row literal or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustSeq allocates arange(start, start+r*c).reshape(r, c) or fails the test.
func MustSeq(t testing.TB, r, c int, start float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSequence(r, c, start)
	require.NoError(t, err)

	return m
}

// requireData compares the row-major contents of m with want.
func requireData(t *testing.T, want []float64, m matrix.Matrix) {
	t.Helper()
	got, err := matrix.ToRowMajor(m)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
