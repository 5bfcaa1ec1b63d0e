// SPDX-License-Identifier: MIT

// Package matrix provides the two-dimensional substrate of lvtensor.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors that
//     return sentinel errors instead of panicking.
//   - Kernels used by tensor reconstruction: Mul, Transpose, ScaleCols, Hadamard,
//     KhatriRao and Kronecker.
//   - Column statistics (ColumnNorms, NormalizeColumns) for rescaling factors.
//   - Comparison helpers (AllClose) and canonical validators shared by the
//     tensor and decomp packages.
//
// Factor matrices of CP and Tucker decompositions are plain Matrix values:
// row count = size of the full-tensor mode, column count = rank of that mode.
//
// See the examples in this package for usage patterns.
package matrix
