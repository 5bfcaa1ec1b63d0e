// SPDX-License-Identifier: MIT

// Package lvtensor is a small library of compressed tensor representations
// built on a row-major dense core.
//
// What is inside:
//
//	matrix/    row-major Dense matrix, Mul/Transpose, Khatri–Rao, Kronecker
//	tensor/    N-way Dense tensor with named modes, unfold/fold, mode-n product
//	decomp/    CP, Tucker and Tensor-Train representations behind one interface
//	tensorio/  YAML persistence of tensors and representations
//	examples/  runnable scenarios
//
// Every representation answers the same questions: its order, the shape and
// mode names of the full tensor, how many parameters it stores, a deep Copy,
// and Reconstruct into a dense tensor. CP and Tucker share one reconstruction
// algorithm (a mode-n product per mode on a core); Tensor-Train contracts its
// chain of cores left to right.
//
// Quick example (rank-2 CP of a 5×6×7 tensor):
//
//	cp, err := decomp.NewCP([]matrix.Matrix{a, b, c}, []float64{1, 0.5})
//	full, err := cp.Reconstruct() // *tensor.Dense of shape (5, 6, 7)
//
// Errors are sentinels per package (decomp.ErrShapeMismatch,
// tensor.ErrDimensionMismatch, decomp.ErrIndexOutOfRange, ...) matched with
// errors.Is.
package lvtensor
