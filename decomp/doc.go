// SPDX-License-Identifier: MIT

// Package decomp holds compressed representations of dense N-way tensors and
// the engine that expands them back into a tensor.Dense.
//
// 🚀 What is inside?
//
//	Three forms, one capability interface (Representation):
//		• CP    : factor matrices A_n (I_n×R) + weights w (length R);
//		           core is the super-diagonal (R,…,R) tensor with core[r,…,r] = w[r].
//		• Tucker: factor matrices A_n (I_n×R_n) + dense core (R_1,…,R_N).
//		• Train : chain of cores (I_1,R_1), (R_1,I_2,R_2), …, (R_{N-1},I_N).
//
// Reconstruction:
//
//	CP and Tucker run the same sweep, tensor.MultiModeProduct(core, factors):
//	one mode-n product per mode, in mode order. Train contracts adjacent cores
//	left-to-right over the shared bond index, one mode-0 product per core.
//
// State & views:
//
//	A representation stores only its parameters (factors, weights, core
//	values, chain). Core, Cores, CoreAt and Reconstruct are recomputed on
//	every call and return caller-owned values; nothing is cached, so a view
//	can never go stale. Constructors take ownership of the supplied matrices
//	and tensors: keep using them afterwards and the representation sees the
//	change. Copy returns a deep, fully independent duplicate.
//
// Errors:
//
//	ErrShapeMismatch   : inconsistent factor/core dimensions at construction.
//	tensor.ErrDimensionMismatch: operand mismatch inside a mode-n product.
//	ErrIndexOutOfRange : Train.CoreAt outside [0, Order()-1].
//
// Quick example:
//
//	a, _ := matrix.NewSequence(5, 4, 0)
//	b, _ := matrix.NewSequence(6, 4, 0)
//	c, _ := matrix.NewSequence(7, 4, 0)
//	cp, _ := decomp.NewCP([]matrix.Matrix{a, b, c}, []float64{0, 1, 2, 3})
//	full, _ := cp.Reconstruct() // 5×6×7
package decomp
