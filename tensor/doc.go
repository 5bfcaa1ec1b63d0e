// SPDX-License-Identifier: MIT

// Package tensor provides the dense N-way array used across lvtensor and the
// mode-n product, the one contraction primitive every reconstruction relies on.
//
// What & Why:
//
//	Dense stores float64 values row-major (last mode varies fastest) together
//	with one size and one human-readable name per mode. It is the "full"
//	tensor that CP, Tucker and Tensor-Train representations expand into, and
//	the container their cores live in.
//
//	ModeProduct contracts a tensor with a matrix along one mode:
//
//		T'[..., j, ...] = Σ_i T[..., i, ...] · M[j, i]
//
//	which is exactly Fold(M · Unfold(T, n)). MultiModeProduct applies one
//	matrix per mode, in mode order, and is the shared sweep behind CP and
//	Tucker reconstruction.
//
// Complexity:
//
//	At/Set: O(order). Clone/Data/Norm: O(len).
//	ModeProduct: O(len(T) · rows(M)), data-parallel over output fibres.
//
// Unfolding convention:
//
//	Unfold(n) yields an I_n × Π_{k≠n} I_k matrix whose columns enumerate the
//	remaining modes in increasing mode order, row-major. Under this
//	convention the CP identity reads X_(0) = A·diag(w)·(B ⊙ C)ᵀ.
package tensor
