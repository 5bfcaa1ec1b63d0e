// SPDX-License-Identifier: MIT

// Package tensor - shape arithmetic for row-major N-way buffers.
//
// Purpose:
//   - Single source of truth for sizes → strides, sizes → element count and
//     multi-index ↔ flat offset conversion.
//
// Layout:
//   - Row-major: the last mode varies fastest, stride[k] = Π_{m>k} size[m].
package tensor

import "fmt"

// validateSizes checks that sizes is non-empty and every size is > 0.
// Complexity: O(order).
func validateSizes(sizes []int) error {
	if len(sizes) == 0 {
		return ErrInvalidDimensions
	}
	for k, s := range sizes {
		if s <= 0 {
			return fmt.Errorf("mode %d has size %d: %w", k, s, ErrInvalidDimensions)
		}
	}

	return nil
}

// numElements returns Π sizes (1 for an empty list).
func numElements(sizes []int) int {
	n := 1
	for _, s := range sizes {
		n *= s
	}

	return n
}

// rowMajorStrides returns strides for sizes where the first mode is outermost.
// Assumes validated sizes (all > 0).
func rowMajorStrides(sizes []int) []int {
	strides := make([]int, len(sizes))
	acc := 1
	for k := len(sizes) - 1; k >= 0; k-- {
		strides[k] = acc
		acc *= sizes[k]
	}

	return strides
}

// splitAt returns (Π sizes[:mode], Π sizes[mode+1:]): the number of fibres
// before and the contiguous run length after the given mode.
func splitAt(sizes []int, mode int) (outer, inner int) {
	return numElements(sizes[:mode]), numElements(sizes[mode+1:])
}

// indexFrom1D fills index with the multi-index of the flat offset oned.
// len(index) must equal len(sizes).
func indexFrom1D(sizes []int, oned int, index []int) {
	for k := len(sizes) - 1; k >= 0; k-- {
		index[k] = oned % sizes[k]
		oned /= sizes[k]
	}
}

// cloneInts returns an independent copy of xs.
func cloneInts(xs []int) []int {
	return append([]int(nil), xs...)
}

// SameSizes reports whether two size lists are elementwise equal.
func SameSizes(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
