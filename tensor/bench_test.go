// SPDX-License-Identifier: MIT

package tensor_test

import (
	"testing"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

func benchModeProduct(b *testing.B, opts ...tensor.Option) {
	x, err := tensor.NewSequence([]int{40, 50, 60}, 0)
	if err != nil {
		b.Fatal(err)
	}
	m, err := matrix.NewSequence(30, 50, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = tensor.ModeProduct(x, m, 1, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkModeProductSequential(b *testing.B) { benchModeProduct(b, tensor.WithSequential()) }
func BenchmarkModeProductParallel(b *testing.B)   { benchModeProduct(b) }
