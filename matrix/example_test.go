// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/matrix"
)

// ExampleMul multiplies two small matrices.
func ExampleMul() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewIdentity(2)
	c, _ := matrix.Mul(a, b)
	fmt.Print(c)
	// Output:
	// [1, 2]
	// [3, 4]
}

// ExampleKhatriRao builds the column-wise Kronecker product used by CP unfoldings.
func ExampleKhatriRao() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]float64{{1, 0}, {0, 1}})
	kr, _ := matrix.KhatriRao(a, b)
	fmt.Print(kr)
	// Output:
	// [1, 0]
	// [0, 2]
	// [3, 0]
	// [0, 4]
}
