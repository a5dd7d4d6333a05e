package cmatrix_test

import (
	"fmt"

	"github.com/katalvlaran/qsim/cmatrix"
)

// ExampleKronecker builds Z ⊗ Z, the two-qubit parity operator.
func ExampleKronecker() {
	z, _ := cmatrix.NewFromRows([][]complex128{{1, 0}, {0, -1}})
	zz, _ := cmatrix.Kronecker(z, z)
	for i := 0; i < zz.Rows(); i++ {
		v, _ := zz.At(i, i)
		fmt.Print(real(v), " ")
	}
	fmt.Println()
	// Output:
	// 1 -1 -1 1
}
