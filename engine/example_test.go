// SPDX-License-Identifier: MIT

package engine_test

import (
	"fmt"

	"github.com/katalvlaran/qsim/engine"
	"github.com/katalvlaran/qsim/gates"
	"github.com/katalvlaran/qsim/statevec"
)

// ExampleTensorEngine prepares a Bell state.
func ExampleTensorEngine() {
	const n = 2
	v, _ := statevec.New(n)
	e := engine.NewTensorEngine()
	_ = e.Apply(v, gates.H, n, 0)
	_ = e.ApplyTwo(v, gates.CNOT, n, 0, 1)

	for i, p := range v.Probabilities() {
		fmt.Printf("%s %.2f\n", statevec.Label(i, n), p)
	}
	// Output:
	// 00 0.50
	// 01 0.00
	// 10 0.00
	// 11 0.50
}

// ExampleMatrixEngine flips qubit 1 of |000⟩.
func ExampleMatrixEngine() {
	v, _ := statevec.New(3)
	_ = engine.NewMatrixEngine().Apply(v, gates.X, 3, 1)
	fmt.Println(v)
	// Output:
	// [(0+0i) (0+0i) (1+0i) (0+0i) (0+0i) (0+0i) (0+0i) (0+0i)]
}
