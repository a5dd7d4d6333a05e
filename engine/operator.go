// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/katalvlaran/qsim/cmatrix"
	"github.com/katalvlaran/qsim/gates"
)

// FullOperator returns I ⊗ … ⊗ G ⊗ … ⊗ I with G at factor k of n
// (factor 0 most significant). The result is 2^n x 2^n.
// Complexity: O(4^n) time and memory.
func FullOperator(g gates.Gate, n, k int) (*cmatrix.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("FullOperator: n=%d: %w", n, ErrDimensionMismatch)
	}
	if err := validateQubits(n, k); err != nil {
		return nil, fmt.Errorf("FullOperator: %w", err)
	}
	if err := validateGate(g, 1); err != nil {
		return nil, fmt.Errorf("FullOperator: %w", err)
	}
	id, _ := cmatrix.NewIdentity(2) // safe: 2 > 0
	factors := make([]*cmatrix.Dense, n)
	for q := range factors {
		factors[q] = id
	}
	factors[k] = g.Matrix()

	return cmatrix.KroneckerChain(factors...)
}

// FullOperatorTwo returns the 2^n x 2^n lift of a 4x4 gate acting on (q0, q1):
//
//	Σ G[2a+b, 2c+d] · (… ⊗ |a⟩⟨c| at q0 ⊗ … ⊗ |b⟩⟨d| at q1 ⊗ …)
//
// with I₂ at every other factor. Zero gate entries contribute nothing.
// q0 may be greater than q1.
// Complexity: O(nnz(G) · 4^n).
func FullOperatorTwo(g gates.Gate, n, q0, q1 int) (*cmatrix.Dense, error) {
	if n < 2 {
		return nil, fmt.Errorf("FullOperatorTwo: n=%d: %w", n, ErrDimensionMismatch)
	}
	if err := validateQubits(n, q0, q1); err != nil {
		return nil, fmt.Errorf("FullOperatorTwo: %w", err)
	}
	if err := validateGate(g, 2); err != nil {
		return nil, fmt.Errorf("FullOperatorTwo: %w", err)
	}

	dim := 1 << n
	sum, err := cmatrix.NewDense(dim, dim)
	if err != nil {
		return nil, fmt.Errorf("FullOperatorTwo: %w", err)
	}
	id, _ := cmatrix.NewIdentity(2) // safe: 2 > 0
	factors := make([]*cmatrix.Dense, n)

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			w, _ := g.At(row, col) // safe: validated 4x4
			if w == 0 {
				continue
			}
			for q := range factors {
				factors[q] = id
			}
			factors[q0] = unit(row>>1, col>>1)
			factors[q1] = unit(row&1, col&1)

			term, err := cmatrix.KroneckerChain(factors...)
			if err != nil {
				return nil, fmt.Errorf("FullOperatorTwo: %w", err)
			}
			if term, err = cmatrix.Scale(term, w); err != nil {
				return nil, fmt.Errorf("FullOperatorTwo: %w", err)
			}
			if sum, err = cmatrix.Add(sum, term); err != nil {
				return nil, fmt.Errorf("FullOperatorTwo: %w", err)
			}
		}
	}

	return sum, nil
}

// unit returns the 2x2 matrix |i⟩⟨j|.
func unit(i, j int) *cmatrix.Dense {
	m, _ := cmatrix.NewDense(2, 2) // safe: 2 > 0
	_ = m.Set(i, j, 1)             // safe: i, j in {0,1}
	return m
}
