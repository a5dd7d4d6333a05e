// SPDX-License-Identifier: MIT
// Package cmatrix: linear-algebra kernels over *Dense.
//
// Purpose:
//   - Kronecker products for operator construction, products, conjugate
//     transpose and elementwise helpers.
//   - Validate first, allocate once, then run fixed-order loops.

package cmatrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Operation name constants for unified error wrapping.
const (
	opAdd            = "Add"
	opScale          = "Scale"
	opMul            = "Mul"
	opConjTranspose  = "ConjTranspose"
	opKronecker      = "Kronecker"
	opKroneckerChain = "KroneckerChain"
	opMatVec         = "MatVec"
	opAllClose       = "AllClose"
	opIsUnitary      = "IsUnitary"
	opIsHermitian    = "IsHermitian"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := &Dense{r: a.r, c: a.c, data: make([]complex128, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] + b.data[i]
	}

	return out, nil
}

// Scale returns alpha * m.
// Complexity: O(r*c).
func Scale(m *Dense, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i, v := range m.data {
		out.data[i] = alpha * v
	}

	return out, nil
}

// Mul performs standard matrix multiplication a × b.
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Execute): i-k-j loop over flat slices, skipping zero a(i,k).
// Complexity: O(r*n*c) time and O(r*c) memory.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	res := &Dense{r: a.r, c: b.c, data: make([]complex128, a.r*b.c)}
	var (
		i, j, k    int
		av         complex128
		rowA, rowB int
		rowR       int
	)
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// ConjTranspose returns the Hermitian adjoint m† (transpose + complex conjugate).
// Complexity: O(r*c).
func ConjTranspose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}
	out := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return out, nil
}

// Kronecker returns the tensor product a ⊗ b.
//
// Layout: (a⊗b)[i*br+k, j*bc+l] = a[i,j] * b[k,l], so a is the more
// significant factor of the row and column index.
//
// Errors: ErrNilMatrix.
// Complexity: O(ar*ac*br*bc) time and memory.
func Kronecker(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}

	rows, cols := a.r*b.r, a.c*b.c
	out := &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}
	var (
		i, j, k, l int
		av         complex128
		base       int
	)
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			av = a.data[i*a.c+j]
			if av == 0 {
				continue // the whole b-sized block stays zero
			}
			for k = 0; k < b.r; k++ {
				base = (i*b.r+k)*cols + j*b.c
				for l = 0; l < b.c; l++ {
					out.data[base+l] = av * b.data[k*b.c+l]
				}
			}
		}
	}

	return out, nil
}

// KroneckerChain folds factors left to right: f[0] ⊗ f[1] ⊗ … ⊗ f[n-1].
// factors[0] is the most significant factor of the resulting index.
// Errors: ErrBadShape on an empty list, ErrNilMatrix on any nil factor.
// Complexity: dominated by the last product, O(Π rows · Π cols).
func KroneckerChain(factors ...*Dense) (*Dense, error) {
	if len(factors) == 0 {
		return nil, matrixErrorf(opKroneckerChain, ErrBadShape)
	}
	if err := ValidateNotNil(factors[0]); err != nil {
		return nil, matrixErrorf(opKroneckerChain, err)
	}
	acc := factors[0].Clone()
	for idx := 1; idx < len(factors); idx++ {
		next, err := Kronecker(acc, factors[idx])
		if err != nil {
			return nil, matrixErrorf(opKroneckerChain, fmt.Errorf("factor %d: %w", idx, err))
		}
		acc = next
	}

	return acc, nil
}

// AllClose reports whether |a(i,j) - b(i,j)| ≤ eps for every entry.
// Errors: ErrNaNInf for a non-finite eps, shape errors from ValidateSameShape.
// Complexity: O(r*c), early exit on first violation.
func AllClose(a, b *Dense, eps float64) (bool, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	eps = math.Abs(eps)
	for i := range a.data {
		if cmplx.Abs(a.data[i]-b.data[i]) > eps {
			return false, nil
		}
	}

	return true, nil
}

// IsUnitary reports whether m†m = I within the configured epsilon.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³).
func IsUnitary(m *Dense, opts ...Option) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}
	o := NewOptions(opts...)
	adj, _ := ConjTranspose(m) // safe: m validated
	prod, _ := Mul(adj, m)     // safe: square and conformable
	id, _ := NewIdentity(m.r)  // safe: r > 0 by construction

	return AllClose(prod, id, o.eps)
}

// IsHermitian reports whether m = m† within the configured epsilon.
// Only the upper triangle (with the diagonal) is scanned.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func IsHermitian(m *Dense, opts ...Option) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opIsHermitian, err)
	}
	o := NewOptions(opts...)
	n := m.r
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if cmplx.Abs(m.data[i*n+j]-cmplx.Conj(m.data[j*n+i])) > o.eps {
				return false, nil
			}
		}
	}

	return true, nil
}
