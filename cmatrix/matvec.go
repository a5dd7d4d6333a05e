// SPDX-License-Identifier: MIT

package cmatrix

import (
	"github.com/katalvlaran/qsim/internal/parallel"
)

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Rows are partitioned across WithWorkers goroutines; each y(i) is a
// single fixed-order dot product, so y is bit-identical for any worker count.
// Every product is formed, so a NaN or Inf entry of m reaches y even where
// the matching x(j) is zero.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Dense, x []complex128, opts ...Option) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	o := NewOptions(opts...)

	y := make([]complex128, m.r)
	_ = parallel.Range(m.r, o.workers, func(lo, hi int) error {
		var (
			i, j, base int
			acc        complex128
		)
		for i = lo; i < hi; i++ {
			acc = 0
			base = i * m.c
			for j = 0; j < m.c; j++ {
				acc += m.data[base+j] * x[j]
			}
			y[i] = acc
		}
		return nil
	})

	return y, nil
}
