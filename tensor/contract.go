// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"

	"github.com/katalvlaran/qsim/internal/parallel"
)

// Contract sums a's axes aAxes against b's axes bAxes pairwise (tensordot).
//
// The result shape is a's free axes (in order) followed by b's free axes
// (in order). Contracting every axis of both operands yields shape (1).
//
// Implementation:
//   - Stage 1: validate axis lists and paired extents.
//   - Stage 2: transpose a to (free…, contracted…) and b to
//     (contracted…, free…), viewing them as M×K and K×N matrices.
//     Already-ordered operands are read in place.
//   - Stage 3: out = A·B with the N columns split across WithWorkers
//     goroutines. Every output element is one fixed-order sum over K, so the
//     result does not depend on the worker count. Zero entries are not
//     skipped, so NaN and Inf propagate as in cmatrix.MatVec.
//
// Errors: ErrNilTensor, ErrDimensionMismatch, ErrAxisOutOfRange, ErrDuplicateAxis.
// Complexity: O(M·K·N) time, O(len(a)+len(b)+M·N) memory.
func Contract(a, b *Dense, aAxes, bAxes []int, opts ...Option) (*Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Contract: %w", ErrNilTensor)
	}
	if len(aAxes) != len(bAxes) {
		return nil, fmt.Errorf("Contract: %d vs %d axes: %w", len(aAxes), len(bAxes), ErrDimensionMismatch)
	}
	if err := validateAxes(aAxes, a.Rank()); err != nil {
		return nil, fmt.Errorf("Contract: a: %w", err)
	}
	if err := validateAxes(bAxes, b.Rank()); err != nil {
		return nil, fmt.Errorf("Contract: b: %w", err)
	}
	K := 1
	for i := range aAxes {
		if a.shape[aAxes[i]] != b.shape[bAxes[i]] {
			return nil, fmt.Errorf("Contract: a axis %d (%d) vs b axis %d (%d): %w",
				aAxes[i], a.shape[aAxes[i]], bAxes[i], b.shape[bAxes[i]], ErrDimensionMismatch)
		}
		K *= a.shape[aAxes[i]]
	}
	o := gatherOptions(opts...)

	aFree := freeAxes(a.Rank(), aAxes)
	bFree := freeAxes(b.Rank(), bAxes)
	M, N := 1, 1
	outShape := make([]int, 0, len(aFree)+len(bFree))
	for _, ax := range aFree {
		M *= a.shape[ax]
		outShape = append(outShape, a.shape[ax])
	}
	for _, ax := range bFree {
		N *= b.shape[ax]
		outShape = append(outShape, b.shape[ax])
	}
	if len(outShape) == 0 {
		outShape = append(outShape, 1)
	}

	am, err := ordered(a, append(aFree, aAxes...))
	if err != nil {
		return nil, fmt.Errorf("Contract: %w", err)
	}
	bm, err := ordered(b, append(append([]int(nil), bAxes...), bFree...))
	if err != nil {
		return nil, fmt.Errorf("Contract: %w", err)
	}

	out := make([]complex128, M*N)
	_ = parallel.Range(N, o.workers, func(lo, hi int) error {
		var (
			m, k, j int
			av      complex128
			rowA    int
			rowB    int
			rowO    int
		)
		for m = 0; m < M; m++ {
			rowA = m * K
			rowO = m * N
			for k = 0; k < K; k++ {
				av = am[rowA+k]
				rowB = k * N
				for j = lo; j < hi; j++ {
					out[rowO+j] += av * bm[rowB+j]
				}
			}
		}
		return nil
	})

	return build(outShape, out), nil
}

// freeAxes lists the axes of a rank-r tensor not present in contracted, ascending.
func freeAxes(rank int, contracted []int) []int {
	used := make([]bool, rank)
	for _, ax := range contracted {
		used[ax] = true
	}
	free := make([]int, 0, rank-len(contracted))
	for ax := 0; ax < rank; ax++ {
		if !used[ax] {
			free = append(free, ax)
		}
	}
	return free
}

// ordered returns t's data laid out in perm order, reusing the backing
// slice when perm is already the identity.
func ordered(t *Dense, perm []int) ([]complex128, error) {
	if isIdentity(perm) {
		return t.data, nil
	}
	tt, err := Transpose(t, perm)
	if err != nil {
		return nil, err
	}
	return tt.data, nil
}
