// SPDX-License-Identifier: MIT
// Package tensor: axis permutation kernels.
//
// Transpose materialises a permutation; MoveAxesPerm computes the
// permutation that moves a set of axes to new positions. Keeping the two
// apart lets the reordering rule be tested without any data.

package tensor

import (
	"fmt"
	"sort"
)

// validateAxes checks that every axis is in [0, rank) and appears once.
func validateAxes(axes []int, rank int) error {
	seen := make([]bool, rank)
	for _, ax := range axes {
		if ax < 0 || ax >= rank {
			return fmt.Errorf("axis %d of rank %d: %w", ax, rank, ErrAxisOutOfRange)
		}
		if seen[ax] {
			return fmt.Errorf("axis %d: %w", ax, ErrDuplicateAxis)
		}
		seen[ax] = true
	}
	return nil
}

// validatePerm checks that perm is a permutation of 0..rank-1.
func validatePerm(perm []int, rank int) error {
	if len(perm) != rank {
		return fmt.Errorf("perm %v for rank %d: %w", perm, rank, ErrDimensionMismatch)
	}
	return validateAxes(perm, rank)
}

func isIdentity(perm []int) bool {
	for i, p := range perm {
		if p != i {
			return false
		}
	}
	return true
}

// Transpose returns a new tensor whose axis i is axis perm[i] of t.
// Stage 1 (Validate): nil check, perm is a permutation of the axes.
// Stage 2 (Execute): walk the output in row-major order with an odometer,
// advancing the input offset by the permuted strides.
// Complexity: O(len(t)) time and memory.
func Transpose(t *Dense, perm []int) (*Dense, error) {
	if t == nil {
		return nil, fmt.Errorf("Transpose: %w", ErrNilTensor)
	}
	rank := t.Rank()
	if err := validatePerm(perm, rank); err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}

	outShape := make([]int, rank)
	srcStride := make([]int, rank)
	for i, p := range perm {
		outShape[i] = t.shape[p]
		srcStride[i] = t.strides[p]
	}
	out := build(outShape, make([]complex128, len(t.data)))
	if isIdentity(perm) {
		copy(out.data, t.data)
		return out, nil
	}

	idx := make([]int, rank)
	off := 0
	for o := range out.data {
		out.data[o] = t.data[off]
		// Odometer: bump the last axis, carry leftwards.
		for ax := rank - 1; ax >= 0; ax-- {
			idx[ax]++
			off += srcStride[ax]
			if idx[ax] < outShape[ax] {
				break
			}
			off -= srcStride[ax] * outShape[ax]
			idx[ax] = 0
		}
	}

	return out, nil
}

// MoveAxesPerm returns the permutation that moves axis src[i] to position
// dst[i] for every i, with the other axes keeping their relative order.
// The result is suitable for Transpose: result[dst[i]] == src[i].
//
// Errors: ErrDimensionMismatch if len(src) != len(dst);
// ErrAxisOutOfRange / ErrDuplicateAxis for invalid axis lists.
// Complexity: O(rank log rank).
func MoveAxesPerm(rank int, src, dst []int) ([]int, error) {
	if len(src) != len(dst) {
		return nil, fmt.Errorf("MoveAxesPerm: %d sources, %d destinations: %w", len(src), len(dst), ErrDimensionMismatch)
	}
	if err := validateAxes(src, rank); err != nil {
		return nil, fmt.Errorf("MoveAxesPerm: src: %w", err)
	}
	if err := validateAxes(dst, rank); err != nil {
		return nil, fmt.Errorf("MoveAxesPerm: dst: %w", err)
	}

	moved := make([]bool, rank)
	for _, s := range src {
		moved[s] = true
	}
	order := make([]int, 0, rank)
	for ax := 0; ax < rank; ax++ {
		if !moved[ax] {
			order = append(order, ax)
		}
	}

	// Insert moved axes in ascending destination order so earlier inserts
	// do not shift later destinations.
	pairs := make([][2]int, len(src))
	for i := range src {
		pairs[i] = [2]int{dst[i], src[i]}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	for _, p := range pairs {
		d, s := p[0], p[1]
		order = append(order, 0)
		copy(order[d+1:], order[d:])
		order[d] = s
	}

	return order, nil
}

// MoveAxes moves axis src[i] of t to position dst[i] (numpy.moveaxis).
// Complexity: O(len(t)).
func MoveAxes(t *Dense, src, dst []int) (*Dense, error) {
	if t == nil {
		return nil, fmt.Errorf("MoveAxes: %w", ErrNilTensor)
	}
	perm, err := MoveAxesPerm(t.Rank(), src, dst)
	if err != nil {
		return nil, fmt.Errorf("MoveAxes: %w", err)
	}
	return Transpose(t, perm)
}
