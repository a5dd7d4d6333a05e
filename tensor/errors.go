// SPDX-License-Identifier: MIT

package tensor

import "errors"

var (
	// ErrBadShape indicates an empty shape, a non-positive extent, or a data
	// length that does not match the product of extents.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrAxisOutOfRange indicates an axis index outside [0, rank).
	ErrAxisOutOfRange = errors.New("tensor: axis out of range")

	// ErrDuplicateAxis indicates an axis listed twice in a permutation or axis list.
	ErrDuplicateAxis = errors.New("tensor: duplicate axis")

	// ErrDimensionMismatch indicates paired axes with different extents or
	// axis lists of different lengths.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrNilTensor indicates a nil *Dense argument.
	ErrNilTensor = errors.New("tensor: nil tensor")
)
