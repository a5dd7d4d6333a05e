// SPDX-License-Identifier: MIT
// Package cmatrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an op tag via
// matrixErrorf); tests match them with errors.Is.

package cmatrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0)
	// or when row slices passed to NewFromRows are ragged.
	ErrBadShape = errors.New("cmatrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("cmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols != b.Rows, or MatVec with len(x) != Cols.
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("cmatrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (or nil vector) was passed.
	ErrNilMatrix = errors.New("cmatrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf component in a value or tolerance.
	ErrNaNInf = errors.New("cmatrix: NaN or Inf encountered")
)
