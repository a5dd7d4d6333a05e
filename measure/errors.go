// SPDX-License-Identifier: MIT

package measure

import "errors"

var (
	// ErrInvalidSampleCount indicates a negative number of shots.
	ErrInvalidSampleCount = errors.New("measure: invalid sample count")

	// ErrInvalidDistribution indicates probabilities that are NaN, infinite,
	// or do not sum to 1 within epsilon (or to anything positive under
	// WithRenormalize).
	ErrInvalidDistribution = errors.New("measure: invalid probability distribution")

	// ErrNilSource indicates a nil random source.
	ErrNilSource = errors.New("measure: nil random source")

	// ErrDimensionMismatch indicates an operator or vector of the wrong size.
	ErrDimensionMismatch = errors.New("measure: dimension mismatch")

	// ErrNonHermitianOperator indicates O ≠ O† (WithHermitianCheck) or a
	// non-negligible imaginary expectation under RejectImaginary.
	ErrNonHermitianOperator = errors.New("measure: non-Hermitian operator")

	// ErrSampleOutOfRange indicates a sample label outside [0, dim).
	ErrSampleOutOfRange = errors.New("measure: sample out of range")
)
