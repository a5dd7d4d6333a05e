// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qsim/cmatrix"
	"github.com/katalvlaran/qsim/statevec"
)

// Estimator computes operator expectation values.
type Estimator struct {
	opts Options
}

// NewEstimator returns an Estimator configured by opts (WithEpsilon,
// WithImaginaryPolicy, WithHermitianCheck, WithWorkers, WithLogger).
func NewEstimator(opts ...Option) *Estimator {
	return &Estimator{opts: gatherOptions(opts...)}
}

// ExpectationComplex returns ⟨ψ|O|ψ⟩ = Σ_i conj(v[i])·(O·v)[i] without
// applying the imaginary policy. v is not modified.
// Errors: cmatrix.ErrNilMatrix, ErrDimensionMismatch, ErrNonHermitianOperator
// (WithHermitianCheck only).
// Complexity: O(d²) for d = len(v).
func (e *Estimator) ExpectationComplex(v statevec.Vector, op *cmatrix.Dense) (complex128, error) {
	if err := cmatrix.ValidateNotNil(op); err != nil {
		return 0, fmt.Errorf("Expectation: %w", err)
	}
	if _, err := statevec.QubitsFor(len(v)); err != nil {
		return 0, fmt.Errorf("Expectation: %w: %w", ErrDimensionMismatch, err)
	}
	if op.Rows() != len(v) || op.Cols() != len(v) {
		return 0, fmt.Errorf("Expectation: operator %dx%d, vector %d: %w",
			op.Rows(), op.Cols(), len(v), ErrDimensionMismatch)
	}
	if e.opts.hermitianCheck {
		ok, err := cmatrix.IsHermitian(op, cmatrix.WithEpsilon(e.opts.eps))
		if err != nil {
			return 0, fmt.Errorf("Expectation: %w", err)
		}
		if !ok {
			return 0, fmt.Errorf("Expectation: %w", ErrNonHermitianOperator)
		}
	}

	ov, err := cmatrix.MatVec(op, v, cmatrix.WithWorkers(e.opts.workers))
	if err != nil {
		return 0, fmt.Errorf("Expectation: %w", err)
	}
	var acc complex128
	for i, a := range v {
		acc += cmplx.Conj(a) * ov[i]
	}
	return acc, nil
}

// Expectation returns Re⟨ψ|O|ψ⟩, handling a non-negligible imaginary part
// according to the ImaginaryPolicy.
func (e *Estimator) Expectation(v statevec.Vector, op *cmatrix.Dense) (float64, error) {
	z, err := e.ExpectationComplex(v, op)
	if err != nil {
		return 0, err
	}
	if im := imag(z); math.Abs(im) > e.opts.eps {
		switch e.opts.policy {
		case RejectImaginary:
			return 0, fmt.Errorf("Expectation: imaginary part %g: %w", im, ErrNonHermitianOperator)
		case WarnImaginary:
			e.opts.log.Info("discarding imaginary part of expectation value",
				"real", real(z), "imag", im)
		}
	}
	return real(z), nil
}

// Expectation computes Re⟨ψ|O|ψ⟩ with a default Estimator.
func Expectation(v statevec.Vector, op *cmatrix.Dense) (float64, error) {
	return NewEstimator().Expectation(v, op)
}
