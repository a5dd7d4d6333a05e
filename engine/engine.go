// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/katalvlaran/qsim/cmatrix"
	"github.com/katalvlaran/qsim/gates"
	"github.com/katalvlaran/qsim/statevec"
)

// Engine names accepted by New.
const (
	NameMatrix = "matrix"
	NameTensor = "tensor"
)

// Engine applies single- and two-qubit gates to an n-qubit vector in place.
// On error v is left unmodified.
type Engine interface {
	// Name identifies the strategy ("matrix" or "tensor").
	Name() string
	// Apply applies a 2x2 gate to qubit k.
	Apply(v statevec.Vector, g gates.Gate, n, k int) error
	// ApplyTwo applies a 4x4 gate to qubits (q0, q1); q0 is the gate's first qubit.
	ApplyTwo(v statevec.Vector, g gates.Gate, n, q0, q1 int) error
}

var (
	_ Engine = (*MatrixEngine)(nil)
	_ Engine = (*TensorEngine)(nil)
)

// New returns the engine registered under name.
func New(name string, opts ...Option) (Engine, error) {
	switch name {
	case NameMatrix:
		return NewMatrixEngine(opts...), nil
	case NameTensor:
		return NewTensorEngine(opts...), nil
	default:
		return nil, fmt.Errorf("New(%q): %w", name, ErrUnknownEngine)
	}
}

// ApplyMatrix applies g to qubit k of a copy of v using a default MatrixEngine.
// v itself is never modified.
func ApplyMatrix(v statevec.Vector, g gates.Gate, n, k int) (statevec.Vector, error) {
	out := v.Clone()
	if err := NewMatrixEngine().Apply(out, g, n, k); err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyTensor applies g to qubit k of a copy of v using a default TensorEngine.
// v itself is never modified.
func ApplyTensor(v statevec.Vector, g gates.Gate, n, k int) (statevec.Vector, error) {
	out := v.Clone()
	if err := NewTensorEngine().Apply(out, g, n, k); err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyMatrixTwo applies the 4x4 gate g to qubits (q0, q1) of a copy of v
// using a default MatrixEngine.
func ApplyMatrixTwo(v statevec.Vector, g gates.Gate, n, q0, q1 int) (statevec.Vector, error) {
	out := v.Clone()
	if err := NewMatrixEngine().ApplyTwo(out, g, n, q0, q1); err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyTensorTwo is ApplyMatrixTwo on a default TensorEngine.
func ApplyTensorTwo(v statevec.Vector, g gates.Gate, n, q0, q1 int) (statevec.Vector, error) {
	out := v.Clone()
	if err := NewTensorEngine().ApplyTwo(out, g, n, q0, q1); err != nil {
		return nil, err
	}
	return out, nil
}

// engineErrorf tags err with the engine and method.
func engineErrorf(engine, method string, err error) error {
	return fmt.Errorf("%s.%s: %w", engine, method, err)
}

// validateBuffer checks 1 <= n <= statevec.MaxQubits and len(v) == 2^n.
func validateBuffer(v statevec.Vector, n int) error {
	if n < 1 || n > statevec.MaxQubits {
		return fmt.Errorf("n=%d: %w", n, statevec.ErrInvalidDimension)
	}
	if len(v) != 1<<n {
		return fmt.Errorf("len(v)=%d, want 2^%d=%d: %w", len(v), n, 1<<n, ErrDimensionMismatch)
	}
	return nil
}

// validateQubits checks every index is in [0, n) and all are distinct.
func validateQubits(n int, qs ...int) error {
	for i, q := range qs {
		if q < 0 || q >= n {
			return fmt.Errorf("qubit %d not in [0,%d): %w", q, n, ErrInvalidQubitIndex)
		}
		for _, p := range qs[:i] {
			if p == q {
				return fmt.Errorf("qubit %d repeated: %w", q, ErrInvalidQubitIndex)
			}
		}
	}
	return nil
}

// validateGate checks g is initialised and acts on exactly qubits qubits.
func validateGate(g gates.Gate, qubits int) error {
	if g.IsZero() {
		return fmt.Errorf("zero gate: %w", ErrDimensionMismatch)
	}
	if g.Qubits() != qubits {
		return fmt.Errorf("gate %s is %dx%d, want %dx%d: %w",
			g.Name(), g.Dim(), g.Dim(), 1<<qubits, 1<<qubits, ErrDimensionMismatch)
	}
	return nil
}

// validateCall is the shared pre-mutation check for both engines.
func validateCall(o Options, v statevec.Vector, g gates.Gate, n int, qs ...int) error {
	if err := validateBuffer(v, n); err != nil {
		return err
	}
	if err := validateQubits(n, qs...); err != nil {
		return err
	}
	if err := validateGate(g, len(qs)); err != nil {
		return err
	}
	if o.unitaryCheck {
		ok, err := g.IsUnitary(cmatrix.WithEpsilon(o.eps))
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("gate %s: %w", g.Name(), ErrNonUnitaryGate)
		}
	}
	return nil
}
