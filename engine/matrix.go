// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/katalvlaran/qsim/cmatrix"
	"github.com/katalvlaran/qsim/gates"
	"github.com/katalvlaran/qsim/statevec"
)

// MatrixEngine materialises the full operator and multiplies it against v.
// Reference strategy: simple, O(4^n), bounded by MaxQubits.
type MatrixEngine struct {
	opts Options
}

// NewMatrixEngine returns a MatrixEngine configured by opts.
func NewMatrixEngine(opts ...Option) *MatrixEngine {
	return &MatrixEngine{opts: gatherOptions(opts...)}
}

// Name returns "matrix".
func (e *MatrixEngine) Name() string { return NameMatrix }

// MaxQubits returns the largest register this engine accepts.
func (e *MatrixEngine) MaxQubits() int { return e.opts.maxQubits }

// Apply applies the 2x2 gate g to qubit k of the n-qubit vector v.
// Stage 1 (Validate): len(v)==2^n, k in [0,n), g is 2x2, n within MaxQubits.
// Stage 2 (Build): F = ⊗ F_q with F_k = g, I₂ elsewhere.
// Stage 3 (Execute): v ← F·v, written back only on success.
// Complexity: O(4^n) time and memory.
func (e *MatrixEngine) Apply(v statevec.Vector, g gates.Gate, n, k int) error {
	if err := e.validate(v, g, n, k); err != nil {
		return engineErrorf("MatrixEngine", "Apply", err)
	}
	op, err := FullOperator(g, n, k)
	if err != nil {
		return engineErrorf("MatrixEngine", "Apply", err)
	}
	return e.execute("Apply", op, v, g, n)
}

// ApplyTwo applies the 4x4 gate g to qubits (q0, q1) of v.
// Complexity: O(nnz(g) · 4^n) time, O(4^n) memory.
func (e *MatrixEngine) ApplyTwo(v statevec.Vector, g gates.Gate, n, q0, q1 int) error {
	if err := e.validate(v, g, n, q0, q1); err != nil {
		return engineErrorf("MatrixEngine", "ApplyTwo", err)
	}
	op, err := FullOperatorTwo(g, n, q0, q1)
	if err != nil {
		return engineErrorf("MatrixEngine", "ApplyTwo", err)
	}
	return e.execute("ApplyTwo", op, v, g, n)
}

func (e *MatrixEngine) validate(v statevec.Vector, g gates.Gate, n int, qs ...int) error {
	if err := validateCall(e.opts, v, g, n, qs...); err != nil {
		return err
	}
	if n > e.opts.maxQubits {
		return fmt.Errorf("n=%d exceeds max %d: %w", n, e.opts.maxQubits, ErrOperatorTooLarge)
	}
	return nil
}

func (e *MatrixEngine) execute(method string, op *cmatrix.Dense, v statevec.Vector, g gates.Gate, n int) error {
	e.opts.log.V(1).Info("materialised full operator",
		"gate", g.Name(), "qubits", n, "rows", op.Rows(), "cols", op.Cols())

	out, err := cmatrix.MatVec(op, v, cmatrix.WithWorkers(e.opts.workers))
	if err != nil {
		return engineErrorf("MatrixEngine", method, err)
	}
	copy(v, out)
	return nil
}
