// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/katalvlaran/qsim/gates"
	"github.com/katalvlaran/qsim/statevec"
	"github.com/katalvlaran/qsim/tensor"
)

// TensorEngine contracts the gate against the target axes of v viewed as a
// rank-n tensor with every extent 2. O(2^n) per gate.
type TensorEngine struct {
	opts Options
}

// NewTensorEngine returns a TensorEngine configured by opts.
// WithMaxQubits does not apply.
func NewTensorEngine(opts ...Option) *TensorEngine {
	return &TensorEngine{opts: gatherOptions(opts...)}
}

// Name returns "tensor".
func (e *TensorEngine) Name() string { return NameTensor }

// Apply applies the 2x2 gate g to qubit k of the n-qubit vector v.
// Stage 1 (Validate): shared with MatrixEngine.
// Stage 2 (Contract): r = tensordot(G, ψ, [1], [k]); the new axis lands at 0.
// Stage 3 (Restore): move axis 0 back to k and flatten into v.
// Complexity: O(2^n) time and memory.
func (e *TensorEngine) Apply(v statevec.Vector, g gates.Gate, n, k int) error {
	if err := validateCall(e.opts, v, g, n, k); err != nil {
		return engineErrorf("TensorEngine", "Apply", err)
	}
	if err := e.contract(v, g, n, []int{1}, []int{k}, 2, 2); err != nil {
		return engineErrorf("TensorEngine", "Apply", err)
	}
	return nil
}

// ApplyTwo applies the 4x4 gate g to qubits (q0, q1) of v. The gate is
// reshaped to (2,2,2,2) with axes (out0, out1, in0, in1); in0/in1 are
// contracted against q0/q1 and out0/out1 moved back into their places.
func (e *TensorEngine) ApplyTwo(v statevec.Vector, g gates.Gate, n, q0, q1 int) error {
	if err := validateCall(e.opts, v, g, n, q0, q1); err != nil {
		return engineErrorf("TensorEngine", "ApplyTwo", err)
	}
	if err := e.contract(v, g, n, []int{2, 3}, []int{q0, q1}, 2, 2, 2, 2); err != nil {
		return engineErrorf("TensorEngine", "ApplyTwo", err)
	}
	return nil
}

// contract runs tensordot + moveaxis and copies the result into v.
// The gate's output axes are 0..len(targets)-1.
func (e *TensorEngine) contract(v statevec.Vector, g gates.Gate, n int, gateAxes, targets []int, gateShape ...int) error {
	gt, err := tensor.FromSlice(g.Flat(), gateShape...)
	if err != nil {
		return err
	}
	psi, err := tensor.FromSlice(v, tensor.Qubits(n)...)
	if err != nil {
		return err
	}

	res, err := tensor.Contract(gt, psi, gateAxes, targets, tensor.WithWorkers(e.opts.workers))
	if err != nil {
		return err
	}
	src := make([]int, len(targets))
	for i := range src {
		src[i] = i
	}
	if res, err = tensor.MoveAxes(res, src, targets); err != nil {
		return err
	}
	e.opts.log.V(1).Info("contracted gate",
		"gate", g.Name(), "qubits", n, "targets", targets, "elements", res.Len())

	copy(v, res.Data())
	return nil
}
