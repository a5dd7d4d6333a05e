// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qsim/engine"
	"github.com/katalvlaran/qsim/gates"
	"github.com/katalvlaran/qsim/statevec"
	"go.uber.org/multierr"
)

// NoControl marks a single-qubit Op.
const NoControl = -1

// Op is one gate application. For a two-qubit gate Control is the gate's
// first qubit and Target its second; for a one-qubit gate Control is NoControl.
type Op struct {
	Gate    gates.Gate
	Target  int
	Control int
}

func (op Op) String() string {
	if op.Control == NoControl {
		return fmt.Sprintf("%s q%d", op.Gate.Name(), op.Target)
	}
	return fmt.Sprintf("%s q%d,q%d", op.Gate.Name(), op.Control, op.Target)
}

// validate checks op against an n-qubit register.
func (op Op) validate(n int) error {
	switch {
	case op.Gate.IsZero():
		return fmt.Errorf("zero gate: %w", engine.ErrDimensionMismatch)
	case op.Control == NoControl && op.Gate.Qubits() != 1:
		return fmt.Errorf("%s needs a control: %w", op.Gate.Name(), ErrInvalidOp)
	case op.Control != NoControl && op.Gate.Qubits() != 2:
		return fmt.Errorf("%s takes no control: %w", op.Gate.Name(), ErrInvalidOp)
	}
	if op.Target < 0 || op.Target >= n {
		return fmt.Errorf("target %d not in [0,%d): %w", op.Target, n, engine.ErrInvalidQubitIndex)
	}
	if op.Control != NoControl {
		if op.Control < 0 || op.Control >= n {
			return fmt.Errorf("control %d not in [0,%d): %w", op.Control, n, engine.ErrInvalidQubitIndex)
		}
		if op.Control == op.Target {
			return fmt.Errorf("control equals target %d: %w", op.Target, engine.ErrInvalidQubitIndex)
		}
	}
	return nil
}

// Circuit is an ordered list of Ops on n qubits. Not safe for concurrent
// mutation; a finished Circuit may be Run concurrently on distinct vectors
// and engines.
type Circuit struct {
	n   int
	ops []Op
	err error // builder errors, reported by Validate
}

// New returns an empty circuit on n qubits. An out-of-range n is reported
// by Validate.
func New(n int) *Circuit {
	c := &Circuit{n: n}
	if n < 1 || n > statevec.MaxQubits {
		c.err = fmt.Errorf("circuit.New(%d): %w", n, statevec.ErrInvalidDimension)
	}
	return c
}

// Qubits returns the register width.
func (c *Circuit) Qubits() int { return c.n }

// Len returns the number of ops.
func (c *Circuit) Len() int { return len(c.ops) }

// Ops returns a copy of the op list.
func (c *Circuit) Ops() []Op { return append([]Op(nil), c.ops...) }

// Append adds a raw Op.
func (c *Circuit) Append(op Op) *Circuit {
	c.ops = append(c.ops, op)
	return c
}

// Apply adds a one-qubit gate on target.
func (c *Circuit) Apply(g gates.Gate, target int) *Circuit {
	return c.Append(Op{Gate: g, Target: target, Control: NoControl})
}

// ApplyTwo adds a two-qubit gate on (q0, q1).
func (c *Circuit) ApplyTwo(g gates.Gate, q0, q1 int) *Circuit {
	return c.Append(Op{Gate: g, Control: q0, Target: q1})
}

// Controlled adds the controlled version of the one-qubit gate u.
func (c *Circuit) Controlled(u gates.Gate, control, target int) *Circuit {
	cu, err := gates.Controlled(u)
	if err != nil {
		c.err = multierr.Append(c.err, fmt.Errorf("op %d: %w", len(c.ops), err))
		cu = u // keeps the index sequence; Validate reports the op
	}
	return c.Append(Op{Gate: cu, Control: control, Target: target})
}

// H adds a Hadamard on target.
func (c *Circuit) H(target int) *Circuit { return c.Apply(gates.H, target) }

// X adds a bit flip on target.
func (c *Circuit) X(target int) *Circuit { return c.Apply(gates.X, target) }

// Z adds a phase flip on target.
func (c *Circuit) Z(target int) *Circuit { return c.Apply(gates.Z, target) }

// CNOT adds a controlled-NOT.
func (c *Circuit) CNOT(control, target int) *Circuit {
	return c.ApplyTwo(gates.CNOT, control, target)
}

// Validate reports every problem in the circuit, combined.
func (c *Circuit) Validate() error {
	err := c.err
	if c.n >= 1 && c.n <= statevec.MaxQubits {
		for i, op := range c.ops {
			if opErr := op.validate(c.n); opErr != nil {
				err = multierr.Append(err, fmt.Errorf("op %d (%s): %w", i, op, opErr))
			}
		}
	}
	return err
}

// Run validates the whole circuit, then applies each op to v in order.
// An invalid circuit or a mismatched v leaves v untouched. An engine
// failure midway returns the failing op's index and also leaves v untouched:
// ops run on a scratch copy that is written back only after the last succeeds.
func (c *Circuit) Run(e engine.Engine, v statevec.Vector) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("circuit.Run: %w", err)
	}
	if len(v) != 1<<c.n {
		return fmt.Errorf("circuit.Run: len(v)=%d, want %d: %w", len(v), 1<<c.n, engine.ErrDimensionMismatch)
	}
	w := v.Clone()
	for i, op := range c.ops {
		var err error
		if op.Control == NoControl {
			err = e.Apply(w, op.Gate, c.n, op.Target)
		} else {
			err = e.ApplyTwo(w, op.Gate, c.n, op.Control, op.Target)
		}
		if err != nil {
			return fmt.Errorf("circuit.Run: op %d (%s): %w", i, op, err)
		}
	}
	copy(v, w)
	return nil
}

// Simulate runs c on a fresh |0…0⟩ register and returns the final state.
func Simulate(c *Circuit, e engine.Engine) (statevec.Vector, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("circuit.Simulate: %w", err)
	}
	v, err := statevec.New(c.n)
	if err != nil {
		return nil, fmt.Errorf("circuit.Simulate: %w", err)
	}
	if err := c.Run(e, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (c *Circuit) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "circuit(%d)", c.n)
	for _, op := range c.ops {
		sb.WriteString("; ")
		sb.WriteString(op.String())
	}
	return sb.String()
}
