// SPDX-License-Identifier: MIT

package gates

import (
	"fmt"

	"github.com/katalvlaran/qsim/cmatrix"
)

// Gate is an immutable named unitary on one or two qubits.
// The zero value is not a valid gate; use the catalog or New.
type Gate struct {
	name   string
	qubits int
	m      *cmatrix.Dense
}

// Name returns the gate's display name.
func (g Gate) Name() string { return g.name }

// Qubits returns the number of qubits the gate acts on (1 or 2).
func (g Gate) Qubits() int { return g.qubits }

// Dim returns the matrix dimension 2^Qubits(), or 0 for the zero Gate.
func (g Gate) Dim() int {
	if g.m == nil {
		return 0
	}
	return g.m.Rows()
}

// IsZero reports whether g is the uninitialised zero value.
func (g Gate) IsZero() bool { return g.m == nil }

// At returns the (i, j) entry.
func (g Gate) At(i, j int) (complex128, error) {
	if g.m == nil {
		return 0, fmt.Errorf("Gate.At: %w", cmatrix.ErrNilMatrix)
	}
	return g.m.At(i, j)
}

// Matrix returns a copy of the operator; mutating it does not affect g.
func (g Gate) Matrix() *cmatrix.Dense {
	if g.m == nil {
		return nil
	}
	return g.m.Clone()
}

// IsUnitary reports U†U = I within the cmatrix options' epsilon.
func (g Gate) IsUnitary(opts ...cmatrix.Option) (bool, error) {
	return cmatrix.IsUnitary(g.m, opts...)
}

// Entries returns the gate as row-major rows; a copy.
func (g Gate) Entries() [][]complex128 {
	if g.m == nil {
		return nil
	}
	rows := make([][]complex128, g.m.Rows())
	for i := range rows {
		rows[i], _ = g.m.Row(i) // safe: i within bounds
	}
	return rows
}

// Flat returns the matrix entries in row-major order; a copy.
func (g Gate) Flat() []complex128 {
	var out []complex128
	for _, row := range g.Entries() {
		out = append(out, row...)
	}
	return out
}

func (g Gate) String() string {
	return fmt.Sprintf("%s(%dq)", g.name, g.qubits)
}

// Option configures New.
type Option func(*options)

type options struct {
	checkUnitary bool
	cm           []cmatrix.Option
}

// WithUnitaryCheck makes New reject non-unitary matrices with ErrNonUnitaryGate.
// cmatrix options (e.g. cmatrix.WithEpsilon) tune the tolerance.
func WithUnitaryCheck(opts ...cmatrix.Option) Option {
	return func(o *options) {
		o.checkUnitary = true
		o.cm = opts
	}
}

// New builds a gate from literal rows. The rows are copied.
// Errors: ErrBadGateShape unless 2x2 or 4x4; ErrNonUnitaryGate under WithUnitaryCheck.
func New(name string, rows [][]complex128, opts ...Option) (Gate, error) {
	m, err := cmatrix.NewFromRows(rows)
	if err != nil {
		return Gate{}, fmt.Errorf("gates.New(%s): %w: %w", name, ErrBadGateShape, err)
	}
	return fromDense(name, m, opts...)
}

// FromMatrix builds a gate from a copy of m.
// Errors: as New.
func FromMatrix(name string, m *cmatrix.Dense, opts ...Option) (Gate, error) {
	if err := cmatrix.ValidateNotNil(m); err != nil {
		return Gate{}, fmt.Errorf("gates.FromMatrix(%s): %w", name, err)
	}
	return fromDense(name, m.Clone(), opts...)
}

// fromDense takes ownership of m.
func fromDense(name string, m *cmatrix.Dense, opts ...Option) (Gate, error) {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	var qubits int
	switch {
	case m.Rows() == 2 && m.Cols() == 2:
		qubits = 1
	case m.Rows() == 4 && m.Cols() == 4:
		qubits = 2
	default:
		return Gate{}, fmt.Errorf("gates.New(%s): %dx%d: %w", name, m.Rows(), m.Cols(), ErrBadGateShape)
	}

	if o.checkUnitary {
		ok, err := cmatrix.IsUnitary(m, o.cm...)
		if err != nil {
			return Gate{}, fmt.Errorf("gates.New(%s): %w", name, err)
		}
		if !ok {
			return Gate{}, fmt.Errorf("gates.New(%s): %w", name, ErrNonUnitaryGate)
		}
	}

	return Gate{name: name, qubits: qubits, m: m}, nil
}

// mustGate is used only for the package-level catalog literals.
func mustGate(name string, rows [][]complex128) Gate {
	g, err := New(name, rows)
	if err != nil {
		panic(err)
	}
	return g
}
