// SPDX-License-Identifier: MIT

package engine

import (
	"errors"

	"github.com/katalvlaran/qsim/gates"
)

var (
	// ErrInvalidQubitIndex indicates a target/control index outside [0, n),
	// or equal indices for a two-qubit gate.
	ErrInvalidQubitIndex = errors.New("engine: invalid qubit index")

	// ErrDimensionMismatch indicates a gate of the wrong size for the call,
	// or a vector whose length is not 2^n.
	ErrDimensionMismatch = errors.New("engine: dimension mismatch")

	// ErrOperatorTooLarge indicates the full operator would exceed the
	// MatrixEngine's MaxQubits budget.
	ErrOperatorTooLarge = errors.New("engine: full operator too large")

	// ErrUnknownEngine indicates an unrecognised name passed to New.
	ErrUnknownEngine = errors.New("engine: unknown engine")
)

// ErrNonUnitaryGate is returned under WithUnitaryCheck; it is the gates sentinel
// so errors.Is matches either name.
var ErrNonUnitaryGate = gates.ErrNonUnitaryGate
