// SPDX-License-Identifier: MIT

package gates

import "errors"

var (
	// ErrBadGateShape indicates a matrix that is not 2x2 or 4x4.
	ErrBadGateShape = errors.New("gates: gate must be 2x2 or 4x4")

	// ErrNonUnitaryGate indicates U†U != I within the configured epsilon.
	ErrNonUnitaryGate = errors.New("gates: gate is not unitary")

	// ErrNotSingleQubit indicates a two-qubit gate where a one-qubit gate was required.
	ErrNotSingleQubit = errors.New("gates: single-qubit gate required")

	// ErrUnknownPauli indicates a Pauli-string character outside {I,X,Y,Z}.
	ErrUnknownPauli = errors.New("gates: unknown Pauli symbol")
)
