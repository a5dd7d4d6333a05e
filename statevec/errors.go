// SPDX-License-Identifier: MIT

package statevec

import "errors"

var (
	// ErrInvalidDimension indicates a qubit count outside [1, MaxQubits].
	ErrInvalidDimension = errors.New("statevec: invalid number of qubits")

	// ErrNotPowerOfTwo indicates an amplitude slice whose length is not 2^n, n >= 1.
	ErrNotPowerOfTwo = errors.New("statevec: length is not a power of two")

	// ErrNotNormalized indicates Σ|a|² differs from 1 by more than the tolerance.
	ErrNotNormalized = errors.New("statevec: amplitudes are not normalized")

	// ErrIndexOutOfRange indicates a basis index outside [0, 2^n).
	ErrIndexOutOfRange = errors.New("statevec: basis index out of range")
)
