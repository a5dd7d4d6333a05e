// SPDX-License-Identifier: MIT

package gates

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/qsim/cmatrix"
)

var invSqrt2 = complex(1/math.Sqrt2, 0)

// The fixed catalog. Values are immutable and safe for concurrent use.
var (
	// I is the one-qubit identity.
	I = mustGate("I", [][]complex128{
		{1, 0},
		{0, 1},
	})

	// X is the bit-flip (Pauli-X, NOT).
	X = mustGate("X", [][]complex128{
		{0, 1},
		{1, 0},
	})

	// Y is Pauli-Y.
	Y = mustGate("Y", [][]complex128{
		{0, -1i},
		{1i, 0},
	})

	// Z is the phase-flip (Pauli-Z).
	Z = mustGate("Z", [][]complex128{
		{1, 0},
		{0, -1},
	})

	// H is the Hadamard gate.
	H = mustGate("H", [][]complex128{
		{invSqrt2, invSqrt2},
		{invSqrt2, -invSqrt2},
	})

	// S is the phase gate diag(1, i).
	S = mustGate("S", [][]complex128{
		{1, 0},
		{0, 1i},
	})

	// T is the π/8 gate diag(1, e^{iπ/4}).
	T = mustGate("T", [][]complex128{
		{1, 0},
		{0, cmplx.Exp(complex(0, math.Pi/4))},
	})

	// CNOT flips the second qubit when the first is 1.
	CNOT = mustGate("CNOT", [][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})

	// CZ applies Z to the second qubit when the first is 1.
	CZ = mustGate("CZ", [][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, -1},
	})

	// SWAP exchanges the two qubits.
	SWAP = mustGate("SWAP", [][]complex128{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	})
)

var catalog = map[string]Gate{
	"I": I, "X": X, "Y": Y, "Z": Z, "H": H, "S": S, "T": T,
	"CNOT": CNOT, "CZ": CZ, "SWAP": SWAP,
}

// Lookup returns the catalog gate with the given name.
func Lookup(name string) (Gate, bool) {
	g, ok := catalog[name]
	return g, ok
}

// Names returns the catalog names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RX returns exp(-iθX/2).
func RX(theta float64) Gate {
	c, s := complex(math.Cos(theta/2), 0), complex(0, -math.Sin(theta/2))
	return mustGate(fmt.Sprintf("RX(%g)", theta), [][]complex128{
		{c, s},
		{s, c},
	})
}

// RY returns exp(-iθY/2).
func RY(theta float64) Gate {
	c, s := complex(math.Cos(theta/2), 0), complex(math.Sin(theta/2), 0)
	return mustGate(fmt.Sprintf("RY(%g)", theta), [][]complex128{
		{c, -s},
		{s, c},
	})
}

// RZ returns exp(-iθZ/2) = diag(e^{-iθ/2}, e^{iθ/2}).
func RZ(theta float64) Gate {
	return mustGate(fmt.Sprintf("RZ(%g)", theta), [][]complex128{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	})
}

// Phase returns diag(1, e^{iθ}).
func Phase(theta float64) Gate {
	return mustGate(fmt.Sprintf("P(%g)", theta), [][]complex128{
		{1, 0},
		{0, cmplx.Exp(complex(0, theta))},
	})
}

// Controlled returns the two-qubit gate |0⟩⟨0|⊗I + |1⟩⟨1|⊗U.
// The control is the first (more significant) qubit.
// Errors: ErrNotSingleQubit if u is not a one-qubit gate.
func Controlled(u Gate) (Gate, error) {
	if u.qubits != 1 {
		return Gate{}, fmt.Errorf("Controlled(%s): %w", u.name, ErrNotSingleQubit)
	}
	rows := [][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			rows[2+i][2+j], _ = u.m.At(i, j) // safe: 2x2
		}
	}
	return New("C"+u.name, rows)
}

// PauliString builds the n-qubit observable for a word over {I,X,Y,Z},
// e.g. "ZZ" = Z⊗Z. Character 0 acts on qubit 0.
// Errors: ErrUnknownPauli, cmatrix.ErrBadShape for an empty word.
func PauliString(word string) (*cmatrix.Dense, error) {
	factors := make([]*cmatrix.Dense, 0, len(word))
	for pos, r := range word {
		var g Gate
		switch r {
		case 'I':
			g = I
		case 'X':
			g = X
		case 'Y':
			g = Y
		case 'Z':
			g = Z
		default:
			return nil, fmt.Errorf("PauliString(%q): %q at %d: %w", word, r, pos, ErrUnknownPauli)
		}
		factors = append(factors, g.m)
	}
	op, err := cmatrix.KroneckerChain(factors...)
	if err != nil {
		return nil, fmt.Errorf("PauliString(%q): %w", word, err)
	}
	return op, nil
}
