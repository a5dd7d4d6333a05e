// SPDX-License-Identifier: MIT

package statevec

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// MaxQubits bounds the register size accepted by constructors.
// 2^30 amplitudes occupy 16 GiB.
const MaxQubits = 30

// DefaultEpsilon is the normalization tolerance used by IsNormalized callers
// that have no policy of their own.
const DefaultEpsilon = 1e-9

// Vector is the amplitude buffer of an n-qubit register, len(v) == 2^n.
type Vector []complex128

// New returns |0…0⟩ on n qubits: amplitude 1 at index 0, 0 elsewhere.
// Errors: ErrInvalidDimension if n < 1 or n > MaxQubits.
// Complexity: O(2^n).
func New(n int) (Vector, error) {
	if n < 1 || n > MaxQubits {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidDimension)
	}
	v := make(Vector, 1<<n)
	v[0] = 1

	return v, nil
}

// Basis returns the computational basis state |index⟩ on n qubits.
// Errors: ErrInvalidDimension, ErrIndexOutOfRange.
func Basis(n, index int) (Vector, error) {
	v, err := New(n)
	if err != nil {
		return nil, fmt.Errorf("Basis: %w", err)
	}
	if index < 0 || index >= len(v) {
		return nil, fmt.Errorf("Basis(%d,%d): %w", n, index, ErrIndexOutOfRange)
	}
	v[0] = 0
	v[index] = 1

	return v, nil
}

// FromAmplitudes validates amps and returns an independent copy.
// The length must be 2^n with 1 <= n <= MaxQubits and Σ|a|² must be within
// eps of 1.
// Errors: ErrNotPowerOfTwo, ErrInvalidDimension, ErrNotNormalized.
func FromAmplitudes(amps []complex128, eps float64) (Vector, error) {
	n, err := QubitsFor(len(amps))
	if err != nil {
		return nil, fmt.Errorf("FromAmplitudes: %w", err)
	}
	if n > MaxQubits {
		return nil, fmt.Errorf("FromAmplitudes: %d qubits: %w", n, ErrInvalidDimension)
	}
	v := make(Vector, len(amps))
	copy(v, amps)
	if !v.IsNormalized(eps) {
		return nil, fmt.Errorf("FromAmplitudes: norm²=%g: %w", v.Norm2(), ErrNotNormalized)
	}

	return v, nil
}

// QubitsFor returns n such that length == 2^n, n >= 1.
// Errors: ErrNotPowerOfTwo.
func QubitsFor(length int) (int, error) {
	if length < 2 || length&(length-1) != 0 {
		return 0, fmt.Errorf("length %d: %w", length, ErrNotPowerOfTwo)
	}

	return bits.TrailingZeros(uint(length)), nil
}

// Qubits returns n for len(v) == 2^n, or -1 if the length is not a power of two.
func (v Vector) Qubits() int {
	n, err := QubitsFor(len(v))
	if err != nil {
		return -1
	}

	return n
}

// Probabilities returns |v[i]|² for every basis state.
// Complexity: O(2^n).
func (v Vector) Probabilities() []float64 {
	p := make([]float64, len(v))
	for i, a := range v {
		p[i] = real(a)*real(a) + imag(a)*imag(a)
	}

	return p
}

// Norm2 returns Σ|v[i]|².
func (v Vector) Norm2() float64 {
	return floats.Sum(v.Probabilities())
}

// IsNormalized reports |Σ|v[i]|² - 1| <= eps.
func (v Vector) IsNormalized(eps float64) bool {
	return math.Abs(v.Norm2()-1) <= eps
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Label formats a basis index as an n-character bitstring, qubit 0 first.
// Label(2, 2) == "10".
func Label(index, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for q := 0; q < n; q++ {
		if index>>(n-1-q)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// Bit returns the value of qubit q in basis index for an n-qubit register.
func Bit(index, n, q int) int {
	return index >> (n - 1 - q) & 1
}
