// Package statevec holds the amplitude buffer of an n-qubit register.
//
// A Vector is a plain []complex128 of length 2^n. Entry i is the amplitude
// of the basis state whose n-bit label is the binary expansion of i, with
// qubit 0 as the most significant bit: for n=2, index 2 (binary 10) is
// the state |10⟩ where qubit 0 is 1 and qubit 1 is 0.
//
// The package only constructs and inspects vectors. Gate application lives
// in package engine, which mutates a Vector in place.
//
// Invariant: Σ|v[i]|² = 1 within floating-point tolerance. New and Basis
// produce exactly normalized vectors; FromAmplitudes verifies it.
package statevec
