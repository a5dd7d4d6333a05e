// Package gates is the catalog of quantum gate operators.
//
// A Gate is an immutable 2x2 (one-qubit) or 4x4 (two-qubit) complex matrix
// with a name. The fixed catalog (I, X, H, Z, CNOT, plus Y, S, T, SWAP and
// CZ) is built once at package initialisation and may be shared by any
// number of goroutines: no method exposes the backing storage, and
// Matrix returns a copy.
//
// For two-qubit gates the first qubit is the more significant one: CNOT
// applied as (q0=control, q1=target) maps |10⟩ to |11⟩.
//
// Arbitrary user operators are built with New; rotations with RX, RY, RZ
// and Phase; controlled versions of any one-qubit gate with Controlled.
// PauliString builds n-qubit observables such as "ZZ" for the expectation
// estimator.
package gates
