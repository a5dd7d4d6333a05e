// Package engine applies gates to a state vector with two interchangeable
// strategies.
//
// MatrixEngine builds the full 2^n x 2^n operator as the Kronecker product
// I ⊗ … ⊗ G ⊗ … ⊗ I (qubit 0 the leftmost, most significant factor) and
// multiplies it against the vector. Time and memory are O(4^n): at 14
// qubits the operator alone is 4 GiB, so the engine refuses registers
// larger than its MaxQubits option (default 12).
//
// TensorEngine views the vector as a rank-n tensor with every extent 2,
// contracts the gate against the target axis (or axes), and moves the
// resulting axis back into place. Time and memory are O(2^n).
//
// Both engines satisfy Engine, validate identically, and mutate the
// vector in place only after the whole result is computed: a failed call
// leaves the vector untouched. For any valid input their outputs agree
// within floating-point epsilon.
//
// Two-qubit gates (CNOT, CZ, SWAP, Controlled(U), user 4x4) go through
// ApplyTwo; the gate's first qubit maps to q0.
package engine
