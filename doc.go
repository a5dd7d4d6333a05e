// Package qsim is a small state-vector quantum circuit simulator: an
// n-qubit register held as 2^n complex amplitudes, evolved by unitary gates
// and read out by Born-rule sampling or operator expectation values.
//
// What is in the box?
//
//	statevec/   the amplitude buffer, basis states, labels, probabilities
//	gates/      immutable gate catalog (I, X, Y, Z, H, S, T, CNOT, CZ, SWAP,
//	            rotations, Controlled) and Pauli-string observables
//	cmatrix/    complex128 dense matrices: Kronecker, Mul, MatVec, checks
//	tensor/     rank-n complex tensors: transpose, move-axes, contraction
//	engine/     two interchangeable gate engines:
//	              MatrixEngine: full 2^n x 2^n operator, O(4^n)
//	              TensorEngine: axis contraction on the reshaped state, O(2^n)
//	measure/    seeded sampling, counts and histograms, ⟨ψ|O|ψ⟩
//	circuit/    ordered gate lists validated up front and run on any engine
//
// Bit order: qubit 0 is the most significant bit of a basis index and the
// leftmost Kronecker factor, so |10⟩ is index 2.
//
// Quick example (Bell pair):
//
//	c := circuit.New(2).H(0).CNOT(0, 1)
//	v, _ := circuit.Simulate(c, engine.NewTensorEngine())
//	samples, _ := measure.Sample(v, 1000, measure.NewSource(42))
//	hist, _ := measure.Histogram(samples, 2) // only "00" and "11"
//
// Everything is synchronous and deterministic: parallel kernels
// (WithWorkers) never change summation order, and every random draw comes
// from a caller-supplied source.
//
//	go get github.com/katalvlaran/qsim
package qsim
