// Package cmatrix provides a dense complex128 matrix and the small set of
// linear-algebra kernels a state-vector simulator needs.
//
// The cmatrix package provides:
//
//   - Dense, a row-major matrix stored in one flat []complex128 slice.
//   - Kronecker and KroneckerChain for building n-qubit operators from
//     per-qubit factors (factor 0 is the most significant).
//   - MatVec, Mul, Add, Scale and ConjTranspose with strict shape checks.
//   - IsUnitary and IsHermitian structural checks under an epsilon policy.
//
// All kernels validate their inputs first and return sentinel errors
// (wrapped with an operation tag) instead of panicking on user input.
// MatVec can split its rows across goroutines (WithWorkers); every output
// row is computed by exactly one goroutine in a fixed order, so the result
// does not depend on the worker count.
//
// Memory: a 2^n x 2^n operator holds 4^n complex128 values (16 bytes each).
// At n=14 that is 4 GiB, which is why callers should prefer axis contraction
// for anything but small registers.
package cmatrix
