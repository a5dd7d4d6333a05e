// Package tensor implements a small rank-n complex tensor with the three
// primitives an axis-contraction simulator needs:
//
//   - Transpose: materialise an explicit axis permutation.
//   - MoveAxes / MoveAxesPerm: move selected axes to new positions while the
//     remaining axes keep their relative order. MoveAxesPerm only computes
//     the permutation so it can be tested on its own.
//   - Contract: generalized matrix product along paired axes (tensordot).
//     The result holds a's free axes followed by b's free axes.
//
// Storage is row-major: the last axis varies fastest. A length-2^n state
// vector viewed with shape (2, 2, …, 2) therefore has axis q equal to
// qubit q, with axis 0 the most significant.
//
// Complexity: Transpose is O(len); Contract is O(M·K·N) where K is the
// product of contracted extents and M, N the products of free extents.
// For a one-qubit gate against an n-qubit state that is O(2^n).
package tensor
