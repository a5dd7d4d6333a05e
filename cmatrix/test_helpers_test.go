// SPDX-License-Identifier: MIT
// Package cmatrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels.

package cmatrix_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/qsim/cmatrix"
	"github.com/stretchr/testify/require"
)

const (
	epsTight = 1e-12
	invSqrt2 = 1 / math.Sqrt2
)

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]complex128) *cmatrix.Dense {
	tb.Helper()
	m, err := cmatrix.NewFromRows(rows)
	require.NoError(tb, err)
	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt(tb testing.TB, m *cmatrix.Dense, i, j int) complex128 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)
	return v
}

// randDense fills an r×c Dense with deterministic pseudo-random entries.
func randDense(tb testing.TB, r, c int, seed uint64) *cmatrix.Dense {
	tb.Helper()
	m, err := cmatrix.NewDense(r, c)
	require.NoError(tb, err)
	rng := rand.New(rand.NewPCG(seed, seed^0x5bd1e995))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, m.Set(i, j, complex(rng.NormFloat64(), rng.NormFloat64())))
		}
	}
	return m
}

// randVec returns a deterministic pseudo-random complex vector.
func randVec(n int, seed uint64) []complex128 {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	return x
}

func pauliX(tb testing.TB) *cmatrix.Dense {
	return mustRows(tb, [][]complex128{{0, 1}, {1, 0}})
}

func pauliY(tb testing.TB) *cmatrix.Dense {
	return mustRows(tb, [][]complex128{{0, -1i}, {1i, 0}})
}

func pauliZ(tb testing.TB) *cmatrix.Dense {
	return mustRows(tb, [][]complex128{{1, 0}, {0, -1}})
}

func hadamard(tb testing.TB) *cmatrix.Dense {
	h := complex(invSqrt2, 0)
	return mustRows(tb, [][]complex128{{h, h}, {h, -h}})
}
