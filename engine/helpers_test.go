// SPDX-License-Identifier: MIT

package engine_test

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/qsim/statevec"
	"github.com/stretchr/testify/require"
)

const (
	epsEquiv = 1e-9
	invSqrt2 = 1 / math.Sqrt2
)

// approx compares complex128 values within epsEquiv.
var approx = cmp.Comparer(func(a, b complex128) bool {
	return cmplx.Abs(a-b) <= epsEquiv
})

// randomState returns a deterministic normalised n-qubit state.
func randomState(tb testing.TB, n int, seed uint64) statevec.Vector {
	tb.Helper()
	rng := rand.New(rand.NewPCG(seed, uint64(n)))
	amps := make([]complex128, 1<<n)
	var norm float64
	for i := range amps {
		amps[i] = complex(rng.NormFloat64(), rng.NormFloat64())
		norm += real(amps[i])*real(amps[i]) + imag(amps[i])*imag(amps[i])
	}
	scale := complex(1/math.Sqrt(norm), 0)
	for i := range amps {
		amps[i] *= scale
	}
	v, err := statevec.FromAmplitudes(amps, 1e-9)
	require.NoError(tb, err)
	return v
}

// basis returns |index⟩ on n qubits.
func basis(tb testing.TB, n, index int) statevec.Vector {
	tb.Helper()
	v, err := statevec.Basis(n, index)
	require.NoError(tb, err)
	return v
}

// requireClose fails with a go-cmp diff when got and want differ beyond epsEquiv.
func requireClose(tb testing.TB, want, got []complex128) {
	tb.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		tb.Fatalf("amplitudes mismatch (-want +got):\n%s", diff)
	}
}
