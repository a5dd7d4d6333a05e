// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qsim/statevec"
	"gonum.org/v1/gonum/floats"
)

// Distribution returns the Born probabilities |v[i]|² after checking that
// len(v) is a power of two and the total is within eps of 1.
// Errors: ErrDimensionMismatch, ErrInvalidDistribution.
func Distribution(v statevec.Vector, eps float64) ([]float64, error) {
	if _, err := statevec.QubitsFor(len(v)); err != nil {
		return nil, fmt.Errorf("Distribution: %w: %w", ErrDimensionMismatch, err)
	}
	p := v.Probabilities()
	sum, err := checkWeights(p)
	if err != nil {
		return nil, fmt.Errorf("Distribution: %w", err)
	}
	if math.Abs(sum-1) > eps {
		return nil, fmt.Errorf("Distribution: total %g: %w", sum, ErrInvalidDistribution)
	}
	return p, nil
}

// checkWeights rejects NaN, infinite and negative weights and returns the total.
func checkWeights(w []float64) (float64, error) {
	for i, x := range w {
		if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
			return 0, fmt.Errorf("weight[%d]=%v: %w", i, x, ErrInvalidDistribution)
		}
	}
	return floats.Sum(w), nil
}

// Counts tallies samples into a slice indexed by basis label.
// Errors: ErrSampleOutOfRange for a label outside [0, dim).
func Counts(samples []int, dim int) ([]int, error) {
	if dim < 1 {
		return nil, fmt.Errorf("Counts: dim=%d: %w", dim, ErrDimensionMismatch)
	}
	out := make([]int, dim)
	for i, s := range samples {
		if s < 0 || s >= dim {
			return nil, fmt.Errorf("Counts: samples[%d]=%d: %w", i, s, ErrSampleOutOfRange)
		}
		out[s]++
	}
	return out, nil
}

// Histogram tallies samples by bitstring label (qubit 0 leftmost).
// Labels never drawn are absent.
func Histogram(samples []int, n int) (map[string]int, error) {
	if n < 1 || n > statevec.MaxQubits {
		return nil, fmt.Errorf("Histogram: n=%d: %w", n, ErrDimensionMismatch)
	}
	counts := make(map[int]int)
	for i, s := range samples {
		if s < 0 || s >= 1<<n {
			return nil, fmt.Errorf("Histogram: samples[%d]=%d: %w", i, s, ErrSampleOutOfRange)
		}
		counts[s]++
	}
	out := make(map[string]int, len(counts))
	for s, c := range counts {
		out[statevec.Label(s, n)] = c
	}
	return out, nil
}
