// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/qsim/statevec"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws basis labels from a state's Born distribution.
type Sampler struct {
	opts Options
}

// NewSampler returns a Sampler configured by opts
// (WithEpsilon, WithRenormalize, WithLogger).
func NewSampler(opts ...Option) *Sampler {
	return &Sampler{opts: gatherOptions(opts...)}
}

// Sample draws shots labels in [0, len(v)) with P(i) = |v[i]|².
// Stage 1 (Validate): shots >= 0, src non-nil, len(v) a power of two.
// Stage 2 (Distribution): weights |v[i]|², all finite; total within eps of
// 1, or positive under WithRenormalize.
// Stage 3 (Draw): shots independent categorical draws from src.
// v is not modified. shots == 0 returns an empty, non-nil slice.
// Complexity: O(len(v) + shots·log len(v)).
func (s *Sampler) Sample(v statevec.Vector, shots int, src rand.Source) ([]int, error) {
	if shots < 0 {
		return nil, fmt.Errorf("Sample: shots=%d: %w", shots, ErrInvalidSampleCount)
	}
	if src == nil {
		return nil, fmt.Errorf("Sample: %w", ErrNilSource)
	}
	if _, err := statevec.QubitsFor(len(v)); err != nil {
		return nil, fmt.Errorf("Sample: %w: %w", ErrDimensionMismatch, err)
	}

	w := v.Probabilities()
	sum, err := checkWeights(w)
	if err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}
	if math.Abs(sum-1) > s.opts.eps {
		if !s.opts.renormalize || sum <= 0 {
			return nil, fmt.Errorf("Sample: total %g: %w", sum, ErrInvalidDistribution)
		}
		s.opts.log.V(1).Info("renormalising distribution", "total", sum)
	}

	out := make([]int, shots)
	if shots == 0 {
		return out, nil
	}
	// Categorical normalises by the total weight itself.
	dist := distuv.NewCategorical(w, src)
	for i := range out {
		out[i] = int(dist.Rand())
	}
	return out, nil
}

// Sample draws shots labels with a strict default Sampler.
func Sample(v statevec.Vector, shots int, src rand.Source) ([]int, error) {
	return NewSampler().Sample(v, shots, src)
}
