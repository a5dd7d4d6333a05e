// SPDX-License-Identifier: MIT

package measure

import (
	"math"

	"github.com/go-logr/logr"
)

// ImaginaryPolicy decides what Expectation does with an imaginary part
// larger than epsilon.
type ImaginaryPolicy int

const (
	// WarnImaginary drops the imaginary part and logs it.
	WarnImaginary ImaginaryPolicy = iota
	// DiscardImaginary drops the imaginary part silently.
	DiscardImaginary
	// RejectImaginary fails with ErrNonHermitianOperator.
	RejectImaginary
)

func (p ImaginaryPolicy) String() string {
	switch p {
	case WarnImaginary:
		return "warn"
	case DiscardImaginary:
		return "discard"
	case RejectImaginary:
		return "reject"
	default:
		return "unknown"
	}
}

// ---------- Defaults ----------

const (
	// DefaultEpsilon bounds |Σp - 1| in strict sampling and |Im⟨O⟩|.
	DefaultEpsilon = 1e-9

	// DefaultRenormalize keeps the Sampler strict.
	DefaultRenormalize = false

	// DefaultImaginaryPolicy is WarnImaginary.
	DefaultImaginaryPolicy = WarnImaginary

	// DefaultHermitianCheck skips the O(d²) O = O† test.
	DefaultHermitianCheck = false

	// DefaultWorkers runs the estimator's MatVec on the caller's goroutine.
	DefaultWorkers = 1
)

const (
	panicEpsilonInvalid = "measure: WithEpsilon: eps must be finite, non-negative"
	panicWorkersInvalid = "measure: WithWorkers: workers must be >= 1"
	panicPolicyInvalid  = "measure: WithImaginaryPolicy: unknown policy"
)

// Option configures a Sampler or an Estimator. Options that do not apply
// to the receiving type are ignored.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	eps            float64
	renormalize    bool
	policy         ImaginaryPolicy
	hermitianCheck bool
	workers        int
	log            logr.Logger
}

// WithEpsilon sets the normalisation and imaginary-part tolerance.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.eps = eps }
}

// WithRenormalize lets the Sampler rescale a non-zero, finite distribution
// that does not sum to 1.
func WithRenormalize() Option {
	return func(o *Options) { o.renormalize = true }
}

// WithImaginaryPolicy selects the Estimator's imaginary-part handling.
func WithImaginaryPolicy(p ImaginaryPolicy) Option {
	if p < WarnImaginary || p > RejectImaginary {
		panic(panicPolicyInvalid)
	}
	return func(o *Options) { o.policy = p }
}

// WithHermitianCheck makes the Estimator verify O = O† before computing.
func WithHermitianCheck() Option {
	return func(o *Options) { o.hermitianCheck = true }
}

// WithWorkers parallelises the Estimator's operator-vector product.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = workers }
}

// WithLogger sets the logger.
func WithLogger(log logr.Logger) Option {
	return func(o *Options) { o.log = log }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		renormalize:    DefaultRenormalize,
		policy:         DefaultImaginaryPolicy,
		hermitianCheck: DefaultHermitianCheck,
		workers:        DefaultWorkers,
		log:            logr.Discard(),
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
