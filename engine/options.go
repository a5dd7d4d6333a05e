// SPDX-License-Identifier: MIT

package engine

import (
	"math"

	"github.com/go-logr/logr"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxQubits caps the MatrixEngine register: 4^12 entries = 256 MiB.
	DefaultMaxQubits = 12

	// DefaultWorkers runs kernels on the caller's goroutine.
	DefaultWorkers = 1

	// DefaultUnitaryCheck leaves unitarity as an unchecked precondition.
	DefaultUnitaryCheck = false

	// DefaultEpsilon is the tolerance of the optional unitary check.
	DefaultEpsilon = 1e-9
)

const (
	panicWorkersInvalid   = "engine: WithWorkers: workers must be >= 1"
	panicMaxQubitsInvalid = "engine: WithMaxQubits: max must be >= 1"
	panicEpsilonInvalid   = "engine: WithEpsilon: eps must be finite, non-negative"
)

// Option configures an engine.
type Option func(*Options)

// Options is the resolved engine configuration.
type Options struct {
	workers      int
	maxQubits    int
	unitaryCheck bool
	eps          float64
	log          logr.Logger
}

// WithWorkers lets the engine split its inner kernel across goroutines.
// Results are identical for any worker count.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = workers }
}

// WithMaxQubits sets the largest register the MatrixEngine will materialise
// an operator for. Ignored by TensorEngine.
func WithMaxQubits(max int) Option {
	if max < 1 {
		panic(panicMaxQubitsInvalid)
	}
	return func(o *Options) { o.maxQubits = max }
}

// WithUnitaryCheck verifies U†U = I before every application.
// Costs O(d³) per gate; intended for debugging.
func WithUnitaryCheck() Option {
	return func(o *Options) { o.unitaryCheck = true }
}

// WithEpsilon sets the unitary-check tolerance.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.eps = eps }
}

// WithLogger sets the logger; engines log operator sizes at V(1).
func WithLogger(log logr.Logger) Option {
	return func(o *Options) { o.log = log }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		workers:      DefaultWorkers,
		maxQubits:    DefaultMaxQubits,
		unitaryCheck: DefaultUnitaryCheck,
		eps:          DefaultEpsilon,
		log:          logr.Discard(),
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
