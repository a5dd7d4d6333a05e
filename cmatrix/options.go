// SPDX-License-Identifier: MIT

// Package cmatrix: functional configuration for kernels.
//
// Design goals:
//   - Deterministic behavior: no global state, worker count never changes results.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package cmatrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by structural checks
	// (IsUnitary, IsHermitian, AllClose).
	DefaultEpsilon = 1e-9

	// DefaultWorkers runs kernels on the caller's goroutine.
	DefaultWorkers = 1
)

const (
	panicEpsilonInvalid = "cmatrix: WithEpsilon: eps must be finite, non-negative"
	panicWorkersInvalid = "cmatrix: WithWorkers: workers must be >= 1"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps     float64 // >= 0; DefaultEpsilon
	workers int     // >= 1; DefaultWorkers
}

// WithEpsilon sets the absolute tolerance for structural checks.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithWorkers sets how many goroutines MatVec may use for row partitions.
// Panics when workers < 1.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Workers returns the resolved worker count.
func (o Options) Workers() int { return o.workers }

// NewOptions resolves user options on top of the defaults.
func NewOptions(user ...Option) Options {
	o := Options{
		eps:     DefaultEpsilon,
		workers: DefaultWorkers,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
