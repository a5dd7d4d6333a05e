// SPDX-License-Identifier: MIT

package tensor

// DefaultWorkers runs Contract on the caller's goroutine.
const DefaultWorkers = 1

const panicWorkersInvalid = "tensor: WithWorkers: workers must be >= 1"

// Option configures Contract.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	workers int
}

// WithWorkers lets Contract split output columns across goroutines.
// Panics when workers < 1.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = workers }
}

func gatherOptions(user ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
