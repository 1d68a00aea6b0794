// SPDX-License-Identifier: MIT

// Package parallel: functional configuration.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions resolving defaults.
package parallel

import (
	"runtime"

	"go.uber.org/zap"
)

// DefaultWorkers selects runtime.GOMAXPROCS(0) workers.
const DefaultWorkers = 0

const (
	panicWorkersInvalid = "parallel: WithWorkers: n must be >= 0"
	panicLoggerNil      = "parallel: WithLogger: logger must not be nil"
)

// Option mutates internal options.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; callers
// compose ...Option.
type Options struct {
	workers int         // DefaultWorkers; 0 ⇒ GOMAXPROCS
	logger  *zap.Logger // zap.NewNop() unless WithLogger
}

// WithWorkers fixes the number of workers. 0 restores the default.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger receives worker lifecycle events at debug level.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

func defaultOptions() Options {
	return Options{
		workers: DefaultWorkers,
		logger:  zap.NewNop(),
	}
}

// gatherOptions applies opts over the defaults (last writer wins) and
// resolves the worker count.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers == DefaultWorkers {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// Workers reports the worker count opts resolve to.
func Workers(opts ...Option) int {
	return gatherOptions(opts...).workers
}
