// SPDX-License-Identifier: MIT

package depth

import "context"

// DefaultWorkers is the number of rows computed concurrently when no
// WithWorkers option is given.
const DefaultWorkers = 1

const (
	panicWorkersInvalid = "depth: WithWorkers: n must be >= 1"
	panicContextNil     = "depth: WithContext: ctx must not be nil"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int
	ctx     context.Context
}

// WithWorkers bounds the number of rows traced concurrently.
// Each worker writes only the rows it owns, so the result does not depend on n.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithContext lets the caller abandon a frame. Cancellation is observed
// between rows. Panics if ctx is nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicContextNil)
	}

	return func(o *Options) { o.ctx = ctx }
}

func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers, ctx: context.Background()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
