// SPDX-License-Identifier: MIT

package bipartite

import "fmt"

// Options configures MinCostMatch.
//
// Fields:
//   - Parallel: try the top-level columns concurrently. The memo becomes a
//     lock-protected store; results are identical to the sequential mode.
//   - MaxSize : refuse inputs with max(rows, cols) > MaxSize (0 = unlimited).
//   - Stats   : when non-nil, receives the search counters of the call.
type Options struct {
	Parallel bool
	MaxSize  int
	Stats    *Stats
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns sequential search with no size limit and no stats.
func DefaultOptions() Options {
	return Options{}
}

// WithParallel toggles the concurrent top-level trial loop.
func WithParallel(on bool) Option {
	return func(o *Options) { o.Parallel = on }
}

// WithMaxSize bounds max(rows, cols); 0 disables the bound.
func WithMaxSize(n int) Option {
	return func(o *Options) { o.MaxSize = n }
}

// WithStats records the search counters into st.
func WithStats(st *Stats) Option {
	return func(o *Options) { o.Stats = st }
}

// gatherOptions applies opts over DefaultOptions and validates the result.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.MaxSize < 0 {
		return Options{}, fmt.Errorf("MaxSize=%d: %w", o.MaxSize, ErrInvalidOption)
	}

	return o, nil
}
