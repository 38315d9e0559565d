// SPDX-License-Identifier: MIT

package matchday

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/drawsim/dispatch"
)

// Option configures FirstSuitable and Search.
type Option func(*Options)

// Options holds the parallel-search parameters.
type Options struct {
	// SplitDepth is the branching level whose alternatives are divided
	// among workers. Levels above it are walked by every worker.
	SplitDepth int

	// Shuffle lets each worker permute alternatives below SplitDepth with
	// its own seed. Coverage is unaffected.
	Shuffle bool

	// Seed is the base seed of a pool created by FirstSuitable.
	Seed int64

	// Workers is the desired worker count; 0 means the pool size.
	Workers int

	// Timeout bounds FirstSuitable; 0 means only ctx bounds it.
	Timeout time.Duration

	// Logger receives debug summaries (default: zerolog.Nop()).
	Logger zerolog.Logger

	// Pool is the caller-owned pool to run on. When nil, FirstSuitable
	// creates and closes one per call.
	Pool *dispatch.Pool
}

// DefaultOptions returns Options with:
//   - SplitDepth 2
//   - no shuffling, seed 0
//   - Workers = pool size, no timeout
//   - a no-op logger and no pool
func DefaultOptions() Options {
	return Options{SplitDepth: 2, Logger: zerolog.Nop()}
}

// WithSplitDepth sets the partition level. Negative values are ignored.
func WithSplitDepth(d int) Option {
	return func(o *Options) {
		if d >= 0 {
			o.SplitDepth = d
		}
	}
}

// WithShuffle toggles per-worker shuffling below the split level.
func WithShuffle(on bool) Option {
	return func(o *Options) { o.Shuffle = on }
}

// WithSeed sets the base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers sets the desired worker count.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithTimeout bounds the whole search.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithPool runs the search on a caller-owned pool.
func WithPool(p *dispatch.Pool) Option {
	return func(o *Options) { o.Pool = p }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
