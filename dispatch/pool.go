// SPDX-License-Identifier: MIT

package dispatch

import (
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Pool.
type Option func(*Pool)

// WithLogger sets the pool logger (default: zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option {
	return func(p *Pool) { p.log = l.With().Str("component", "dispatch").Logger() }
}

// WithTimeout bounds every run; 0 disables the pool-level deadline.
func WithTimeout(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithSeed sets the base seed worker seeds are derived from.
func WithSeed(seed int64) Option {
	return func(p *Pool) { p.seed = seed }
}

// Pool bounds how many workers run at once across all runs it dispatches.
// The caller owns it and must Close it.
type Pool struct {
	size    int
	sem     chan struct{}
	log     zerolog.Logger
	timeout time.Duration
	seed    int64

	mu     sync.Mutex
	closed bool
	runs   sync.WaitGroup
}

// NewPool returns a pool of size concurrent workers; size <= 0 means
// runtime.GOMAXPROCS(0).
func NewPool(size int, opts ...Option) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		size: size,
		sem:  make(chan struct{}, size),
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Size returns the worker limit.
func (p *Pool) Size() int { return p.size }

// Seed returns the base seed.
func (p *Pool) Seed() int64 { return p.seed }

// Close rejects new runs and waits for in-flight ones to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.runs.Wait()
}

// enter registers a run; false once the pool is closed.
func (p *Pool) enter() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return false
	}
	p.runs.Add(1)

	return true
}
