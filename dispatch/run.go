// SPDX-License-Identifier: MIT
//
// File: run.go
// Role: Race-for-first execution of one task over a group of workers.
//
// Protocol:
//   - Workers share nothing but the stop Signal and a first-writer-wins slot.
//   - The first worker reporting found=true claims the slot (CAS) and stops
//     the Signal; every other worker observes it at its next node.
//   - A task returns found=false with a nil error only when its branch is
//     exhausted; a task that returns because the Signal stopped is counted
//     as interrupted, never as exhausted.
//   - The run reports exactly one Result on Results(), then closes it.

package dispatch

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/drawsim/core"
)

// Assignment tells a worker which share of the search it owns.
type Assignment struct {
	Worker  int
	Workers int
	Seed    int64
	Signal  *Signal
}

// Task is the work each worker runs. It returns found=true with a value on
// success, found=false when its branch holds no solution or it was stopped.
type Task[T any] func(ctx context.Context, a Assignment) (value T, found bool, err error)

// Result is the final outcome of a run.
type Result[T any] struct {
	Value  T
	Worker int
	Err    error
}

// Run is an in-flight dispatch.
type Run[T any] struct {
	results   chan Result[T]
	done      chan struct{}
	final     Result[T]
	cancel    context.CancelFunc
	cancelled atomic.Bool
	signal    *Signal
}

// Results yields the final result once, then closes.
func (r *Run[T]) Results() <-chan Result[T] { return r.results }

// Cancel stops every worker; the run then ends with ErrCancelled unless a
// winner was already recorded.
func (r *Run[T]) Cancel() {
	r.cancelled.Store(true)
	r.signal.Stop()
	r.cancel()
}

// Wait blocks until the run ends and returns its result and error.
func (r *Run[T]) Wait() (Result[T], error) {
	<-r.done

	return r.final, r.final.Err
}

// Dispatch starts min(desired, pool.Size()) workers (at least one; desired
// <= 0 means pool.Size()) racing on task and returns immediately.
//
// Errors (returned before any worker starts):
//   - core.ErrInvalidInput: nil pool or task.
//   - core.ErrCancelled: ctx already cancelled, or the pool is closed.
//   - core.ErrTimedOut: ctx deadline already passed.
func Dispatch[T any](ctx context.Context, pool *Pool, desired int, task Task[T]) (*Run[T], error) {
	if pool == nil || task == nil {
		return nil, eris.Wrap(core.ErrInvalidInput, "dispatch needs a pool and a task")
	}
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, eris.Wrap(core.ErrTimedOut, err.Error())
		}
		return nil, eris.Wrap(core.ErrCancelled, err.Error())
	}
	if !pool.enter() {
		return nil, eris.Wrap(core.ErrCancelled, "pool is closed")
	}

	workers := desired
	if workers <= 0 || workers > pool.size {
		workers = pool.size
	}

	runCtx, cancel := context.WithCancel(ctx)
	if pool.timeout > 0 {
		var cancelTimeout context.CancelFunc
		runCtx, cancelTimeout = context.WithTimeout(runCtx, pool.timeout)
		parent := cancel
		cancel = func() { cancelTimeout(); parent() }
	}

	r := &Run[T]{
		results: make(chan Result[T], 1),
		done:    make(chan struct{}),
		cancel:  cancel,
		signal:  &Signal{},
	}
	seeds := WorkerSeeds(pool.seed, workers)

	g, gctx := errgroup.WithContext(runCtx)
	stopOnDone := context.AfterFunc(gctx, r.signal.Stop)

	var (
		won       atomic.Bool
		winner    Result[T]
		exhausted atomic.Int64
	)
	start := time.Now()
	pool.log.Debug().Int("workers", workers).Int64("seed", pool.seed).Msg("dispatch started")

	for w := 0; w < workers; w++ {
		a := Assignment{Worker: w, Workers: workers, Seed: seeds[w], Signal: r.signal}
		g.Go(func() error {
			select {
			case pool.sem <- struct{}{}:
			case <-gctx.Done():
				return nil
			}
			defer func() { <-pool.sem }()
			if r.signal.Stopped() {
				return nil
			}

			v, found, err := task(gctx, a)
			switch {
			case err != nil:
				if r.signal.Stopped() {
					return nil
				}
				return eris.Wrapf(err, "worker %d", a.Worker)
			case found:
				if won.CompareAndSwap(false, true) {
					winner = Result[T]{Value: v, Worker: a.Worker}
					r.signal.Stop()
				}
			case !r.signal.Stopped():
				exhausted.Add(1)
			}

			return nil
		})
	}

	go func() {
		defer pool.runs.Done()
		err := g.Wait()
		stopOnDone()

		switch {
		case won.Load():
			r.final = winner
		case err != nil:
			r.final.Err = err
		case exhausted.Load() == int64(workers):
			r.final.Err = eris.Wrapf(core.ErrInfeasible, "all %d workers exhausted their branch", workers)
		default:
			r.final.Err = r.interruption(ctx, runCtx)
		}
		r.cancel()

		ev := pool.log.Debug().Dur("elapsed", time.Since(start)).Int("workers", workers)
		if r.final.Err != nil {
			ev.Err(r.final.Err).Msg("dispatch ended without a result")
		} else {
			ev.Int("winner", r.final.Worker).Msg("dispatch found a result")
		}

		r.results <- r.final
		close(r.results)
		close(r.done)
	}()

	return r, nil
}

// interruption classifies why a run stopped without a winner.
func (r *Run[T]) interruption(parent, runCtx context.Context) error {
	switch {
	case r.cancelled.Load():
		return eris.Wrap(core.ErrCancelled, "run cancelled")
	case errors.Is(parent.Err(), context.Canceled):
		return eris.Wrap(core.ErrCancelled, parent.Err().Error())
	case errors.Is(parent.Err(), context.DeadlineExceeded), errors.Is(runCtx.Err(), context.DeadlineExceeded):
		return eris.Wrap(core.ErrTimedOut, "search deadline passed")
	default:
		return eris.Wrap(core.ErrCancelled, "search stopped")
	}
}
