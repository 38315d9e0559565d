// SPDX-License-Identifier: MIT

package matchday

import (
	"context"
	"time"

	"github.com/katalvlaran/drawsim/dispatch"
)

// Search explores the share of the search tree owned by a. It returns
// found=false with a nil error when that share holds no decomposition or
// a.Signal stopped first; a zero Assignment owns the whole tree.
//
// Errors: core.ErrInvalidInput, core.ErrInfeasible (count precheck).
func Search(in Input, a dispatch.Assignment, opts ...Option) (Result, bool, error) {
	if err := in.Validate(); err != nil {
		return Result{}, false, err
	}
	if err := in.precheck(); err != nil {
		return Result{}, false, err
	}

	return search(in, a, buildOptions(opts))
}

func search(in Input, a dispatch.Assignment, o Options) (Result, bool, error) {
	start := time.Now()
	e := newEngine(in, a, o)
	found := e.run()
	stats := Stats{Nodes: e.nodes, Duration: time.Since(start), Worker: a.Worker}
	if !found {
		return Result{Stats: stats}, false, nil
	}

	return Result{Matchdays: e.result(), Stats: stats}, true, nil
}

// FirstSuitable returns the first complete decomposition any worker finds.
//
// Workers race on disjoint shares of the search tree (see Options). The
// outcome is a valid Result, or:
//   - core.ErrInvalidInput before any search,
//   - core.ErrInfeasible once every worker exhausted its share,
//   - core.ErrCancelled when ctx is cancelled,
//   - core.ErrTimedOut when ctx's deadline or Options.Timeout passes.
//
// The Result is reproducible for fixed input, worker count and seed when a
// single worker finishes first; with several workers the winner may vary.
func FirstSuitable(ctx context.Context, in Input, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	if err := in.precheck(); err != nil {
		return Result{}, err
	}
	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}

	pool := o.Pool
	if pool == nil {
		pool = dispatch.NewPool(o.Workers, dispatch.WithLogger(o.Logger), dispatch.WithSeed(o.Seed))
		defer pool.Close()
	}

	run, err := dispatch.Dispatch(ctx, pool, o.Workers, func(_ context.Context, a dispatch.Assignment) (Result, bool, error) {
		return search(in, a, o)
	})
	if err != nil {
		return Result{}, err
	}
	res, err := run.Wait()
	if err != nil {
		o.Logger.Debug().Err(err).Int("games", len(in.Games)).Msg("matchday search failed")
		return Result{}, err
	}
	o.Logger.Debug().
		Int("matchdays", len(res.Value.Matchdays)).
		Int("nodes", res.Value.Stats.Nodes).
		Int("worker", res.Value.Stats.Worker).
		Dur("elapsed", res.Value.Stats.Duration).
		Msg("matchday decomposition found")

	return res.Value, nil
}
