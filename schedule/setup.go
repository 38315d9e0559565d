// SPDX-License-Identifier: MIT

package schedule

import (
	"github.com/rotisserie/eris"

	"github.com/katalvlaran/drawsim/config"
	"github.com/katalvlaran/drawsim/dispatch"
	"github.com/katalvlaran/drawsim/telemetry"
)

// FromConfig builds a pool and a Generator from environment configuration.
// The caller owns the returned pool and must Close it.
func FromConfig(cfg config.Config) (*Generator, *dispatch.Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, eris.Wrap(err, "invalid schedule config")
	}
	log := telemetry.FromConfig(cfg, "drawsim")
	pool := dispatch.NewPool(cfg.WorkerCount(),
		dispatch.WithLogger(log),
		dispatch.WithSeed(cfg.Seed),
		dispatch.WithTimeout(cfg.SearchTimeout),
	)
	gen, err := NewGenerator(pool,
		WithLogger(log),
		WithSplitDepth(cfg.SplitDepth),
		WithShuffle(cfg.Shuffle),
	)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}

	return gen, pool, nil
}
