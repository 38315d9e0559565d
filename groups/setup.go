// SPDX-License-Identifier: MIT

package groups

import (
	"github.com/rotisserie/eris"

	"github.com/katalvlaran/drawsim/config"
	"github.com/katalvlaran/drawsim/predicate"
	"github.com/katalvlaran/drawsim/telemetry"
)

// ServiceFromConfig builds a Service with a predicate registry sized by
// cfg.PredicateCacheSize and a logger from the DRAWSIM_LOG_* settings.
func ServiceFromConfig(cfg config.Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, eris.Wrap(err, "invalid groups config")
	}
	reg, err := predicate.NewRegistry(cfg.PredicateCacheSize)
	if err != nil {
		return nil, err
	}

	return NewService(reg, telemetry.FromConfig(cfg, "drawsim"), opts...)
}
