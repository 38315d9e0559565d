// SPDX-License-Identifier: MIT

package config

import (
	"runtime"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config holds environment-based engine configuration.
type Config struct {
	// Workers is the desired number of search workers; 0 means GOMAXPROCS.
	Workers int `env:"DRAWSIM_WORKERS" envDefault:"0"`

	// SearchTimeout bounds one matchday search; 0 disables the deadline.
	SearchTimeout time.Duration `env:"DRAWSIM_SEARCH_TIMEOUT" envDefault:"30s"`

	// SplitDepth is the branching level at which workers partition the search tree.
	SplitDepth int `env:"DRAWSIM_SPLIT_DEPTH" envDefault:"2"`

	// Seed is the base seed for per-worker streams.
	Seed int64 `env:"DRAWSIM_SEED" envDefault:"0"`

	// Shuffle lets each worker reorder candidates below the split depth.
	Shuffle bool `env:"DRAWSIM_SHUFFLE" envDefault:"false"`

	// PredicateCacheSize bounds the number of memoised season predicates.
	PredicateCacheSize int `env:"DRAWSIM_PREDICATE_CACHE_SIZE" envDefault:"16"`

	// Log level configuration ("debug", "info", "warn", "error").
	LogLevel string `env:"DRAWSIM_LOG_LEVEL" envDefault:"info"`

	// Log format configuration ("json", "pretty").
	LogFormat string `env:"DRAWSIM_LOG_FORMAT" envDefault:"json"`
}

// Load parses the configuration from environment variables and validates it.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, eris.Wrap(err, "failed to parse drawsim config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, eris.Wrap(err, "failed to validate drawsim config")
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return eris.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.SearchTimeout < 0 {
		return eris.Errorf("search timeout must be >= 0, got %s", c.SearchTimeout)
	}
	if c.SplitDepth < 0 {
		return eris.Errorf("split depth must be >= 0, got %d", c.SplitDepth)
	}
	if c.PredicateCacheSize <= 0 {
		return eris.Errorf("predicate cache size must be > 0, got %d", c.PredicateCacheSize)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return eris.Errorf("invalid log level: %s (must be 'debug', 'info', 'warn', or 'error')", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "pretty":
	default:
		return eris.Errorf("invalid log format: %s (must be 'json' or 'pretty')", c.LogFormat)
	}

	return nil
}

// WorkerCount resolves Workers against the available parallelism.
func (c Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}

	return runtime.GOMAXPROCS(0)
}
