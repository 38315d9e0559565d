// Package config provides environment configuration for the drawsim engines
// and the structural presets of the supported competitions.
//
// Load reads DRAWSIM_* variables (worker count, search timeout, split depth,
// seed, predicate cache size, log level and format). Preset returns the
// group/pot/matchday layout of a competition stage, and CurrentSeason the
// most recent season shipped for it.
package config
