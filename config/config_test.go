package config_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drawsim/config"
	"github.com/katalvlaran/drawsim/core"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, 30*time.Second, cfg.SearchTimeout)
	assert.Equal(t, 2, cfg.SplitDepth)
	assert.Equal(t, 16, cfg.PredicateCacheSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.WorkerCount())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DRAWSIM_WORKERS", "3")
	t.Setenv("DRAWSIM_SEARCH_TIMEOUT", "250ms")
	t.Setenv("DRAWSIM_SEED", "42")
	t.Setenv("DRAWSIM_SHUFFLE", "true")
	t.Setenv("DRAWSIM_LOG_FORMAT", "pretty")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.WorkerCount())
	assert.Equal(t, 250*time.Millisecond, cfg.SearchTimeout)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Shuffle)
	assert.Equal(t, "pretty", cfg.LogFormat)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"negative workers", "DRAWSIM_WORKERS", "-1"},
		{"bad level", "DRAWSIM_LOG_LEVEL", "loud"},
		{"bad format", "DRAWSIM_LOG_FORMAT", "xml"},
		{"zero cache", "DRAWSIM_PREDICATE_CACHE_SIZE", "0"},
		{"unparsable duration", "DRAWSIM_SEARCH_TIMEOUT", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Load()
			require.Error(t, err)
		})
	}
}

func TestPreset(t *testing.T) {
	cl, err := config.Preset(config.ChampionsLeague, config.LeagueStage)
	require.NoError(t, err)
	assert.Equal(t, 36, cl.Teams)
	assert.Equal(t, 18, cl.MatchdaySize)
	assert.Equal(t, 8, cl.Matchdays(144))

	gs, err := config.Preset(config.ChampionsLeague, config.GroupStage)
	require.NoError(t, err)
	assert.Equal(t, 4, gs.GroupSize())

	_, err = config.Preset(config.WorldCup, config.LeagueStage)
	require.ErrorIs(t, err, core.ErrInvalidInput)

	assert.Equal(t, 2019, config.CurrentSeason(config.ChampionsLeague, config.GroupStage))
	assert.Equal(t, 2018, config.CurrentSeason(config.WorldCup, config.GroupStage))
	assert.Zero(t, config.CurrentSeason(config.WorldCup, config.KnockoutStage))
}
