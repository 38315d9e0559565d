package groups_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drawsim/config"
	"github.com/katalvlaran/drawsim/core"
	"github.com/katalvlaran/drawsim/groups"
	"github.com/katalvlaran/drawsim/predicate"
)

func newService(t *testing.T) (*groups.Service, *predicate.Registry) {
	t.Helper()
	reg, err := predicate.NewRegistry(4)
	require.NoError(t, err)
	svc, err := groups.NewService(reg, zerolog.Nop())
	require.NoError(t, err)

	return svc, reg
}

func TestService_PossibleGroups(t *testing.T) {
	svc, reg := newService(t)
	draw, a := abcd(t)

	for i := 0; i < 3; i++ {
		got, err := svc.PossibleGroups(context.Background(), config.ChampionsLeague, config.GroupStage, 2010, draw, a)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, got)
	}
	assert.EqualValues(t, 1, reg.Builds(), "season predicate is built once")

	_, err := svc.PossibleGroups(context.Background(), config.WorldCup, config.KnockoutStage, 2018, draw, a)
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestService_Serve(t *testing.T) {
	svc, _ := newService(t)
	draw, a := abcd(t)

	in := make(chan groups.Request)
	out := make(chan groups.Response)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx, in, out) }()

	ok := groups.NewRequest(config.ChampionsLeague, config.GroupStage, 2010, draw, a)
	bad := groups.NewRequest(config.ChampionsLeague, config.GroupStage, 2010, draw, team("Z", "Q"))
	require.NotEqual(t, ok.MessageID, bad.MessageID)

	in <- ok
	resp := <-out
	assert.Equal(t, ok.MessageID, resp.MessageID)
	assert.NoError(t, resp.Err)
	assert.Equal(t, []int{1}, resp.Groups)

	in <- bad
	resp = <-out
	assert.Equal(t, bad.MessageID, resp.MessageID)
	assert.ErrorIs(t, resp.Err, core.ErrInvalidInput)

	close(in)
	require.NoError(t, <-done)
}

func TestService_ServeStopsOnCancel(t *testing.T) {
	svc, _ := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Serve(ctx, make(chan groups.Request), make(chan groups.Response))
	require.ErrorIs(t, err, core.ErrCancelled)
}

func TestNewService_NilRegistry(t *testing.T) {
	_, err := groups.NewService(nil, zerolog.Nop())
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestServiceFromConfig(t *testing.T) {
	cfg := config.Config{
		SearchTimeout:      time.Second,
		SplitDepth:         2,
		PredicateCacheSize: 2,
		LogLevel:           "error",
		LogFormat:          "json",
	}
	svc, err := groups.ServiceFromConfig(cfg)
	require.NoError(t, err)
	draw, a := abcd(t)
	got, err := svc.PossibleGroups(context.Background(), config.ChampionsLeague, config.GroupStage, 2010, draw, a)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)

	cfg.PredicateCacheSize = 0
	_, err = groups.ServiceFromConfig(cfg)
	require.Error(t, err)
}
