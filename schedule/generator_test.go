package schedule_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drawsim/config"
	"github.com/katalvlaran/drawsim/core"
	"github.com/katalvlaran/drawsim/dispatch"
	"github.com/katalvlaran/drawsim/schedule"
)

func teams(n int) []core.Team {
	out := make([]core.Team, n)
	for i := range out {
		id := fmt.Sprintf("T%02d", i)
		out[i] = core.Team{ID: id, Name: "Team " + id, Country: fmt.Sprintf("C%d", i%3)}
	}

	return out
}

func roundRobin(ts []core.Team) []core.Game {
	var games []core.Game
	for i := range ts {
		for j := i + 1; j < len(ts); j++ {
			games = append(games, core.Game{Home: ts[i], Away: ts[j]})
		}
	}

	return games
}

func newGenerator(t *testing.T, opts ...schedule.Option) *schedule.Generator {
	t.Helper()
	pool := dispatch.NewPool(2, dispatch.WithSeed(11))
	t.Cleanup(pool.Close)
	gen, err := schedule.NewGenerator(pool, opts...)
	require.NoError(t, err)

	return gen
}

func TestGenerate_FourTeams(t *testing.T) {
	ts := teams(4)
	games := roundRobin(ts)
	gen := newGenerator(t)

	s, err := gen.Generate(context.Background(), schedule.Request{
		Season:       2024,
		Tournament:   config.Tournament{Days: 2, MaxTVPerDay: 1},
		Teams:        ts,
		Games:        games,
		MatchdaySize: 2,
		TVPairings:   []core.Pairing{{A: ts[1], B: ts[0]}},
	})
	require.NoError(t, err)
	require.NoError(t, s.Validate(games))

	assert.Equal(t, 2024, s.Season)
	require.Len(t, s.Matchdays, 3)
	for _, md := range s.Matchdays {
		require.Len(t, md, 2, "two days per matchday")
		for _, day := range md {
			assert.Len(t, day, 1)
		}
	}
	assert.Equal(t, 4, s.Stats.Teams)
	assert.Equal(t, 6, s.Stats.Games)
	assert.False(t, s.Stats.Relaxed)
	assert.Equal(t, "Team T00", s.Matchdays[0][0][0].Home.Name, "caller identities come back")
}

func TestGenerate_PresetMatchdaySize(t *testing.T) {
	ts := teams(8)
	games := roundRobin(ts)
	for _, g := range roundRobin(ts) {
		games = append(games, core.Game{Home: g.Away, Away: g.Home})
	}

	var buf bytes.Buffer
	gen := newGenerator(t, schedule.WithLogger(zerolog.New(&buf).Level(zerolog.InfoLevel)), schedule.WithShuffle(true))
	s, err := gen.Generate(context.Background(), schedule.Request{
		Season:     2019,
		Tournament: config.Tournament{Competition: config.WorldCup, MatchdaySize: 4, Days: 4, MaxTVPerDay: 1},
		Games:      games,
		TVPairings: []core.Pairing{{A: ts[0], B: ts[1]}, {A: ts[2], B: ts[3]}},
		Workers:    2,
	})
	require.NoError(t, err)
	require.NoError(t, s.Validate(games))
	assert.Len(t, s.Matchdays, 14)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "schedule ready", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "schedule", entry["component"])
	assert.EqualValues(t, 56, entry["games"])
}

func TestGenerate_Errors(t *testing.T) {
	ts := teams(4)
	rr := roundRobin(ts)
	gen := newGenerator(t)

	missing := append(append([]core.Game(nil), rr[:5]...), rr[0]) // C-D dropped, A-B twice
	_, err := gen.Generate(context.Background(), schedule.Request{Games: missing, MatchdaySize: 2})
	require.ErrorIs(t, err, core.ErrInfeasible)

	six := teams(6)
	triangles := []core.Game{
		{Home: six[0], Away: six[1]}, {Home: six[1], Away: six[2]}, {Home: six[2], Away: six[0]},
		{Home: six[3], Away: six[4]}, {Home: six[4], Away: six[5]}, {Home: six[5], Away: six[3]},
	}
	_, err = gen.Generate(context.Background(), schedule.Request{Games: triangles, MatchdaySize: 3})
	require.ErrorIs(t, err, core.ErrInfeasible, "odd components")

	_, err = gen.Generate(context.Background(), schedule.Request{
		Games: rr, MatchdaySize: 2,
		TVPairings: []core.Pairing{{A: ts[0], B: core.Team{ID: "ghost"}}},
	})
	require.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = gen.Generate(context.Background(), schedule.Request{Teams: []core.Team{ts[0], ts[0]}, Games: rr, MatchdaySize: 2})
	require.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = gen.Generate(context.Background(), schedule.Request{Games: rr})
	require.ErrorIs(t, err, core.ErrInvalidInput, "no matchday size anywhere")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = gen.Generate(ctx, schedule.Request{Games: rr, MatchdaySize: 2})
	require.ErrorIs(t, err, core.ErrCancelled)

	_, err = schedule.NewGenerator(nil)
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestSchedule_Validate(t *testing.T) {
	ts := teams(4)
	games := roundRobin(ts)
	gen := newGenerator(t)
	s, err := gen.Generate(context.Background(), schedule.Request{Games: games, MatchdaySize: 2})
	require.NoError(t, err)
	require.NoError(t, s.Validate(games))

	require.ErrorIs(t, s.Validate(games[:5]), core.ErrInvalidInput, "extra game")
	require.ErrorIs(t, s.Validate(append(games, games[0])), core.ErrInvalidInput, "missing game")

	clash := schedule.Schedule{Matchdays: [][][]core.Game{{{games[0], games[1]}}}}
	require.ErrorIs(t, clash.Validate(games[:2]), core.ErrInvalidInput, "team twice on a matchday")
}

func TestFromConfig(t *testing.T) {
	cfg := config.Config{
		Workers:            2,
		SearchTimeout:      10 * time.Second,
		SplitDepth:         1,
		PredicateCacheSize: 16,
		LogLevel:           "error",
		LogFormat:          "json",
	}
	gen, pool, err := schedule.FromConfig(cfg)
	require.NoError(t, err)
	defer pool.Close()
	assert.Equal(t, 2, pool.Size())

	ts := teams(6)
	games := roundRobin(ts)
	s, err := gen.Generate(context.Background(), schedule.Request{Games: games, MatchdaySize: 3})
	require.NoError(t, err)
	require.NoError(t, s.Validate(games))

	cfg.LogFormat = "xml"
	_, _, err = schedule.FromConfig(cfg)
	require.Error(t, err)
}
