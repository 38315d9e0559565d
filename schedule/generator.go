// SPDX-License-Identifier: MIT

package schedule

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/drawsim/config"
	"github.com/katalvlaran/drawsim/core"
	"github.com/katalvlaran/drawsim/days"
	"github.com/katalvlaran/drawsim/dispatch"
	"github.com/katalvlaran/drawsim/matchday"
)

// Request is a season-setup call.
type Request struct {
	Season     int
	Tournament config.Tournament

	// Teams fixes the handle order; nil derives it from Games.
	Teams []core.Team
	Games []core.Game

	// MatchdaySize of 0 takes Tournament.MatchdaySize.
	MatchdaySize int
	TVPairings   []core.Pairing

	// Workers of 0 uses the whole pool.
	Workers int
}

// Stats summarises a generated schedule.
type Stats struct {
	Teams    int
	Games    int
	Nodes    int
	Worker   int
	Duration time.Duration

	// Relaxed reports that the TV cap had to be raised on some matchday.
	Relaxed bool
}

// Schedule nests the caller's games per matchday, then per day.
type Schedule struct {
	Season    int
	Matchdays [][][]core.Game
	Stats     Stats
}

// Generator runs season setups on a caller-owned pool.
type Generator struct {
	pool       *dispatch.Pool
	log        zerolog.Logger
	splitDepth int
	shuffle    bool
	timeout    time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger (default: zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) { g.log = l.With().Str("component", "schedule").Logger() }
}

// WithSplitDepth sets the matchday search partition level.
func WithSplitDepth(d int) Option {
	return func(g *Generator) { g.splitDepth = d }
}

// WithShuffle toggles per-worker shuffling in the matchday search.
func WithShuffle(on bool) Option {
	return func(g *Generator) { g.shuffle = on }
}

// WithTimeout bounds each Generate call; 0 leaves it to ctx and the pool.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) { g.timeout = d }
}

// NewGenerator returns a Generator running on pool.
func NewGenerator(pool *dispatch.Pool, opts ...Option) (*Generator, error) {
	if pool == nil {
		return nil, eris.Wrap(core.ErrInvalidInput, "pool is nil")
	}
	g := &Generator{
		pool:       pool,
		log:        zerolog.Nop(),
		splitDepth: matchday.DefaultOptions().SplitDepth,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Generate decomposes the fixture list into matchdays, splits every
// matchday into days and returns the caller's own games.
//
// Errors: core.ErrInvalidInput, core.ErrInfeasible, core.ErrCancelled,
// core.ErrTimedOut.
func (g *Generator) Generate(ctx context.Context, req Request) (Schedule, error) {
	graph, err := core.BuildGraph(req.Teams, req.Games)
	if err != nil {
		return Schedule{}, err
	}
	tv, err := graph.Pairs(req.TVPairings)
	if err != nil {
		return Schedule{}, err
	}
	size := req.MatchdaySize
	if size == 0 {
		size = req.Tournament.MatchdaySize
	}
	if err := perfectMatchable(graph, size); err != nil {
		return Schedule{}, err
	}
	edges := graph.Edges()
	in := matchday.Input{Teams: graph.Len(), Games: edges, MatchdaySize: size}

	found, err := matchday.FirstSuitable(ctx, in,
		matchday.WithPool(g.pool),
		matchday.WithWorkers(req.Workers),
		matchday.WithSplitDepth(g.splitDepth),
		matchday.WithShuffle(g.shuffle),
		matchday.WithTimeout(g.timeout),
		matchday.WithLogger(g.log),
	)
	if err != nil {
		g.log.Warn().Err(err).Int("season", req.Season).Int("games", len(edges)).Msg("no schedule")
		return Schedule{}, err
	}

	handleDays := make([][][2]int, len(found.Matchdays))
	for d, md := range found.Matchdays {
		handleDays[d] = make([][2]int, len(md))
		for i, gi := range md {
			handleDays[d][i] = edges[gi]
		}
	}
	split, err := days.Split(handleDays, tv, days.ConfigFor(req.Tournament))
	if err != nil {
		return Schedule{}, err
	}

	out := Schedule{
		Season:    req.Season,
		Matchdays: make([][][]core.Game, len(found.Matchdays)),
		Stats: Stats{
			Teams:    graph.Len(),
			Games:    graph.Size(),
			Nodes:    found.Stats.Nodes,
			Worker:   found.Stats.Worker,
			Duration: found.Stats.Duration,
			Relaxed:  split.Relaxed,
		},
	}
	for d, md := range found.Matchdays {
		out.Matchdays[d] = make([][]core.Game, len(split.Matchdays[d]))
		for s, day := range split.Matchdays[d] {
			out.Matchdays[d][s] = make([]core.Game, len(day.Games))
			for i, pos := range day.Games {
				out.Matchdays[d][s][i] = graph.Game(md[pos])
			}
		}
	}

	g.log.Info().
		Int("season", req.Season).
		Str("competition", string(req.Tournament.Competition)).
		Int("teams", out.Stats.Teams).
		Int("games", out.Stats.Games).
		Int("matchdays", len(out.Matchdays)).
		Int("nodes", out.Stats.Nodes).
		Bool("tv_cap_relaxed", out.Stats.Relaxed).
		Dur("elapsed", out.Stats.Duration).
		Msg("schedule ready")

	return out, nil
}

// perfectMatchable rejects fixture graphs where every team must play on
// every matchday but some connected component has an odd number of teams.
func perfectMatchable(graph *core.Graph, size int) error {
	if 2*size != graph.Len() {
		return nil
	}
	for _, comp := range graph.Components() {
		if len(comp)%2 != 0 {
			return eris.Wrapf(core.ErrInfeasible, "the %d teams around %s cannot all play on one matchday", len(comp), graph.Team(comp[0]))
		}
	}

	return nil
}

// Validate checks that s schedules exactly games (as a multiset) with no
// team playing twice on one matchday.
func (s Schedule) Validate(games []core.Game) error {
	want := make(map[[2]string]int, len(games))
	for _, gm := range games {
		want[[2]string{gm.Home.ID, gm.Away.ID}]++
	}
	for d, md := range s.Matchdays {
		seen := make(map[string]struct{})
		for _, day := range md {
			for _, gm := range day {
				for _, id := range []string{gm.Home.ID, gm.Away.ID} {
					if _, dup := seen[id]; dup {
						return eris.Wrapf(core.ErrInvalidInput, "%s plays twice on matchday %d", id, d)
					}
					seen[id] = struct{}{}
				}
				key := [2]string{gm.Home.ID, gm.Away.ID}
				if want[key] == 0 {
					return eris.Wrapf(core.ErrInvalidInput, "%s scheduled more often than listed", gm)
				}
				want[key]--
			}
		}
	}
	for key, n := range want {
		if n > 0 {
			return eris.Wrapf(core.ErrInvalidInput, "%s-%s not scheduled", key[0], key[1])
		}
	}

	return nil
}
