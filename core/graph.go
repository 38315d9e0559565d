// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Fixture multigraph with dense team handles.
// Determinism:
//   - Handles follow insertion order; Edges() follows AddGame order.
// Concurrency:
//   - One RWMutex guards teams, index and edges.

package core

import (
	"sync"

	"github.com/rotisserie/eris"
)

// Graph is the pairing graph of a fixture list: teams are vertices
// (dense handles 0..n-1), games are edges.
type Graph struct {
	mu sync.RWMutex

	teams []Team         // handle -> team
	index map[string]int // Team.ID -> handle
	games []Game         // edge index -> caller game
	edges [][2]int       // edge index -> (home, away) handles
	adj   [][]int        // handle -> incident edge indices, ascending
}

// NewGraph returns an empty pairing graph.
func NewGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}

// BuildGraph builds a graph from an optional explicit team list followed by
// the fixture list.
//
// When teams is non-empty, handles follow its order and every game must
// reference a listed team. When teams is empty, handles are assigned in
// first-appearance order over games (home before away).
//
// Complexity: O(T + G).
func BuildGraph(teams []Team, games []Game) (*Graph, error) {
	g := NewGraph()
	for _, t := range teams {
		if g.HasTeam(t.ID) {
			return nil, eris.Wrapf(ErrInvalidInput, "duplicate team %q", t.ID)
		}
		if _, err := g.AddTeam(t); err != nil {
			return nil, err
		}
	}
	strict := len(teams) > 0
	for i, gm := range games {
		if strict && (!g.HasTeam(gm.Home.ID) || !g.HasTeam(gm.Away.ID)) {
			return nil, eris.Wrapf(ErrInvalidInput, "game %d references a team outside the team list", i)
		}
		if _, err := g.AddGame(gm); err != nil {
			return nil, eris.Wrapf(err, "game %d", i)
		}
	}

	return g, nil
}

// AddTeam registers t and returns its handle. Adding a known ID is a no-op
// that returns the existing handle.
func (g *Graph) AddTeam(t Team) (int, error) {
	if t.ID == "" {
		return -1, eris.Wrap(ErrInvalidInput, "team ID is empty")
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addTeamLocked(t), nil
}

func (g *Graph) addTeamLocked(t Team) int {
	if h, ok := g.index[t.ID]; ok {
		return h
	}
	h := len(g.teams)
	g.teams = append(g.teams, t)
	g.index[t.ID] = h
	g.adj = append(g.adj, nil)

	return h
}

// AddGame appends a fixture, registering unknown teams on the way, and
// returns its edge index.
func (g *Graph) AddGame(gm Game) (int, error) {
	if gm.Home.ID == "" || gm.Away.ID == "" {
		return -1, eris.Wrap(ErrInvalidInput, "team ID is empty")
	}
	if gm.Home.ID == gm.Away.ID {
		return -1, eris.Wrapf(ErrInvalidInput, "team %q cannot play itself", gm.Home.ID)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	h := g.addTeamLocked(gm.Home)
	a := g.addTeamLocked(gm.Away)
	e := len(g.edges)
	g.games = append(g.games, gm)
	g.edges = append(g.edges, [2]int{h, a})
	g.adj[h] = append(g.adj[h], e)
	g.adj[a] = append(g.adj[a], e)

	return e, nil
}

// Len returns the number of teams.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.teams)
}

// Size returns the number of games.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasTeam reports whether a team with the given ID is registered.
func (g *Graph) HasTeam(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Handle returns the dense handle of the team with the given ID.
func (g *Graph) Handle(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	h, ok := g.index[id]

	return h, ok
}

// Team returns the team behind handle h. It panics on an out-of-range
// handle, like a slice index.
func (g *Graph) Team(h int) Team {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.teams[h]
}

// Teams returns a copy of all teams in handle order.
func (g *Graph) Teams() []Team {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Team, len(g.teams))
	copy(out, g.teams)

	return out
}

// Game returns the caller's i-th game.
func (g *Graph) Game(i int) Game {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.games[i]
}

// Edges returns a copy of the handle view of all games, in insertion order.
func (g *Graph) Edges() [][2]int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([][2]int, len(g.edges))
	copy(out, g.edges)

	return out
}

// Degree returns how many games team h plays.
func (g *Graph) Degree(h int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[h])
}

// GamesOf returns the edge indices of the games of team h, ascending.
func (g *Graph) GamesOf(h int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, len(g.adj[h]))
	copy(out, g.adj[h])

	return out
}

// Pairs translates team pairings into handle pairs.
// Every team of every pairing must be registered.
func (g *Graph) Pairs(ps []Pairing) ([][2]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([][2]int, 0, len(ps))
	for i, p := range ps {
		a, okA := g.index[p.A.ID]
		b, okB := g.index[p.B.ID]
		if !okA || !okB {
			return nil, eris.Wrapf(ErrInvalidInput, "pairing %d references an unknown team", i)
		}
		out = append(out, [2]int{a, b})
	}

	return out, nil
}
