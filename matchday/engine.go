// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: Exact backtracking decomposition of a fixture multigraph into
//       matchdays of fixed size.
//
// Search (succinct):
//  1. Games are sorted into a stable order by (min handle, max handle,
//     input index). Every run on equal input walks the same tree.
//  2. A new matchday is anchored by the first unscheduled game. Matchday
//     order is free, so this removes the permutation symmetry of matchdays.
//  3. Growing a matchday picks one branching team:
//     - a tight team (games left == matchdays left, not yet busy) must play
//       now: branch over its free games;
//     - otherwise the lowest free team with games left: branch over its free
//       games, then over resting this matchday.
//     Opponents are tried in ascending handle order; a repeated pair (home
//     and away legs) is tried once per node.
//  4. Prunes: a team with more games left than matchdays left (busy teams
//     count the current matchday as spent); fewer free teams than 2× the
//     open slots of the current matchday.
//  5. The stop Signal is polled at every node.
//
// Partition: branching nodes are numbered by depth along the path. At depth
// SplitDepth, worker w of W keeps alternative k iff k % W == w. Every worker
// walks the levels above identically; below, a worker may shuffle its
// alternatives with its own seed. The union of all workers is the full tree.
//
// Complexity:
//   - Worst case exponential in the number of games.
//   - Per node: O(n) prune scan + O(deg) alternatives.

package matchday

import (
	"math/rand"
	"sort"

	"github.com/kelindar/bitmap"

	"github.com/katalvlaran/drawsim/dispatch"
)

const rest = -1

type engine struct {
	n, size, total int

	games   [][2]int // by stable position
	index   []int    // stable position -> input index
	gamesOf [][]int  // team -> stable positions, ascending opponent

	used      []bool
	remaining []int
	busy      bitmap.Bitmap // teams playing or resting in the current matchday
	cur       []int
	resting   []int
	days      [][]int

	worker, workers int
	splitDepth      int
	shuffle         bool
	rng             *rand.Rand
	signal          *dispatch.Signal

	nodes   int
	stopped bool
}

func newEngine(in Input, a dispatch.Assignment, o Options) *engine {
	order := make([]int, len(in.Games))
	for i := range order {
		order[i] = i
	}
	lo := func(g [2]int) int { return min(g[0], g[1]) }
	hi := func(g [2]int) int { return max(g[0], g[1]) }
	sort.Slice(order, func(i, j int) bool {
		gi, gj := in.Games[order[i]], in.Games[order[j]]
		if lo(gi) != lo(gj) {
			return lo(gi) < lo(gj)
		}
		if hi(gi) != hi(gj) {
			return hi(gi) < hi(gj)
		}
		return order[i] < order[j]
	})

	e := &engine{
		n:          in.Teams,
		size:       in.MatchdaySize,
		total:      in.Matchdays(),
		games:      make([][2]int, len(order)),
		index:      order,
		gamesOf:    make([][]int, in.Teams),
		used:       make([]bool, len(order)),
		remaining:  make([]int, in.Teams),
		cur:        make([]int, 0, in.MatchdaySize),
		worker:     a.Worker,
		workers:    max(a.Workers, 1),
		splitDepth: o.SplitDepth,
		shuffle:    o.Shuffle,
		signal:     a.Signal,
	}
	for p, gi := range order {
		g := in.Games[gi]
		e.games[p] = g
		e.gamesOf[g[0]] = append(e.gamesOf[g[0]], p)
		e.gamesOf[g[1]] = append(e.gamesOf[g[1]], p)
		e.remaining[g[0]]++
		e.remaining[g[1]]++
	}
	for t := range e.gamesOf {
		ps := e.gamesOf[t]
		sort.Slice(ps, func(i, j int) bool {
			oi, oj := e.opponent(ps[i], t), e.opponent(ps[j], t)
			if oi != oj {
				return oi < oj
			}
			return ps[i] < ps[j]
		})
	}
	if e.shuffle {
		e.rng = a.Rand()
	}

	return e
}

func (e *engine) opponent(p, t int) int {
	if g := e.games[p]; g[0] != t {
		return g[0]
	}

	return e.games[p][1]
}

func (e *engine) take(p int) {
	g := e.games[p]
	e.used[p] = true
	e.remaining[g[0]]--
	e.remaining[g[1]]--
	e.busy.Set(uint32(g[0]))
	e.busy.Set(uint32(g[1]))
	e.cur = append(e.cur, p)
}

func (e *engine) release(p int) {
	g := e.games[p]
	e.used[p] = false
	e.remaining[g[0]]++
	e.remaining[g[1]]++
	e.busy.Remove(uint32(g[0]))
	e.busy.Remove(uint32(g[1]))
	e.cur = e.cur[:len(e.cur)-1]
}

func (e *engine) restTeam(t int) {
	e.busy.Set(uint32(t))
	e.resting = append(e.resting, t)
}

func (e *engine) wakeTeam(t int) {
	e.busy.Remove(uint32(t))
	e.resting = e.resting[:len(e.resting)-1]
}

func (e *engine) rebuildBusy() {
	e.busy.Clear()
	for _, p := range e.cur {
		e.busy.Set(uint32(e.games[p][0]))
		e.busy.Set(uint32(e.games[p][1]))
	}
	for _, t := range e.resting {
		e.busy.Set(uint32(t))
	}
}

// run searches the worker's share of the tree.
func (e *engine) run() bool { return e.openMatchday(0) }

// openMatchday anchors the next matchday on the first unscheduled game.
func (e *engine) openMatchday(depth int) bool {
	if len(e.days) == e.total {
		return true
	}
	p := 0
	for e.used[p] {
		p++
	}
	e.take(p)
	if e.grow(depth) {
		return true
	}
	e.release(p)

	return false
}

// closeMatchday stores the full current matchday and opens the next one.
func (e *engine) closeMatchday(depth int) bool {
	closed, rested := e.cur, e.resting
	e.days = append(e.days, closed)
	e.cur, e.resting = make([]int, 0, e.size), nil
	e.busy.Clear()
	if e.openMatchday(depth) {
		return true
	}
	e.days = e.days[:len(e.days)-1]
	e.cur, e.resting = closed, rested
	e.rebuildBusy()

	return false
}

// grow extends the current matchday; depth counts branching nodes above.
func (e *engine) grow(depth int) bool {
	if e.signal.Stopped() {
		e.stopped = true
		return false
	}
	e.nodes++
	if len(e.cur) == e.size {
		return e.closeMatchday(depth)
	}

	left := e.total - len(e.days)
	tight, lowest, free := -1, -1, 0
	for t := 0; t < e.n; t++ {
		r := e.remaining[t]
		if e.busy.Contains(uint32(t)) {
			if r > left-1 {
				return false
			}
			continue
		}
		if r > left {
			return false
		}
		if r == 0 {
			continue
		}
		free++
		if lowest < 0 {
			lowest = t
		}
		if tight < 0 && r == left {
			tight = t
		}
	}
	if free < 2*(e.size-len(e.cur)) {
		return false
	}

	t := tight
	if t < 0 {
		t = lowest
	}
	alts := e.alternatives(t, tight < 0, depth)
	for _, p := range alts {
		var ok bool
		if p == rest {
			e.restTeam(t)
			if ok = e.grow(depth + 1); !ok {
				e.wakeTeam(t)
			}
		} else {
			e.take(p)
			if ok = e.grow(depth + 1); !ok {
				e.release(p)
			}
		}
		if ok {
			return true
		}
		if e.stopped {
			return false
		}
	}

	return false
}

// alternatives lists the branches of team t at a node of the given depth,
// already reduced to this worker's share.
func (e *engine) alternatives(t int, canRest bool, depth int) []int {
	alts := make([]int, 0, len(e.gamesOf[t])+1)
	last := -1
	for _, p := range e.gamesOf[t] {
		if e.used[p] {
			continue
		}
		opp := e.opponent(p, t)
		if opp == last || e.busy.Contains(uint32(opp)) {
			continue
		}
		last = opp
		alts = append(alts, p)
	}
	if canRest {
		alts = append(alts, rest)
	}

	switch {
	case depth == e.splitDepth && e.workers > 1:
		mine := alts[:0]
		for k, p := range alts {
			if k%e.workers == e.worker {
				mine = append(mine, p)
			}
		}
		alts = mine
	case depth > e.splitDepth && e.rng != nil:
		e.rng.Shuffle(len(alts), func(i, j int) { alts[i], alts[j] = alts[j], alts[i] })
	}

	return alts
}

// result maps the found matchdays back to input indices.
func (e *engine) result() [][]int {
	out := make([][]int, len(e.days))
	for d, md := range e.days {
		ps := append([]int(nil), md...)
		sort.Ints(ps)
		out[d] = make([]int, len(ps))
		for i, p := range ps {
			out[d][i] = e.index[p]
		}
	}

	return out
}
