// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: Exhaustive completion search behind PossibleGroups.
//
// Search (succinct):
//  1. Work on private copies of pots and groups; the caller's Draw is never touched.
//  2. At each node take the smallest non-empty pot (ties: lower index) and
//     its first remaining team; try every group that fits (capacity,
//     one-per-pot, predicate). Succeed when all pots are empty.
//  3. Memoise failed states. A state key lists, per group, the sorted
//     (origin pot, predicate class) of its members, plus the consumption
//     cursor of every pot. Teams of one class are interchangeable for the
//     predicate, so states equal up to such swaps share one key.
//  4. Prune a pot whose remaining teams outnumber the groups able to take one.
//  5. ctx is polled at every node; a cancelled search never records failures.

package groups

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/kelindar/bitmap"
	"github.com/rotisserie/eris"

	"github.com/katalvlaran/drawsim/core"
	"github.com/katalvlaran/drawsim/predicate"
)

type engine struct {
	ctx       context.Context
	pred      predicate.Predicate
	capacity  int
	onePerPot bool

	groups  [][]core.Team   // working assignment
	origins [][]int         // origin pot of each group member, parallel to groups
	potMask []bitmap.Bitmap // per group: origin pots present
	pots    [][]core.Team   // remaining teams per pot (selected team removed)
	next    []int           // per pot: index of the next team to place

	classes map[string]string // team ID -> "origin:key"
	failed  map[string]struct{}

	nodes     int
	cancelled bool
}

// newEngine validates d and prepares the working state. It returns the
// engine, the selected team's pot and the team itself.
func newEngine(ctx context.Context, d Draw, selected core.Team, pred predicate.Predicate, o Options) (*engine, int, error) {
	if pred == nil {
		return nil, -1, eris.Wrap(core.ErrInvalidInput, "predicate is nil")
	}
	if len(d.Groups) == 0 {
		return nil, -1, eris.Wrap(core.ErrInvalidInput, "draw has no groups")
	}
	capacity := o.Capacity
	if capacity <= 0 {
		capacity = len(d.Pots)
	}
	if capacity <= 0 {
		return nil, -1, eris.Wrap(core.ErrInvalidInput, "group capacity is zero")
	}

	e := &engine{
		ctx:       ctx,
		pred:      pred,
		capacity:  capacity,
		onePerPot: o.OnePerPot,
		groups:    make([][]core.Team, len(d.Groups)),
		origins:   make([][]int, len(d.Groups)),
		potMask:   make([]bitmap.Bitmap, len(d.Groups)),
		pots:      make([][]core.Team, len(d.Pots)),
		next:      make([]int, len(d.Pots)),
		classes:   make(map[string]string),
		failed:    make(map[string]struct{}),
	}

	seen := make(map[string]struct{})
	selPot := -1
	for p, pot := range d.Pots {
		e.pots[p] = make([]core.Team, 0, len(pot))
		for _, t := range pot {
			if _, dup := seen[t.ID]; dup || t.ID == "" {
				return nil, -1, eris.Wrapf(core.ErrInvalidInput, "team %q listed twice or without ID", t.ID)
			}
			seen[t.ID] = struct{}{}
			e.classes[t.ID] = strconv.Itoa(p) + ":" + pred.Key(t)
			if t.ID == selected.ID {
				selPot = p
				continue
			}
			e.pots[p] = append(e.pots[p], t)
		}
	}
	if selPot < 0 {
		return nil, -1, eris.Wrapf(core.ErrInvalidInput, "selected team %q is not in any pot", selected.ID)
	}

	for g, members := range d.Groups {
		if len(members) > capacity {
			return nil, -1, eris.Wrapf(core.ErrInvalidInput, "group %d holds %d teams, capacity %d", g, len(members), capacity)
		}
		for _, t := range members {
			if _, dup := seen[t.ID]; dup || t.ID == "" {
				return nil, -1, eris.Wrapf(core.ErrInvalidInput, "team %q placed twice or still in a pot", t.ID)
			}
			seen[t.ID] = struct{}{}
			origin, ok := d.Origins[t.ID]
			if !ok {
				if e.onePerPot {
					return nil, -1, eris.Wrapf(core.ErrInvalidInput, "placed team %q has no pot origin", t.ID)
				}
				origin = -1
			}
			if e.onePerPot && e.potMask[g].Contains(uint32(origin)) {
				return nil, -1, eris.Wrapf(core.ErrInvalidInput, "group %d holds two teams of pot %d", g, origin)
			}
			e.classes[t.ID] = strconv.Itoa(origin) + ":" + pred.Key(t)
			e.appendMember(g, origin, t)
		}
	}

	return e, selPot, nil
}

func (e *engine) appendMember(g, origin int, t core.Team) {
	e.groups[g] = append(e.groups[g], t)
	e.origins[g] = append(e.origins[g], origin)
	if origin >= 0 {
		e.potMask[g].Set(uint32(origin))
	}
}

func (e *engine) popMember(g int) {
	last := len(e.groups[g]) - 1
	if origin := e.origins[g][last]; origin >= 0 {
		e.potMask[g].Remove(uint32(origin))
	}
	e.groups[g] = e.groups[g][:last]
	e.origins[g] = e.origins[g][:last]
}

// fits checks the structural rules and the predicate for one placement.
// pot is the remaining content of the team's pot, team included.
func (e *engine) fits(p, g int, pot []core.Team, t core.Team) bool {
	if len(e.groups[g]) >= e.capacity {
		return false
	}
	if e.onePerPot && e.potMask[g].Contains(uint32(p)) {
		return false
	}

	return e.pred.Legal(e.groups, pot, g, t)
}

// openGroups counts the groups that could structurally take a team of pot p.
func (e *engine) openGroups(p int) int {
	n := 0
	for g := range e.groups {
		if len(e.groups[g]) < e.capacity && (!e.onePerPot || !e.potMask[g].Contains(uint32(p))) {
			n++
		}
	}

	return n
}

// pickPot returns the smallest non-empty pot, or -1 when all are empty.
func (e *engine) pickPot() int {
	best, size := -1, 0
	for p := range e.pots {
		left := len(e.pots[p]) - e.next[p]
		if left > 0 && (best < 0 || left < size) {
			best, size = p, left
		}
	}

	return best
}

func (e *engine) stateKey() string {
	var b strings.Builder
	members := make([]string, 0, e.capacity)
	for g := range e.groups {
		members = members[:0]
		for _, t := range e.groups[g] {
			members = append(members, e.classes[t.ID])
		}
		sort.Strings(members)
		b.WriteString(strings.Join(members, ","))
		b.WriteByte('/')
	}
	b.WriteByte('#')
	for _, n := range e.next {
		b.WriteString(strconv.Itoa(n))
		b.WriteByte('.')
	}

	return b.String()
}

// completable reports whether every remaining team can still be placed.
func (e *engine) completable() bool {
	if e.ctx.Err() != nil {
		e.cancelled = true
		return false
	}
	e.nodes++

	p := e.pickPot()
	if p < 0 {
		return true
	}
	key := e.stateKey()
	if _, ok := e.failed[key]; ok {
		return false
	}
	if e.openGroups(p) < len(e.pots[p])-e.next[p] {
		e.failed[key] = struct{}{}
		return false
	}

	i := e.next[p]
	t := e.pots[p][i]
	pot := e.pots[p][i:]
	e.next[p]++
	defer func() { e.next[p]-- }()

	for g := range e.groups {
		if !e.fits(p, g, pot, t) {
			continue
		}
		e.appendMember(g, p, t)
		ok := e.completable()
		e.popMember(g)
		if ok {
			return true
		}
		if e.cancelled {
			return false
		}
	}
	e.failed[key] = struct{}{}

	return false
}
