package groups_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drawsim/core"
	"github.com/katalvlaran/drawsim/groups"
	"github.com/katalvlaran/drawsim/predicate"
)

func team(id, country string) core.Team {
	return core.Team{ID: id, Name: id, Country: country, Association: "UEFA"}
}

// abcd: C and D seeded in pot 0, A and B in pot 1; C already sits in group 0.
func abcd(t *testing.T) (groups.Draw, core.Team) {
	t.Helper()
	a, b, c, d := team("A", "X"), team("B", "Y"), team("C", "X"), team("D", "Y")
	draw := groups.NewDraw([][]core.Team{{c, d}, {a, b}}, 2)
	draw, err := draw.Place(c, 0)
	require.NoError(t, err)

	return draw, a
}

func TestPossibleGroups_SameCountryScenario(t *testing.T) {
	draw, a := abcd(t)
	got, err := groups.PossibleGroups(context.Background(), draw, a, predicate.CountryClash{})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got, "A may only join the group without C")

	first, err := groups.FirstPossibleGroup(context.Background(), draw, a, predicate.CountryClash{})
	require.NoError(t, err)
	assert.Equal(t, 1, first)
}

func TestPossibleGroups_IdempotentAndPure(t *testing.T) {
	draw, a := abcd(t)
	before := draw.Clone()

	first, err := groups.PossibleGroups(context.Background(), draw, a, predicate.CountryClash{})
	require.NoError(t, err)
	second, err := groups.PossibleGroups(context.Background(), draw, a, predicate.CountryClash{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, draw, "draw state must not be mutated")
}

func TestPossibleGroups_LookAhead(t *testing.T) {
	// Locally both groups accept A, but A in group 0 leaves group 1 as the
	// only place for B, next to D.
	a, b, c, d := team("A", "X"), team("B", "Y"), team("C", "Z"), team("D", "Y")
	draw := groups.NewDraw([][]core.Team{{c, d}, {a, b}}, 2)
	draw, err := draw.Place(d, 1)
	require.NoError(t, err)

	got, err := groups.PossibleGroups(context.Background(), draw, a, predicate.CountryClash{})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got, "group 0 would force B next to D")
}

func TestPossibleGroups_NoneLegal(t *testing.T) {
	a, b, c, d := team("A", "X"), team("B", "X"), team("C", "X"), team("D", "Y")
	draw := groups.NewDraw([][]core.Team{{c, d}, {a, b}}, 2)

	got, err := groups.PossibleGroups(context.Background(), draw, a, predicate.CountryClash{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = groups.FirstPossibleGroup(context.Background(), draw, a, predicate.CountryClash{})
	require.ErrorIs(t, err, core.ErrInfeasible)
}

func TestPossibleGroups_InvalidInput(t *testing.T) {
	draw, a := abcd(t)
	ctx := context.Background()

	_, err := groups.PossibleGroups(ctx, draw, team("Z", "X"), predicate.CountryClash{})
	require.ErrorIs(t, err, core.ErrInvalidInput, "selected team not in a pot")

	_, err = groups.PossibleGroups(ctx, draw, team("C", "X"), predicate.CountryClash{})
	require.ErrorIs(t, err, core.ErrInvalidInput, "selected team already placed")

	_, err = groups.PossibleGroups(ctx, draw, a, nil)
	require.ErrorIs(t, err, core.ErrInvalidInput, "nil predicate")

	dup := draw.Clone()
	dup.Pots[1] = append(dup.Pots[1], a)
	_, err = groups.PossibleGroups(ctx, dup, a, predicate.CountryClash{})
	require.ErrorIs(t, err, core.ErrInvalidInput, "duplicate team")

	over := draw.Clone()
	over.Groups[0] = append(over.Groups[0], team("E", "Q"), team("F", "R"))
	_, err = groups.PossibleGroups(ctx, over, a, predicate.CountryClash{}, groups.WithOnePerPot(false))
	require.ErrorIs(t, err, core.ErrInvalidInput, "group over capacity")

	_, err = groups.PossibleGroups(ctx, groups.NewDraw([][]core.Team{{a}}, 0), a, predicate.CountryClash{})
	require.ErrorIs(t, err, core.ErrInvalidInput, "no groups")
}

func TestPossibleGroups_Cancelled(t *testing.T) {
	draw, a := abcd(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := groups.PossibleGroups(ctx, draw, a, predicate.CountryClash{})
	require.ErrorIs(t, err, core.ErrCancelled)

	_, err = groups.FirstPossibleGroup(ctx, draw, a, predicate.CountryClash{})
	require.ErrorIs(t, err, core.ErrCancelled)
}

func TestPossibleGroups_CustomPredicate(t *testing.T) {
	draw, a := abcd(t)
	never := predicate.Func(func([][]core.Team, []core.Team, int, core.Team) bool { return false })

	got, err := groups.PossibleGroups(context.Background(), draw, a, never)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// bruteForce enumerates every full assignment of the remaining teams and
// reports the groups for which one exists. Country clash is symmetric, so a
// final-state check is equivalent to checking each placement in draw order.
func bruteForce(d groups.Draw, selected core.Team, capacity int) []int {
	var rest []core.Team
	for _, pot := range d.Pots {
		for _, tm := range pot {
			if tm.ID != selected.ID {
				rest = append(rest, tm)
			}
		}
	}

	fits := func(gs [][]core.Team, g int, tm core.Team) bool {
		if len(gs[g]) >= capacity {
			return false
		}
		for _, m := range gs[g] {
			if m.Country == tm.Country || d.Origins[m.ID] == d.Origins[tm.ID] {
				return false
			}
		}
		return true
	}

	var complete func(gs [][]core.Team, i int) bool
	complete = func(gs [][]core.Team, i int) bool {
		if i == len(rest) {
			return true
		}
		for g := range gs {
			if !fits(gs, g, rest[i]) {
				continue
			}
			gs[g] = append(gs[g], rest[i])
			ok := complete(gs, i+1)
			gs[g] = gs[g][:len(gs[g])-1]
			if ok {
				return true
			}
		}
		return false
	}

	out := []int{}
	for g := range d.Groups {
		gs := d.Clone().Groups
		if !fits(gs, g, selected) {
			continue
		}
		gs[g] = append(gs[g], selected)
		if complete(gs, 0) {
			out = append(out, g)
		}
	}

	return out
}

func TestPossibleGroups_MatchesBruteForce(t *testing.T) {
	configs := [][]string{
		{"X", "X", "Y", "Y", "Z", "Z"},
		{"X", "X", "X", "Y", "Y", "Y"},
		{"X", "Y", "Z", "X", "X", "Y"},
		{"X", "X", "Y", "X", "Z", "Z"},
		{"X", "Y", "Y", "X", "X", "Y"},
		{"X", "X", "Y", "X", "X", "Z"},
	}
	for ci, countries := range configs {
		teams := make([]core.Team, len(countries))
		for i, c := range countries {
			teams[i] = team(fmt.Sprintf("t%d", i), c)
		}
		pots := [][]core.Team{teams[:3], teams[3:]}

		// Empty draw, every team of either pot selected first.
		empty := groups.NewDraw(pots, 3)
		for _, sel := range teams {
			got, err := groups.PossibleGroups(context.Background(), empty, sel, predicate.CountryClash{})
			require.NoError(t, err)
			assert.Equal(t, bruteForce(empty, sel, 2), got, "config %d, empty draw, %s", ci, sel.ID)
		}

		// One team already placed in each possible group.
		for g := 0; g < 3; g++ {
			d, err := empty.Place(teams[0], g)
			require.NoError(t, err)
			for _, sel := range teams[1:] {
				got, err := groups.PossibleGroups(context.Background(), d, sel, predicate.CountryClash{})
				require.NoError(t, err)
				assert.Equal(t, bruteForce(d, sel, 2), got, "config %d, t0 in %d, %s", ci, g, sel.ID)
			}
		}
	}
}
