// SPDX-License-Identifier: MIT

package groups

import (
	"context"
	"math/rand"

	"github.com/rotisserie/eris"

	"github.com/katalvlaran/drawsim/core"
	"github.com/katalvlaran/drawsim/predicate"
)

// Simulate runs a complete automatic draw starting from d.
//
// Teams are drawn pot by pot. With rng == nil the draw is deterministic: the
// head of the first non-empty pot goes into its lowest possible group. With
// a non-nil rng both the team and the group are picked at random. rng is not
// goroutine-safe; do not share it.
//
// Every pick goes through PossibleGroups, so a consistent starting draw
// always completes. ErrInfeasible means d itself cannot be completed.
func Simulate(ctx context.Context, d Draw, pred predicate.Predicate, rng *rand.Rand, opts ...Option) (Draw, error) {
	cur := d.Clone()
	for !cur.Done() {
		p := 0
		for len(cur.Pots[p]) == 0 {
			p++
		}
		i := 0
		if rng != nil {
			i = rng.Intn(len(cur.Pots[p]))
		}
		team := cur.Pots[p][i]

		possible, err := PossibleGroups(ctx, cur, team, pred, opts...)
		if err != nil {
			return Draw{}, err
		}
		if len(possible) == 0 {
			return Draw{}, eris.Wrapf(core.ErrInfeasible, "draw stuck at %s with %d teams left", team.ID, cur.Remaining())
		}
		g := possible[0]
		if rng != nil {
			g = possible[rng.Intn(len(possible))]
		}
		if cur, err = cur.Place(team, g); err != nil {
			return Draw{}, err
		}
	}

	return cur, nil
}
