// SPDX-License-Identifier: MIT

package groups

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/katalvlaran/drawsim/core"
	"github.com/katalvlaran/drawsim/predicate"
)

// PossibleGroups returns, in ascending order, every group index into which
// team may be placed such that the whole draw can still be completed under
// pred and the structural rules in opts.
//
// The result is empty (not nil) when no group works. d is never modified and
// repeated calls with equal inputs return equal results.
//
// Errors:
//   - core.ErrInvalidInput: malformed draw, nil predicate, team not in a pot.
//   - core.ErrCancelled: ctx was cancelled or expired before the answer was known.
func PossibleGroups(ctx context.Context, d Draw, team core.Team, pred predicate.Predicate, opts ...Option) ([]int, error) {
	e, selPot, err := newEngine(ctx, d, team, pred, buildOptions(opts))
	if err != nil {
		return nil, err
	}

	pot := append([]core.Team{team}, e.pots[selPot]...)
	out := make([]int, 0, len(e.groups))
	for g := range e.groups {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(core.ErrCancelled, err.Error())
		}
		if !e.fits(selPot, g, pot, team) {
			continue
		}
		e.appendMember(g, selPot, team)
		ok := e.completable()
		e.popMember(g)
		if e.cancelled {
			return nil, eris.Wrap(core.ErrCancelled, "legality search interrupted")
		}
		if ok {
			out = append(out, g)
		}
	}

	return out, nil
}

// FirstPossibleGroup returns the lowest group index PossibleGroups would
// report, or ErrInfeasible when there is none. It stops at the first hit.
func FirstPossibleGroup(ctx context.Context, d Draw, team core.Team, pred predicate.Predicate, opts ...Option) (int, error) {
	e, selPot, err := newEngine(ctx, d, team, pred, buildOptions(opts))
	if err != nil {
		return -1, err
	}
	if err := ctx.Err(); err != nil {
		return -1, eris.Wrap(core.ErrCancelled, err.Error())
	}

	pot := append([]core.Team{team}, e.pots[selPot]...)
	for g := range e.groups {
		if !e.fits(selPot, g, pot, team) {
			continue
		}
		e.appendMember(g, selPot, team)
		ok := e.completable()
		e.popMember(g)
		if e.cancelled {
			return -1, eris.Wrap(core.ErrCancelled, "legality search interrupted")
		}
		if ok {
			return g, nil
		}
	}

	return -1, eris.Wrapf(core.ErrInfeasible, "no group can take %s", team.ID)
}
