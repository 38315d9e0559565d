// SPDX-License-Identifier: MIT

package matchday

import (
	"github.com/rotisserie/eris"

	"github.com/katalvlaran/drawsim/core"
)

// Validate rejects malformed input before any search starts.
//
// Rules:
//   - Teams >= 2 and MatchdaySize >= 1, with 2*MatchdaySize <= Teams.
//   - At least one game; the game count is a multiple of MatchdaySize.
//   - Every handle is in [0, Teams); no team plays itself.
func (in Input) Validate() error {
	switch {
	case in.Teams < 2:
		return eris.Wrapf(core.ErrInvalidInput, "need at least 2 teams, got %d", in.Teams)
	case in.MatchdaySize < 1:
		return eris.Wrapf(core.ErrInvalidInput, "matchday size %d < 1", in.MatchdaySize)
	case 2*in.MatchdaySize > in.Teams:
		return eris.Wrapf(core.ErrInvalidInput, "matchday size %d needs %d teams, have %d", in.MatchdaySize, 2*in.MatchdaySize, in.Teams)
	case len(in.Games) == 0:
		return eris.Wrap(core.ErrInvalidInput, "empty fixture list")
	case len(in.Games)%in.MatchdaySize != 0:
		return eris.Wrapf(core.ErrInvalidInput, "%d games do not split into matchdays of %d", len(in.Games), in.MatchdaySize)
	}
	for i, g := range in.Games {
		for _, h := range g {
			if h < 0 || h >= in.Teams {
				return eris.Wrapf(core.ErrInvalidInput, "game %d: handle %d out of range [0,%d)", i, h, in.Teams)
			}
		}
		if g[0] == g[1] {
			return eris.Wrapf(core.ErrInvalidInput, "game %d: team %d plays itself", i, g[0])
		}
	}

	return nil
}

// precheck proves infeasibility from game counts alone: nobody can play more
// games than there are matchdays, and when every team plays on every
// matchday each team needs exactly one game per matchday.
func (in Input) precheck() error {
	days := in.Matchdays()
	degree := make([]int, in.Teams)
	for _, g := range in.Games {
		degree[g[0]]++
		degree[g[1]]++
	}
	full := 2*in.MatchdaySize == in.Teams
	for t, d := range degree {
		if d > days {
			return eris.Wrapf(core.ErrInfeasible, "team %d has %d games for %d matchdays", t, d, days)
		}
		if full && d != days {
			return eris.Wrapf(core.ErrInfeasible, "team %d has %d games, every matchday needs it", t, d)
		}
	}

	return nil
}
