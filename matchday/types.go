// SPDX-License-Identifier: MIT

package matchday

import (
	"time"

	"github.com/rotisserie/eris"

	"github.com/katalvlaran/drawsim/core"
)

// Input is a fixture list over dense team handles 0..Teams-1.
//
// Games may repeat a pair (home and away legs). MatchdaySize is the number of
// games every matchday must hold.
type Input struct {
	Teams        int
	Games        [][2]int
	MatchdaySize int
}

// Matchdays is the number of matchdays a decomposition of in has.
func (in Input) Matchdays() int {
	if in.MatchdaySize <= 0 {
		return 0
	}

	return len(in.Games) / in.MatchdaySize
}

// Stats describes the search that produced a Result.
type Stats struct {
	Nodes    int
	Duration time.Duration
	Worker   int
}

// Result is a complete decomposition. Matchdays[d] lists indices into
// Input.Games in stable fixture order.
type Result struct {
	Matchdays [][]int
	Stats     Stats
}

// Check verifies that r decomposes in: every game scheduled exactly once,
// every matchday full, no team twice in one matchday.
func (r Result) Check(in Input) error {
	seen := make([]bool, len(in.Games))
	for d, md := range r.Matchdays {
		if len(md) != in.MatchdaySize {
			return eris.Wrapf(core.ErrInvalidInput, "matchday %d holds %d games, want %d", d, len(md), in.MatchdaySize)
		}
		teams := make(map[int]struct{}, 2*len(md))
		for _, gi := range md {
			if gi < 0 || gi >= len(in.Games) || seen[gi] {
				return eris.Wrapf(core.ErrInvalidInput, "game %d missing or scheduled twice", gi)
			}
			seen[gi] = true
			for _, h := range in.Games[gi] {
				if _, dup := teams[h]; dup {
					return eris.Wrapf(core.ErrInvalidInput, "team %d plays twice on matchday %d", h, d)
				}
				teams[h] = struct{}{}
			}
		}
	}
	for gi, ok := range seen {
		if !ok {
			return eris.Wrapf(core.ErrInvalidInput, "game %d not scheduled", gi)
		}
	}

	return nil
}
