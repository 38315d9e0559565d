// SPDX-License-Identifier: MIT

package days

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/katalvlaran/drawsim/config"
	"github.com/katalvlaran/drawsim/core"
)

// Config describes how one matchday is spread over calendar days.
type Config struct {
	// Days per matchday, at least 1.
	Days int

	// MaxTV caps marquee games per day; 0 means no cap.
	MaxTV int

	// Sizes optionally fixes the number of games per day. It must have
	// Days entries summing to the matchday size. Nil means an even split,
	// the first days taking the remainder.
	Sizes []int
}

// ConfigFor returns the day layout of a tournament preset.
func ConfigFor(t config.Tournament) Config {
	return Config{Days: max(t.Days, 1), MaxTV: t.MaxTVPerDay}
}

// Day is one calendar slot of a matchday. Games are positions in the
// matchday's game list, ascending.
type Day struct {
	Slot  int
	Games []int
}

// Result holds the days of every matchday.
type Result struct {
	Matchdays [][]Day

	// Relaxed reports that some matchday had more marquee games than the
	// cap allowed and the cap was raised evenly for it.
	Relaxed bool
}

// Split assigns the games of every matchday to days.
//
// Marquee games (unordered pair listed in tv) are placed first, round-robin
// across days with room under the cap; ordinary games then fill the days in
// fixture order. If the marquee games do not fit under the cap, the cap is
// raised to ceil(marquee/Days) for that matchday and Result.Relaxed is set.
//
// Errors: core.ErrInvalidInput for Days < 1, negative MaxTV, or Sizes that
// do not match a matchday.
func Split(matchdays [][][2]int, tv [][2]int, cfg Config) (Result, error) {
	if cfg.Days < 1 {
		return Result{}, eris.Wrapf(core.ErrInvalidInput, "days per matchday %d < 1", cfg.Days)
	}
	if cfg.MaxTV < 0 {
		return Result{}, eris.Wrapf(core.ErrInvalidInput, "negative TV cap %d", cfg.MaxTV)
	}
	marquee := make(map[[2]int]struct{}, len(tv))
	for _, p := range tv {
		marquee[pairKey(p)] = struct{}{}
	}

	out := Result{Matchdays: make([][]Day, len(matchdays))}
	for d, games := range matchdays {
		sizes, err := daySizes(len(games), cfg)
		if err != nil {
			return Result{}, eris.Wrapf(err, "matchday %d", d)
		}
		days, relaxed := splitOne(games, marquee, sizes, cfg.MaxTV)
		out.Matchdays[d] = days
		out.Relaxed = out.Relaxed || relaxed
	}

	return out, nil
}

func pairKey(p [2]int) [2]int {
	if p[0] > p[1] {
		return [2]int{p[1], p[0]}
	}

	return p
}

func daySizes(games int, cfg Config) ([]int, error) {
	if cfg.Sizes != nil {
		if len(cfg.Sizes) != cfg.Days {
			return nil, eris.Wrapf(core.ErrInvalidInput, "%d day sizes for %d days", len(cfg.Sizes), cfg.Days)
		}
		sum := 0
		for _, s := range cfg.Sizes {
			if s < 0 {
				return nil, eris.Wrapf(core.ErrInvalidInput, "negative day size %d", s)
			}
			sum += s
		}
		if sum != games {
			return nil, eris.Wrapf(core.ErrInvalidInput, "day sizes sum to %d, matchday has %d games", sum, games)
		}

		return cfg.Sizes, nil
	}

	sizes := make([]int, cfg.Days)
	for i := range sizes {
		sizes[i] = games / cfg.Days
		if i < games%cfg.Days {
			sizes[i]++
		}
	}

	return sizes, nil
}

func splitOne(games [][2]int, marquee map[[2]int]struct{}, sizes []int, maxTV int) ([]Day, bool) {
	n := len(sizes)
	var tvGames, rest []int
	for i, g := range games {
		if _, ok := marquee[pairKey(g)]; ok {
			tvGames = append(tvGames, i)
		} else {
			rest = append(rest, i)
		}
	}

	limit, relaxed := maxTV, false
	if limit > 0 && len(tvGames) > n*limit {
		limit = (len(tvGames) + n - 1) / n
		relaxed = true
	}

	days := make([]Day, n)
	for i := range days {
		days[i].Slot = i
	}
	tvCount := make([]int, n)
	room := func(d int) bool { return len(days[d].Games) < sizes[d] }

	cursor := 0
	for _, gi := range tvGames {
		placed := -1
		for k := 0; k < n; k++ {
			d := (cursor + k) % n
			if room(d) && (limit == 0 || tvCount[d] < limit) {
				placed = d
				break
			}
		}
		if placed < 0 {
			// Day sizes leave no room under the cap; fall back to any day.
			relaxed = true
			for d := 0; d < n; d++ {
				if room(d) {
					placed = d
					break
				}
			}
		}
		days[placed].Games = append(days[placed].Games, gi)
		tvCount[placed]++
		cursor = placed + 1
	}

	d := 0
	for _, gi := range rest {
		for !room(d) {
			d++
		}
		days[d].Games = append(days[d].Games, gi)
	}
	for i := range days {
		sort.Ints(days[i].Games)
	}

	return days, relaxed
}
