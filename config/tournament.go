// SPDX-License-Identifier: MIT

package config

import (
	"github.com/rotisserie/eris"

	"github.com/katalvlaran/drawsim/core"
)

// Competition identifies a tournament family.
type Competition string

const (
	ChampionsLeague  Competition = "cl"
	EuropaLeague     Competition = "el"
	ConferenceLeague Competition = "ecl"
	WorldCup         Competition = "wc"
)

// Stage identifies the phase of a competition.
type Stage string

const (
	GroupStage    Stage = "gs"
	KnockoutStage Stage = "ko"
	LeagueStage   Stage = "ls"
)

// Tournament is the structural configuration of one competition stage.
type Tournament struct {
	Competition Competition
	Stage       Stage

	// Groups and Pots describe a group draw; zero for league stages.
	Groups int
	Pots   int

	// Teams, MatchdaySize, Days and MaxTVPerDay describe the schedule.
	Teams        int
	MatchdaySize int
	Days         int
	MaxTVPerDay  int
}

// GroupSize is the per-group capacity of a group draw: one team per pot.
func (t Tournament) GroupSize() int { return t.Pots }

// Matchdays is the number of matchdays in a complete schedule of games.
func (t Tournament) Matchdays(games int) int {
	if t.MatchdaySize <= 0 {
		return 0
	}

	return games / t.MatchdaySize
}

var presets = map[Competition]map[Stage]Tournament{
	ChampionsLeague: {
		GroupStage:  {Competition: ChampionsLeague, Stage: GroupStage, Groups: 8, Pots: 4, Teams: 32, MatchdaySize: 16, Days: 2, MaxTVPerDay: 2},
		LeagueStage: {Competition: ChampionsLeague, Stage: LeagueStage, Pots: 4, Teams: 36, MatchdaySize: 18, Days: 2, MaxTVPerDay: 2},
	},
	EuropaLeague: {
		GroupStage:  {Competition: EuropaLeague, Stage: GroupStage, Groups: 12, Pots: 4, Teams: 48, MatchdaySize: 24, Days: 1},
		LeagueStage: {Competition: EuropaLeague, Stage: LeagueStage, Pots: 4, Teams: 36, MatchdaySize: 18, Days: 1},
	},
	ConferenceLeague: {
		LeagueStage: {Competition: ConferenceLeague, Stage: LeagueStage, Pots: 6, Teams: 36, MatchdaySize: 18, Days: 1},
	},
	WorldCup: {
		GroupStage: {Competition: WorldCup, Stage: GroupStage, Groups: 8, Pots: 4, Teams: 32, MatchdaySize: 16, Days: 4, MaxTVPerDay: 1},
	},
}

// Preset returns the structural configuration of a known competition stage.
func Preset(c Competition, s Stage) (Tournament, error) {
	t, ok := presets[c][s]
	if !ok {
		return Tournament{}, eris.Wrapf(core.ErrInvalidInput, "no preset for %s/%s", c, s)
	}

	return t, nil
}

var currentSeasons = map[Competition]map[Stage]int{
	ChampionsLeague:  {GroupStage: 2019, KnockoutStage: 2018, LeagueStage: 2024},
	EuropaLeague:     {GroupStage: 2019, KnockoutStage: 2018, LeagueStage: 2024},
	ConferenceLeague: {LeagueStage: 2024},
	WorldCup:         {GroupStage: 2018},
}

// CurrentSeason returns the most recent season shipped for a competition
// stage, or 0 when the stage is unknown.
func CurrentSeason(c Competition, s Stage) int {
	return currentSeasons[c][s]
}
