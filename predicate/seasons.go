// SPDX-License-Identifier: MIT

package predicate

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/katalvlaran/drawsim/config"
	"github.com/katalvlaran/drawsim/core"
)

// Variant is the closed set of rule families.
type Variant int

const (
	VariantUEFAGroupStage Variant = iota + 1
	VariantUEFALeagueStage
	VariantWorldCup
)

// VariantOf selects the rule family of a competition stage.
func VariantOf(c config.Competition, s config.Stage) (Variant, error) {
	switch {
	case c == config.WorldCup && s == config.GroupStage:
		return VariantWorldCup, nil
	case c != config.WorldCup && s == config.GroupStage:
		return VariantUEFAGroupStage, nil
	case c != config.WorldCup && s == config.LeagueStage:
		return VariantUEFALeagueStage, nil
	default:
		return 0, eris.Wrapf(core.ErrInvalidInput, "no draw rules for %s/%s", c, s)
	}
}

// pairingHalvesSince is the first season paired clubs were split across halves.
const pairingHalvesSince = 2012

// prohibitedClashes lists country pairs kept apart, by first season applied.
var prohibitedClashes = []struct {
	since int
	pair  [2]string
}{
	{2014, [2]string{"RUS", "UKR"}},
	{2016, [2]string{"KOS", "SRB"}},
	{2016, [2]string{"KOS", "BIH"}},
	{2022, [2]string{"BLR", "UKR"}},
}

// ProhibitedClashes returns the country pairs kept apart in season, sorted.
func ProhibitedClashes(season int) [][2]string {
	var out [][2]string
	for _, c := range prohibitedClashes {
		if season >= c.since {
			out = append(out, c.pair)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}

// New builds the predicate of a competition stage for season.
//
// Rules per variant:
//   - UEFA group stage: country clash; pairing halves from 2012; prohibited
//     country clashes from 2014.
//   - UEFA league stage: country clash; prohibited country clashes.
//   - World Cup: at most one team per confederation per group, two for UEFA.
func New(c config.Competition, s config.Stage, season int) (*RuleSet, error) {
	if season <= 0 {
		return nil, eris.Wrapf(core.ErrInvalidInput, "season must be positive, got %d", season)
	}
	v, err := VariantOf(c, s)
	if err != nil {
		return nil, err
	}

	switch v {
	case VariantWorldCup:
		return NewRuleSet(ConfederationCap{Caps: map[string]int{"UEFA": 2}, Default: 1}), nil
	case VariantUEFALeagueStage:
		return NewRuleSet(withClashes([]Rule{CountryClash{}}, season)...), nil
	default:
		rules := []Rule{CountryClash{}}
		if season >= pairingHalvesSince {
			rules = append(rules, PairingHalves{})
		}
		return NewRuleSet(withClashes(rules, season)...), nil
	}
}

func withClashes(rules []Rule, season int) []Rule {
	if pairs := ProhibitedClashes(season); len(pairs) > 0 {
		rules = append(rules, NewForbiddenPairs(pairs...))
	}

	return rules
}
