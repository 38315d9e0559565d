// SPDX-License-Identifier: MIT

package predicate

import (
	"github.com/katalvlaran/drawsim/core"
)

// CountryClash forbids two teams of the same country in one group.
type CountryClash struct{}

func (CountryClash) Name() string              { return "country-clash" }
func (CountryClash) Key(team core.Team) string { return team.Country }

func (CountryClash) Legal(groups [][]core.Team, _ []core.Team, group int, team core.Team) bool {
	for _, m := range groups[group] {
		if m.Country == team.Country {
			return false
		}
	}

	return true
}

// ForbiddenPairs forbids listed country pairs (in either order) from
// sharing a group.
type ForbiddenPairs struct {
	banned map[string]map[string]struct{}
}

// NewForbiddenPairs builds the rule from country pairs.
func NewForbiddenPairs(pairs ...[2]string) ForbiddenPairs {
	banned := make(map[string]map[string]struct{}, 2*len(pairs))
	add := func(a, b string) {
		if banned[a] == nil {
			banned[a] = make(map[string]struct{})
		}
		banned[a][b] = struct{}{}
	}
	for _, p := range pairs {
		add(p[0], p[1])
		add(p[1], p[0])
	}

	return ForbiddenPairs{banned: banned}
}

func (ForbiddenPairs) Name() string              { return "forbidden-pairs" }
func (ForbiddenPairs) Key(team core.Team) string { return team.Country }

func (r ForbiddenPairs) Legal(groups [][]core.Team, _ []core.Team, group int, team core.Team) bool {
	clash := r.banned[team.Country]
	if len(clash) == 0 {
		return true
	}
	for _, m := range groups[group] {
		if _, ok := clash[m.Country]; ok {
			return false
		}
	}

	return true
}

// PairingHalves keeps teams that share a Pairing tag in different halves
// of the group list: groups [0, n/2) and [n/2, n). With an odd group count
// the middle group belongs to the second half.
type PairingHalves struct{}

func (PairingHalves) Name() string              { return "pairing-halves" }
func (PairingHalves) Key(team core.Team) string { return team.Pairing }

func (PairingHalves) Legal(groups [][]core.Team, _ []core.Team, group int, team core.Team) bool {
	if team.Pairing == "" {
		return true
	}
	half := len(groups) / 2
	mine := group >= half
	for g, members := range groups {
		if (g >= half) != mine {
			continue
		}
		for _, m := range members {
			if m.Pairing == team.Pairing && m.ID != team.ID {
				return false
			}
		}
	}

	return true
}

// ConfederationCap limits how many teams of one association a group holds.
// Associations missing from Caps are limited to Default.
type ConfederationCap struct {
	Caps    map[string]int
	Default int
}

func (ConfederationCap) Name() string              { return "confederation-cap" }
func (ConfederationCap) Key(team core.Team) string { return team.Association }

func (r ConfederationCap) Legal(groups [][]core.Team, _ []core.Team, group int, team core.Team) bool {
	limit, ok := r.Caps[team.Association]
	if !ok {
		limit = r.Default
	}
	n := 0
	for _, m := range groups[group] {
		if m.Association == team.Association {
			n++
		}
	}

	return n < limit
}
