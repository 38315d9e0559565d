// SPDX-License-Identifier: MIT
//
// File: predicate.go
// Role: Predicate/Rule contracts and RuleSet, the composite strategy object.
// Policy:
//   - Rules are pure: same inputs, same answer, no hidden state.
//   - Key must capture every team attribute the rule reads, so that teams
//     with equal keys are interchangeable for the legality search.

package predicate

import (
	"strings"

	"github.com/katalvlaran/drawsim/core"
)

// Predicate decides whether team may be placed into groups[group] now.
//
// groups is the current assignment (group index -> placed teams), pot is the
// remaining content of the pot team is drawn from (team included). Neither
// slice may be retained or mutated.
type Predicate interface {
	Legal(groups [][]core.Team, pot []core.Team, group int, team core.Team) bool

	// Key returns the equivalence class of team under this predicate.
	Key(team core.Team) string
}

// Rule is one tournament-specific constraint. A Rule is a Predicate.
type Rule interface {
	Predicate

	// Name is a short stable identifier used in logs and tests.
	Name() string
}

// RuleSet is the conjunction of its rules.
type RuleSet struct {
	rules []Rule
}

var _ Predicate = (*RuleSet)(nil)

// NewRuleSet composes rules; an empty set accepts every placement.
func NewRuleSet(rules ...Rule) *RuleSet {
	out := make([]Rule, len(rules))
	copy(out, rules)

	return &RuleSet{rules: out}
}

// Legal reports whether every rule accepts the placement.
func (s *RuleSet) Legal(groups [][]core.Team, pot []core.Team, group int, team core.Team) bool {
	for _, r := range s.rules {
		if !r.Legal(groups, pot, group, team) {
			return false
		}
	}

	return true
}

// Key joins the rule keys; with no rules all teams are interchangeable.
func (s *RuleSet) Key(team core.Team) string {
	if len(s.rules) == 1 {
		return s.rules[0].Key(team)
	}
	var b strings.Builder
	for i, r := range s.rules {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(r.Key(team))
	}

	return b.String()
}

// Names lists the rule names in evaluation order.
func (s *RuleSet) Names() []string {
	out := make([]string, len(s.rules))
	for i, r := range s.rules {
		out[i] = r.Name()
	}

	return out
}

// Func adapts a plain legality function into a Predicate whose classes are
// team IDs (no two teams are interchangeable).
type Func func(groups [][]core.Team, pot []core.Team, group int, team core.Team) bool

// Legal calls f.
func (f Func) Legal(groups [][]core.Team, pot []core.Team, group int, team core.Team) bool {
	return f(groups, pot, group, team)
}

// Key returns the team ID.
func (f Func) Key(team core.Team) string { return team.ID }
