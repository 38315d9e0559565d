// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Caller-facing data model (Team, Game, Pairing) and the error taxonomy
//       shared by every engine package.
// Policy:
//   - Team/Game values are owned by the caller and never mutated here.
//   - Only the four taxonomy sentinels cross a component boundary.

package core

import "github.com/rotisserie/eris"

// Error taxonomy. Components wrap these with context via eris.Wrapf;
// callers match them with errors.Is or eris.Is.
var (
	// ErrInvalidInput reports malformed draw or fixture state detected
	// before any search starts (unknown team, inconsistent sizes, ...).
	ErrInvalidInput = eris.New("drawsim: invalid input")

	// ErrInfeasible proves that no solution exists within the structural
	// constraints. It is never retried with relaxed rules.
	ErrInfeasible = eris.New("drawsim: infeasible")

	// ErrCancelled reports a caller- or sibling-triggered abort.
	ErrCancelled = eris.New("drawsim: cancelled")

	// ErrTimedOut reports that the deadline passed before the search space
	// was exhausted.
	ErrTimedOut = eris.New("drawsim: timed out")
)

// Team is an immutable team identity.
//
// ID must be unique within one draw or one fixture list. Association is the
// confederation-association the team belongs to (e.g. "UEFA", "CONMEBOL").
// Pairing is an optional tag: teams sharing a non-empty tag form a TV pairing
// that season rules may keep apart.
type Team struct {
	ID          string
	Name        string
	Country     string
	Association string
	Pairing     string
}

// String returns the team name, falling back to its ID.
func (t Team) String() string {
	if t.Name != "" {
		return t.Name
	}

	return t.ID
}

// Game is a fixture between two teams. Order matters for display only.
type Game struct {
	Home Team
	Away Team
}

func (g Game) String() string { return g.Home.String() + "-" + g.Away.String() }

// Involves reports whether the team with the given ID plays in g.
func (g Game) Involves(id string) bool { return g.Home.ID == id || g.Away.ID == id }

// Pairing flags a pair of teams for broadcast spacing.
type Pairing struct {
	A Team
	B Team
}
