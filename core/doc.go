// Package core holds the data model shared by every drawsim engine: the
// caller-owned Team, Game and Pairing values, the error taxonomy, and Graph,
// the fixture multigraph that maps caller teams onto dense integer handles.
//
// A Graph G = (V,E) has one vertex per team and one edge per fixture:
//
//   - Handles are assigned in insertion order (0..n-1) and never change.
//   - Parallel edges are allowed (double round-robin lists home and away).
//   - Self-games are rejected (ErrInvalidInput).
//   - Edges() returns fixtures in insertion order, as [2]int handle pairs,
//     so edge index i always refers to the caller's i-th Game.
//
// Searches never touch Team values: they read the handle view once and run
// on plain ints. Results are mapped back through Team(h) and Game(i).
//
// Concurrency:
//
//	Mutations (AddTeam, AddGame) take the write lock; every query takes the
//	read lock, so a Graph may be shared by concurrent search workers.
//
// Errors:
//
//	ErrInvalidInput - empty/duplicate team ID, unknown team, self-game.
//	ErrInfeasible   - no solution exists (proven by search or precheck).
//	ErrCancelled    - search aborted by the caller or a sibling worker.
//	ErrTimedOut     - deadline passed before the space was exhausted.
package core
