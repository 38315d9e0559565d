// Package matchday decomposes a fixed fixture list into matchdays.
//
// What:
//
//	Given n teams (dense handles), a fixture multigraph and a matchday size
//	k, find an ordered list of matchdays, each holding exactly k games with
//	no team twice, whose union is the fixture list. With 2k == n every team
//	plays on every matchday and the problem is a 1-factorization of the
//	fixture multigraph.
//
// How:
//
//	Exact backtracking (engine.go). FirstSuitable races several workers over
//	disjoint shares of the tree through a dispatch.Pool and returns the first
//	complete decomposition; Search runs one share directly.
//
// Guarantees:
//
//   - No decomposition is missed: ErrInfeasible is reported only after every
//     share has been exhausted (or a count precheck proves it).
//   - Cancellation is observed at every search node.
//   - Single-worker runs are deterministic for equal input.
//
// Errors:
//
//	core.ErrInvalidInput - bad handles, self-games, game count not a
//	                       multiple of the matchday size.
//	core.ErrInfeasible   - no decomposition exists.
//	core.ErrCancelled    - ctx cancelled.
//	core.ErrTimedOut     - deadline passed.
package matchday
