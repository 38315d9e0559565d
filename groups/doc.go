// Package groups implements the group-draw legality engine.
//
// What:
//
//   - PossibleGroups: the ascending set of groups into which a drawn team may
//     go such that every remaining team in every remaining pot can still be
//     placed legally. A group is offered only if a full completion exists.
//   - FirstPossibleGroup: the lowest such group, stopping at the first hit.
//   - Simulate: a complete automatic draw built from repeated queries.
//   - Service: the draw-ceremony call surface; resolves season predicates
//     through a predicate.Registry and answers Requests off the caller's
//     goroutine via Serve.
//
// Rules:
//
//   - Structural: a group holds at most Capacity teams (default: one per pot)
//     and, with OnePerPot (default), at most one team seeded in each pot.
//   - Season: any predicate.Predicate.
//
// Draw is an explicit state value. Nothing here keeps draw state between
// calls; Place returns a new Draw and the caller persists it.
//
// Complexity:
//
//	Worst case exponential in the number of remaining teams. Failed states
//	are memoised by predicate class, which collapses the interchangeable
//	teams of a pot and keeps real 8-group draws in the millisecond range.
//
// Errors:
//
//	core.ErrInvalidInput - malformed draw, duplicate team, team not in a pot.
//	core.ErrCancelled    - ctx done before the answer was known.
//	core.ErrInfeasible   - FirstPossibleGroup/Simulate found no completion.
package groups
