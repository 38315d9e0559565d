// Package drawsim is a constraint engine for tournament draw ceremonies and
// season schedules.
//
// It answers two questions, both by exact bounded search:
//
//	groups   : into which groups may the next drawn team still go, such
//	           that the rest of the draw stays completable?
//	schedule : can the fixture list be cut into matchdays (and calendar
//	           days), and what is the first such schedule?
//
// Layout:
//
//	core/      : Team, Game, Pairing; the fixture graph with dense handles;
//	             the error taxonomy (ErrInvalidInput, ErrInfeasible,
//	             ErrCancelled, ErrTimedOut)
//	predicate/ : season-versioned group rules and their memoised registry
//	groups/    : legality engine, automatic draw, request service
//	matchday/  : matchday decomposition search
//	days/      : marquee-aware day splitting
//	dispatch/  : worker pool and race-for-first runs
//	schedule/  : season setup: graph → matchdays → days → caller games
//	config/    : DRAWSIM_* environment config and tournament presets
//	telemetry/ : zerolog logger factory
//
// Quick start:
//
//	pool := dispatch.NewPool(0)
//	defer pool.Close()
//	gen, _ := schedule.NewGenerator(pool)
//	s, err := gen.Generate(ctx, schedule.Request{Games: games, MatchdaySize: 2})
//
// Nothing here renders, persists or loads data; callers own teams, draw
// state and the pool.
package drawsim
