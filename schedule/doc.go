// Package schedule turns a season's fixture list into a dated schedule.
//
// Generate maps the caller's teams onto dense handles (core.Graph), races
// the matchday decomposition over a dispatch.Pool, spreads every matchday
// over the tournament's days (package days) and hands back the caller's own
// core.Game values:
//
//	Schedule.Matchdays[matchday][day][game]
//
// The outcome is a Schedule or one of core.ErrInvalidInput,
// core.ErrInfeasible, core.ErrCancelled and core.ErrTimedOut.
// Schedule.Validate re-checks the result against the fixture list.
package schedule
