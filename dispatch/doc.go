// Package dispatch coordinates parallel searches that race for the first
// solution.
//
// A Pool bounds how many workers may run at once across every run it
// dispatches. Dispatch splits one Task over a group of workers, each
// receiving an Assignment (its index, the worker count, a derived seed and
// the shared stop Signal). The first worker to succeed wins; all others
// observe the Signal and return.
//
// Outcomes of a Run:
//
//	value              - some worker found a solution
//	core.ErrInfeasible - every worker exhausted its share
//	core.ErrCancelled  - the caller cancelled ctx or called Run.Cancel
//	core.ErrTimedOut   - the ctx or pool deadline passed first
//
// Seeds are derived from the pool seed with a SplitMix64 mixer, so a fixed
// (seed, workers) pair reproduces the same worker streams.
package dispatch
