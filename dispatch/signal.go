// SPDX-License-Identifier: MIT

package dispatch

import "sync/atomic"

// Signal is the single shared stop flag of a run. Workers poll Stopped at
// every search node; the first finisher, Cancel, or the context stops it.
type Signal struct {
	stopped atomic.Bool
}

// Stop raises the flag. It is idempotent.
func (s *Signal) Stop() { s.stopped.Store(true) }

// Stopped reports whether the flag is raised. A nil Signal is never stopped.
func (s *Signal) Stopped() bool {
	return s != nil && s.stopped.Load()
}
