// SPDX-License-Identifier: MIT

package groups

// Option configures the structural rules of the legality search.
type Option func(*Options)

// Options holds the structural rules enforced next to the predicate.
type Options struct {
	// Capacity is the per-group size limit; 0 means one slot per pot.
	Capacity int

	// OnePerPot forbids two teams seeded in the same pot from sharing a group.
	OnePerPot bool
}

// DefaultOptions returns Options with:
//   - Capacity derived from the pot count
//   - OnePerPot enabled
func DefaultOptions() Options {
	return Options{Capacity: 0, OnePerPot: true}
}

// WithCapacity sets the per-group size limit. Values < 1 are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// WithOnePerPot toggles the one-team-per-pot rule.
func WithOnePerPot(on bool) Option {
	return func(o *Options) { o.OnePerPot = on }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
