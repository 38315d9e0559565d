// SPDX-License-Identifier: MIT

package predicate

import (
	"strconv"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"
	"github.com/rotisserie/eris"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/drawsim/config"
)

// Registry memoises predicates per (competition, stage, season).
//
// Predicates are pure and season-stable, so a cached instance is returned
// as-is. Concurrent misses for one key build the predicate once.
type Registry struct {
	cache  *lru.Cache
	flight singleflight.Group
	builds atomic.Int64
}

// NewRegistry returns a registry holding at most size predicates.
func NewRegistry(size int) (*Registry, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, eris.Wrap(err, "failed to create predicate cache")
	}

	return &Registry{cache: cache}, nil
}

// Get returns the predicate of a competition stage for season.
func (r *Registry) Get(c config.Competition, s config.Stage, season int) (*RuleSet, error) {
	key := string(c) + "/" + string(s) + "/" + strconv.Itoa(season)
	if v, ok := r.cache.Get(key); ok {
		return v.(*RuleSet), nil
	}

	v, err, _ := r.flight.Do(key, func() (interface{}, error) {
		if v, ok := r.cache.Get(key); ok {
			return v, nil
		}
		p, err := New(c, s, season)
		if err != nil {
			return nil, err
		}
		r.builds.Add(1)
		r.cache.Add(key, p)

		return p, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*RuleSet), nil
}

// Builds reports how many predicates were constructed (cache misses).
func (r *Registry) Builds() int64 { return r.builds.Load() }

// Len reports how many predicates are cached.
func (r *Registry) Len() int { return r.cache.Len() }
