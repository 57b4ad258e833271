// Package lrucache provides small generic wrappers around an LRU cache
// with true promote-on-access semantics, used by the solver for both its
// state-presence cache and its tableau-move cache.
package lrucache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// PresenceCache is a bounded set: Add records a key as seen, Contains
// reports whether it has been seen, promoting the entry to
// most-recently-used on a hit. Eviction under capacity pressure is the
// only way entries disappear.
type PresenceCache[K comparable] struct {
	cache *lru.Cache[K, struct{}]
}

// NewPresenceCache returns a PresenceCache bounded to capacity entries.
// capacity must be positive.
func NewPresenceCache[K comparable](capacity int) *PresenceCache[K] {
	c, err := lru.New[K, struct{}](capacity)
	if err != nil {
		panic(err)
	}
	return &PresenceCache[K]{cache: c}
}

// Contains reports whether key has been added before, promoting it to
// most-recently-used on a hit. A plain existence check that does not
// promote would degrade pruning quality without affecting correctness;
// this type always promotes.
func (p *PresenceCache[K]) Contains(key K) bool {
	_, ok := p.cache.Get(key)
	return ok
}

// Add records key as seen.
func (p *PresenceCache[K]) Add(key K) {
	p.cache.Add(key, struct{}{})
}

// Len returns the current number of entries.
func (p *PresenceCache[K]) Len() int {
	return p.cache.Len()
}

// ValueCache is a bounded key-to-value LRU cache with promote-on-access
// semantics, used to memoize expensive-to-recompute derived values.
type ValueCache[K comparable, V any] struct {
	cache *lru.Cache[K, V]
}

// NewValueCache returns a ValueCache bounded to capacity entries.
func NewValueCache[K comparable, V any](capacity int) *ValueCache[K, V] {
	c, err := lru.New[K, V](capacity)
	if err != nil {
		panic(err)
	}
	return &ValueCache[K, V]{cache: c}
}

// Get returns the cached value for key and true, promoting it to
// most-recently-used, or the zero value and false on a miss.
func (v *ValueCache[K, V]) Get(key K) (V, bool) {
	return v.cache.Get(key)
}

// Add stores value under key.
func (v *ValueCache[K, V]) Add(key K, value V) {
	v.cache.Add(key, value)
}

// Len returns the current number of entries.
func (v *ValueCache[K, V]) Len() int {
	return v.cache.Len()
}
