/*
Package cache implements a bounded, concurrency-safe LRU cache of compiled
patterns, keyed by pattern text.

Concurrent requests for the same missing key are collapsed into a single
build. Eviction removes entries from the cache only; values already handed
out stay valid.
*/
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// tracer traces with key 'fp.cache'.
func tracer() tracing.Trace {
	return tracing.Select("fp.cache")
}

// DefaultCapacity is the capacity used for capacities < 1.
const DefaultCapacity = 10000

// Cache maps pattern text to values built from it.
type Cache[V any] struct {
	entries  *lru.Cache[string, V]
	inflight singleflight.Group
	build    func(string) (V, error)
}

// New creates a cache holding at most capacity entries, using build to
// create missing entries.
func New[V any](capacity int, build func(string) (V, error)) (*Cache[V], error) {
	if build == nil {
		return nil, errors.New("cache: build function is nil")
	}
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	entries, err := lru.NewWithEvict(capacity, func(key string, _ V) {
		tracer().Debugf("evicting %q", key)
	})
	if err != nil {
		return nil, errors.Wrap(err, "cache: cannot create LRU")
	}
	return &Cache[V]{entries: entries, build: build}, nil
}

// GetOrCompile returns the entry for text, building and storing it if it is
// missing. Build errors are returned to every waiting caller and are not
// cached.
func (c *Cache[V]) GetOrCompile(text string) (V, error) {
	if v, ok := c.entries.Get(text); ok {
		return v, nil
	}
	v, err, shared := c.inflight.Do(text, func() (any, error) {
		if v, ok := c.entries.Get(text); ok { // stored by a racing flight
			return v, nil
		}
		tracer().Debugf("cache miss for %q", text)
		v, err := c.build(text)
		if err != nil {
			return nil, err
		}
		c.entries.Add(text, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	if shared {
		tracer().Debugf("shared build of %q", text)
	}
	return v.(V), nil
}

// Contains reports whether text is cached, without touching its recency.
func (c *Cache[V]) Contains(text string) bool {
	return c.entries.Contains(text)
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	return c.entries.Len()
}

// Purge removes all entries.
func (c *Cache[V]) Purge() {
	c.entries.Purge()
}
