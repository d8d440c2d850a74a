// Package cache holds a process-local copy of a single remote value,
// refreshed after a fixed TTL or an explicit invalidation.
package cache

import (
	"context"
	"sync"
	"time"
)

// Value caches one value of type T. The zero TTL disables caching and
// every Get refreshes.
type Value[T any] struct {
	ttl time.Duration
	now func() time.Time

	mu        sync.Mutex
	val       T
	fetchedAt time.Time
	valid     bool
}

func New[T any](ttl time.Duration) *Value[T] {
	return &Value[T]{ttl: ttl, now: time.Now}
}

// Get returns the cached value, calling refresh when the cache is empty or
// older than the TTL. A failed refresh leaves any previously cached value
// untouched, so a transient error does not evict good data.
func (c *Value[T]) Get(ctx context.Context, refresh func(context.Context) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.ttl > 0 && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.val, nil
	}

	val, err := refresh(ctx)
	if err != nil {
		if c.valid {
			return c.val, nil
		}
		var zero T
		return zero, err
	}

	c.val = val
	c.fetchedAt = c.now()
	c.valid = true
	return val, nil
}

// Invalidate drops the cached value so the next Get refreshes.
func (c *Value[T]) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}
