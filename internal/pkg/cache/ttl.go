// Package cache provides a small in-process memoisation cache. Values expire after a
// fixed TTL measured on an injectable clock, and concurrent misses for the same key
// share one loader call.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/urbancabz/console/internal/pkg/models"
)

// Loader produces the value for a key on a cache miss
type Loader[V any] func(ctx context.Context) (V, error)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache memoises values per key for a fixed TTL. Errors are never cached.
// Invalidating a key also voids any load for it that is still running.
type TTLCache[V any] struct {
	ttl   time.Duration
	clock models.Clock
	group singleflight.Group

	mu          sync.RWMutex
	entries     map[string]entry[V]
	generations map[string]uint64
	epoch       uint64
}

// NewTTLCache creates a cache. A nil clock uses the wall clock.
func NewTTLCache[V any](ttl time.Duration, clock models.Clock) *TTLCache[V] {
	if clock == nil {
		clock = models.SystemClock{}
	}
	return &TTLCache[V]{
		ttl:         ttl,
		clock:       clock,
		entries:     make(map[string]entry[V]),
		generations: make(map[string]uint64),
	}
}

// Get returns the cached value for key, or calls load once for all concurrent callers
// that miss together. The loader keeps the first caller's values but not its
// cancellation, so one caller leaving does not fail the others.
func (c *TTLCache[V]) Get(ctx context.Context, key string, load Loader[V]) (V, error) {
	if v, ok := c.Peek(key); ok {
		return v, nil
	}

	ch := c.group.DoChan(key, func() (interface{}, error) {
		// A caller that queued behind a finished flight sees the fresh entry
		if v, ok := c.Peek(key); ok {
			return v, nil
		}
		epoch, generation := c.generation(key)
		v, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return v, err
		}
		c.store(key, v, epoch, generation)
		return v, nil
	})

	select {
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			var zero V
			return zero, res.Err
		}
		return res.Val.(V), nil
	}
}

// Peek returns an unexpired value without loading
func (c *TTLCache[V]) Peek(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !c.clock.Now().Before(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores a value with a fresh TTL
func (c *TTLCache[V]) Set(key string, value V) {
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, expiresAt: c.clock.Now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *TTLCache[V]) generation(key string) (uint64, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.epoch, c.generations[key]
}

// store keeps a loaded value only if key was not invalidated while it loaded
func (c *TTLCache[V]) store(key string, value V, epoch, generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch || c.generations[key] != generation {
		return
	}
	c.entries[key] = entry[V]{value: value, expiresAt: c.clock.Now().Add(c.ttl)}
}

// Invalidate drops the value for key and voids loads of it still in flight
func (c *TTLCache[V]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.generations[key]++
	c.mu.Unlock()
	c.group.Forget(key)
}

// Purge drops every value and voids every load in flight
func (c *TTLCache[V]) Purge() {
	c.mu.Lock()
	c.entries = make(map[string]entry[V])
	c.generations = make(map[string]uint64)
	c.epoch++
	c.mu.Unlock()
}

// Len counts stored entries, expired ones included
func (c *TTLCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
