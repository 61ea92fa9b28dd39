// Package ttlcache provides a single-entry read-through cache with lazy TTL
// expiry. The capacity service uses it for the account directory: the roster
// changes rarely relative to booking frequency, so it is safe to cache, while
// per-range load is recomputed live for every capacity decision.
package ttlcache

import (
	"sync"
	"time"

	"meetingsync/internal/pkg/clock"
)

// Stats describes the cache state for observability and tests.
type Stats struct {
	Size        int       `json:"size"`
	LastUpdated time.Time `json:"lastUpdated"`
	IsExpired   bool      `json:"isExpired"`
}

// Cache holds one value of type T with a TTL. All methods are safe for
// concurrent use; a reader sees either the fully-old or fully-new entry,
// never a partial update. Expiry is checked lazily on read, there is no
// background timer.
type Cache[T any] struct {
	mu        sync.RWMutex
	value     T
	size      int
	updatedAt time.Time
	populated bool

	ttl   time.Duration
	clock clock.Clock
}

func New[T any](ttl time.Duration, clk clock.Clock) *Cache[T] {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Cache[T]{ttl: ttl, clock: clk}
}

// Get returns the cached value and whether it is present and fresh.
func (c *Cache[T]) Get() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.populated || c.expiredLocked() {
		var zero T
		return zero, false
	}
	return c.value, true
}

// Set replaces the cached value. size is recorded for stats only.
func (c *Cache[T]) Set(value T, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = value
	c.size = size
	c.updatedAt = c.clock.Now()
	c.populated = true
}

// Clear drops the entry, forcing a refetch on the next read.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.value = zero
	c.size = 0
	c.updatedAt = time.Time{}
	c.populated = false
}

func (c *Cache[T]) IsExpired() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.populated || c.expiredLocked()
}

func (c *Cache[T]) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		Size:        c.size,
		LastUpdated: c.updatedAt,
		IsExpired:   !c.populated || c.expiredLocked(),
	}
}

func (c *Cache[T]) expiredLocked() bool {
	return c.clock.Now().Sub(c.updatedAt) >= c.ttl
}
