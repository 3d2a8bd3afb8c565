package cache

import (
	"errors"
	"sync"
	"time"

	"github.com/mgwr285/policycache/internal/policy"
)

// ErrInvalidCapacity is returned by New for a non-positive capacity.
var ErrInvalidCapacity = errors.New("cache: capacity must be positive")

// Cache is a thread-safe, capacity-bounded in-memory key-value store with
// pluggable eviction, per-entry TTL and usage statistics.
//
// A single RWMutex guards the entry map, the eviction policy and the
// counters together: every map mutation pairs with its policy notification
// inside the same critical section, so the policy's tracked key set always
// equals the map's key set between operations. Expired entries are removed
// lazily on access and, when a TTL is in play, eagerly by a background
// sweeper sharing the same lock.
type Cache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*entry[V]
	policy  policy.Policy[K]
	stats   *Stats // nil when statistics are disabled

	capacity        int
	defaultTTL      time.Duration
	cleanupInterval time.Duration

	sweeping bool
	closed   bool
	stop     chan struct{}
	wg       sync.WaitGroup
}

// New builds a cache holding at most capacity entries.
func New[K comparable, V any](capacity int, opts ...Option) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p, err := policy.New[K](o.kind)
	if err != nil {
		return nil, err
	}

	c := &Cache[K, V]{
		entries:         make(map[K]*entry[V]),
		policy:          p,
		capacity:        capacity,
		defaultTTL:      o.defaultTTL,
		cleanupInterval: o.cleanupInterval,
		stop:            make(chan struct{}),
	}
	if !o.statsDisabled {
		c.stats = &Stats{}
	}

	if c.defaultTTL > 0 {
		c.mu.Lock()
		c.startSweeperLocked()
		c.mu.Unlock()
	}

	return c, nil
}

// Get returns the live value stored under key. Absent and expired keys are
// misses; an expired entry found here is removed on the spot and counted
// as an expiration. A hit refreshes the entry's access metadata.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		if c.stats != nil {
			c.stats.Misses++
		}
		return zero, false
	}

	now := time.Now()
	if e.expired(now) {
		c.removeLocked(key)
		if c.stats != nil {
			c.stats.Misses++
			c.stats.Expirations++
		}
		return zero, false
	}

	e.lastAccessed = now
	e.accessCount++
	c.policy.OnGet(key)
	if c.stats != nil {
		c.stats.Hits++
	}
	return e.value, true
}

// Put stores value under key. A non-positive ttl falls back to the cache's
// default TTL, and to "never expires" when no default is set. Overwriting
// an existing key resets its metadata in place; storing a new key into a
// full cache evicts the policy's victim first.
func (c *Cache[K, V]) Put(key K, value V, ttl time.Duration) {
	now := time.Now()
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = now.Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		e.createdAt = now
		e.lastAccessed = now
		e.accessCount = 0
		e.expiresAt = expiresAt
		c.policy.OnPut(key)
		if !expiresAt.IsZero() {
			c.startSweeperLocked()
		}
		return
	}

	if len(c.entries) >= c.capacity {
		if victim, ok := c.policy.Evict(); ok {
			delete(c.entries, victim)
			if c.stats != nil {
				c.stats.Evictions++
			}
		}
	}

	c.entries[key] = &entry[V]{
		value:        value,
		createdAt:    now,
		lastAccessed: now,
		expiresAt:    expiresAt,
	}
	c.policy.OnPut(key)
	if !expiresAt.IsZero() {
		c.startSweeperLocked()
	}
}

// Remove deletes key and reports whether it was present.
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		return false
	}
	c.removeLocked(key)
	return true
}

// Contains reports whether key holds a live entry. Unlike Get it neither
// updates access metadata nor touches the counters, and an expired entry
// is simply reported absent, left for the sweeper or the next Get.
func (c *Cache[K, V]) Contains(key K) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	return ok && !e.expired(time.Now())
}

// Clear drops every entry and resets policy bookkeeping and statistics.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*entry[V])
	c.policy.Clear()
	if c.stats != nil {
		*c.stats = Stats{}
	}
}

// Len returns the number of stored entries, including expired ones the
// sweeper has not reached yet.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns a snapshot of the usage counters. ok is false when the
// cache was built with WithoutStats.
func (c *Cache[K, V]) Stats() (Stats, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.stats == nil {
		return Stats{}, false
	}
	return *c.stats, true
}

// Close stops the background sweeper and waits for it to exit, so no
// background mutation happens after Close returns. It is idempotent, and
// the cache itself stays usable for direct calls.
func (c *Cache[K, V]) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	close(c.stop)
	c.wg.Wait()
	return nil
}

// removeLocked deletes the entry and its policy bookkeeping together.
// Caller holds the write lock.
func (c *Cache[K, V]) removeLocked(key K) {
	delete(c.entries, key)
	c.policy.Remove(key)
}
