package cache

import (
	"time"

	"github.com/rs/zerolog/log"
)

// startSweeperLocked launches the background sweeper once the cache can
// actually hold expiring entries: at construction when a default TTL is
// set, otherwise on the first Put that stores an expiring entry. A cache
// that never sees a TTL never runs a goroutine. Caller holds mu.
func (c *Cache[K, V]) startSweeperLocked() {
	if c.sweeping || c.closed || c.cleanupInterval <= 0 {
		return
	}
	c.sweeping = true
	c.wg.Add(1)
	go c.sweep()
}

func (c *Cache[K, V]) sweep() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

// removeExpired drops every entry past its deadline in one critical
// section, using the same removal path as lazy expiration. A panicking
// cycle is logged and the next tick runs normally; a sweep fault never
// takes the cache down.
func (c *Cache[K, V]) removeExpired() {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("cache sweep failed")
		}
	}()

	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if e.expired(now) {
			c.removeLocked(key)
			if c.stats != nil {
				c.stats.Expirations++
			}
		}
	}
}
