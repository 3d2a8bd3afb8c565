package cache

import (
	"time"

	"github.com/mgwr285/policycache/internal/policy"
)

// DefaultCleanupInterval is the sweep cadence used when WithCleanupInterval
// is not given.
const DefaultCleanupInterval = 60 * time.Second

type options struct {
	kind            policy.Kind
	defaultTTL      time.Duration
	cleanupInterval time.Duration
	statsDisabled   bool
}

// Option configures a Cache at construction time.
type Option func(*options)

func defaultOptions() options {
	return options{kind: policy.LRU, cleanupInterval: DefaultCleanupInterval}
}

// WithPolicy selects the eviction strategy. The default is LRU.
func WithPolicy(kind policy.Kind) Option {
	return func(o *options) { o.kind = kind }
}

// WithDefaultTTL applies ttl to every entry stored without an explicit one.
// Without this option entries only expire when Put is given a TTL.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(o *options) { o.defaultTTL = ttl }
}

// WithCleanupInterval sets how often the background sweeper scans for
// expired entries. A non-positive interval disables the sweeper, leaving
// lazy expiration on access as the only cleanup.
func WithCleanupInterval(d time.Duration) Option {
	return func(o *options) { o.cleanupInterval = d }
}

// WithoutStats turns off hit/miss/eviction/expiration accounting; Stats
// then reports ok == false.
func WithoutStats() Option {
	return func(o *options) { o.statsDisabled = true }
}
