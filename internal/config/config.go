package config

import (
	"time"

	"github.com/joho/godotenv"

	"github.com/mgwr285/policycache/internal/cache"
	"github.com/mgwr285/policycache/internal/policy"
)

// Config holds the demo binary's settings. The library itself is
// configured through cache.Option values; this only maps environment
// variables onto them.
type Config struct {
	Capacity        int
	Policy          policy.Kind
	DefaultTTL      time.Duration
	CleanupInterval time.Duration
	EnableStats     bool

	DemoKeys      int
	DemoRate      int
	DemoBurst     int
	StatsInterval time.Duration
}

// New reads settings from the environment, after loading a .env file when
// one is present.
func New() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Capacity:        getInt("CAPACITY", 1024),
		Policy:          policy.Kind(getString("EVICTION_POLICY", string(policy.LRU))),
		DefaultTTL:      getDuration("DEFAULT_TTL", 0),
		CleanupInterval: getDuration("CLEANUP_INTERVAL", cache.DefaultCleanupInterval),
		EnableStats:     getBool("ENABLE_STATS", true),
		DemoKeys:        getInt("DEMO_KEYS", 2048),
		DemoRate:        getInt("DEMO_RATE", 1000),
		DemoBurst:       getInt("DEMO_BURST", 100),
		StatsInterval:   getDuration("STATS_INTERVAL", 5*time.Second),
	}, nil
}
