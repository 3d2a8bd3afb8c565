package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/mgwr285/policycache/internal/cache"
	"github.com/mgwr285/policycache/internal/config"
	"github.com/mgwr285/policycache/internal/registry"
)

type application struct {
	config *config.Config
	caches *registry.Registry[string, string]
}

func newApplication(cfg *config.Config) *application {
	return &application{
		config: cfg,
		caches: registry.New[string, string](),
	}
}

// run drives a rate-limited read/write workload against a registry-managed
// cache until SIGINT/SIGTERM, logging statistics along the way.
func (app *application) run() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	opts := []cache.Option{
		cache.WithPolicy(app.config.Policy),
		cache.WithCleanupInterval(app.config.CleanupInterval),
	}
	if app.config.DefaultTTL > 0 {
		opts = append(opts, cache.WithDefaultTTL(app.config.DefaultTTL))
	}
	if !app.config.EnableStats {
		opts = append(opts, cache.WithoutStats())
	}

	c, err := app.caches.GetOrCreate("demo", app.config.Capacity, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create cache")
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Info().Msg("demo shutting down...")
		cancel()
	}()

	log.Info().
		Str("policy", string(app.config.Policy)).
		Int("capacity", app.config.Capacity).
		Dur("default_ttl", app.config.DefaultTTL).
		Msg("demo starting...")

	go app.reportStats(ctx, c)
	app.workload(ctx, c)

	if err := app.caches.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close caches")
	}
}

// workload issues paced random puts and gets over a fixed key space, so
// hit rate and evictions settle into a steady state worth watching.
func (app *application) workload(ctx context.Context, c *cache.Cache[string, string]) {
	limiter := rate.NewLimiter(rate.Limit(app.config.DemoRate), app.config.DemoBurst)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		if err := limiter.Wait(ctx); err != nil {
			return
		}

		key := fmt.Sprintf("key-%d", rng.Intn(app.config.DemoKeys))
		if rng.Intn(10) < 3 {
			c.Put(key, time.Now().Format(time.RFC3339Nano), 0)
		} else {
			c.Get(key)
		}
	}
}

func (app *application) reportStats(ctx context.Context, c *cache.Cache[string, string]) {
	ticker := time.NewTicker(app.config.StatsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats, ok := c.Stats()
			if !ok {
				continue
			}
			log.Info().
				Uint64("hits", stats.Hits).
				Uint64("misses", stats.Misses).
				Uint64("evictions", stats.Evictions).
				Uint64("expirations", stats.Expirations).
				Float64("hit_rate", stats.HitRate()).
				Int("size", c.Len()).
				Msg("cache stats")
		case <-ctx.Done():
			return
		}
	}
}
