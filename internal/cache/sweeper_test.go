package cache_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mgwr285/policycache/internal/cache"
)

func TestSweeperRemovesExpiredEntries(t *testing.T) {
	c := newCache(t, 10,
		cache.WithDefaultTTL(20*time.Millisecond),
		cache.WithCleanupInterval(10*time.Millisecond))

	for i := 0; i < 3; i++ {
		c.Put("key"+strconv.Itoa(i), "value", 0)
	}

	// No reads happen, so only the background sweep can shrink the cache.
	require.Eventually(t, func() bool { return c.Len() == 0 },
		2*time.Second, 5*time.Millisecond,
		"expected the sweeper to remove expired entries without any access")

	stats, ok := c.Stats()
	require.True(t, ok)
	require.Equal(t, uint64(3), stats.Expirations)
	require.Zero(t, stats.Misses, "sweeping must not count as misses")
}

func TestSweeperSparesLiveEntries(t *testing.T) {
	c := newCache(t, 10, cache.WithCleanupInterval(10*time.Millisecond))
	c.Put("short", "value", 20*time.Millisecond)
	c.Put("long", "value", 10*time.Second)
	c.Put("forever", "value", 0)

	require.Eventually(t, func() bool { return c.Len() == 2 },
		2*time.Second, 5*time.Millisecond)

	require.True(t, c.Contains("long"))
	require.True(t, c.Contains("forever"))
}

func TestCloseStopsBackgroundExpiration(t *testing.T) {
	c, err := cache.New[string, string](10,
		cache.WithCleanupInterval(10*time.Millisecond))
	require.NoError(t, err)

	c.Put("key1", "value1", 20*time.Millisecond)
	require.NoError(t, c.Close())

	time.Sleep(100 * time.Millisecond)

	require.Equal(t, 1, c.Len(), "expected no background removal after Close")
	require.False(t, c.Contains("key1"), "lazy expiry still applies to reads")
}

func TestCloseIsIdempotent(t *testing.T) {
	c, err := cache.New[string, string](10,
		cache.WithDefaultTTL(time.Second),
		cache.WithCleanupInterval(10*time.Millisecond))
	require.NoError(t, err)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}

func TestCacheUsableAfterClose(t *testing.T) {
	c, err := cache.New[string, string](10)
	require.NoError(t, err)
	require.NoError(t, c.Close())

	c.Put("key1", "value1", 0)
	result, ok := c.Get("key1")
	require.True(t, ok)
	require.Equal(t, "value1", result)
}
