package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgwr285/policycache/internal/cache"
	"github.com/mgwr285/policycache/internal/policy"
	"github.com/mgwr285/policycache/internal/registry"
)

func TestRegistryGetOrCreateReturnsSameInstance(t *testing.T) {
	r := registry.New[string, string]()
	defer r.Close()

	first, err := r.GetOrCreate("users", 10)
	require.NoError(t, err)

	second, err := r.GetOrCreate("users", 99, cache.WithPolicy(policy.LFU))
	require.NoError(t, err)
	require.Same(t, first, second, "expected the existing cache, not a rebuild")
}

func TestRegistryCachesAreIndependent(t *testing.T) {
	r := registry.New[string, string]()
	defer r.Close()

	users, err := r.GetOrCreate("users", 10)
	require.NoError(t, err)
	sessions, err := r.GetOrCreate("sessions", 10)
	require.NoError(t, err)

	users.Put("key1", "value1", 0)

	_, ok := sessions.Get("key1")
	require.False(t, ok, "expected no leakage between named caches")
	require.Equal(t, 1, users.Len())
	require.Equal(t, 0, sessions.Len())
}

func TestRegistryGetUnknownName(t *testing.T) {
	r := registry.New[string, string]()
	defer r.Close()

	_, ok := r.Get("absent")
	require.False(t, ok)
}

func TestRegistryConstructionErrorPropagates(t *testing.T) {
	r := registry.New[string, string]()
	defer r.Close()

	_, err := r.GetOrCreate("bad", 0)
	require.ErrorIs(t, err, cache.ErrInvalidCapacity)

	_, ok := r.Get("bad")
	require.False(t, ok, "expected nothing registered after a failed build")
}

func TestRegistryRemove(t *testing.T) {
	r := registry.New[string, string]()
	defer r.Close()

	_, err := r.GetOrCreate("users", 10)
	require.NoError(t, err)

	require.True(t, r.Remove("users"))
	require.False(t, r.Remove("users"))

	_, ok := r.Get("users")
	require.False(t, ok)
}

func TestRegistryNamesAndClose(t *testing.T) {
	r := registry.New[string, string]()

	_, err := r.GetOrCreate("users", 10)
	require.NoError(t, err)
	_, err = r.GetOrCreate("sessions", 10)
	require.NoError(t, err)

	require.ElementsMatch(t, []string{"users", "sessions"}, r.Names())

	require.NoError(t, r.Close())
	require.Empty(t, r.Names())

	// A closed registry can still hand out fresh caches.
	_, err = r.GetOrCreate("users", 10)
	require.NoError(t, err)
	require.NoError(t, r.Close())
}
