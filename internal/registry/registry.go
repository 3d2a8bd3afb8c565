package registry

import (
	"sync"

	"github.com/mgwr285/policycache/internal/cache"
)

// Registry hands out named, independently configured caches sharing a key
// and value type. It is an explicit value: create one and pass it to
// whatever needs to look caches up, instead of relying on a package-level
// singleton. Caches behind different names share no locks or state.
type Registry[K comparable, V any] struct {
	mu     sync.Mutex
	caches map[string]*cache.Cache[K, V]
}

func New[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{caches: make(map[string]*cache.Cache[K, V])}
}

// GetOrCreate returns the cache registered under name, building it with
// capacity and opts on first use. Construction settings are ignored when
// the name already exists.
func (r *Registry[K, V]) GetOrCreate(name string, capacity int, opts ...cache.Option) (*cache.Cache[K, V], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.caches[name]; ok {
		return c, nil
	}

	c, err := cache.New[K, V](capacity, opts...)
	if err != nil {
		return nil, err
	}
	r.caches[name] = c

	return c, nil
}

// Get returns the cache registered under name, if any.
func (r *Registry[K, V]) Get(name string) (*cache.Cache[K, V], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.caches[name]
	return c, ok
}

// Remove closes and drops the named cache, reporting whether it existed.
func (r *Registry[K, V]) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.caches[name]
	if !ok {
		return false
	}
	delete(r.caches, name)
	_ = c.Close()

	return true
}

// Names returns the registered cache names in no particular order.
func (r *Registry[K, V]) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.caches))
	for name := range r.caches {
		names = append(names, name)
	}
	return names
}

// Close shuts down every registered cache and empties the registry. The
// registry stays usable afterwards.
func (r *Registry[K, V]) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, c := range r.caches {
		_ = c.Close()
		delete(r.caches, name)
	}
	return nil
}
