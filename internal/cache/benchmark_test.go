package cache_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/mgwr285/policycache/internal/cache"
	"github.com/mgwr285/policycache/internal/policy"
)

func benchKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
	}
	return keys
}

func BenchmarkPut(b *testing.B) {
	for _, kind := range []policy.Kind{policy.LRU, policy.LFU, policy.FIFO, policy.LIFO} {
		b.Run(string(kind), func(b *testing.B) {
			c, err := cache.New[string, int](1024, cache.WithPolicy(kind))
			if err != nil {
				b.Fatal(err)
			}
			defer c.Close()

			keys := benchKeys(2048)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.Put(keys[i%len(keys)], i, 0)
			}
		})
	}
}

func BenchmarkGet(b *testing.B) {
	for _, kind := range []policy.Kind{policy.LRU, policy.LFU, policy.FIFO, policy.LIFO} {
		b.Run(string(kind), func(b *testing.B) {
			c, err := cache.New[string, int](1024, cache.WithPolicy(kind))
			if err != nil {
				b.Fatal(err)
			}
			defer c.Close()

			keys := benchKeys(1024)
			for i, key := range keys {
				c.Put(key, i, 0)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.Get(keys[i%len(keys)])
			}
		})
	}
}

func BenchmarkGetParallel(b *testing.B) {
	c, err := cache.New[string, int](1024, cache.WithDefaultTTL(time.Hour))
	if err != nil {
		b.Fatal(err)
	}
	defer c.Close()

	keys := benchKeys(1024)
	for i, key := range keys {
		c.Put(key, i, 0)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			c.Get(keys[i%len(keys)])
			i++
		}
	})
}
