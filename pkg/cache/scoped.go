package cache

import (
	"context"
	"time"
)

// ScopedCache wraps a Cache and prefixes every key, giving each project or
// user a separate namespace in a shared backend.
//
// Example usage:
//
//	shared, _ := cache.NewRedisCache(cache.RedisOptions{Addr: "localhost:6379"})
//	clip := cache.Scoped(shared, "vtdesigner:alice:")
type ScopedCache struct {
	inner  Cache
	prefix string
}

// Scoped returns a cache that stores every key of c under prefix.
// A nil inner cache stores nothing.
func Scoped(inner Cache, prefix string) Cache {
	if inner == nil {
		inner = NewNullCache()
	}
	return &ScopedCache{inner: inner, prefix: prefix}
}

// Get reads the prefixed key.
func (s *ScopedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

// Set writes the prefixed key.
func (s *ScopedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

// Delete removes the prefixed key.
func (s *ScopedCache) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

// Close closes the wrapped cache.
func (s *ScopedCache) Close() error { return s.inner.Close() }

var _ Cache = (*ScopedCache)(nil)
