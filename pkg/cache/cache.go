// Package cache provides small key-value stores for CLI state that must
// outlive a single command, such as the object clipboard.
//
// # Backends
//
//   - [FileCache]: one JSON file per key below a directory (default)
//   - [RedisCache]: a shared Redis server, for clipboards shared between machines
//   - [NullCache]: stores nothing
//
// [Scoped] prefixes every key, so several projects or users can share one
// backend without collisions.
//
// All backends report hits, misses and writes to observability.Cache().
package cache

import (
	"context"
	"strings"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// keyType is the key's namespace up to the first colon, as reported to
// cache hooks.
func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
