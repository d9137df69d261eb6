// Package cache stores computed artifacts such as simulation reports and
// rendered board trees.
//
// Two backends are provided: FileCache for the CLI and NullCache when
// caching is disabled. Keys come from a Keyer so every caller derives them
// the same way.
package cache

import (
	"context"
	"time"
)

// TTLs for the cached artifact kinds.
const (
	// TTLReport applies to simulation reports. Reports are deterministic
	// for a given config, so they only expire to bound disk usage.
	TTLReport = 7 * 24 * time.Hour

	// TTLRender applies to rendered SVG trees.
	TTLRender = 30 * 24 * time.Hour
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored data and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
