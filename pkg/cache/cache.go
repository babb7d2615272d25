// Package cache provides the decode cache for licensetower.
//
// Decoding and normalizing large license files is the only repeated cost
// when scanning the same tree more than once. The cache stores the
// decoded, NFC-normalized text keyed by a hash of the raw file bytes, so
// an unchanged file is decoded exactly once across runs.
//
// Backends:
//   - file: entries stored under the XDG cache directory (CLI default)
//   - redis: shared cache for CI runners scanning the same trees
//   - null: no-op, used by --no-cache and tests
package cache

import (
	"context"
	"time"
)

// Cache is the interface for decode cache backends.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// TextKey builds the cache key for a license file's decoded text.
// The key depends only on the raw bytes, so renamed or moved files
// still hit.
func TextKey(raw []byte) string {
	return "text:" + Hash(raw)
}
