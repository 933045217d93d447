// Package kv provides the raw key-value store underneath the marketplace's
// persistence layer: four fixed keys, one JSON blob each.
package kv

import "context"

// Repository describes the key-value operations the storage façade needs.
// Implementations are typically backed by a local SQLite database.
type Repository interface {
	// Get returns the value stored under key, or (nil, nil) if the key has
	// never been written. A nil result is how callers distinguish "absent"
	// from an explicitly stored empty collection.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key. Useful for development and tests.
	Clear(ctx context.Context) error
}
