// internal/storage/kv/interface.go
package kv

import "context"

// Store defines the interface for the durable key-value store backing
// template persistence. It is process-wide and shared: concurrent writers
// are not coordinated and the last write wins.
type Store interface {
	// Get retrieves the value stored under key. Returns core.ErrKeyNotFound
	// if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Exists checks whether the key is present.
	Exists(ctx context.Context, key string) (bool, error)
}
