// Package store implements the origin-scoped key-value store backing all
// portal durability: string keys mapping to single JSON blobs, replaced
// atomically on every write.
package store

import "context"

// Repository is the synchronous key-value surface the portal core writes
// through. Get returns (nil, nil) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
