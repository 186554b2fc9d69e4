// internal/infrastructure/storage/storage.go
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is the durable key-value port the cart persists through. The cart
// treats it as a collaborator: a failed Save must not abort the mutation
// that triggered it.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
