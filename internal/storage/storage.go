// Package storage provides the key-value storage contract the storefront
// mirrors its state into, with file and Redis backed implementations.
package storage

import (
	"context"
	"errors"
)

// Storage errors.
var ErrNotFound = errors.New("key not found")

// Storage defines the contract for durable key-value access.
type Storage interface {
	// Get retrieves the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}
