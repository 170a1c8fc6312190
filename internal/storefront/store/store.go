// Package store provides the key-value persistence used by the
// storefront for customer accounts and carts: an injected interface so
// handlers are substitutable in tests, with an in-memory implementation
// for development and a Redis one for deployment.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no value.
var ErrNotFound = errors.New("key not found")

// Store is a minimal get/set/remove key-value interface.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
