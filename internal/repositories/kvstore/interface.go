package kvstore

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/KirkDiggler/hydroquest/internal/repositories/kvstore Store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no value
var ErrNotFound = errors.New("key not found")

// ErrConflict is returned when Update keeps losing to concurrent writers
var ErrConflict = errors.New("too many concurrent writers")

// UpdateFunc computes the next value of a key from its current value. current is
// nil and found is false when the key has no value. Returning write false leaves
// the key untouched.
type UpdateFunc func(current []byte, found bool) (next []byte, write bool, err error)

// Store is a generic asynchronous key-value store holding raw JSON values
type Store interface {
	// Get returns the value stored under key or ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error

	// Update replaces the value under key with the result of fn, atomically across
	// processes sharing the store. fn runs again if another writer commits between
	// its read and the write, so it must not have side effects. Errors from fn are
	// returned unwrapped.
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
