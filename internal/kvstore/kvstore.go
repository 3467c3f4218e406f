// Package kvstore is the key-value contract the application registry and chat
// store persist through, plus its memory, Redis and SQLite backends.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrStore marks a failure of the underlying backend (I/O, decode, exhausted retries).
var ErrStore = errors.New("key-value store failure")

// UpdateFunc receives the current value (ok=false when absent) and returns the value to write.
// Returning an error aborts the update without writing.
type UpdateFunc func(current []byte, ok bool) ([]byte, error)

// Store is an asynchronous string-keyed store of opaque values.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	// Update performs an atomic read-modify-write of a single key. Errors returned by fn
	// are passed back unchanged.
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Close() error
}

// GetJSON loads key into dest. It reports false, and leaves dest untouched, when the key is absent.
func GetJSON(ctx context.Context, s Store, key string, dest any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("%w: decode %q: %w", ErrStore, key, err)
	}
	return true, nil
}

// SetJSON encodes value and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %q: %w", ErrStore, key, err)
	}
	return s.Set(ctx, key, raw)
}

// UpdateJSON decodes the value under key into a T (zero value when absent), lets fn mutate it,
// and writes it back atomically.
func UpdateJSON[T any](ctx context.Context, s Store, key string, fn func(v *T) error) error {
	return s.Update(ctx, key, func(current []byte, ok bool) ([]byte, error) {
		var v T
		if ok {
			if err := json.Unmarshal(current, &v); err != nil {
				return nil, fmt.Errorf("%w: decode %q: %w", ErrStore, key, err)
			}
		}
		if err := fn(&v); err != nil {
			return nil, err
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: encode %q: %w", ErrStore, key, err)
		}
		return raw, nil
	})
}
