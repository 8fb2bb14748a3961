package typed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/flexnote/pkg/core"
)

// Key is a type-safe view of one storage key holding a JSON value.
// It acts as an Application Layer adapter, converting between raw bytes and T.
type Key[T any] struct {
	storage core.Storage
	name    string
}

// NewKey creates a typed accessor for key name.
func NewKey[T any](storage core.Storage, name string) *Key[T] {
	return &Key[T]{storage: storage, name: name}
}

// Name returns the storage key.
func (k *Key[T]) Name() string { return k.name }

// Get decodes the stored value.
// It returns core.ErrNotFound when the key is absent and an error wrapping
// core.ErrMalformed when the stored bytes do not decode into T.
func (k *Key[T]) Get(ctx context.Context) (T, error) {
	var zero T

	raw, err := k.storage.Get(ctx, k.name)
	if err != nil {
		return zero, err
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, fmt.Errorf("%w: key %s: %v", core.ErrMalformed, k.name, err)
	}
	return v, nil
}

// GetOr returns the stored value, or fallback when it is absent or malformed.
func (k *Key[T]) GetOr(ctx context.Context, fallback T) T {
	v, err := k.Get(ctx)
	if err != nil {
		return fallback
	}
	return v
}

// Exists reports whether the key holds any value.
func (k *Key[T]) Exists(ctx context.Context) (bool, error) {
	_, err := k.storage.Get(ctx, k.name)
	if errors.Is(err, core.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Set encodes v and overwrites the stored value.
func (k *Key[T]) Set(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", k.name, err)
	}
	return k.storage.Set(ctx, k.name, data)
}

// Delete removes the key.
func (k *Key[T]) Delete(ctx context.Context) error {
	return k.storage.Delete(ctx, k.name)
}
