// Package memory provides a map-backed core.Storage for tests and
// throwaway sessions.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/flexnote/pkg/core"
)

// Repository implements core.Storage in memory.
type Repository struct {
	mu       sync.RWMutex
	values   map[string][]byte
	readOnly bool
}

// NewRepository creates an empty in-memory storage.
func NewRepository() *Repository {
	return &Repository{values: make(map[string][]byte)}
}

// NewReadOnly creates an in-memory storage that rejects writes.
func NewReadOnly(values map[string][]byte) *Repository {
	r := NewRepository()
	for k, v := range values {
		r.values[k] = append([]byte(nil), v...)
	}
	r.readOnly = true
	return r
}

// Initialize implements core.Storage.
func (r *Repository) Initialize(ctx context.Context) error { return nil }

// Get implements core.Storage.
func (r *Repository) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, core.ErrEmptyKey
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	if !ok {
		return nil, core.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set implements core.Storage.
func (r *Repository) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return core.ErrEmptyKey
	}
	if r.readOnly {
		return core.ErrReadOnly
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements core.Storage.
func (r *Repository) Delete(ctx context.Context, key string) error {
	if r.readOnly {
		return core.ErrReadOnly
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, key)
	return nil
}

// Keys implements core.Storage.
func (r *Repository) Keys(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string { return "memory" }
