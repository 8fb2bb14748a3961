package core

import "context"

// Storage is the single local key-value store FlexNote persists into.
// Adhering to this interface keeps the editor independent of the
// underlying mechanism (files, SQLite, memory).
type Storage interface {
	// Get returns the raw value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Removing an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns every stored key in lexical order.
	Keys(ctx context.Context) ([]string, error)

	// Initialize ensures the underlying storage is ready (directories, schema migration).
	Initialize(ctx context.Context) error
}

// Watchable is implemented by storages that can report changes made by other processes.
type Watchable interface {
	// Watch emits an Event for every external change to a key matching pattern.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// BlockRepository loads and saves the complete block sequence.
type BlockRepository interface {
	// Load never fails: absent or malformed data yields the seed document.
	Load(ctx context.Context) []Block
	// Save overwrites the stored sequence in full.
	Save(ctx context.Context, blocks []Block) error
}

// PreferenceRepository persists the theme preference.
type PreferenceRepository interface {
	DarkMode(ctx context.Context, fallback bool) bool
	SetDarkMode(ctx context.Context, dark bool) error
}
