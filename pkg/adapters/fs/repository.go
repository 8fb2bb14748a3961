package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/aretw0/flexnote/pkg/core"
)

const (
	// ValueExt is the extension of every stored value file.
	ValueExt = ".json"
)

// Repository implements core.Storage with one JSON file per key.
type Repository struct {
	Path   string
	config Config

	mu            sync.RWMutex
	readOnly      bool
	watcherActive bool
	// written remembers the fingerprint of the last value this process
	// wrote per key, so the watcher can tell its own writes apart.
	written map[string]uint64
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path         string
	MustExist    bool
	ReadOnly     bool
	Logger       *slog.Logger
	ErrorHandler func(error) // Receives watcher runtime errors.
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	return &Repository{
		Path:     config.Path,
		config:   config,
		readOnly: config.ReadOnly,
		written:  make(map[string]uint64),
	}
}

// Initialize ensures the data directory exists.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist || r.readOnly {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			if r.readOnly {
				// Nothing stored yet; reads fall back to defaults.
				return nil
			}
			return fmt.Errorf("data path does not exist: %s", r.Path)
		}
		if err != nil {
			return fmt.Errorf("failed to stat data path: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("data path is not a directory: %s", r.Path)
		}
		return nil
	}

	if err := os.MkdirAll(r.Path, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// Get reads the value stored under key.
func (r *Repository) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := r.keyPath(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Set writes value under key atomically (temp file + rename).
func (r *Repository) Set(ctx context.Context, key string, value []byte) error {
	if r.readOnly {
		return core.ErrReadOnly
	}
	path, err := r.keyPath(key)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.written[key] = xxhash.Sum64(value)
	r.mu.Unlock()

	if err := writeFileAtomic(path, value, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	if r.config.Logger != nil {
		r.config.Logger.Debug("value written", "key", key, "bytes", len(value))
	}
	return nil
}

// Delete removes the file backing key.
func (r *Repository) Delete(ctx context.Context, key string) error {
	if r.readOnly {
		return core.ErrReadOnly
	}
	path, err := r.keyPath(key)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.written[key] = deletedFingerprint
	r.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Keys lists every stored key in lexical order.
func (r *Repository) Keys(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.Path)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list data directory: %w", err)
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if key, ok := keyFromFile(e.Name()); ok && !e.IsDir() {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (r *Repository) keyPath(key string) (string, error) {
	if key == "" {
		return "", core.ErrEmptyKey
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." || strings.HasPrefix(key, TempFilePrefix) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(r.Path, key+ValueExt), nil
}

// keyFromFile maps a directory entry name back to its key.
func keyFromFile(name string) (string, bool) {
	if strings.HasPrefix(name, TempFilePrefix) || filepath.Ext(name) != ValueExt {
		return "", false
	}
	key := strings.TrimSuffix(name, ValueExt)
	return key, key != ""
}

// ownWrite reports whether data under key is exactly what this process
// last wrote there.
func (r *Repository) ownWrite(key string, data []byte) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fp, ok := r.written[key]
	return ok && fp == xxhash.Sum64(data)
}

// ownDelete reports whether the last change this process made to key was a delete.
func (r *Repository) ownDelete(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fp, ok := r.written[key]
	return ok && fp == deletedFingerprint
}

// forget drops what this process last did to key, so the next change to
// it is attributed to whoever makes it.
func (r *Repository) forget(key string) {
	r.mu.Lock()
	delete(r.written, key)
	r.mu.Unlock()
}

// deletedFingerprint marks keys this process removed.
const deletedFingerprint uint64 = 0

var _ core.Storage = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
