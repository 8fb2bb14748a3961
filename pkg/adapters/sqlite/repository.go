// Package sqlite stores FlexNote values as rows of a single key-value
// table in a SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/aretw0/flexnote/pkg/adapters/sqlite/migrations"
	"github.com/aretw0/flexnote/pkg/core"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Config holds the configuration for the SQLite repository.
type Config struct {
	Path     string // Database file, or MemoryPath.
	ReadOnly bool
	Logger   *slog.Logger
}

// Repository implements core.Storage on a SQLite table.
type Repository struct {
	config Config

	mu sync.Mutex
	db *sql.DB
}

// NewRepository creates a repository. The database is opened by Initialize.
func NewRepository(config Config) *Repository {
	return &Repository{config: config}
}

// Initialize opens the database and brings its schema up to date.
// Calling it again on an open repository is a no-op.
func (r *Repository) Initialize(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.db != nil {
		return nil
	}

	if r.config.Path != MemoryPath {
		if dir := filepath.Dir(r.config.Path); dir != "" && !r.config.ReadOnly {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", r.dsn())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to open database: %w", err)
	}

	if !r.config.ReadOnly {
		if err := migrations.Up(db); err != nil {
			db.Close()
			return err
		}
	}

	r.db = db
	if r.config.Logger != nil {
		r.config.Logger.Debug("sqlite storage ready", "path", r.config.Path, "read_only", r.config.ReadOnly)
	}
	return nil
}

// Close releases the database handle.
func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

// Get implements core.Storage.
func (r *Repository) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, core.ErrEmptyKey
	}
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	var value []byte
	err = db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) || isMissingTable(err) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, nil
}

// Set implements core.Storage.
func (r *Repository) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return core.ErrEmptyKey
	}
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}
	db, err := r.conn()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete implements core.Storage.
func (r *Repository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return core.ErrEmptyKey
	}
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}
	db, err := r.conn()
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Keys implements core.Storage.
func (r *Repository) Keys(ctx context.Context) ([]string, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT key FROM kv ORDER BY key`)
	if isMissingTable(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// dsn opens existing files read-only. A missing file in read-only mode
// becomes an empty in-memory database so reads fall back to defaults.
func (r *Repository) dsn() string {
	if !r.config.ReadOnly || r.config.Path == MemoryPath {
		return r.config.Path
	}
	if _, err := os.Stat(r.config.Path); err != nil {
		return MemoryPath
	}
	return "file:" + r.config.Path + "?mode=ro"
}

func (r *Repository) conn() (*sql.DB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.db == nil {
		return nil, fmt.Errorf("sqlite storage is not initialized")
	}
	return r.db, nil
}

// isMissingTable reports a read-only database that was never migrated.
func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string { return "sqlite" }

// RepositoryState is the introspection snapshot of a SQLite repository.
type RepositoryState struct {
	Path          string `json:"path"`
	ReadOnly      bool   `json:"read_only"`
	Open          bool   `json:"open"`
	SchemaVersion uint   `json:"schema_version"`
	Dirty         bool   `json:"dirty,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.Lock()
	db := r.db
	r.mu.Unlock()

	s := RepositoryState{
		Path:     r.config.Path,
		ReadOnly: r.config.ReadOnly,
		Open:     db != nil,
	}
	if db != nil {
		if v, dirty, err := migrations.Version(db); err == nil {
			s.SchemaVersion = v
			s.Dirty = dirty
		}
	}
	return s
}

var _ core.Storage = (*Repository)(nil)
