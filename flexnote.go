package flexnote

import (
	"log/slog"

	"github.com/aretw0/flexnote/internal/platform"
	"github.com/aretw0/flexnote/pkg/core"
)

// --- Types ---

// Session is the open editor, workspace tree and preferences.
type Session = core.Session

// Block is one unit of document content.
type Block = core.Block

// --- Configuration ---

// Option defines a functional option for configuring FlexNote.
type Option = platform.Option

// WithAdapter selects the storage adapter by name ("fs", "sqlite", "memory").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithLogger sets the logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStorage injects a custom storage adapter.
func WithStorage(storage core.Storage) Option {
	return platform.WithStorage(storage)
}

// WithReadOnly opens the store without allowing writes.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithForceTemp forces the data directory into the dev sandbox.
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the `go run` sandbox.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithClock sets the clock used for id generation.
func WithClock(clock core.Clock) Option {
	return platform.WithClock(clock)
}

// WithNotifier sets the receiver of confirmation notifications.
func WithNotifier(n core.Notifier) Option {
	return platform.WithNotifier(n)
}

// WithWatcherErrorHandler registers a callback for watcher runtime errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New opens a FlexNote session on the data at path.
func New(path string, opts ...Option) (*Session, error) {
	return platform.New(path, opts...)
}

// Init opens and initializes the storage only.
func Init(path string, opts ...Option) (core.Storage, error) {
	return platform.Init(path, opts...)
}

// --- Safety & Utils ---

// ResolveDataPath determines the actual data directory based on safety rules.
func ResolveDataPath(userPath string, forceTemp bool) string {
	return platform.ResolveDataPath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// FindRoot looks upwards for a directory holding a .flexnote marker.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
