package platform

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/flexnote/pkg/adapters/fs"
	"github.com/aretw0/flexnote/pkg/adapters/memory"
	"github.com/aretw0/flexnote/pkg/adapters/sqlite"
	"github.com/aretw0/flexnote/pkg/core"
)

// Adapter names accepted by WithAdapter.
const (
	AdapterFS     = "fs"
	AdapterSQLite = "sqlite"
	AdapterMemory = "memory"
)

// DatabaseFile is the SQLite file created inside a data directory.
const DatabaseFile = "flexnote.db"

// Init builds and initializes the storage selected by the options.
// The uri is adapter-specific: a data directory for "fs", a data directory
// or a .db file for "sqlite", and ignored for "memory".
func Init(uri string, opts ...Option) (core.Storage, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initStorage(uri, o)
}

func initStorage(uri string, o *options) (core.Storage, error) {
	if o.storage != nil {
		return o.storage, nil
	}

	var storage core.Storage
	switch o.adapter {
	case AdapterFS:
		storage = fs.NewRepository(fs.Config{
			Path:         resolvePath(uri, o),
			MustExist:    o.flag("must_exist"),
			ReadOnly:     o.flag("read_only"),
			Logger:       o.logger,
			ErrorHandler: watcherErrorHandler(o),
		})
	case AdapterSQLite:
		storage = sqlite.NewRepository(sqlite.Config{
			Path:     sqlitePath(resolvePath(uri, o)),
			ReadOnly: o.flag("read_only"),
			Logger:   o.logger,
		})
	case AdapterMemory:
		storage = memory.NewRepository()
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	if err := storage.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return storage, nil
}

// resolvePath applies the dev sandbox rules to the user's data path.
func resolvePath(path string, o *options) string {
	readOnly := o.flag("read_only")
	devSafety := true
	if v, ok := o.config["dev_safety"].(bool); ok {
		devSafety = v
	}
	bypass := readOnly || !devSafety

	useTemp := o.flag("temp_dir") || (IsDevRun() && !bypass)
	resolved := ResolveDataPath(path, useTemp)

	if o.logger != nil {
		switch {
		case useTemp:
			o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", path, "resolved_path", resolved)
		case IsDevRun() && readOnly:
			o.logger.Debug("running in READ-ONLY mode (bypassing dev sandbox)", "path", resolved)
		case IsDevRun():
			o.logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "path", resolved)
		}
	}
	return resolved
}

func sqlitePath(path string) string {
	if path == sqlite.MemoryPath || strings.HasSuffix(path, ".db") {
		return path
	}
	return filepath.Join(path, DatabaseFile)
}

func watcherErrorHandler(o *options) func(error) {
	fn, _ := o.config["watcher_error_handler"].(func(error))
	return fn
}
