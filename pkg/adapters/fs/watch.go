package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/flexnote/pkg/core"
)

// DefaultDebounce is how long the watcher waits for a burst of filesystem
// events on a key to settle before emitting one Event.
const DefaultDebounce = 50 * time.Millisecond

// Watch emits an Event for every change to a key matching pattern that
// was not made through this Repository. Pattern uses doublestar syntax
// against key names; "" matches every key.
//
// The returned channel is closed when ctx is done.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern %q", pattern)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(r.Path); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", r.Path, err)
	}

	w := &watcher{
		repo:     r,
		pattern:  pattern,
		fsw:      fsw,
		out:      make(chan core.Event, 16),
		pending:  make(map[string]core.Event),
		debounce: DefaultDebounce,
	}
	r.setWatcherActive(true)

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		r.reportError(fmt.Errorf("watcher panic: %w", err))
	}))

	return w.out, nil
}

type watcher struct {
	repo     *Repository
	pattern  string
	fsw      *fsnotify.Watcher
	out      chan core.Event
	pending  map[string]core.Event
	debounce time.Duration
}

func (w *watcher) run(ctx context.Context) error {
	defer close(w.out)
	defer w.repo.setWatcherActive(false)
	defer w.fsw.Close()

	var (
		timer *time.Timer
		flush <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.handle(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			flush = timer.C

		case <-flush:
			flush = nil
			if !w.flush(ctx) {
				return nil
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.repo.reportError(fmt.Errorf("fsnotify: %w", err))
		}
	}
}

// handle records event as pending. It reports whether anything was recorded.
func (w *watcher) handle(event fsnotify.Event) bool {
	key, ok := keyFromFile(filepath.Base(event.Name))
	if !ok {
		return false
	}
	if match, _ := doublestar.Match(w.pattern, key); !match {
		return false
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		if w.repo.ownDelete(key) {
			return false
		}
		eType = core.EventDelete
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		data, err := os.ReadFile(event.Name)
		if err != nil {
			// Gone again before we could look; a later event covers it.
			return false
		}
		if w.repo.ownWrite(key, data) {
			return false
		}
		w.repo.forget(key)
		eType = core.EventModify
		if event.Has(fsnotify.Create) {
			eType = core.EventCreate
		}
	default:
		return false
	}

	if prev, ok := w.pending[key]; ok && prev.Type == core.EventCreate && eType == core.EventModify {
		eType = core.EventCreate
	}
	w.pending[key] = core.Event{Type: eType, Key: key, Timestamp: time.Now().Unix()}

	if w.repo.config.Logger != nil {
		w.repo.config.Logger.Debug("external change", "key", key, "type", eType)
	}
	return true
}

// flush emits pending events in key order. It returns false once ctx is done.
func (w *watcher) flush(ctx context.Context) bool {
	keys := make([]string, 0, len(w.pending))
	for k := range w.pending {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		select {
		case w.out <- w.pending[k]:
		case <-ctx.Done():
			return false
		}
		delete(w.pending, k)
	}
	return true
}

func (r *Repository) reportError(err error) {
	if r.config.Logger != nil {
		r.config.Logger.Error("watcher error", "error", err)
	}
	if r.config.ErrorHandler != nil {
		r.config.ErrorHandler(err)
	}
}
