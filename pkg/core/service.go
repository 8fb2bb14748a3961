package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Session wires the editor, the workspace tree and the theme preference
// to one storage.
type Session struct {
	Editor *Editor
	Tree   *Tree

	storage  Storage
	prefs    PreferenceRepository
	notifier Notifier
	logger   *slog.Logger
}

// NewSession creates a new Session.
func NewSession(storage Storage, editor *Editor, tree *Tree, prefs PreferenceRepository, notifier Notifier, logger *slog.Logger) *Session {
	return &Session{
		Editor:   editor,
		Tree:     tree,
		storage:  storage,
		prefs:    prefs,
		notifier: notifyOrDiscard(notifier),
		logger:   logger,
	}
}

// Storage exposes the underlying key-value store.
func (s *Session) Storage() Storage { return s.storage }

// DarkMode returns the stored theme preference, or fallback when none is stored.
func (s *Session) DarkMode(ctx context.Context, fallback bool) bool {
	return s.prefs.DarkMode(ctx, fallback)
}

// SetDarkMode persists the theme preference.
func (s *Session) SetDarkMode(ctx context.Context, dark bool) error {
	return s.prefs.SetDarkMode(ctx, dark)
}

// ToggleDarkMode flips the theme preference starting from current and
// returns the new value. A failed write is logged; the toggle still applies
// for the running session.
func (s *Session) ToggleDarkMode(ctx context.Context, current bool) bool {
	dark := !current
	if err := s.prefs.SetDarkMode(ctx, dark); err != nil && s.logger != nil {
		s.logger.Warn("failed to persist theme preference", "error", err)
	}
	mode := "light"
	if dark {
		mode = "dark"
	}
	s.notifier.Notify(Notification{Kind: NotifyInfo, Message: fmt.Sprintf("Switched to %s mode", mode)})
	return dark
}

// Watch observes changes to keys matching pattern made by other processes.
func (s *Session) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.storage.(Watchable)
	if !ok {
		return nil, ErrNotWatchable
	}
	return w.Watch(ctx, pattern)
}

// Close releases the storage if it holds resources.
func (s *Session) Close() error {
	if c, ok := s.storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
