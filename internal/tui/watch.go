package tui

import (
	"errors"

	golifecycle "github.com/aretw0/lifecycle"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aretw0/flexnote/pkg/adapters/lifecycle"
	"github.com/aretw0/flexnote/pkg/core"
	"github.com/aretw0/flexnote/pkg/store"
)

// storeChangedMsg carries a change made to the store by another process.
type storeChangedMsg struct {
	event  core.Event
	events <-chan golifecycle.Event
}

type watchClosedMsg struct{}

// startWatch subscribes to external store changes. Storages that cannot be
// watched simply never produce messages.
func (m Model) startWatch() tea.Cmd {
	if m.watchPattern == "" {
		return nil
	}
	events, err := m.session.Watch(m.ctx, m.watchPattern)
	if err != nil {
		if !errors.Is(err, core.ErrNotWatchable) && m.logger != nil {
			m.logger.Warn("store watch unavailable", "error", err)
		}
		return nil
	}

	src := lifecycle.NewSource(events, lifecycle.WithKeys(store.BlocksKey, store.DarkModeKey))
	if err := src.Start(m.ctx); err != nil {
		return nil
	}
	return waitForEvent(src.Events())
}

func waitForEvent(events <-chan golifecycle.Event) tea.Cmd {
	return func() tea.Msg {
		for e := range events {
			if ce, ok := e.(core.Event); ok {
				return storeChangedMsg{event: ce, events: events}
			}
		}
		return watchClosedMsg{}
	}
}

// applyExternalChange reloads whatever another process rewrote.
func (m *Model) applyExternalChange(e core.Event) {
	if m.logger != nil {
		m.logger.Debug("external store change", "event", e.String())
	}
	switch e.Key {
	case store.BlocksKey:
		editing := m.session.Editor.EditingID()
		m.session.Editor.Reload(m.ctx)
		if editing != "" && m.session.Editor.EditingID() == "" {
			m.editor.Blur()
		}
		m.clampCursor()
	case store.DarkModeKey:
		m.setDark(m.session.DarkMode(m.ctx, m.dark))
	}
}
