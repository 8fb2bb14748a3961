package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/flexnote/internal/platform"
	"github.com/aretw0/flexnote/pkg/adapters/memory"
	"github.com/aretw0/flexnote/pkg/core"
	"github.com/aretw0/flexnote/pkg/store"
)

func newTestModel(t *testing.T) (Model, *core.Session, *Toasts) {
	t.Helper()
	toasts := NewToasts(time.Minute)
	session, err := platform.New("",
		platform.WithStorage(memory.NewRepository()),
		platform.WithNotifier(toasts),
	)
	require.NoError(t, err)
	return New(context.Background(), session, toasts, Options{}), session, toasts
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = press(t, m, runes(string(r)))
	}
	return m
}

func TestPalette_ExecutesCommand(t *testing.T) {
	m, session, toasts := newTestModel(t)

	m = press(t, m, runes("/"))
	require.Equal(t, OverlayPalette, m.Overlay())

	// "/" is plain text while the palette is open.
	m = typeText(t, m, "H1 Hello")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, OverlayNone, m.Overlay())
	blocks := session.Editor.Blocks()
	require.Len(t, blocks, 3)
	last := blocks[2]
	assert.Equal(t, core.BlockHeading, last.Type)
	assert.Equal(t, 1, last.Level)
	assert.Equal(t, "Hello", last.Content)
	assert.Equal(t, 2, m.Cursor())
	assert.Empty(t, session.Editor.EditingID())

	latest, ok := toasts.latest()
	require.True(t, ok)
	assert.Equal(t, "Added new heading block", latest.Message)
}

func TestPalette_EscapeCloses(t *testing.T) {
	m, session, _ := newTestModel(t)

	m = press(t, m, runes("/"))
	m = typeText(t, m, "todo never")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	assert.Equal(t, OverlayNone, m.Overlay())
	assert.Equal(t, 2, session.Editor.Len())

	// Reopening starts from an empty input.
	m = press(t, m, runes("/"), tea.KeyMsg{Type: tea.KeyEnter})
	blocks := session.Editor.Blocks()
	require.Len(t, blocks, 3)
	assert.Equal(t, core.BlockParagraph, blocks[2].Type)
	assert.Equal(t, "", blocks[2].Content)
}

func TestAddMenu_AddsAndEdits(t *testing.T) {
	m, session, _ := newTestModel(t)

	m = press(t, m, runes("a"))
	require.Equal(t, OverlayAddMenu, m.Overlay())

	m = press(t, m, runes("t"))
	assert.Equal(t, OverlayNone, m.Overlay())

	id := session.Editor.EditingID()
	require.NotEmpty(t, id)

	m = typeText(t, m, "milk")
	b, _ := session.Editor.Block(id)
	assert.Equal(t, "milk", b.Content)
	assert.Nil(t, b.Checked)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Empty(t, session.Editor.EditingID())

	// The new todo is selected, so toggling works right away.
	m = press(t, m, runes("x"))
	b, _ = session.Editor.Block(id)
	assert.True(t, b.IsChecked())
}

func TestAddMenu_EscapeCloses(t *testing.T) {
	m, session, _ := newTestModel(t)

	m = press(t, m, runes("a"), runes("z"))
	assert.Equal(t, OverlayAddMenu, m.Overlay(), "unknown keys leave the menu open")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, OverlayNone, m.Overlay())
	assert.Equal(t, 2, session.Editor.Len())
}

func TestDocument_EditDeleteNavigate(t *testing.T) {
	m, session, toasts := newTestModel(t)

	m = press(t, m, runes("j"), runes("e"))
	assert.Equal(t, "intro", session.Editor.EditingID())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape}, runes("d"))
	_, ok := session.Editor.Block("intro")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Cursor())

	latest, _ := toasts.latest()
	assert.Equal(t, "Block deleted", latest.Message)

	m = press(t, m, runes("k"), runes("k"))
	assert.Equal(t, 0, m.Cursor())
}

func TestDocument_Copy(t *testing.T) {
	m, _, toasts := newTestModel(t)

	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })

	var copied string
	writeClipboard = func(s string) error { copied = s; return nil }

	press(t, m, runes("y"))
	assert.Equal(t, "Welcome to FlexNote", copied)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	press(t, m, runes("y"))
	latest, _ := toasts.latest()
	assert.True(t, latest.isError)
	assert.Contains(t, latest.Message, "no clipboard")
}

func TestThemeToggle_Persists(t *testing.T) {
	m, session, _ := newTestModel(t)
	require.False(t, m.Dark())

	m = press(t, m, runes("t"))
	assert.True(t, m.Dark())
	assert.True(t, session.DarkMode(context.Background(), false))

	m = press(t, m, runes("t"))
	assert.False(t, m.Dark())
}

func TestSidebar_Transitions(t *testing.T) {
	m, session, _ := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, PaneSidebar, m.Focus())

	// Rows: 3 Personal pages, then the 2 workspaces.
	m = press(t, m, runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "p3", session.Tree.CurrentPageID())
	assert.Equal(t, PaneDocument, m.Focus())

	// Cursor is still on p3; Personal and Work follow.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Work", session.Tree.CurrentWorkspaceName())

	m = press(t, m, runes("n"))
	ws, _ := session.Tree.CurrentWorkspace()
	assert.Len(t, ws.Pages, 3)
	assert.Equal(t, "Untitled", session.Tree.CurrentPageName())

	m = press(t, m, runes("N"))
	assert.Equal(t, "New Workspace", session.Tree.CurrentWorkspaceName())

	m = press(t, m, runes("b"))
	assert.False(t, m.SidebarOpen())
	assert.Equal(t, PaneDocument, m.Focus())
}

func TestResize_NarrowHidesSidebar(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.False(t, m.SidebarOpen())

	m = press(t, m, runes("b"), tea.WindowSizeMsg{Width: 50, Height: 20})
	assert.True(t, m.SidebarOpen(), "only the first size decides")
}

func TestExternalChange_Reloads(t *testing.T) {
	m, session, _ := newTestModel(t)
	ctx := context.Background()

	require.NoError(t, session.Storage().Set(ctx, store.BlocksKey, []byte(`[{"id":"x","type":"code","content":"ls"}]`)))
	require.NoError(t, session.Storage().Set(ctx, store.DarkModeKey, []byte(`true`)))

	m = press(t, m,
		storeChangedMsg{event: core.Event{Type: core.EventModify, Key: store.BlocksKey}},
		storeChangedMsg{event: core.Event{Type: core.EventModify, Key: store.DarkModeKey}},
	)

	blocks := session.Editor.Blocks()
	require.Len(t, blocks, 1)
	assert.Equal(t, "x", blocks[0].ID)
	assert.True(t, m.Dark())
}

func TestView_RendersDocument(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})

	view := m.View()
	assert.Contains(t, view, "FlexNote")
	assert.Contains(t, view, "Getting Started")
	assert.Contains(t, view, "Welcome to FlexNote")
	assert.Contains(t, view, "Workspaces")

	m = press(t, m, runes("/"))
	assert.Contains(t, m.View(), "Command Menu")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape}, runes("a"))
	view = m.View()
	for _, item := range addMenuItems {
		assert.True(t, strings.Contains(view, item.label), item.label)
	}
}

func TestToasts_Expire(t *testing.T) {
	now := time.Unix(0, 0)
	toasts := NewToasts(time.Second)
	toasts.now = func() time.Time { return now }

	toasts.Notify(core.Notification{Kind: core.NotifySuccess, Message: "one"})
	now = now.Add(500 * time.Millisecond)
	toasts.Notify(core.Notification{Kind: core.NotifySuccess, Message: "two"})

	now = now.Add(600 * time.Millisecond)
	assert.True(t, toasts.Expire())
	assert.Equal(t, 1, toasts.Len())

	latest, _ := toasts.latest()
	assert.Equal(t, "two", latest.Message)

	now = now.Add(time.Second)
	toasts.Expire()
	assert.Equal(t, 0, toasts.Len())
}

func TestIcons_Closed(t *testing.T) {
	for i := Icon(0); i < iconCount; i++ {
		assert.NotEmpty(t, glyphs[i], "icon %d has no glyph", i)
	}
	assert.Equal(t, "?", Icon(-1).String())
	assert.Equal(t, IconCode, BlockIcon(core.BlockCode))
}
