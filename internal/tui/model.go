// Package tui is the terminal interface of FlexNote, built on Bubble Tea.
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/flexnote/internal/config"
	"github.com/aretw0/flexnote/pkg/core"
)

// narrowWidth is the terminal width below which the sidebar starts hidden.
const narrowWidth = 80

// Pane identifies which side of the screen receives navigation keys.
type Pane int

const (
	PaneDocument Pane = iota
	PaneSidebar
)

// Overlay identifies the modal surface currently open, if any.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayPalette
	OverlayAddMenu
)

// Options configures a Model.
type Options struct {
	// DarkFallback is the theme used when no preference is stored.
	DarkFallback   bool
	SidebarWidth   int
	HighlightStyle string
	// WatchPattern selects the storage keys whose external changes are
	// reloaded. Empty disables watching.
	WatchPattern string
	Logger       *slog.Logger
	KeyMap       *KeyMap
}

// Model is the whole view state of one screen. Every field changes only
// through the named transitions below, driven by Update.
type Model struct {
	ctx     context.Context
	session *core.Session
	toasts  *Toasts
	keys    KeyMap
	logger  *slog.Logger

	styles         Styles
	highlightStyle string
	sidebarWidth   int
	watchPattern   string

	width, height int
	sized         bool

	dark          bool
	sidebarOpen   bool
	workspaceOpen bool
	focus         Pane
	overlay       Overlay

	cursor        int // selected block
	sidebarCursor int

	palette textinput.Model
	editor  textarea.Model
}

// New creates the model for session. toasts must be the notifier the
// session was opened with so confirmations show up on screen.
func New(ctx context.Context, session *core.Session, toasts *Toasts, opts Options) Model {
	keys := DefaultKeyMap()
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}
	if opts.SidebarWidth <= 0 {
		opts.SidebarWidth = config.Default().UI.SidebarWidth
	}
	if opts.HighlightStyle == "" {
		opts.HighlightStyle = config.Default().UI.HighlightStyle
	}
	if toasts == nil {
		toasts = NewToasts(0)
	}

	palette := textinput.New()
	palette.Placeholder = "Type a command (h1, h2, todo, code) or just text..."
	palette.Prompt = IconCommand.String() + " "
	palette.CharLimit = 2000

	editor := textarea.New()
	editor.ShowLineNumbers = false
	editor.SetHeight(5)

	dark := session.DarkMode(ctx, opts.DarkFallback)
	return Model{
		ctx:            ctx,
		session:        session,
		toasts:         toasts,
		keys:           keys,
		logger:         opts.Logger,
		styles:         NewStyles(dark),
		highlightStyle: opts.HighlightStyle,
		sidebarWidth:   opts.SidebarWidth,
		watchPattern:   opts.WatchPattern,
		width:          100,
		height:         30,
		dark:           dark,
		sidebarOpen:    true,
		workspaceOpen:  true,
		palette:        palette,
		editor:         editor,
	}
}

// DetectDark resolves a configured theme name to the dark fallback.
// "auto" asks the terminal for its background.
func DetectDark(theme string) bool {
	switch theme {
	case config.ThemeDark:
		return true
	case config.ThemeLight:
		return false
	default:
		return lipgloss.HasDarkBackground()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if cmd := m.startWatch(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Dark reports the active theme.
func (m Model) Dark() bool { return m.dark }

// SidebarOpen reports whether the sidebar is shown.
func (m Model) SidebarOpen() bool { return m.sidebarOpen }

// Overlay returns the open overlay.
func (m Model) Overlay() Overlay { return m.overlay }

// Focus returns the pane receiving navigation keys.
func (m Model) Focus() Pane { return m.focus }

// Cursor returns the index of the selected block.
func (m Model) Cursor() int { return m.cursor }

// --- Transitions ---

func (m *Model) openPalette() tea.Cmd {
	m.overlay = OverlayPalette
	m.palette.Reset()
	return m.palette.Focus()
}

func (m *Model) closePalette() {
	m.overlay = OverlayNone
	m.palette.Blur()
	m.palette.Reset()
}

func (m *Model) executePalette() {
	text := m.palette.Value()
	m.closePalette()
	m.session.Editor.ExecuteCommand(m.ctx, text)
	m.cursor = m.session.Editor.Len() - 1
}

func (m *Model) openAddMenu()  { m.overlay = OverlayAddMenu }
func (m *Model) closeAddMenu() { m.overlay = OverlayNone }

func (m *Model) addBlock(t core.BlockType) tea.Cmd {
	m.closeAddMenu()
	id := m.session.Editor.AddBlock(m.ctx, t)
	m.cursor = m.session.Editor.Len() - 1
	return m.startEditing(id)
}

func (m *Model) startEditing(id string) tea.Cmd {
	b, ok := m.session.Editor.Block(id)
	if !ok {
		return nil
	}
	m.session.Editor.SetEditing(id)
	m.editor.SetValue(b.Content)
	m.editor.SetWidth(m.documentWidth() - 4)
	return m.editor.Focus()
}

func (m *Model) stopEditing() {
	m.session.Editor.StopEditing()
	m.editor.Blur()
}

func (m *Model) editing() bool { return m.session.Editor.EditingID() != "" }

func (m *Model) toggleSidebar() {
	m.sidebarOpen = !m.sidebarOpen
	if !m.sidebarOpen {
		m.focus = PaneDocument
	}
}

func (m *Model) toggleWorkspaceSection() {
	m.workspaceOpen = !m.workspaceOpen
	m.clampSidebarCursor()
}

func (m *Model) switchFocus() {
	if m.focus == PaneDocument && m.sidebarOpen {
		m.focus = PaneSidebar
		return
	}
	m.focus = PaneDocument
}

func (m *Model) toggleTheme() {
	m.setDark(m.session.ToggleDarkMode(m.ctx, m.dark))
}

func (m *Model) setDark(dark bool) {
	m.dark = dark
	m.styles = NewStyles(dark)
}

func (m *Model) addPage() {
	ws, ok := m.session.Tree.CurrentWorkspace()
	if !ok {
		return
	}
	m.session.Tree.AddPage(ws.ID)
	m.workspaceOpen = true
}

func (m *Model) addWorkspace() {
	m.session.Tree.AddWorkspace()
	m.clampSidebarCursor()
}

func (m *Model) moveCursor(delta int) {
	if m.focus == PaneSidebar {
		m.sidebarCursor += delta
		m.clampSidebarCursor()
		return
	}
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if n := m.session.Editor.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) clampSidebarCursor() {
	if n := len(m.sidebarRows()); m.sidebarCursor >= n {
		m.sidebarCursor = n - 1
	}
	if m.sidebarCursor < 0 {
		m.sidebarCursor = 0
	}
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	if !m.sized && width < narrowWidth {
		m.sidebarOpen = false
		m.focus = PaneDocument
	}
	m.sized = true
	m.editor.SetWidth(m.documentWidth() - 4)
}

// selectedBlock returns the block under the cursor.
func (m *Model) selectedBlock() (core.Block, bool) {
	blocks := m.session.Editor.Blocks()
	if m.cursor < 0 || m.cursor >= len(blocks) {
		return core.Block{}, false
	}
	return blocks[m.cursor], true
}

// sidebarRow is one selectable line of the sidebar.
type sidebarRow struct {
	page      *core.Page
	workspace *core.Workspace
}

func (m *Model) sidebarRows() []sidebarRow {
	var rows []sidebarRow
	if ws, ok := m.session.Tree.CurrentWorkspace(); ok && m.workspaceOpen {
		for i := range ws.Pages {
			rows = append(rows, sidebarRow{page: &ws.Pages[i]})
		}
	}
	all := m.session.Tree.Workspaces()
	for i := range all {
		rows = append(rows, sidebarRow{workspace: &all[i]})
	}
	return rows
}

func (m *Model) activateSidebarRow() {
	rows := m.sidebarRows()
	if m.sidebarCursor < 0 || m.sidebarCursor >= len(rows) {
		return
	}
	row := rows[m.sidebarCursor]
	switch {
	case row.page != nil:
		m.session.Tree.SelectPage(row.page.ID)
		m.focus = PaneDocument
	case row.workspace != nil:
		m.session.Tree.SelectWorkspace(row.workspace.Name)
		m.workspaceOpen = true
		m.sidebarCursor = 0
	}
}

func (m *Model) documentWidth() int {
	w := m.width
	if m.sidebarOpen {
		w -= m.sidebarWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

type tickMsg time.Time

const tickInterval = 250 * time.Millisecond

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
