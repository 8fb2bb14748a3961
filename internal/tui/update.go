package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aretw0/flexnote/pkg/core"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

type addMenuItem struct {
	key   string
	typ   core.BlockType
	label string
}

var addMenuItems = []addMenuItem{
	{"p", core.BlockParagraph, "Paragraph"},
	{"h", core.BlockHeading, "Heading"},
	{"t", core.BlockTodo, "To-do"},
	{"c", core.BlockCode, "Code"},
	{"i", core.BlockImage, "Image"},
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tickMsg:
		m.toasts.Expire()
		return m, tickCmd()

	case storeChangedMsg:
		m.applyExternalChange(msg.event)
		return m, waitForEvent(msg.events)

	case watchClosedMsg:
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.overlay == OverlayPalette:
			return m.handlePaletteKey(msg)
		case m.overlay == OverlayAddMenu:
			return m.handleAddMenuKey(msg)
		case m.editing():
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)
	}

	// Cursor blink and similar messages go to the focused input.
	var cmd tea.Cmd
	switch {
	case m.overlay == OverlayPalette:
		m.palette, cmd = m.palette.Update(msg)
	case m.editing():
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close):
		m.closePalette()
		return m, nil
	case key.Matches(msg, m.keys.Execute):
		m.executePalette()
		return m, nil
	}

	var cmd tea.Cmd
	m.palette, cmd = m.palette.Update(msg)
	return m, cmd
}

func (m Model) handleAddMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.AddMenu):
		m.closeAddMenu()
		return m, nil
	}

	for _, item := range addMenuItems {
		if msg.String() == item.key {
			return m, m.addBlock(item.typ)
		}
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Finish):
		m.stopEditing()
		return m, nil
	}

	id := m.session.Editor.EditingID()
	before := m.editor.Value()

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	if after := m.editor.Value(); after != before {
		m.session.Editor.UpdateBlock(m.ctx, id, after)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Palette):
		return m, m.openPalette()
	case key.Matches(msg, k.AddMenu):
		m.openAddMenu()
	case key.Matches(msg, k.Focus):
		m.switchFocus()
	case key.Matches(msg, k.NewPage):
		m.addPage()
	case key.Matches(msg, k.NewWorkspace):
		m.addWorkspace()
	case key.Matches(msg, k.ToggleSection):
		m.toggleWorkspaceSection()
	case key.Matches(msg, k.ToggleSidebar):
		m.toggleSidebar()
	case key.Matches(msg, k.ToggleTheme):
		m.toggleTheme()
	case key.Matches(msg, k.Up):
		m.moveCursor(-1)
	case key.Matches(msg, k.Down):
		m.moveCursor(1)
	case m.focus == PaneSidebar:
		if key.Matches(msg, k.Select) {
			m.activateSidebarRow()
		}
	default:
		return m.handleDocumentKey(msg)
	}
	return m, nil
}

func (m Model) handleDocumentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b, ok := m.selectedBlock()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Edit):
		return m, m.startEditing(b.ID)
	case key.Matches(msg, m.keys.Toggle):
		m.session.Editor.ToggleTodo(m.ctx, b.ID)
	case key.Matches(msg, m.keys.Delete):
		m.session.Editor.DeleteBlock(m.ctx, b.ID)
		m.clampCursor()
	case key.Matches(msg, m.keys.Copy):
		m.copyBlock(b)
	}
	return m, nil
}

func (m *Model) copyBlock(b core.Block) {
	if err := writeClipboard(b.Content); err != nil {
		m.toasts.Error("Copy failed: " + err.Error())
		return
	}
	m.toasts.Notify(core.Notification{Kind: core.NotifyInfo, Message: "Copied block content"})
}
