package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/aretw0/flexnote/pkg/core"
)

// View implements tea.Model.
func (m Model) View() string {
	bodyHeight := m.height - 1
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	body := m.viewDocument(bodyHeight)
	if m.sidebarOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(bodyHeight), body)
	}
	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.viewFooter()))
}

func (m Model) viewSidebar(height int) string {
	s := m.styles
	inner := m.sidebarWidth - 3 // border and padding
	fit := func(text string) string { return ansi.Truncate(text, inner-1, "…") }

	var lines []string
	lines = append(lines, s.Brand.Render("FlexNote"), "")

	chevron := IconChevronRight
	if m.workspaceOpen {
		chevron = IconChevronDown
	}
	lines = append(lines, s.Section.Render(fit(fmt.Sprintf("%s %s", chevron, m.session.Tree.CurrentWorkspaceName())))+
		s.Muted.Render(" "+IconFilePlus.String()))

	rows := m.sidebarRows()
	current := m.session.Tree.CurrentPageID()
	header := false
	for i, row := range rows {
		var text string
		style := s.Item
		switch {
		case row.page != nil:
			text = "  " + row.page.Icon + " " + row.page.Name
			if row.page.ID == current {
				style = style.Inherit(s.Brand)
			}
		case row.workspace != nil:
			if !header {
				lines = append(lines, "", s.Muted.Render("Workspaces"))
				header = true
			}
			text = row.workspace.Name
			if row.workspace.Name == m.session.Tree.CurrentWorkspaceName() {
				style = style.Inherit(s.Section)
			}
		}
		if m.focus == PaneSidebar && i == m.sidebarCursor {
			style = s.ItemSel
		}
		lines = append(lines, style.Render(fit(text)))
	}

	lines = append(lines, "", s.Muted.Render(fit(IconFolderPlus.String()+" Add Workspace (N)")))

	return s.Sidebar.
		Width(m.sidebarWidth - 1).
		Height(height).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

func (m Model) viewDocument(height int) string {
	s := m.styles
	width := m.documentWidth()

	themeIcon := IconSun
	if m.dark {
		themeIcon = IconMoon
	}
	title := m.session.Tree.CurrentPageName()
	gap := width - 4 - lipgloss.Width(title) - lipgloss.Width(themeIcon.String())
	if gap < 1 {
		gap = 1
	}
	header := s.Header.Width(width).Render(title + strings.Repeat(" ", gap) + themeIcon.String())

	avail := height - lipgloss.Height(header) - 2 // document padding
	var content string
	switch m.overlay {
	case OverlayPalette:
		content = lipgloss.Place(width-4, avail, lipgloss.Center, lipgloss.Center, m.viewPalette(width-8))
	case OverlayAddMenu:
		content = lipgloss.Place(width-4, avail, lipgloss.Center, lipgloss.Center, m.viewAddMenu())
	default:
		content = m.viewBlocks(width-4, avail)
	}

	doc := s.Document.Width(width).Height(height - lipgloss.Height(header)).MaxHeight(height - lipgloss.Height(header)).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, doc)
}

// viewBlocks renders the block list, scrolled so the cursor stays visible.
func (m Model) viewBlocks(width, height int) string {
	blocks := m.session.Editor.Blocks()
	if len(blocks) == 0 {
		return m.styles.Muted.Render("Empty page. Press / for commands or a to add a block.")
	}

	rendered := make([]string, len(blocks))
	for i, b := range blocks {
		marker := "  "
		if i == m.cursor && m.focus == PaneDocument {
			marker = m.styles.Cursor.Render("▌ ")
		}
		rendered[i] = lipgloss.JoinHorizontal(lipgloss.Top, marker, m.renderBlock(b, width-2))
	}

	cursor := m.cursor
	if cursor >= len(rendered) {
		cursor = len(rendered) - 1
	}
	start := 0
	for start < cursor && visibleHeight(rendered[start:cursor+1]) > height {
		start++
	}

	var out []string
	used := 0
	for _, r := range rendered[start:] {
		h := lipgloss.Height(r) + 1
		if used+h > height && len(out) > 0 {
			break
		}
		out = append(out, r)
		used += h
	}
	return strings.Join(out, "\n\n")
}

func visibleHeight(blocks []string) int {
	total := 0
	for _, b := range blocks {
		total += lipgloss.Height(b) + 1
	}
	return total
}

func (m Model) renderBlock(b core.Block, width int) string {
	s := m.styles
	if b.ID == m.session.Editor.EditingID() {
		return m.editor.View()
	}

	placeholder := func(text string) string { return s.Muted.Render(text) }

	switch b.Type {
	case core.BlockHeading:
		if b.Content == "" {
			return placeholder("Heading")
		}
		if b.Level == 1 {
			return s.H1.Width(width).Render(b.Content)
		}
		return s.H2.Width(width).Render(b.Content)

	case core.BlockTodo:
		box := IconTodo.String()
		text := s.Paragraph.Render(b.Content)
		if b.IsChecked() {
			box = IconTodoDone.String()
			text = s.TodoDone.Render(b.Content)
		}
		if b.Content == "" {
			text = placeholder("To-do")
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, box+" ", lipgloss.NewStyle().Width(width-2).Render(text))

	case core.BlockCode:
		return s.Code.Width(width - 2).Render(highlightCode(b.Content, m.highlightStyle))

	case core.BlockImage:
		if b.Content == "" {
			return IconImage.String() + " " + placeholder("Image URL")
		}
		return IconImage.String() + " " + s.Image.Render(ansi.Truncate(b.Content, width-3, "…"))

	default:
		if b.Content == "" {
			return placeholder("Empty paragraph")
		}
		return s.Paragraph.Width(width).Render(b.Content)
	}
}

func (m Model) viewPalette(width int) string {
	s := m.styles
	if width > 72 {
		width = 72
	}
	chips := []string{
		s.Chip.Render("h1 Heading 1"),
		s.Chip.Render("h2 Heading 2"),
		s.Chip.Render("todo To-do"),
		s.Chip.Render("code Code"),
	}
	m.palette.Width = width - 8
	return s.Overlay.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(IconCommand.String()+" Command Menu"),
		"",
		m.palette.View(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, chips...),
		"",
		s.Muted.Render("Press ")+s.Kbd.Render("Enter")+s.Muted.Render(" to execute, ")+s.Kbd.Render("Esc")+s.Muted.Render(" to close"),
	))
}

func (m Model) viewAddMenu() string {
	s := m.styles
	lines := []string{s.Title.Render(IconAdd.String() + " Add block"), ""}
	for _, item := range addMenuItems {
		lines = append(lines, fmt.Sprintf("%s  %s %s", s.Kbd.Render(item.key), BlockIcon(item.typ), item.label))
	}
	lines = append(lines, "", s.Muted.Render("Esc to close"))
	return s.Overlay.Render(strings.Join(lines, "\n"))
}

func (m Model) viewFooter() string {
	s := m.styles

	var help []string
	for _, b := range m.keys.documentHelp() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	left := s.Muted.Render("Press ") + s.Kbd.Render("/") + s.Muted.Render(" for commands · "+strings.Join(help, " · "))

	right := ""
	if t, ok := m.toasts.latest(); ok {
		style := s.Toast
		text := IconCheck.String() + " " + t.Message
		if t.isError {
			style = s.ToastErr
			text = t.Message
		}
		right = style.Render(text)
	}

	room := m.width - lipgloss.Width(right) - 1
	if room < 0 {
		room = 0
	}
	left = ansi.Truncate(left, room, "…")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
