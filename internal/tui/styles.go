package tui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	bg, fg, muted, surface, border, primary, danger lipgloss.Color
}

var (
	lightPalette = palette{
		bg:      "#FFFFFF",
		fg:      "#1E293B",
		muted:   "#64748B",
		surface: "#F1F5F9",
		border:  "#E2E8F0",
		primary: "#6366F1",
		danger:  "#EF4444",
	}
	darkPalette = palette{
		bg:      "#0F172A",
		fg:      "#E2E8F0",
		muted:   "#94A3B8",
		surface: "#1E293B",
		border:  "#334155",
		primary: "#818CF8",
		danger:  "#F87171",
	}
)

// Styles is the lipgloss style set for one theme.
type Styles struct {
	Dark bool

	App       lipgloss.Style
	Sidebar   lipgloss.Style
	Brand     lipgloss.Style
	Section   lipgloss.Style
	Item      lipgloss.Style
	ItemSel   lipgloss.Style
	Muted     lipgloss.Style
	Header    lipgloss.Style
	Document  lipgloss.Style
	Cursor    lipgloss.Style
	H1        lipgloss.Style
	H2        lipgloss.Style
	Paragraph lipgloss.Style
	TodoDone  lipgloss.Style
	Code      lipgloss.Style
	Image     lipgloss.Style
	Overlay   lipgloss.Style
	Title     lipgloss.Style
	Chip      lipgloss.Style
	Kbd       lipgloss.Style
	Toast     lipgloss.Style
	ToastErr  lipgloss.Style
}

// NewStyles builds the style set for the dark or light theme.
func NewStyles(dark bool) Styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return Styles{
		Dark:      dark,
		App:       lipgloss.NewStyle().Foreground(p.fg),
		Sidebar:   lipgloss.NewStyle().Background(p.surface).Foreground(p.fg).Padding(1, 1).BorderStyle(lipgloss.NormalBorder()).BorderRight(true).BorderForeground(p.border),
		Brand:     lipgloss.NewStyle().Foreground(p.primary).Bold(true),
		Section:   lipgloss.NewStyle().Bold(true),
		Item:      lipgloss.NewStyle().PaddingLeft(1),
		ItemSel:   lipgloss.NewStyle().PaddingLeft(1).Background(p.border).Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(p.muted),
		Header:    lipgloss.NewStyle().Bold(true).Padding(0, 1).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(p.border),
		Document:  lipgloss.NewStyle().Padding(1, 2),
		Cursor:    lipgloss.NewStyle().Foreground(p.primary),
		H1:        lipgloss.NewStyle().Bold(true).Underline(true).Foreground(p.fg),
		H2:        lipgloss.NewStyle().Bold(true).Foreground(p.fg),
		Paragraph: lipgloss.NewStyle().Foreground(p.fg),
		TodoDone:  lipgloss.NewStyle().Strikethrough(true).Foreground(p.muted),
		Code:      lipgloss.NewStyle().Background(p.surface).Padding(0, 1).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(p.border),
		Image:     lipgloss.NewStyle().Foreground(p.primary).Underline(true),
		Overlay:   lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(p.primary).Padding(1, 2),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(p.primary),
		Chip:      lipgloss.NewStyle().Background(p.border).Foreground(p.fg).Padding(0, 1).MarginRight(1),
		Kbd:       lipgloss.NewStyle().Background(p.border).Foreground(p.fg).Padding(0, 1),
		Toast:     lipgloss.NewStyle().Foreground(p.bg).Background(p.primary).Padding(0, 1),
		ToastErr:  lipgloss.NewStyle().Foreground(p.bg).Background(p.danger).Padding(0, 1),
	}
}
