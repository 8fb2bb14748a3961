package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding of the interface.
type KeyMap struct {
	// Global
	Palette       key.Binding
	AddMenu       key.Binding
	Focus         key.Binding
	NewPage       key.Binding
	NewWorkspace  key.Binding
	ToggleSection key.Binding
	ToggleSidebar key.Binding
	ToggleTheme   key.Binding
	Quit          key.Binding

	// Lists
	Up     key.Binding
	Down   key.Binding
	Select key.Binding

	// Document
	Edit   key.Binding
	Toggle key.Binding
	Delete key.Binding
	Copy   key.Binding

	// Overlays and editing
	Close   key.Binding
	Execute key.Binding
	Finish  key.Binding
	Abort   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Palette:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "commands")),
		AddMenu:       key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "add block")),
		Focus:         key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		NewPage:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new page")),
		NewWorkspace:  key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "new workspace")),
		ToggleSection: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "fold workspace")),
		ToggleSidebar: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "sidebar")),
		ToggleTheme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),

		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Toggle: key.NewBinding(key.WithKeys("x", " "), key.WithHelp("x", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),

		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Execute: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "execute")),
		Finish:  key.NewBinding(key.WithKeys("ctrl+s", "esc"), key.WithHelp("ctrl+s", "done")),
		Abort:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// documentHelp lists the bindings shown in the footer.
func (k KeyMap) documentHelp() []key.Binding {
	return []key.Binding{k.Palette, k.AddMenu, k.Edit, k.Toggle, k.Delete, k.Copy, k.Focus, k.ToggleTheme, k.Quit}
}
