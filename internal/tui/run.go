package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aretw0/flexnote/pkg/core"
)

// Run starts the interactive program and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, session *core.Session, toasts *Toasts, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel() // stops the store watcher

	p := tea.NewProgram(New(ctx, session, toasts, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
