package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/flexnote/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the terminal editor (default)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runUI(cmd)
	},
}

func runUI(cmd *cobra.Command) {
	// The screen belongs to Bubble Tea; logs go to a file.
	logger := slog.New(slog.DiscardHandler)
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}
	slog.SetDefault(logger)

	toasts := tui.NewToasts(time.Duration(cfg.UI.ToastSeconds) * time.Second)
	session, err := openSession(toasts)
	if err != nil {
		fatal("Error opening store", err)
	}
	defer session.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = tui.Run(ctx, session, toasts, tui.Options{
		DarkFallback:   tui.DetectDark(cfg.UI.Theme),
		SidebarWidth:   cfg.UI.SidebarWidth,
		HighlightStyle: cfg.UI.HighlightStyle,
		WatchPattern:   "*",
		Logger:         logger,
	})
	if err != nil {
		fatalClose(session, "Error running editor", err)
	}
}

func openLogFile() (*os.File, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	dir = filepath.Join(dir, "flexnote")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "flexnote.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
