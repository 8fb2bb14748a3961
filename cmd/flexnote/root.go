package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/flexnote"
	"github.com/aretw0/flexnote/internal/config"
	"github.com/aretw0/flexnote/internal/platform"
	"github.com/aretw0/flexnote/pkg/core"
)

var (
	verbose    bool
	configPath string
	adapter    string
	dataDir    string
	readOnly   bool

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flexnote",
	Short: "A block-based note editor for the terminal",
	Long: `FlexNote keeps a document of typed blocks (headings, paragraphs, todos,
code and images) in a local key-value store and edits it in a terminal UI.

Run without arguments to open the editor.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)

		loaded, err := config.Load(resolveConfigPath())
		if err != nil {
			fatal("Error loading config", err)
		}
		cfg = loaded
	},
	Run: func(cmd *cobra.Command, args []string) {
		runUI(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/flexnote/config.toml)")
	rootCmd.PersistentFlags().StringVar(&adapter, "adapter", "", "Storage adapter: fs, sqlite or memory")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "Data directory")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Open the store without writing")
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	path, err := config.DefaultPath()
	if err != nil {
		slog.Debug("no default config location", "error", err)
		return ""
	}
	return path
}

// resolveDataDir applies flag > config > enclosing .flexnote root > ~/.flexnote.
func resolveDataDir() (string, error) {
	if dataDir != "" {
		return dataDir, nil
	}
	if cfg.DataDir != "" {
		return cfg.DataDir, nil
	}

	if wd, err := os.Getwd(); err == nil {
		root, err := flexnote.FindRoot(wd)
		if err == nil {
			return filepath.Join(root, platform.MarkerDir), nil
		}
		if !errors.Is(err, platform.ErrRootNotFound) {
			return "", err
		}
	}
	return config.DefaultDataDir()
}

// openSession opens the configured store. notifier may be nil.
func openSession(notifier core.Notifier) (*core.Session, error) {
	dir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolving data directory: %w", err)
	}

	name := cfg.Adapter
	if adapter != "" {
		name = adapter
	}

	slog.Debug("opening store", "adapter", name, "path", dir)
	return flexnote.New(dir,
		flexnote.WithAdapter(name),
		flexnote.WithReadOnly(readOnly || cfg.ReadOnly),
		flexnote.WithLogger(slog.Default()),
		flexnote.WithNotifier(notifier),
	)
}

// printNotifier echoes confirmations on the command's output.
func printNotifier(cmd *cobra.Command) core.Notifier {
	return core.NotifierFunc(func(n core.Notification) {
		fmt.Fprintln(cmd.OutOrStdout(), n.Message)
	})
}
