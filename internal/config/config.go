// Package config reads and writes the FlexNote TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Theme values accepted by UIConfig.Theme.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config represents the main configuration for flexnote.
type Config struct {
	Adapter  string   `toml:"adapter"`  // "fs" (default), "sqlite" or "memory"
	DataDir  string   `toml:"data_dir"` // empty means DefaultDataDir
	ReadOnly bool     `toml:"read_only"`
	UI       UIConfig `toml:"ui"`
}

// UIConfig holds settings for the terminal interface.
type UIConfig struct {
	Theme          string `toml:"theme"`         // "auto", "dark" or "light"; only used when no preference is stored
	ToastSeconds   int    `toml:"toast_seconds"` // how long a notification stays on screen
	SidebarWidth   int    `toml:"sidebar_width"`
	HighlightStyle string `toml:"highlight_style"` // chroma style for code blocks
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Adapter: "fs",
		UI: UIConfig{
			Theme:          ThemeAuto,
			ToastSeconds:   3,
			SidebarWidth:   28,
			HighlightStyle: "monokai",
		},
	}
}

// DefaultPath returns ~/.config/flexnote/config.toml (or the platform
// equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "flexnote", "config.toml"), nil
}

// DefaultDataDir returns ~/.flexnote.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".flexnote"), nil
}

// Validate checks the enumerated fields and ranges.
func (c *Config) Validate() error {
	switch c.Adapter {
	case "fs", "sqlite", "memory":
	default:
		return fmt.Errorf("invalid adapter %q (want fs, sqlite or memory)", c.Adapter)
	}
	switch c.UI.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("invalid ui.theme %q (want auto, dark or light)", c.UI.Theme)
	}
	if c.UI.ToastSeconds <= 0 {
		return fmt.Errorf("ui.toast_seconds must be positive, got %d", c.UI.ToastSeconds)
	}
	if c.UI.SidebarWidth < 10 {
		return fmt.Errorf("ui.sidebar_width must be at least 10, got %d", c.UI.SidebarWidth)
	}
	return nil
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader. Fields missing from the
// input keep their Default values.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// Load reads and validates the file at path. A missing file yields Default.
func Load(path string) (*Config, error) {
	cfg, err := ReadFromFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func writeToFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init writes cfg to a new file at path. It refuses to overwrite.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
