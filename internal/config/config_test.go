package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ReadWrite(t *testing.T) {
	original := &Config{
		Adapter:  "sqlite",
		DataDir:  "/home/user/notes",
		ReadOnly: true,
		UI: UIConfig{
			Theme:          ThemeDark,
			ToastSeconds:   5,
			SidebarWidth:   32,
			HighlightStyle: "dracula",
		},
	}

	var buf bytes.Buffer
	m := &Manager{}
	require.NoError(t, m.Write(&buf, original))

	got, err := m.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestManager_ReadPartialKeepsDefaults(t *testing.T) {
	m := &Manager{}
	got, err := m.Read(strings.NewReader("adapter = \"memory\"\n\n[ui]\ntheme = \"light\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "memory", got.Adapter)
	assert.Equal(t, ThemeLight, got.UI.Theme)
	assert.Equal(t, Default().UI.ToastSeconds, got.UI.ToastSeconds)
	assert.Equal(t, Default().UI.HighlightStyle, got.UI.HighlightStyle)
}

func TestManager_ReadInvalid(t *testing.T) {
	m := &Manager{}
	_, err := m.Read(strings.NewReader("adapter = [broken"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"default is valid", func(*Config) {}, ""},
		{"unknown adapter", func(c *Config) { c.Adapter = "s3" }, "invalid adapter"},
		{"unknown theme", func(c *Config) { c.UI.Theme = "sepia" }, "invalid ui.theme"},
		{"zero toast", func(c *Config) { c.UI.ToastSeconds = 0 }, "toast_seconds"},
		{"narrow sidebar", func(c *Config) { c.UI.SidebarWidth = 3 }, "sidebar_width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(dir, "absent.toml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte(`adapter = "s3"`), 0644))

		_, err := Load(path)
		assert.ErrorContains(t, err, "invalid adapter")
	})
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.DataDir = "/data"

	require.NoError(t, Init(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data", got.DataDir)

	assert.ErrorContains(t, Init(path, cfg), "already exists")
}
