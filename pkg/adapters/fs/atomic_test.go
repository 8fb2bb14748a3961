package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		dir := t.TempDir()
		filename := filepath.Join(dir, "flexnote-blocks.json")

		if err := writeFileAtomic(filename, []byte(`[]`), 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != `[]` {
			t.Errorf("Expected content '[]', got '%s'", string(got))
		}
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		dir := t.TempDir()
		filename := filepath.Join(dir, "darkMode.json")

		if err := os.WriteFile(filename, []byte("false"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
		if err := writeFileAtomic(filename, []byte("true"), 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		got, _ := os.ReadFile(filename)
		if string(got) != "true" {
			t.Errorf("Expected content 'true', got '%s'", string(got))
		}
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		dir := t.TempDir()
		for i := 0; i < 3; i++ {
			if err := writeFileAtomic(filepath.Join(dir, "k.json"), []byte("1"), 0644); err != nil {
				t.Fatal(err)
			}
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), TempFilePrefix) {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
		if len(entries) != 1 {
			t.Errorf("expected exactly one file, got %d", len(entries))
		}
	})

	t.Run("Fails if Directory Missing", func(t *testing.T) {
		dir := t.TempDir()
		filename := filepath.Join(dir, "missing_folder", "k.json")

		if err := writeFileAtomic(filename, []byte("x"), 0644); err == nil {
			t.Error("Expected error when directory is missing, got nil")
		}
	})
}
