package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDataPath(t *testing.T) {
	t.Parallel()

	devBase := filepath.Join(os.TempDir(), DevDirName)
	inTemp := filepath.Join(os.TempDir(), "flexnote-test-data")

	tests := []struct {
		name      string
		userPath  string
		forceTemp bool
		expected  string
	}{
		{"Normal Mode - Empty", "", false, "."},
		{"Normal Mode - Specific Path", "/some/path", false, "/some/path"},
		{"Dev Mode - Empty Path", "", true, filepath.Join(devBase, "default")},
		{"Dev Mode - Current Dir", ".", true, filepath.Join(devBase, "default")},
		{"Dev Mode - Relative Name", "notes", true, filepath.Join(devBase, "notes")},
		{"Dev Mode - Clean Name", "../bad/path", true, filepath.Join(devBase, "path")},
		{"Dev Mode - Exception for Temp Dir", inTemp, true, inTemp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDataPath(tt.userPath, tt.forceTemp); got != tt.expected {
				t.Errorf("ResolveDataPath(%q, %v) = %q, want %q", tt.userPath, tt.forceTemp, got, tt.expected)
			}
		})
	}
}

func TestIsDevRun(t *testing.T) {
	// Test binaries end in .test.
	if !IsDevRun() {
		t.Error("expected a test binary to be detected as a dev run")
	}
}
