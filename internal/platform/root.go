package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// MarkerDir marks a directory as a FlexNote data root.
const MarkerDir = ".flexnote"

// ErrRootNotFound is returned by FindRoot when no ancestor holds MarkerDir.
var ErrRootNotFound = errors.New("flexnote root not found")

// FindRoot walks upwards from startDir looking for a MarkerDir directory
// and returns the absolute path of the directory containing it.
func FindRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if info, err := os.Stat(filepath.Join(dir, MarkerDir)); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrRootNotFound
		}
		dir = parent
	}
}
