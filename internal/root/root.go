// Package root discovers the repository root by walking up from a starting
// directory looking for the .release-layer marker directory.
package root

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/release-layer/internal/config"
)

// FindReleaseLayerRoot walks upward from start looking for a directory that
// contains .release-layer. Returns the directory and true when found.
func FindReleaseLayerRoot(start string) (string, bool, error) {
	if start == "" {
		return "", false, errors.New("start path is required")
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, err
	}
	for {
		marker := filepath.Join(dir, config.Dir)
		info, statErr := os.Stat(marker)
		switch {
		case statErr == nil:
			if !info.IsDir() {
				return "", false, fmt.Errorf("%s exists but is not a directory", marker)
			}
			return dir, true, nil
		case !os.IsNotExist(statErr):
			return "", false, statErr
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// FindRepoRoot resolves the repository root for commands that can run before
// initialization. It prefers the nearest .release-layer ancestor, falls back
// to the nearest .git ancestor, and finally to start itself.
func FindRepoRoot(start string) (string, error) {
	if start == "" {
		return "", errors.New("start path is required")
	}
	if dir, found, err := FindReleaseLayerRoot(start); err != nil {
		return "", err
	} else if found {
		return dir, nil
	}
	if dir, found, err := findGitRoot(start); err != nil {
		return "", err
	} else if found {
		return dir, nil
	}
	return filepath.Abs(start)
}

func findGitRoot(start string) (string, bool, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, err
	}
	for {
		marker := filepath.Join(dir, ".git")
		info, statErr := os.Stat(marker)
		switch {
		case statErr == nil:
			// A .git regular file marks a worktree or submodule checkout.
			if info.IsDir() || info.Mode().IsRegular() {
				return dir, true, nil
			}
			return "", false, fmt.Errorf("%s is neither a directory nor a regular file", marker)
		case !os.IsNotExist(statErr):
			return "", false, statErr
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
