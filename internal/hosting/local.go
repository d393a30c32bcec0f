package hosting

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/conn-castle/release-layer/internal/messages"
)

// LocalHost serves a checked-out working tree as a hosting backend. The
// branch argument is accepted for interface fidelity and ignored: a working
// tree has exactly one checked-out state.
type LocalHost struct {
	root string
	repo string
}

// NewLocalHost returns a LocalHost rooted at root. repo is the repository
// identifier used in error messages; when empty the root path is used.
func NewLocalHost(root string, repo string) (*LocalHost, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf(messages.HostingRootRequired)
	}
	if repo == "" {
		repo = root
	}
	return &LocalHost{root: root, repo: repo}, nil
}

// Repo implements Host.
func (h *LocalHost) Repo() string { return h.repo }

// GetFileContentsOnBranch implements Host against the working tree.
func (h *LocalHost) GetFileContentsOnBranch(_ context.Context, path string, _ string) (string, error) {
	data, err := os.ReadFile(filepath.Join(h.root, filepath.FromSlash(path)))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", path, ErrFileNotFound)
		}
		return "", fmt.Errorf(messages.HostingReadFileFmt, path, err)
	}
	return string(data), nil
}

// FindFilesByFilenameAndRef implements Host by walking rootPath under the
// working tree. Results are repo-relative slash paths in sorted order.
func (h *LocalHost) FindFilesByFilenameAndRef(_ context.Context, filename string, _ string, rootPath string) ([]string, error) {
	start := filepath.Join(h.root, filepath.FromSlash(rootPath))
	if _, err := os.Stat(start); os.IsNotExist(err) {
		return nil, nil
	}

	var found []string
	err := filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Never descend into VCS metadata.
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != filename {
			return nil
		}
		rel, err := filepath.Rel(h.root, path)
		if err != nil {
			return err
		}
		found = append(found, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(messages.HostingListFilesFmt, filename, rootPath, err)
	}
	sort.Strings(found)
	return found, nil
}
