package hosting

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
)

// MemHost is an in-memory Host keyed by branch then repo-relative slash path.
// It backs tests and offline plan previews.
type MemHost struct {
	repo  string
	files map[string]map[string]string

	// Searches counts FindFilesByFilenameAndRef calls per filename.
	Searches map[string]int
	// Fetches counts GetFileContentsOnBranch calls per path.
	Fetches map[string]int
	// Err, when set, is returned by every call.
	Err error
}

// NewMemHost returns an empty MemHost identified by repo.
func NewMemHost(repo string) *MemHost {
	return &MemHost{
		repo:     repo,
		files:    make(map[string]map[string]string),
		Searches: make(map[string]int),
		Fetches:  make(map[string]int),
	}
}

// Put stores contents for path on branch.
func (h *MemHost) Put(branch string, filePath string, contents string) {
	if h.files[branch] == nil {
		h.files[branch] = make(map[string]string)
	}
	h.files[branch][path.Clean(filePath)] = contents
}

// Repo implements Host.
func (h *MemHost) Repo() string { return h.repo }

// GetFileContentsOnBranch implements Host.
func (h *MemHost) GetFileContentsOnBranch(_ context.Context, filePath string, branch string) (string, error) {
	h.Fetches[filePath]++
	if h.Err != nil {
		return "", h.Err
	}
	contents, ok := h.files[branch][path.Clean(filePath)]
	if !ok {
		return "", fmt.Errorf("%s: %w", filePath, ErrFileNotFound)
	}
	return contents, nil
}

// FindFilesByFilenameAndRef implements Host.
func (h *MemHost) FindFilesByFilenameAndRef(_ context.Context, filename string, branch string, rootPath string) ([]string, error) {
	h.Searches[filename]++
	if h.Err != nil {
		return nil, h.Err
	}
	prefix := path.Clean(rootPath)
	var found []string
	for filePath := range h.files[branch] {
		if path.Base(filePath) != filename {
			continue
		}
		if prefix != "." && filePath != prefix && !strings.HasPrefix(filePath, prefix+"/") {
			continue
		}
		found = append(found, filePath)
	}
	sort.Strings(found)
	return found, nil
}
