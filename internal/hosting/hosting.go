// Package hosting abstracts the source-hosting backend that release
// strategies read from: fetching a file's contents on a branch and locating
// files by name under a root path. Release logic never touches the backend
// directly; it consumes this narrow interface.
package hosting

import (
	"context"
	"errors"
	"fmt"

	"github.com/conn-castle/release-layer/internal/messages"
)

// ErrFileNotFound is returned by GetFileContentsOnBranch when the requested
// path does not exist on the branch. Callers that require the file translate
// it into a MissingRequiredFileError.
var ErrFileNotFound = errors.New(messages.HostingFileNotFound)

// Host is the read-only view of a source-hosting backend.
type Host interface {
	// GetFileContentsOnBranch returns the contents of path on branch.
	// A missing file fails with ErrFileNotFound; any other failure is
	// backend-specific and propagates unchanged.
	GetFileContentsOnBranch(ctx context.Context, path string, branch string) (string, error)
	// FindFilesByFilenameAndRef returns the repo-relative paths of every file
	// named filename under rootPath on branch, in deterministic order.
	FindFilesByFilenameAndRef(ctx context.Context, filename string, branch string, rootPath string) ([]string, error)
	// Repo identifies the repository for error and log messages.
	Repo() string
}

// MissingRequiredFileError reports that a file a release strategy depends on
// does not exist at its expected path. It carries enough context for the
// caller to present an actionable message rather than a generic not-found.
type MissingRequiredFileError struct {
	// Path is the resolved repo-relative path that was required.
	Path string
	// Strategy names the release strategy that required the file.
	Strategy string
	// Repo identifies the repository that was searched.
	Repo string
}

func (e *MissingRequiredFileError) Error() string {
	return fmt.Sprintf(messages.HostingRequiredFileMissingFmt, e.Path, e.Strategy, e.Repo)
}

// IsMissingRequiredFile reports whether err is a MissingRequiredFileError.
func IsMissingRequiredFile(err error) bool {
	var missing *MissingRequiredFileError
	return errors.As(err, &missing)
}
