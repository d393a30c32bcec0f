// Package release implements the release-decision core: given the commits
// since the last release it computes the next version for every tracked
// artifact and assembles the ordered file-edit plan that realizes the bump.
// File retrieval, commit parsing, and the actual text patching live behind
// the hosting, commits, and updaters collaborators.
package release

import (
	"context"

	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/release-layer/internal/commits"
	"github.com/conn-castle/release-layer/internal/manifest"
	"github.com/conn-castle/release-layer/internal/updaters"
)

// InitialVersion is the version seeded for an artifact with no prior
// release.
const InitialVersion = "0.1.0"

// Update describes one planned file edit. Updates are produced by a strategy
// and never mutated afterwards; ownership transfers to the edit-application
// side.
type Update struct {
	// Path is the repo-relative target of the edit.
	Path string
	// CreateIfMissing allows the apply side to create the file when absent.
	CreateIfMissing bool
	// CachedContent holds the original content when the strategy already
	// fetched it, enabling a minimal diff-style rewrite. Nil when not cached.
	CachedContent *string
	// Updater performs the actual rewrite. Opaque to the release core.
	Updater updaters.Updater
}

// Strategy is the per-ecosystem release capability. One strategy instance
// serves one release cycle at a time: fetched registry content and the
// snapshot decision are memoized on the instance and are not safe under
// concurrent cycles.
type Strategy interface {
	// Name identifies the strategy in configuration, errors, and logs.
	Name() string
	// PostProcessCommits normalizes the commit set before bumping.
	PostProcessCommits(cs []commits.Commit) []commits.Commit
	// NeedsSnapshot reports whether the upcoming release must be an
	// intermediate snapshot build.
	NeedsSnapshot(ctx context.Context) (bool, error)
	// BuildVersionsMap builds the artifact version map from the registry.
	BuildVersionsMap(ctx context.Context) (*manifest.VersionsMap, error)
	// UpdateVersionsMap mutates m to the next versions and returns it. The
	// key set of the result is identical to the key set of m.
	UpdateVersionsMap(ctx context.Context, m *manifest.VersionsMap, cs []commits.Commit) (*manifest.VersionsMap, error)
	// BuildUpdates assembles the ordered edit plan for the release.
	BuildUpdates(ctx context.Context, version *semver.Version, m *manifest.VersionsMap, isSnapshot bool, changelogEntry string) ([]Update, error)
	// InitialReleaseVersion is the version seeded for an artifact with no
	// prior release.
	InitialReleaseVersion() *semver.Version
}
