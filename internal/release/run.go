package release

import (
	"context"
	"errors"

	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/release-layer/internal/commits"
	"github.com/conn-castle/release-layer/internal/manifest"
	"github.com/conn-castle/release-layer/internal/messages"
)

// Plan is the computed outcome of one release cycle.
type Plan struct {
	// Version is the release version: the new version of the first tracked
	// artifact with a resolvable version.
	Version *semver.Version
	// Versions maps every artifact to its next version.
	Versions *manifest.VersionsMap
	// Previous holds the pre-bump version per artifact, for display.
	Previous map[string]*semver.Version
	// Snapshot marks an intermediate build rather than a final release.
	Snapshot bool
	// Updates is the ordered file-edit plan.
	Updates []Update
}

// EntryRenderer renders the changelog entry for a computed release. Rendering
// is a collaborator concern; the cycle only threads the result through to the
// changelog edit.
type EntryRenderer func(version *semver.Version, cs []commits.Commit) string

// Run executes one release cycle against strat: normalize commits, classify
// the cycle, bump every artifact, and assemble the edit plan.
func Run(ctx context.Context, strat Strategy, cs []commits.Commit, renderEntry EntryRenderer) (*Plan, error) {
	cs = strat.PostProcessCommits(cs)

	snapshot, err := strat.NeedsSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	versions, err := strat.BuildVersionsMap(ctx)
	if err != nil {
		return nil, err
	}
	previous := make(map[string]*semver.Version, versions.Len())
	for _, key := range versions.Keys() {
		version, _ := versions.Get(key)
		previous[key] = version
	}

	versions, err = strat.UpdateVersionsMap(ctx, versions, cs)
	if err != nil {
		return nil, err
	}

	version, err := releaseVersion(versions)
	if err != nil {
		return nil, err
	}

	entry := ""
	if renderEntry != nil {
		entry = renderEntry(version, cs)
	}

	updates, err := strat.BuildUpdates(ctx, version, versions, snapshot, entry)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Version:  version,
		Versions: versions,
		Previous: previous,
		Snapshot: snapshot,
		Updates:  updates,
	}, nil
}

// releaseVersion picks the plan's headline version: the first artifact in map
// order with a resolvable version.
func releaseVersion(m *manifest.VersionsMap) (*semver.Version, error) {
	for _, key := range m.Keys() {
		if version, _ := m.Get(key); version != nil {
			return version, nil
		}
	}
	return nil, errors.New(messages.ReleaseEmptyManifest)
}
