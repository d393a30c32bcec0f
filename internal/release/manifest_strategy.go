package release

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/conn-castle/release-layer/internal/commits"
	"github.com/conn-castle/release-layer/internal/hosting"
	"github.com/conn-castle/release-layer/internal/manifest"
	"github.com/conn-castle/release-layer/internal/messages"
	"github.com/conn-castle/release-layer/internal/updaters"
	"github.com/conn-castle/release-layer/internal/versioning"
)

// ExtraFile is a statically configured extra release file: either a plain
// path or a structured descriptor. The plan builder only processes plain
// paths; structured descriptors are explicitly skipped.
type ExtraFile struct {
	Path       string
	Structured bool
}

// Options configures a release strategy for one repository.
type Options struct {
	// Branch is the target branch all fetches and searches run against.
	Branch string
	// ModuleRoot is the path of the released module inside the repository.
	// Defaults to the repository root.
	ModuleRoot string
	// ChangelogPath is the changelog location relative to ModuleRoot.
	ChangelogPath string
	// SkipChangelog suppresses the changelog edit entirely.
	SkipChangelog bool
	// SkipSnapshot disables snapshot detection; every release is final.
	SkipSnapshot bool
	// ExtraFiles lists additional files whose version strings are rewritten.
	ExtraFiles []ExtraFile
	// Versioning is the pluggable bump strategy for regular releases.
	Versioning versioning.Strategy
}

// ManifestStrategy releases a multi-artifact module tracked by a versions
// manifest, rewriting Maven descriptors, Gradle build scripts, and dependency
// locks alongside the manifest itself.
//
// One instance owns one release cycle: the fetched registry content and the
// snapshot decision are memoized on first use and never refreshed, and the
// instance is not safe under concurrent cycles.
type ManifestStrategy struct {
	host   hosting.Host
	logger *zap.Logger
	opts   Options

	versionsContent *string
	snapshot        *bool
}

// buildFileKinds are the build-metadata files searched during plan assembly,
// in the fixed order their edits appear in the plan.
var buildFileKinds = []string{"pom.xml", "build.gradle", "dependencies.properties"}

// NewManifestStrategy returns a strategy for one release cycle of the module
// hosted by host.
func NewManifestStrategy(host hosting.Host, logger *zap.Logger, opts Options) (*ManifestStrategy, error) {
	if host == nil {
		return nil, errors.New(messages.ReleaseHostRequired)
	}
	if opts.Versioning == nil {
		return nil, errors.New(messages.ReleaseVersioningRequired)
	}
	if opts.Branch == "" {
		opts.Branch = "main"
	}
	if opts.ModuleRoot == "" {
		opts.ModuleRoot = "."
	}
	if opts.ChangelogPath == "" {
		opts.ChangelogPath = "CHANGELOG.md"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ManifestStrategy{host: host, logger: logger, opts: opts}, nil
}

// Name implements Strategy.
func (s *ManifestStrategy) Name() string { return "manifest" }

// PostProcessCommits implements Strategy by guaranteeing a non-empty commit
// set, so an empty history still produces a baseline release.
func (s *ManifestStrategy) PostProcessCommits(cs []commits.Commit) []commits.Commit {
	return commits.EnsureNonEmpty(cs)
}

// InitialReleaseVersion implements Strategy. A first release starts at 0.1.0:
// 0.0.0 would claim no release happened and 1.0.0 would claim stability
// nobody has promoted yet.
func (s *ManifestStrategy) InitialReleaseVersion() *semver.Version {
	return semver.MustParse(InitialVersion)
}

// versionsPath resolves the registry file relative to the module root.
func (s *ManifestStrategy) versionsPath() string {
	return path.Join(s.opts.ModuleRoot, manifest.FileName)
}

// getVersionsContent fetches the registry file at most once per cycle.
// Subsequent calls return the memoized content without touching the backend.
func (s *ManifestStrategy) getVersionsContent(ctx context.Context) (string, error) {
	if s.versionsContent != nil {
		return *s.versionsContent, nil
	}
	content, err := s.host.GetFileContentsOnBranch(ctx, s.versionsPath(), s.opts.Branch)
	if err != nil {
		if errors.Is(err, hosting.ErrFileNotFound) {
			return "", &hosting.MissingRequiredFileError{
				Path:     s.versionsPath(),
				Strategy: s.Name(),
				Repo:     s.host.Repo(),
			}
		}
		return "", err
	}
	s.versionsContent = &content
	return content, nil
}

// NeedsSnapshot implements Strategy. When snapshot handling is enabled it
// delegates to the registry's snapshot predicate.
func (s *ManifestStrategy) NeedsSnapshot(ctx context.Context) (bool, error) {
	if s.opts.SkipSnapshot {
		return false, nil
	}
	if s.snapshot != nil {
		return *s.snapshot, nil
	}
	content, err := s.getVersionsContent(ctx)
	if err != nil {
		return false, err
	}
	needed, err := manifest.NeedsSnapshot(content)
	if err != nil {
		return false, err
	}
	s.snapshot = &needed
	return needed, nil
}

// BuildVersionsMap implements Strategy.
func (s *ManifestStrategy) BuildVersionsMap(ctx context.Context) (*manifest.VersionsMap, error) {
	content, err := s.getVersionsContent(ctx)
	if err != nil {
		return nil, err
	}
	return manifest.Parse(content)
}

// UpdateVersionsMap implements Strategy. It mutates m in place and returns
// it; the key set never changes. A promotion commit hard-sets every stable
// artifact to 1.0.0, bypassing the bump strategy. Artifacts with no
// resolvable current version are skipped for the cycle with a warning.
func (s *ManifestStrategy) UpdateVersionsMap(_ context.Context, m *manifest.VersionsMap, cs []commits.Commit) (*manifest.VersionsMap, error) {
	isPromotion := false
	modified := make([]commits.Commit, 0, len(cs))
	for _, c := range cs {
		if commits.IsPromotion(c) {
			isPromotion = true
		}
		modified = append(modified, commits.WithoutPromotionNotes(c))
	}

	bump := s.bumpStrategy()
	for _, key := range m.Keys() {
		if isPromotion && IsStableArtifact(key) {
			m.Set(key, semver.MustParse(commits.PromotionNoteText))
			continue
		}
		current, _ := m.Get(key)
		if current == nil {
			s.logger.Warn(messages.ReleaseMissingVersionWarn, zap.String("artifact", key))
			continue
		}
		next, err := bump.Bump(current, modified)
		if err != nil {
			return nil, fmt.Errorf(messages.ReleaseBumpFailedFmt, key, current, err)
		}
		m.Set(key, next)
	}
	return m, nil
}

// bumpStrategy selects the per-cycle bump: the snapshot strategy when the
// cycle was classified as a snapshot build, the configured strategy
// otherwise. NeedsSnapshot decides the classification; before it runs the
// configured strategy applies.
func (s *ManifestStrategy) bumpStrategy() versioning.Strategy {
	if s.snapshot != nil && *s.snapshot {
		return versioning.Snapshot{}
	}
	return s.opts.Versioning
}

// BuildUpdates implements Strategy. The plan order is load-bearing: the
// registry first, discovered build files grouped by kind, extra files, and
// the changelog always last.
func (s *ManifestStrategy) BuildUpdates(ctx context.Context, version *semver.Version, m *manifest.VersionsMap, isSnapshot bool, changelogEntry string) ([]Update, error) {
	content, err := s.getVersionsContent(ctx)
	if err != nil {
		return nil, err
	}

	updates := []Update{{
		Path:          s.versionsPath(),
		CachedContent: &content,
		Updater:       updaters.NewVersionsManifest(m),
	}}

	// The three kind searches run concurrently; the plan appends their
	// results strictly in kind order, so output stays deterministic no
	// matter which search finishes first.
	found := make([][]string, len(buildFileKinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, filename := range buildFileKinds {
		i, filename := i, filename
		g.Go(func() error {
			paths, err := s.host.FindFilesByFilenameAndRef(gctx, filename, s.opts.Branch, s.opts.ModuleRoot)
			if err != nil {
				return err
			}
			found[i] = paths
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, filename := range buildFileKinds {
		for _, p := range found[i] {
			updates = append(updates, Update{
				Path:    p,
				Updater: s.buildFileUpdater(filename, version, m),
			})
		}
	}

	for _, extra := range s.opts.ExtraFiles {
		if extra.Structured {
			// Structured extra-file descriptors are handled by their own
			// tooling, not by this plan builder.
			s.logger.Debug("skipping structured extra file", zap.String("path", extra.Path))
			continue
		}
		updates = append(updates, Update{
			Path:    path.Join(s.opts.ModuleRoot, extra.Path),
			Updater: updaters.NewGeneric(version),
		})
	}

	if !isSnapshot && !s.opts.SkipChangelog {
		updates = append(updates, Update{
			Path:            path.Join(s.opts.ModuleRoot, s.opts.ChangelogPath),
			CreateIfMissing: true,
			Updater:         updaters.NewChangelog(changelogEntry),
		})
	}

	return updates, nil
}

// buildFileUpdater maps a build-metadata file kind to its updater.
func (s *ManifestStrategy) buildFileUpdater(filename string, version *semver.Version, m *manifest.VersionsMap) updaters.Updater {
	switch filename {
	case "pom.xml":
		return updaters.NewPomXML(version)
	case "build.gradle":
		return updaters.NewBuildGradle(version)
	default:
		return updaters.NewDependencyProperties(m)
	}
}
