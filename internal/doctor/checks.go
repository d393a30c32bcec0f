package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/release-layer/internal/config"
	"github.com/conn-castle/release-layer/internal/manifest"
	"github.com/conn-castle/release-layer/internal/messages"
)

var loadConfigFunc = config.LoadConfig

// CheckStructure verifies that the release layer directory exists.
func CheckStructure(root string) []Result {
	path := filepath.Join(root, config.Dir)
	info, err := os.Stat(path)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameStructure,
			Message:        fmt.Sprintf(messages.DoctorMissingRequiredDirFmt, config.Dir),
			Recommendation: messages.DoctorMissingRequiredDirRecommend,
		}}
	}
	if !info.IsDir() {
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameStructure,
			Message:   fmt.Sprintf(messages.DoctorPathNotDirFmt, config.Dir),
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameStructure,
		Message:   fmt.Sprintf(messages.DoctorDirExistsFmt, config.Dir),
	}}
}

// CheckConfig validates that the configuration file loads and parses. The
// loaded config is returned so downstream checks can use it; nil when
// loading failed.
func CheckConfig(root string) ([]Result, *config.Config) {
	paths := config.DefaultPaths(root)
	cfg, err := loadConfigFunc(paths.ConfigPath)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, nil
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   fmt.Sprintf(messages.DoctorConfigOKFmt, cfg.Release.Strategy, cfg.Release.Branch),
	}}, cfg
}

// CheckManifest validates the versions manifest: it must exist, parse, and
// every artifact should carry a resolvable version. Prerelease qualifiers
// are surfaced because they force the next release into a snapshot.
func CheckManifest(root string, cfg *config.Config) []Result {
	path := filepath.Join(root, filepath.FromSlash(cfg.Release.ModuleRoot), manifest.FileName)
	rel := relToRoot(root, path)

	data, err := os.ReadFile(path)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameManifest,
			Message:        fmt.Sprintf(messages.DoctorManifestMissingFmt, rel),
			Recommendation: messages.DoctorManifestMissingRecommend,
		}}
	}
	versions, err := manifest.Parse(string(data))
	if err != nil {
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameManifest,
			Message:   fmt.Sprintf(messages.DoctorManifestInvalidFmt, err),
		}}
	}
	if versions.Len() == 0 {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameManifest,
			Message:        messages.DoctorManifestEmpty,
			Recommendation: messages.DoctorManifestMissingRecommend,
		}}
	}

	var results []Result
	for _, key := range versions.Keys() {
		version, _ := versions.Get(key)
		if version == nil {
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameManifest,
				Message:        fmt.Sprintf(messages.DoctorArtifactHeldFmt, key),
				Recommendation: messages.DoctorArtifactHeldRecommend,
			})
			continue
		}
		if manifest.IsSnapshotVersion(version) && !cfg.Release.SkipSnapshot {
			results = append(results, Result{
				Status:    StatusWarn,
				CheckName: messages.DoctorCheckNameManifest,
				Message:   fmt.Sprintf(messages.DoctorSnapshotPendingFmt, key),
			})
		}
	}
	results = append(results, Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameManifest,
		Message:   fmt.Sprintf(messages.DoctorManifestOKFmt, versions.Len()),
	})
	return results
}

// CheckChangelog reports whether the changelog target exists yet.
func CheckChangelog(root string, cfg *config.Config) []Result {
	if cfg.Release.SkipChangelog {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameChangelog,
			Message:   messages.DoctorChangelogDisabled,
		}}
	}
	path := filepath.Join(root, filepath.FromSlash(cfg.Release.ModuleRoot), filepath.FromSlash(cfg.Release.ChangelogPath))
	rel := relToRoot(root, path)
	if _, err := os.Stat(path); err != nil {
		return []Result{{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNameChangelog,
			Message:   fmt.Sprintf(messages.DoctorChangelogMissingFmt, rel),
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameChangelog,
		Message:   fmt.Sprintf(messages.DoctorChangelogOKFmt, rel),
	}}
}

func relToRoot(root string, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
