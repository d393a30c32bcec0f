package updaters

import (
	"strings"

	"github.com/conn-castle/release-layer/internal/manifest"
)

// VersionsManifest rewrites the versions registry file. It replaces the
// version of every known artifact in place, leaving comments, blank lines,
// and unrecognized entries untouched so the resulting change stays a minimal
// diff of the original rather than a full regeneration.
type VersionsManifest struct {
	versions *manifest.VersionsMap
}

// NewVersionsManifest returns a manifest updater writing versions.
func NewVersionsManifest(versions *manifest.VersionsMap) *VersionsManifest {
	return &VersionsManifest{versions: versions}
}

// Name implements Updater.
func (u *VersionsManifest) Name() string { return "versions manifest" }

// Update implements Updater.
func (u *VersionsManifest) Update(content string) (string, error) {
	if content == "" {
		return manifest.Render(u.versions), nil
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, _, ok := strings.Cut(trimmed, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		version, present := u.versions.Get(key)
		if !present || version == nil {
			continue
		}
		lines[i] = key + ":" + version.String()
	}
	return strings.Join(lines, "\n"), nil
}
