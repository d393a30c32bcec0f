package updaters

import (
	"strings"

	"github.com/conn-castle/release-layer/internal/manifest"
)

// versionPropertyPrefix namespaces artifact entries in dependencies.properties.
const versionPropertyPrefix = "version."

// DependencyProperties rewrites dependency-lock entries of the form
// version.<artifact>=<version>. Entries for unknown artifacts and all other
// properties are preserved as-is.
type DependencyProperties struct {
	versions *manifest.VersionsMap
}

// NewDependencyProperties returns a dependencies.properties updater writing versions.
func NewDependencyProperties(versions *manifest.VersionsMap) *DependencyProperties {
	return &DependencyProperties{versions: versions}
}

// Name implements Updater.
func (u *DependencyProperties) Name() string { return "dependencies.properties" }

// Update implements Updater.
func (u *DependencyProperties) Update(content string) (string, error) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") {
			continue
		}
		key, _, ok := strings.Cut(trimmed, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if !strings.HasPrefix(key, versionPropertyPrefix) {
			continue
		}
		artifact := strings.TrimPrefix(key, versionPropertyPrefix)
		version, present := u.versions.Get(artifact)
		if !present || version == nil {
			continue
		}
		lines[i] = key + "=" + version.String()
	}
	return strings.Join(lines, "\n"), nil
}
