// Package manifest owns the versions registry format: a flat text file
// mapping artifact key to version, one "key:version" entry per line. It is
// the source of truth consumed and rewritten on every release cycle.
package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/release-layer/internal/messages"
)

// FileName is the registry file name, resolved relative to the module root.
const FileName = "versions.txt"

// snapshotQualifier marks an intermediate build in a version's prerelease slot.
const snapshotQualifier = "SNAPSHOT"

// Parse reads manifest content into a VersionsMap, preserving entry order.
// Blank lines and '#' comments are ignored. An entry with an empty version
// ("key:") registers the key with no resolvable version; the bump engine
// skips such keys with a warning instead of failing the cycle.
func Parse(content string) (*VersionsMap, error) {
	m := NewVersionsMap()
	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, value, ok := strings.Cut(trimmed, ":")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if !ok || key == "" {
			return nil, fmt.Errorf(messages.ManifestInvalidLineFmt, i+1, line)
		}
		if m.Has(key) {
			return nil, fmt.Errorf(messages.ManifestDuplicateKeyFmt, i+1, key)
		}
		if value == "" {
			m.Set(key, nil)
			continue
		}
		version, err := semver.NewVersion(value)
		if err != nil {
			return nil, fmt.Errorf(messages.ManifestInvalidVersionFmt, i+1, value, key, err)
		}
		m.Set(key, version)
	}
	return m, nil
}

// Render serializes m into manifest format, one entry per line in map order.
func Render(m *VersionsMap) string {
	var b strings.Builder
	for _, key := range m.Keys() {
		version, _ := m.Get(key)
		if version == nil {
			fmt.Fprintf(&b, "%s:\n", key)
			continue
		}
		fmt.Fprintf(&b, "%s:%s\n", key, version.String())
	}
	return b.String()
}

// NeedsSnapshot is the registry's snapshot predicate: it reports whether any
// tracked version currently carries a pre-release qualifier, meaning the
// upcoming release must be produced as an intermediate snapshot build.
func NeedsSnapshot(content string) (bool, error) {
	m, err := Parse(content)
	if err != nil {
		return false, err
	}
	for _, key := range m.Keys() {
		version, _ := m.Get(key)
		if version != nil && version.Prerelease() != "" {
			return true, nil
		}
	}
	return false, nil
}

// IsSnapshotVersion reports whether v carries the snapshot qualifier.
func IsSnapshotVersion(v *semver.Version) bool {
	return v != nil && v.Prerelease() == snapshotQualifier
}
