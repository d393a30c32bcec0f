package manifest

import "github.com/Masterminds/semver/v3"

// VersionsMap is an ordered mapping from artifact key to version. Keys are
// unique and iteration follows insertion order. A nil version marks a key
// whose current version could not be resolved.
//
// A single bump operation never adds or removes keys, only replaces values.
// The map is built once per release cycle and is not safe for concurrent use.
type VersionsMap struct {
	keys   []string
	values map[string]*semver.Version
}

// NewVersionsMap returns an empty VersionsMap.
func NewVersionsMap() *VersionsMap {
	return &VersionsMap{values: make(map[string]*semver.Version)}
}

// Set stores version under key, appending the key on first insertion.
func (m *VersionsMap) Set(key string, version *semver.Version) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = version
}

// Get returns the version for key and whether the key is present. The version
// may be nil for a present key with no resolvable version.
func (m *VersionsMap) Get(key string) (*semver.Version, bool) {
	version, ok := m.values[key]
	return version, ok
}

// Has reports whether key is present.
func (m *VersionsMap) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *VersionsMap) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of keys.
func (m *VersionsMap) Len() int {
	return len(m.keys)
}
