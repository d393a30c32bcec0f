package updaters

import (
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// genericVersionPatterns are the version declarations recognized in extra
// files: JSON and TOML version fields, VERSION-style assignments, and
// @version doc tags. Each pattern captures a prefix and suffix around the
// version so the replacement preserves the surrounding text exactly.
var genericVersionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`("version"\s*:\s*")` + semverPattern + `(")`),
	regexp.MustCompile(`(?m)(^\s*version\s*=\s*")` + semverPattern + `(")`),
	regexp.MustCompile(`(?mi)(^\s*VERSION\s*[:=]\s*["']?)` + semverPattern + `(["']?\s*$)`),
	regexp.MustCompile(`(@version\s+)` + semverPattern + `()`),
}

// Generic rewrites well-known version declarations in an arbitrary text file.
// It backs the statically configured extra-file paths, where the file format
// is not known ahead of time.
type Generic struct {
	version *semver.Version
}

// NewGeneric returns a generic version updater writing version.
func NewGeneric(version *semver.Version) *Generic {
	return &Generic{version: version}
}

// Name implements Updater.
func (u *Generic) Name() string { return "generic" }

// Update implements Updater.
func (u *Generic) Update(content string) (string, error) {
	out := content
	for _, pattern := range genericVersionPatterns {
		out = pattern.ReplaceAllString(out, "${1}"+u.version.String()+"${2}")
	}
	return out, nil
}
