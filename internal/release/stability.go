package release

import "regexp"

// preStableArtifactPattern matches artifact keys of the form
// <base>-v<digits><qualifier> where the qualifier is non-empty, starts with a
// non-digit, and contains no hyphen. Such keys name a pre-stable line of an
// artifact (for example core-v2beta).
//
// A qualifier written with its own hyphen ("core-v2-rc1") falls outside the
// pattern and is therefore classified stable. That reading is deliberate:
// existing registries rely on it, so it is preserved rather than corrected.
var preStableArtifactPattern = regexp.MustCompile(`-v\d+([^-\d][^-]*)?$`)

// IsStableArtifact reports whether key names a stable artifact line. Plain
// keys ("core") and plain major-version lines ("core-v2") are stable; only a
// non-empty version qualifier ("core-v2beta") marks a line pre-stable.
func IsStableArtifact(key string) bool {
	match := preStableArtifactPattern.FindStringSubmatch(key)
	if match == nil {
		return true
	}
	return match[1] == ""
}
