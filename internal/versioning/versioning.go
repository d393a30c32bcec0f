// Package versioning provides the pluggable strategies that turn a current
// version plus a commit set into the next version. The release engine treats
// a Strategy as an opaque function; swapping strategies must never change
// engine behavior beyond the versions it produces.
package versioning

import (
	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/release-layer/internal/commits"
)

// Strategy computes the next version from the current one and the commits
// since the last release. Implementations must not mutate current.
type Strategy interface {
	// Bump returns the next version. An empty commit set leaves the version
	// unchanged.
	Bump(current *semver.Version, cs []commits.Commit) (*semver.Version, error)
	// Name identifies the strategy in configuration and logs.
	Name() string
}

// breaking reports whether c signals a breaking change, either through the
// structured flag or a BREAKING CHANGE note.
func breaking(c commits.Commit) bool {
	if c.Breaking {
		return true
	}
	for _, note := range c.Notes {
		if note.Title == "BREAKING CHANGE" || note.Title == "BREAKING CHANGES" {
			return true
		}
	}
	return false
}
