package versioning

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/release-layer/internal/commits"
)

// snapshotQualifier is the prerelease qualifier of an intermediate build.
const snapshotQualifier = "SNAPSHOT"

// Snapshot advances every version to the next patch snapshot, ignoring commit
// semantics entirely: X.Y.Z and X.Y.Z-anything both become X.Y.(Z+1)-SNAPSHOT.
// It is selected for a cycle when the registry's snapshot predicate fires.
type Snapshot struct{}

// Name implements Strategy.
func (Snapshot) Name() string { return "snapshot" }

// Bump implements Strategy.
func (Snapshot) Bump(current *semver.Version, _ []commits.Commit) (*semver.Version, error) {
	base := *current
	if base.Prerelease() != "" {
		stripped, err := base.SetPrerelease("")
		if err != nil {
			return nil, fmt.Errorf("strip prerelease from %s: %w", current, err)
		}
		base = stripped
	}
	bumped := base.IncPatch()
	next, err := bumped.SetPrerelease(snapshotQualifier)
	if err != nil {
		return nil, fmt.Errorf("set snapshot qualifier on %s: %w", bumped.String(), err)
	}
	return &next, nil
}
