package versioning

import (
	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/release-layer/internal/commits"
)

// Conventional bumps by commit semantics: any breaking change bumps major,
// otherwise a feature bumps minor, otherwise any commit at all bumps patch.
// The pre-major options soften bumps for 0.x lines, where every release is
// allowed to break.
type Conventional struct {
	// BumpMinorPreMajor downgrades breaking changes to a minor bump while the
	// current major version is 0.
	BumpMinorPreMajor bool
	// BumpPatchForMinorPreMajor downgrades features to a patch bump while the
	// current major version is 0.
	BumpPatchForMinorPreMajor bool
}

// Name implements Strategy.
func (s Conventional) Name() string { return "conventional" }

// Bump implements Strategy.
func (s Conventional) Bump(current *semver.Version, cs []commits.Commit) (*semver.Version, error) {
	if len(cs) == 0 {
		return current, nil
	}

	hasBreaking := false
	hasFeature := false
	for _, c := range cs {
		if breaking(c) {
			hasBreaking = true
		}
		if c.Type == "feat" {
			hasFeature = true
		}
	}

	preMajor := current.Major() == 0
	switch {
	case hasBreaking && (!preMajor || !s.BumpMinorPreMajor):
		next := current.IncMajor()
		return &next, nil
	case hasBreaking, hasFeature && (!preMajor || !s.BumpPatchForMinorPreMajor):
		next := current.IncMinor()
		return &next, nil
	default:
		next := current.IncPatch()
		return &next, nil
	}
}
