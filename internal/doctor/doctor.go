// Package doctor runs health checks over a repository's release setup:
// the .release-layer directory, the config, the versions manifest, and
// the changelog.
package doctor

// Status classifies a check outcome.
type Status int

const (
	// StatusOK means the check passed.
	StatusOK Status = iota
	// StatusWarn means the check found something worth attention but not
	// blocking.
	StatusWarn
	// StatusFail means the check found a blocking problem.
	StatusFail
)

// Result is the outcome of a single health check.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}
