package updaters

import (
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// gradleVersionPattern matches Gradle version assignments like
// version = '1.2.3' or version = "1.2.3".
var gradleVersionPattern = regexp.MustCompile(`(?m)(^\s*version\s*=\s*['"])` + semverPattern + `(['"])`)

// BuildGradle rewrites version assignments in a Gradle build script.
type BuildGradle struct {
	version *semver.Version
}

// NewBuildGradle returns a build.gradle updater writing version.
func NewBuildGradle(version *semver.Version) *BuildGradle {
	return &BuildGradle{version: version}
}

// Name implements Updater.
func (u *BuildGradle) Name() string { return "build.gradle" }

// Update implements Updater.
func (u *BuildGradle) Update(content string) (string, error) {
	return gradleVersionPattern.ReplaceAllString(content, "${1}"+u.version.String()+"${2}"), nil
}
