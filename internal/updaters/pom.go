package updaters

import (
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// pomVersionPattern matches Maven <version> tags holding a semantic version.
var pomVersionPattern = regexp.MustCompile(`(<version>)` + semverPattern + `(</version>)`)

// PomXML rewrites every <version> tag of a Maven descriptor to the released
// version of its artifact line.
type PomXML struct {
	version *semver.Version
}

// NewPomXML returns a pom.xml updater writing version.
func NewPomXML(version *semver.Version) *PomXML {
	return &PomXML{version: version}
}

// Name implements Updater.
func (u *PomXML) Name() string { return "pom.xml" }

// Update implements Updater.
func (u *PomXML) Update(content string) (string, error) {
	return pomVersionPattern.ReplaceAllString(content, "${1}"+u.version.String()+"${2}"), nil
}
