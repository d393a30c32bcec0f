// Package changelog renders release entries from structured commits. The
// release core only threads the rendered text through to the changelog edit;
// the format lives here.
package changelog

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/release-layer/internal/commits"
)

// shortSHALen is the abbreviated commit hash length used in entries.
const shortSHALen = 7

// Render builds the markdown entry for one release: a version heading
// followed by one bullet per commit. Synthetic commits are omitted; a release
// cycle with nothing else to say still gets its heading.
func Render(version *semver.Version, cs []commits.Commit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s", version)

	for _, c := range cs {
		if commits.IsSynthetic(c) {
			continue
		}
		b.WriteString("\n- ")
		if c.Scope != "" {
			fmt.Fprintf(&b, "**%s:** ", c.Scope)
		}
		b.WriteString(firstLine(c.Message))
		if c.Breaking {
			b.WriteString(" (BREAKING)")
		}
		if sha := shortSHA(c.SHA); sha != "" {
			fmt.Fprintf(&b, " (%s)", sha)
		}
	}
	return b.String()
}

func firstLine(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return strings.TrimSpace(line)
}

func shortSHA(sha string) string {
	if len(sha) > shortSHALen {
		return sha[:shortSHALen]
	}
	return sha
}
