package updaters

import (
	"fmt"
	"strings"

	"github.com/conn-castle/release-layer/internal/messages"
)

// changelogHeader is written once at the top of a freshly created changelog.
const changelogHeader = "# Changelog"

// Changelog prepends a rendered release entry to the changelog, creating the
// file with a standard header when it does not exist yet.
type Changelog struct {
	entry string
}

// NewChangelog returns a changelog updater prepending entry.
func NewChangelog(entry string) *Changelog {
	return &Changelog{entry: entry}
}

// Name implements Updater.
func (u *Changelog) Name() string { return "changelog" }

// Update implements Updater.
func (u *Changelog) Update(content string) (string, error) {
	entry := strings.TrimSpace(u.entry)
	if entry == "" {
		return "", fmt.Errorf(messages.ChangelogEntryVersionRequired)
	}

	existing := strings.TrimSpace(content)
	if existing == "" {
		return changelogHeader + "\n\n" + entry + "\n", nil
	}

	// Keep an existing top-level header above the new entry.
	if strings.HasPrefix(existing, "# ") {
		header, rest, _ := strings.Cut(existing, "\n")
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return header + "\n\n" + entry + "\n", nil
		}
		return header + "\n\n" + entry + "\n\n" + rest + "\n", nil
	}
	return entry + "\n\n" + existing + "\n", nil
}
