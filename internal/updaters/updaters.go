// Package updaters holds the text-patching strategies referenced by update
// descriptors. Each updater rewrites the version strings of one file kind and
// nothing else; the release core hands them out opaquely and the apply side
// invokes them.
package updaters

// Updater rewrites the version content of a single file. Implementations are
// pure: they receive the current content (empty for a file being created) and
// return the full new content.
type Updater interface {
	// Name identifies the updater kind in plans and error messages.
	Name() string
	// Update returns the rewritten file content.
	Update(content string) (string, error)
}

// semverPattern matches a semantic version with an optional leading v and an
// optional prerelease qualifier.
const semverPattern = `v?\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?`
