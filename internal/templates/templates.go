// Package templates embeds the files seeded into a repository by rl init.
package templates

import (
	"embed"
	"path"
)

//go:embed files
var files embed.FS

// Read returns the embedded template with the given name.
func Read(name string) ([]byte, error) {
	return files.ReadFile(path.Join("files", name))
}
