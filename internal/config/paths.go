package config

import "path/filepath"

// Dir is the per-repository directory holding release-layer state.
const Dir = ".release-layer"

// Paths holds resolved paths for config files and directories.
type Paths struct {
	Root       string
	ConfigPath string
}

// DefaultPaths returns the default config paths for a repo root.
func DefaultPaths(root string) Paths {
	return Paths{
		Root:       root,
		ConfigPath: filepath.Join(root, Dir, "config.toml"),
	}
}
