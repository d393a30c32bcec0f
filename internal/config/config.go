// Package config loads and validates the per-repository release
// configuration from .release-layer/config.toml.
package config

import (
	"fmt"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/conn-castle/release-layer/internal/messages"
	"github.com/conn-castle/release-layer/internal/release"
	"github.com/conn-castle/release-layer/internal/versioning"
)

// Config is the full release-layer configuration.
type Config struct {
	Release    ReleaseConfig    `toml:"release"`
	Versioning VersioningConfig `toml:"versioning"`
	Logging    LoggingConfig    `toml:"logging"`
}

// ReleaseConfig selects the strategy and its target layout.
type ReleaseConfig struct {
	Strategy      string `toml:"strategy"`
	Branch        string `toml:"branch"`
	ModuleRoot    string `toml:"module-root"`
	ChangelogPath string `toml:"changelog-path"`
	SkipChangelog bool   `toml:"skip-changelog"`
	SkipSnapshot  bool   `toml:"skip-snapshot"`
	// ExtraFiles accepts either plain path strings or tables with
	// path and structured keys. Normalized by ExtraFiles().
	ExtraFiles []any `toml:"extra-files"`
}

// VersioningConfig tunes the bump rules for regular releases.
type VersioningConfig struct {
	Strategy                  string `toml:"strategy"`
	BumpMinorPreMajor         bool   `toml:"bump-minor-pre-major"`
	BumpPatchForMinorPreMajor bool   `toml:"bump-patch-for-minor-pre-major"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// Versioning strategy names accepted in versioning.strategy.
const (
	VersioningConventional = "conventional"
	VersioningSnapshot     = "snapshot"
)

var validLoggingLevels = map[string]struct{}{
	"":      {},
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// applyDefaults fills the fields the repository may omit.
func (c *Config) applyDefaults() {
	if c.Release.Strategy == "" {
		c.Release.Strategy = "manifest"
	}
	if c.Release.Branch == "" {
		c.Release.Branch = "main"
	}
	if c.Release.ModuleRoot == "" {
		c.Release.ModuleRoot = "."
	}
	if c.Release.ChangelogPath == "" {
		c.Release.ChangelogPath = "CHANGELOG.md"
	}
	if c.Versioning.Strategy == "" {
		c.Versioning.Strategy = VersioningConventional
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate ensures the config is complete and consistent. path identifies
// the config source in error messages.
func (c *Config) Validate(path string) error {
	if !release.Known(c.Release.Strategy) {
		return fmt.Errorf(messages.ConfigReleaseStrategyUnknownFmt, path, c.Release.Strategy)
	}
	if c.Release.Branch == "" {
		return fmt.Errorf(messages.ConfigReleaseBranchRequiredFmt, path)
	}
	if c.Release.ChangelogPath == "" && !c.Release.SkipChangelog {
		return fmt.Errorf(messages.ConfigChangelogPathRequiredFmt, path)
	}
	switch c.Versioning.Strategy {
	case VersioningConventional, VersioningSnapshot:
	default:
		return fmt.Errorf(messages.ConfigVersioningStrategyInvalidFmt, path)
	}
	if _, ok := validLoggingLevels[c.Logging.Level]; !ok {
		return fmt.Errorf(messages.ConfigLoggingLevelInvalidFmt, path)
	}
	if _, err := c.extraFiles(path); err != nil {
		return err
	}
	return nil
}

// ExtraFiles normalizes the raw extra-files entries. Entries are either a
// bare path string or a table carrying path and structured keys.
func (c *Config) ExtraFiles() ([]release.ExtraFile, error) {
	return c.extraFiles(messages.ConfigSourceInline)
}

func (c *Config) extraFiles(source string) ([]release.ExtraFile, error) {
	if len(c.Release.ExtraFiles) == 0 {
		return nil, nil
	}
	files := make([]release.ExtraFile, 0, len(c.Release.ExtraFiles))
	for i, raw := range c.Release.ExtraFiles {
		switch value := raw.(type) {
		case string:
			if value == "" {
				return nil, fmt.Errorf(messages.ConfigExtraFilePathRequiredFmt, source, i)
			}
			files = append(files, release.ExtraFile{Path: value})
		case map[string]any:
			path, _ := value["path"].(string)
			if path == "" {
				return nil, fmt.Errorf(messages.ConfigExtraFilePathRequiredFmt, source, i)
			}
			structured, _ := value["structured"].(bool)
			files = append(files, release.ExtraFile{Path: path, Structured: structured})
		default:
			return nil, fmt.Errorf(messages.ConfigExtraFileInvalidFmt, source, i)
		}
	}
	return files, nil
}

// StrategyOptions converts the validated config into strategy options,
// expanding a leading ~ in module-root.
func (c *Config) StrategyOptions() (release.Options, error) {
	moduleRoot, err := homedir.Expand(c.Release.ModuleRoot)
	if err != nil {
		return release.Options{}, fmt.Errorf(messages.ConfigExpandPathFmt, c.Release.ModuleRoot, err)
	}
	extra, err := c.ExtraFiles()
	if err != nil {
		return release.Options{}, err
	}
	opts := release.Options{
		Branch:        c.Release.Branch,
		ModuleRoot:    moduleRoot,
		ChangelogPath: c.Release.ChangelogPath,
		SkipChangelog: c.Release.SkipChangelog,
		SkipSnapshot:  c.Release.SkipSnapshot,
		ExtraFiles:    extra,
	}
	switch c.Versioning.Strategy {
	case VersioningSnapshot:
		opts.Versioning = versioning.Snapshot{}
	default:
		opts.Versioning = versioning.Conventional{
			BumpMinorPreMajor:         c.Versioning.BumpMinorPreMajor,
			BumpPatchForMinorPreMajor: c.Versioning.BumpPatchForMinorPreMajor,
		}
	}
	return opts, nil
}
