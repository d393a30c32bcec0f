package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conn-castle/release-layer/internal/release"
	"github.com/conn-castle/release-layer/internal/versioning"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(""), "test")
	require.NoError(t, err)
	require.Equal(t, "manifest", cfg.Release.Strategy)
	require.Equal(t, "main", cfg.Release.Branch)
	require.Equal(t, ".", cfg.Release.ModuleRoot)
	require.Equal(t, "CHANGELOG.md", cfg.Release.ChangelogPath)
	require.False(t, cfg.Release.SkipChangelog)
	require.False(t, cfg.Release.SkipSnapshot)
	require.Equal(t, VersioningConventional, cfg.Versioning.Strategy)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestParseConfigFull(t *testing.T) {
	data := []byte(`
[release]
strategy = "manifest"
branch = "release"
module-root = "services/core"
changelog-path = "docs/CHANGELOG.md"
skip-snapshot = true
extra-files = ["VERSION", { path = "chart.yaml", structured = true }]

[versioning]
strategy = "conventional"
bump-minor-pre-major = true

[logging]
level = "debug"
`)
	cfg, err := ParseConfig(data, "test")
	require.NoError(t, err)
	require.Equal(t, "release", cfg.Release.Branch)
	require.True(t, cfg.Release.SkipSnapshot)

	extra, err := cfg.ExtraFiles()
	require.NoError(t, err)
	require.Equal(t, []release.ExtraFile{
		{Path: "VERSION"},
		{Path: "chart.yaml", Structured: true},
	}, extra)
}

func TestParseConfigRejectsUnknownKeys(t *testing.T) {
	data := []byte(`
[release]
skip-snapshots = true
`)
	_, err := ParseConfig(data, "test")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrConfigValidation)
	require.Contains(t, err.Error(), "unrecognized keys")
}

func TestParseConfigRejectsUnknownStrategy(t *testing.T) {
	data := []byte(`
[release]
strategy = "cargo"
`)
	_, err := ParseConfig(data, "test")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrConfigValidation)
	require.Contains(t, err.Error(), `"cargo"`)
}

func TestParseConfigRejectsBadVersioningStrategy(t *testing.T) {
	data := []byte(`
[versioning]
strategy = "date"
`)
	_, err := ParseConfig(data, "test")
	require.ErrorIs(t, err, ErrConfigValidation)
}

func TestParseConfigRejectsBadLoggingLevel(t *testing.T) {
	data := []byte(`
[logging]
level = "verbose"
`)
	_, err := ParseConfig(data, "test")
	require.ErrorIs(t, err, ErrConfigValidation)
}

func TestParseConfigRejectsBadExtraFiles(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"number entry", `[release]` + "\n" + `extra-files = [7]`},
		{"table without path", `[release]` + "\n" + `extra-files = [{ structured = true }]`},
		{"empty path", `[release]` + "\n" + `extra-files = [""]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tc.data), "test")
			require.ErrorIs(t, err, ErrConfigValidation)
		})
	}
}

func TestParseConfigRejectsSyntaxError(t *testing.T) {
	_, err := ParseConfig([]byte("[release\n"), "test")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrConfigValidation)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing config file")
}

func TestLoadConfigReadsFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[release]\nbranch = \"trunk\"\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "trunk", cfg.Release.Branch)
}

func TestStrategyOptions(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
[release]
branch = "release"
extra-files = ["VERSION"]

[versioning]
bump-minor-pre-major = true
`), "test")
	require.NoError(t, err)

	opts, err := cfg.StrategyOptions()
	require.NoError(t, err)
	require.Equal(t, "release", opts.Branch)
	require.Equal(t, ".", opts.ModuleRoot)
	require.Equal(t, []release.ExtraFile{{Path: "VERSION"}}, opts.ExtraFiles)
	conv, ok := opts.Versioning.(versioning.Conventional)
	require.True(t, ok)
	require.True(t, conv.BumpMinorPreMajor)
}

func TestStrategyOptionsSnapshotVersioning(t *testing.T) {
	cfg, err := ParseConfig([]byte("[versioning]\nstrategy = \"snapshot\"\n"), "test")
	require.NoError(t, err)

	opts, err := cfg.StrategyOptions()
	require.NoError(t, err)
	_, ok := opts.Versioning.(versioning.Snapshot)
	require.True(t, ok)
}

func TestLoadTemplateConfig(t *testing.T) {
	cfg, err := LoadTemplateConfig()
	require.NoError(t, err)
	require.Equal(t, "manifest", cfg.Release.Strategy)
	require.Equal(t, "main", cfg.Release.Branch)
	require.Equal(t, VersioningConventional, cfg.Versioning.Strategy)
}

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths("/repo")
	require.Equal(t, "/repo", paths.Root)
	require.Equal(t, filepath.Join("/repo", ".release-layer", "config.toml"), paths.ConfigPath)
}
