package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/conn-castle/release-layer/internal/config"
	"github.com/conn-castle/release-layer/internal/manifest"
	"github.com/conn-castle/release-layer/internal/messages"
	"github.com/conn-castle/release-layer/internal/release"
	"github.com/conn-castle/release-layer/internal/templates"
)

func newInitCmd() *cobra.Command {
	var artifacts []string

	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := resolveInitRoot()
			if err != nil {
				return err
			}
			return runInit(cmd, repoRoot, artifacts)
		},
	}
	cmd.Flags().StringArrayVar(&artifacts, "artifact", nil, messages.InitFlagArtifact)
	return cmd
}

func runInit(cmd *cobra.Command, repoRoot string, artifacts []string) error {
	paths := config.DefaultPaths(repoRoot)
	if _, err := os.Stat(paths.ConfigPath); err == nil {
		return fmt.Errorf(messages.InitAlreadyFmt, paths.ConfigPath)
	} else if !os.IsNotExist(err) {
		return err
	}

	data, err := templates.Read("config.toml")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(paths.ConfigPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(paths.ConfigPath, data, 0o644); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, messages.InitWroteFmt, paths.ConfigPath)

	manifestPath := filepath.Join(repoRoot, manifest.FileName)
	if _, err := os.Stat(manifestPath); err == nil {
		_, _ = fmt.Fprintf(out, messages.InitKeptFmt, manifestPath)
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	initial := semver.MustParse(release.InitialVersion)
	versions := manifest.NewVersionsMap()
	for _, artifact := range artifacts {
		versions.Set(artifact, initial)
	}
	if err := os.WriteFile(manifestPath, []byte(manifest.Render(versions)), 0o644); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, messages.InitWroteFmt, manifestPath)
	return nil
}
