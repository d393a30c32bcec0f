package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/release-layer/internal/apply"
	"github.com/conn-castle/release-layer/internal/messages"
)

func newApplyCmd() *cobra.Command {
	var commitsPath string
	var rootFlag string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   messages.ApplyUse,
		Short: messages.ApplyShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := resolveRepoRoot(rootFlag)
			if err != nil {
				return err
			}
			plan, logger, err := computePlan(cmd.Context(), repoRoot, commitsPath)
			if logger != nil {
				defer func() { _ = logger.Sync() }()
			}
			if err != nil {
				return err
			}
			results, err := apply.Run(apply.RealSystem{}, repoRoot, plan.Updates, apply.Options{DryRun: dryRun})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, result := range results {
				switch {
				case result.Created:
					_, _ = fmt.Fprintf(out, messages.ApplyCreatedFmt, result.Path)
				case result.Changed:
					_, _ = fmt.Fprintf(out, messages.ApplyWroteFmt, result.Path)
				default:
					_, _ = fmt.Fprintf(out, messages.ApplySkippedFmt, result.Path)
				}
			}
			if dryRun {
				_, _ = fmt.Fprintln(out, messages.ApplyDryRunNote)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&commitsPath, "commits", "", messages.PlanFlagCommits)
	cmd.Flags().StringVar(&rootFlag, "root", "", messages.PlanFlagRoot)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.ApplyFlagDryRun)
	return cmd
}
