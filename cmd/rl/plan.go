package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/release-layer/internal/apply"
	"github.com/conn-castle/release-layer/internal/messages"
	"github.com/conn-castle/release-layer/internal/release"
)

func newPlanCmd() *cobra.Command {
	var commitsPath string
	var rootFlag string
	var showDiff bool
	var diffLines int

	cmd := &cobra.Command{
		Use:   messages.PlanUse,
		Short: messages.PlanShort,
		Long:  messages.PlanLong,
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
			out := cmd.OutOrStdout()
			renderPlan(out, plan)
			if showDiff {
				return renderPlanDiffs(out, repoRoot, plan, diffLines)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&commitsPath, "commits", "", messages.PlanFlagCommits)
	cmd.Flags().StringVar(&rootFlag, "root", "", messages.PlanFlagRoot)
	cmd.Flags().BoolVar(&showDiff, "diff", false, messages.PlanFlagDiff)
	cmd.Flags().IntVar(&diffLines, "diff-lines", apply.DefaultDiffMaxLines, messages.PlanFlagDiffLines)
	return cmd
}

func renderPlan(out io.Writer, plan *release.Plan) {
	suffix := ""
	if plan.Snapshot {
		suffix = messages.PlanSnapshotSuffix
	}
	_, _ = fmt.Fprintf(out, messages.PlanHeaderFmt, color.GreenString(plan.Version.String()), suffix)

	for _, key := range plan.Versions.Keys() {
		next, _ := plan.Versions.Get(key)
		if next == nil {
			_, _ = fmt.Fprintf(out, messages.PlanArtifactHeldFmt, key)
			continue
		}
		previous := "none"
		if prev := plan.Previous[key]; prev != nil {
			previous = prev.String()
		}
		_, _ = fmt.Fprintf(out, messages.PlanArtifactFmt, key, previous, next.String())
	}

	_, _ = fmt.Fprintln(out, messages.PlanUpdatesHeader)
	for _, update := range plan.Updates {
		if update.CreateIfMissing {
			_, _ = fmt.Fprintf(out, messages.PlanUpdateCreateFmt, update.Path, update.Updater.Name())
			continue
		}
		_, _ = fmt.Fprintf(out, messages.PlanUpdateFmt, update.Path, update.Updater.Name())
	}
}

// renderPlanDiffs dry-runs the plan to show what each edit would change.
func renderPlanDiffs(out io.Writer, repoRoot string, plan *release.Plan, diffLines int) error {
	results, err := apply.Run(apply.RealSystem{}, repoRoot, plan.Updates, apply.Options{
		DryRun:       true,
		DiffMaxLines: diffLines,
	})
	if err != nil {
		return err
	}
	for _, result := range results {
		if result.Diff == "" {
			continue
		}
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprint(out, result.Diff)
	}
	return nil
}
