package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/release-layer/internal/doctor"
	"github.com/conn-castle/release-layer/internal/messages"
)

func newDoctorCmd() *cobra.Command {
	var rootFlag string

	cmd := &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			repoRoot, err := resolveRepoRoot(rootFlag)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, repoRoot)

			var allResults []doctor.Result
			allResults = append(allResults, doctor.CheckStructure(repoRoot)...)

			configResults, cfg := doctor.CheckConfig(repoRoot)
			allResults = append(allResults, configResults...)

			if cfg != nil {
				allResults = append(allResults, doctor.CheckManifest(repoRoot, cfg)...)
				allResults = append(allResults, doctor.CheckChangelog(repoRoot, cfg)...)
			}

			hasFail := false
			for _, result := range allResults {
				printResult(out, result)
				if result.Status == doctor.StatusFail {
					hasFail = true
				}
			}

			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return fmt.Errorf(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
	cmd.Flags().StringVar(&rootFlag, "root", "", messages.PlanFlagRoot)
	return cmd
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, r.Recommendation)
	}
}
