// Package cli provides the agentcheck commands.
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mcpchecker/agentcheck/pkg/report"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	var minPassRate float64

	cmd := &cobra.Command{
		Use:   "verify <report-file>",
		Short: "Verify a saved JSON report meets a pass rate",
		Long: `Verify that the share of agent documents with no missing sections in a
report written by "agentcheck check -o json" meets a minimum.

Exits with code 0 if the threshold is met, code 1 otherwise.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := report.Load(args[0])
			if err != nil {
				return fmt.Errorf("failed to load report file: %w", err)
			}

			stats := report.CalculateStats(result)
			// An empty report has nothing to fail.
			passed := stats.DocumentsTotal == 0 || stats.PassRate >= minPassRate

			outputVerifyResults(cmd, stats, minPassRate, passed)

			if !passed {
				return ErrViolations
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&minPassRate, "min-pass-rate", 1.0, "Minimum document pass rate (0.0-1.0)")

	return cmd
}

func outputVerifyResults(cmd *cobra.Command, stats report.Stats, threshold float64, passed bool) {
	out := cmd.OutOrStdout()
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	bold := color.New(color.Bold)

	_, _ = bold.Fprintln(out, "=== Agent Document Verification ===")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Documents:   %d checked, %d passed\n", stats.DocumentsTotal, stats.DocumentsPassed)
	fmt.Fprintf(out, "Diagnostics: %d\n", stats.DiagnosticsTotal)

	switch {
	case stats.DocumentsTotal == 0:
		fmt.Fprintln(out, "Pass Rate:   N/A (no agent documents)")
	case passed:
		_, _ = green.Fprintf(out, "Pass Rate:   %.2f%% >= %.2f%% ✓\n", stats.PassRate*100, threshold*100)
	default:
		_, _ = red.Fprintf(out, "Pass Rate:   %.2f%% < %.2f%% ✗\n", stats.PassRate*100, threshold*100)
	}

	fmt.Fprintln(out)
	if passed {
		_, _ = green.Fprintln(out, "Result: PASSED")
	} else {
		_, _ = red.Fprintln(out, "Result: FAILED")
	}
}
