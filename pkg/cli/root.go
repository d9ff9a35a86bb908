package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrViolations is returned in strict mode when any document is missing a
// required section. The diagnostics have already been printed.
var ErrViolations = errors.New("agent documents are missing required sections")

// NewRootCmd creates the root agentcheck command. Run without arguments it
// checks the agent documents in the current directory.
func NewRootCmd() *cobra.Command {
	opts := &checkOptions{}

	rootCmd := &cobra.Command{
		Use:   "agentcheck",
		Short: "Validate agent definition documents",
		Long: `agentcheck checks every upper-case markdown file in a directory
(README.md, CONTRIBUTING.md and LICENSE.md excepted) for the sections an
agent definition must contain, printing one line per missing section.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}
	opts.addFlags(rootCmd)

	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewRulesCmd())
	rootCmd.AddCommand(NewVerifyCmd())
	rootCmd.AddCommand(NewWatchCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
