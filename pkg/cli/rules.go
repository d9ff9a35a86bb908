package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mcpchecker/agentcheck/pkg/agentdoc"
)

// NewRulesCmd creates the rules command, which lists what a document must
// contain.
func NewRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the required sections in check order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			bold := color.New(color.Bold)

			_, _ = bold.Fprintln(out, "Required sections:")
			for i, rule := range agentdoc.DefaultRules() {
				fmt.Fprintf(out, "  %d. %-16s %v\n", i+1, rule.Subject(), rule)
			}

			fmt.Fprintln(out)
			_, _ = bold.Fprintln(out, "Persona symbols:")
			fmt.Fprintf(out, "  %s\n", strings.Join(agentdoc.PersonaSymbols(), " "))

			fmt.Fprintln(out)
			_, _ = bold.Fprintln(out, "Never checked:")
			for _, name := range agentdoc.ExcludedNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}

			return nil
		},
	}
}
