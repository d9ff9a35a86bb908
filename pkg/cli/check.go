package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mcpchecker/agentcheck/pkg/agentdoc"
	"github.com/mcpchecker/agentcheck/pkg/config"
	"github.com/mcpchecker/agentcheck/pkg/report"
)

type checkOptions struct {
	dir        string
	output     string
	configFile string
	strict     bool
	noColor    bool
}

func (o *checkOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.dir, "dir", "C", ".", "Directory containing the agent documents")
	cmd.Flags().StringVarP(&o.output, "output", "o", "text", "Output format (text, json, yaml)")
	cmd.Flags().StringVar(&o.configFile, "config", "", "Path to a CheckConfig YAML file")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "Exit with status 1 when any document is missing a section")
	cmd.Flags().BoolVar(&o.noColor, "no-color", false, "Disable colored output")
}

// resolve merges the config file, if any, with explicitly set flags and the
// optional directory argument. Flags win over the file.
func (o *checkOptions) resolve(cmd *cobra.Command, args []string) (*config.CheckConfig, error) {
	cfg := config.Default()
	if o.configFile != "" {
		loaded, err := config.FromFile(o.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("dir") || o.configFile == "" {
		cfg.Config.Dir = o.dir
	}
	if flags.Changed("output") || o.configFile == "" {
		cfg.Config.Output = o.output
	}
	if flags.Changed("strict") {
		cfg.Config.Strict = o.strict
	}
	if len(args) > 0 {
		cfg.Config.Dir = args[0]
	}

	if o.noColor {
		color.NoColor = true
	}

	return cfg, nil
}

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Check agent documents for required sections",
		Long: `Check every agent document in a directory (default: the current
directory) and print "Missing <section> in <file>" for each missing section.

Examples:
  agentcheck check
  agentcheck check ./agents --strict
  agentcheck check -o json > agents-report.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}
	opts.addFlags(cmd)

	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions, args []string) error {
	cfg, err := opts.resolve(cmd, args)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Config.Output)
	if err != nil {
		return err
	}

	passed, err := checkDir(cmd, cfg.Config.Dir, format)
	if err != nil {
		return err
	}

	if cfg.Config.Strict && !passed {
		return ErrViolations
	}
	return nil
}

// checkDir validates dir and writes the report to the command's output.
// Text diagnostics are printed as each document is checked.
func checkDir(cmd *cobra.Command, dir string, format report.Format) (bool, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return false, fmt.Errorf("failed to open agent directory: %w", err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("not a directory: %s", dir)
	}

	out := cmd.OutOrStdout()
	validator := agentdoc.NewValidator(os.DirFS(dir))

	if format != report.FormatText {
		result, err := validator.Run()
		if err != nil {
			return false, fmt.Errorf("agent check failed: %w", err)
		}
		if err := report.Write(out, result, format); err != nil {
			return false, err
		}
		return result.Passed(), nil
	}

	result, err := validator.RunWithProgress(func(event agentdoc.ProgressEvent) {
		if event.Type == agentdoc.EventDocumentChecked {
			report.WriteDocument(out, event.Document)
		}
	})
	if err != nil {
		return false, fmt.Errorf("agent check failed: %w", err)
	}
	if err := report.WriteCompletion(out); err != nil {
		return false, err
	}

	return result.Passed(), nil
}
