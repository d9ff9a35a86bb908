package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcpchecker/agentcheck/pkg/report"
	"github.com/mcpchecker/agentcheck/pkg/watch"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	opts := &checkOptions{}
	var verbose bool

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-check agent documents whenever they change",
		Long: `Check the agent documents once, then again each time one is created,
modified, renamed or removed. Stops on interrupt.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}

			format, err := report.ParseFormat(cfg.Config.Output)
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return watchDir(ctx, cmd, cfg.Config.Dir, format, cfg.Config.Watch.DebounceDelay(), logger)
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every file change")

	return cmd
}

func watchDir(ctx context.Context, cmd *cobra.Command, dir string, format report.Format, debounce time.Duration, logger *slog.Logger) error {
	if _, err := checkDir(cmd, dir, format); err != nil {
		return err
	}

	w, err := watch.New(dir, debounce, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	// A failed re-check is logged; the next change triggers another attempt.
	return w.Run(ctx, func() {
		if _, err := checkDir(cmd, dir, format); err != nil {
			logger.Error("Agent check failed", "error", err)
		}
	})
}
