package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"pkt.systems/pslog"
)

func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bella",
		Short:         "Bella control client: health, commands, logs and files of the local Bella backend",
		Long:          "bella talks to the local Bella admin backend: it watches system health, runs and streams shell commands, controls services, tails logs, and browses, reads and writes files on the backend host.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		applyLogLevel(cmd, app.settings.LogLevel)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newHealthCmd(app),
		newChatCmd(app),
		newLogsCmd(app),
		newRunCmd(app),
		newServiceCmd(app),
		newFilesCmd(app),
		newCatalogCmd(app),
		newConsoleCmd(app),
	)

	return rootCmd
}

// applyLogLevel swaps the context logger for one at the configured level. An
// empty or unknown level keeps the logger main built from the environment.
func applyLogLevel(cmd *cobra.Command, level string) {
	opts, ok := loggerOptions(level)
	if !ok {
		return
	}

	logger := pslog.NewWithOptions(os.Stderr, opts)
	cmd.SetContext(pslog.ContextWithLogger(cmd.Context(), logger))
}

func loggerOptions(level string) (pslog.Options, bool) {
	opts := pslog.Options{Mode: pslog.ModeConsole}
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		opts.MinLevel = pslog.TraceLevel
	case "debug":
		opts.MinLevel = pslog.DebugLevel
	case "info":
		opts.MinLevel = pslog.InfoLevel
	case "warn", "warning":
		opts.MinLevel = pslog.WarnLevel
	case "error":
		opts.MinLevel = pslog.ErrorLevel
	default:
		return opts, false
	}
	return opts, true
}
