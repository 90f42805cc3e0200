package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bnema/bella-cli/internal/adapters/render/console"
	"github.com/bnema/bella-cli/internal/adapters/render/text"
	tomlrepo "github.com/bnema/bella-cli/internal/adapters/repo/toml"
	"github.com/bnema/bella-cli/internal/application"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"
)

const (
	consoleLogFile    = "console.log"
	consoleLogMode    = 0o600
	consoleLogDirMode = 0o700
)

func newConsoleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Open the interactive console",
		Long:  "Open the interactive console. The screen belongs to the console while it runs, so logs go to ~/.bella/console.log.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := consoleLogPath()
			if err != nil {
				return err
			}
			logger, closeLog, err := openConsoleLog(path, app.settings.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog.Close() }()

			ctx := pslog.ContextWithLogger(cmd.Context(), logger)

			catalog, err := app.service.Catalog(ctx)
			if err != nil {
				return err
			}

			return console.Run(ctx, console.Options{
				Service:        app.service,
				Stream:         application.NewStreamSession(app.client),
				Tail:           application.NewPollSession("tail"),
				Catalog:        catalog,
				DefaultCommand: app.settings.DefaultCommand,
				HealthInterval: app.settings.HealthInterval,
				TailInterval:   app.settings.TailInterval,
				MarkdownStyle:  text.StyleAuto,
			}, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func consoleLogPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, tomlrepo.ConfigDir, consoleLogFile), nil
}

// openConsoleLog returns a structured logger appending to path. Without a
// configured level it keeps info and above.
func openConsoleLog(path, level string) (pslog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), consoleLogDirMode); err != nil {
		return nil, nil, fmt.Errorf("create console log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, consoleLogMode)
	if err != nil {
		return nil, nil, fmt.Errorf("open console log: %w", err)
	}

	opts, ok := loggerOptions(level)
	if !ok {
		opts.MinLevel = pslog.InfoLevel
	}
	opts.Mode = pslog.ModeStructured
	opts.NoColor = true

	return pslog.NewWithOptions(f, opts), f, nil
}
