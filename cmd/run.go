package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/bella-cli/internal/application"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	var stream bool
	var showHistory bool
	var format outputFormat

	cmd := &cobra.Command{
		Use:   "run [command...]",
		Short: "Run a shell command on the backend host",
		Long:  "Run a shell command on the backend host. Without arguments the configured default command runs. With --stream the output is printed as it arrives until the backend ends the stream or the command is interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			command := strings.TrimSpace(strings.Join(args, " "))
			if command == "" {
				command = app.settings.DefaultCommand
			}

			if stream {
				return streamCommand(cmd, app, command)
			}

			var out json.RawMessage
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), application.RunningText, func(ctx context.Context) error {
				var runErr error
				out, runErr = app.service.Run(ctx, command)
				return runErr
			})
			if err != nil {
				return err
			}

			if err := writeResult(cmd.OutOrStdout(), out, format); err != nil {
				return err
			}
			if showHistory {
				return printHistory(cmd, app)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&stream, "stream", "s", false, "Stream the command output")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Print the refreshed command history afterwards")
	addOutputFlag(cmd.Flags(), &format)

	return cmd
}

// streamCommand runs one stream session until the backend ends it or the
// command context is cancelled.
func streamCommand(cmd *cobra.Command, app *app, command string) error {
	ctx := cmd.Context()
	session := application.NewStreamSession(app.client)
	sink := &streamSink{out: cmd.OutOrStdout(), status: cmd.ErrOrStderr()}

	if _, err := session.Toggle(context.WithoutCancel(ctx), command, sink); err != nil {
		return err
	}
	done := session.Done()

	select {
	case <-done:
	case <-ctx.Done():
		session.Stop()
		<-done
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout())
	return err
}

func printHistory(cmd *cobra.Command, app *app) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "\nHistory:\n%s\n", app.service.HistoryText(cmd.Context()))
	return err
}
