package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/bella-cli/internal/application"
	"github.com/bnema/bella-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLogsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Read backend logs and command history",
	}

	cmd.AddCommand(
		newLogsRecentCmd(app),
		newLogsHistoryCmd(app),
		newLogsShowCmd(app),
		newLogsTailCmd(app),
	)

	return cmd
}

func newLogsRecentCmd(app *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Print the latest dashboard log lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lines, err := app.service.RecentLogs(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), domain.EmptyText)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
			return err
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", app.settings.RecentLimit, "Number of lines to keep")

	return cmd
}

func newLogsHistoryCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Print the backend's command history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			history, err := app.service.History(cmd.Context())
			if errors.Is(err, domain.ErrNotFound) {
				history, err = application.NoHistoryText, nil
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), domain.OrEmpty(history))
			return err
		},
	}
}

func newLogsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:               "show <file>",
		Short:             "Print a backend log file",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeCatalog(app, domain.EntryKindLog),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := app.service.ShowLog(cmd.Context(), args[0])
			if errors.Is(err, domain.ErrNotFound) {
				content, err = application.LogNotFoundText, nil
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), domain.OrEmpty(content))
			return err
		},
	}
}

func newLogsTailCmd(app *app) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:               "tail <file>",
		Short:             "Follow a backend log file until interrupted",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeCatalog(app, domain.EntryKindLog),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tail := application.NewPollSession("tail")
			sink := &tailSink{out: cmd.OutOrStdout()}
			pollCtx := context.WithoutCancel(ctx)

			if _, err := app.service.ToggleTail(pollCtx, tail, args[0], interval, sink); err != nil {
				return err
			}

			<-ctx.Done()
			_, err := app.service.ToggleTail(pollCtx, tail, args[0], interval, sink)
			return err
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", app.settings.TailInterval, "Refresh interval")

	return cmd
}

func completeCatalog(app *app, kind domain.EntryKind) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		catalog, err := app.service.Catalog(cmd.Context())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return catalog.Names(kind), cobra.ShellCompDirectiveNoFileComp
	}
}
