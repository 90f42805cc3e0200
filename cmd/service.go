package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/bella-cli/internal/application"
	"github.com/bnema/bella-cli/internal/domain"
	"github.com/spf13/cobra"
)

var serviceActions = []string{
	string(domain.ServiceActionStart),
	string(domain.ServiceActionStop),
	string(domain.ServiceActionRestart),
	string(domain.ServiceActionStatus),
}

func newServiceCmd(app *app) *cobra.Command {
	var showHistory bool
	var format outputFormat

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("service <%s> <service>", strings.Join(serviceActions, "|")),
		Short: "Start, stop, restart or query a backend service",
		Args:  cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return serviceActions, cobra.ShellCompDirectiveNoFileComp
			}
			return completeCatalog(app, domain.EntryKindService)(cmd, args[1:], toComplete)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.service.ServiceAction(cmd.Context(), application.ServiceActionCommand{
				Action:  domain.ServiceAction(strings.ToLower(args[0])),
				Service: args[1],
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

	cmd.Flags().BoolVar(&showHistory, "history", false, "Print the refreshed command history afterwards")
	addOutputFlag(cmd.Flags(), &format)

	return cmd
}
