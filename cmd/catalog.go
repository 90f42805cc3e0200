package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/bella-cli/internal/application"
	"github.com/bnema/bella-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the services and log files offered for completion and the console",
	}

	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogAddCmd(app, domain.EntryKindService, "add-service"),
		newCatalogAddCmd(app, domain.EntryKindLog, "add-log"),
		newCatalogRemoveCmd(app),
	)

	return cmd
}

func newCatalogListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known services and log files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := app.service.Catalog(cmd.Context())
			if err != nil {
				return err
			}

			var b strings.Builder
			writeCatalogSection(&b, "services", catalog.Services)
			b.WriteString("\n")
			writeCatalogSection(&b, "logs", catalog.Logs)

			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}

func writeCatalogSection(b *strings.Builder, title string, entries []domain.CatalogEntry) {
	fmt.Fprintf(b, "%s:\n", title)
	if len(entries) == 0 {
		fmt.Fprintf(b, "  %s\n", domain.EmptyText)
		return
	}
	for _, entry := range entries {
		if entry.Description == "" {
			fmt.Fprintf(b, "  %s\n", entry.Name)
			continue
		}
		fmt.Fprintf(b, "  %s - %s\n", entry.Name, entry.Description)
	}
}

func newCatalogAddCmd(app *app, kind domain.EntryKind, use string) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   use + " <name>",
		Short: fmt.Sprintf("Add a %s to the catalog", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.service.AddCatalogEntry(cmd.Context(), application.AddCatalogEntryCommand{
				Entry: domain.CatalogEntry{Kind: kind, Name: args[0], Description: description},
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added %s %s\n", kind, strings.TrimSpace(args[0]))
			return err
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Short description")

	return cmd
}

func newCatalogRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <service|log> <name>",
		Short: "Remove a catalog entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.EntryKind(strings.ToLower(args[0]))
			err := app.service.RemoveCatalogEntry(cmd.Context(), application.RemoveCatalogEntryCommand{Kind: kind, Name: args[1]})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %s %s\n", kind, strings.TrimSpace(args[1]))
			return err
		},
	}
}
