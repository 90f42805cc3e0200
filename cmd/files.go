package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bnema/bella-cli/internal/adapters/render/text"
	"github.com/bnema/bella-cli/internal/application"
	"github.com/bnema/bella-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newFilesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Browse, read and write files on the backend host",
	}

	cmd.AddCommand(
		newFilesListCmd(app),
		newFilesCatCmd(app),
		newFilesWriteCmd(app),
	)

	return cmd
}

func newFilesListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "ls [path]",
		Aliases: []string{"list"},
		Short:   "List a directory (backend default when omitted)",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			listing, err := app.service.ListFiles(cmd.Context(), path)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), listing.Lines())
			return err
		},
	}
}

func newFilesCatCmd(app *app) *cobra.Command {
	var highlight bool

	cmd := &cobra.Command{
		Use:   "cat <path>",
		Short: "Print a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := app.service.ReadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if highlight && content != domain.NotFoundText {
				content = text.Highlight(content, args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), content)
			return err
		},
	}

	cmd.Flags().BoolVar(&highlight, "highlight", false, "Syntax-highlight by file extension")

	return cmd
}

func newFilesWriteCmd(app *app) *cobra.Command {
	var from string
	var content string

	cmd := &cobra.Command{
		Use:   "write <path>",
		Short: "Write a file and list its directory",
		Long:  "Write a file on the backend host. Content comes from --content, from a local file with --from, or from standard input with --from -. One of them is required; use --content \"\" to empty a file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := writeContent(cmd, from, content)
			if err != nil {
				return err
			}

			result, err := app.service.WriteFile(cmd.Context(), application.WriteFileCommand{Path: args[0], Content: body})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "Saved: %s\n", result.Path); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, result.ListingText())
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Read content from a local file, or - for stdin")
	cmd.Flags().StringVar(&content, "content", "", "Literal content to write")
	cmd.MarkFlagsMutuallyExclusive("from", "content")
	cmd.MarkFlagsOneRequired("from", "content")

	return cmd
}

func writeContent(cmd *cobra.Command, from, content string) (string, error) {
	switch from {
	case "":
		return content, nil
	case "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(from)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", from, err)
		}
		return string(data), nil
	}
}
