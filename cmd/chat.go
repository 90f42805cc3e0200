package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/bella-cli/internal/adapters/render/text"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "chat <message...>",
		Short: "Send a message to the Bella assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := app.service.Chat(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			if !raw {
				reply = text.Markdown(reply, width, text.StyleAuto)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), reply)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the reply without markdown rendering")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for rendered replies")

	return cmd
}
