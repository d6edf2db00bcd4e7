package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/samvad-talk-courier/pkg/discourse"
)

var messageCmd = &cobra.Command{
	Use:   "message <username> <title> <body>",
	Short: "Send a private message to a user",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, stop := signalContext()
		defer stop()
		return runMessage(ctx, client, cmd.OutOrStdout(), args[0], args[1], args[2])
	},
}

func runMessage(ctx context.Context, client *discourse.Client, out io.Writer, username, title, body string) error {
	post, err := client.SendMessage(ctx, username, title, body)
	if err != nil {
		return err
	}
	return printJSON(out, post)
}
