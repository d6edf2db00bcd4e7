package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/samvad-talk-courier/pkg/discourse"
)

var userCmd = &cobra.Command{
	Use:   "user <username>",
	Short: "Fetch a user record by username",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, stop := signalContext()
		defer stop()
		return runUser(ctx, client, cmd.OutOrStdout(), args[0])
	},
}

func runUser(ctx context.Context, client *discourse.Client, out io.Writer, username string) error {
	user, err := client.GetUser(ctx, username)
	if err != nil {
		return err
	}
	return printJSON(out, user)
}
