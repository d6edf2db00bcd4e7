package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/samvad-talk-courier/pkg/discourse"
)

var grantCmd = &cobra.Command{
	Use:   "grant <username> <badge-id>",
	Short: "Grant a badge to a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		badgeID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid badge id %q (expected an integer)", args[1])
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, stop := signalContext()
		defer stop()
		return runGrant(ctx, client, cmd.OutOrStdout(), args[0], badgeID)
	},
}

func runGrant(ctx context.Context, client *discourse.Client, out io.Writer, username string, badgeID int) error {
	granted, err := client.GrantBadge(ctx, username, badgeID)
	if err != nil {
		return err
	}
	return printJSON(out, granted)
}
