package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/samvad-talk-courier/pkg/discourse"
)

var badgeCmd = &cobra.Command{
	Use:   "badge <name>",
	Short: "Look up a badge by name (case-insensitive)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, stop := signalContext()
		defer stop()
		return runBadge(ctx, client, cmd.OutOrStdout(), args[0])
	},
}

func runBadge(ctx context.Context, client *discourse.Client, out io.Writer, name string) error {
	badge, err := client.GetBadge(ctx, name)
	if err != nil {
		return err
	}
	if badge == nil {
		return fmt.Errorf("no badge named %q found", name)
	}
	return printJSON(out, badge)
}
