package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/samvad-talk-courier/pkg/discourse"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check connectivity and API credentials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, stop := signalContext()
		defer stop()
		return runVerify(ctx, client, cmd.OutOrStdout())
	},
}

func runVerify(ctx context.Context, client *discourse.Client, out io.Writer) error {
	marker, err := client.Verify(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, marker)
	return nil
}
