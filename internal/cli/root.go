package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/samvad-talk-courier/internal/config"
	"github.com/samvad-hq/samvad-talk-courier/internal/logger"
	"github.com/samvad-hq/samvad-talk-courier/pkg/discourse"
	"github.com/samvad-hq/samvad-talk-courier/pkg/httpclient"
)

var rootCmd = &cobra.Command{
	Use:           "talkcourier",
	Short:         "Courier for a Discourse forum: fetch users, grant badges, send private messages",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(badgeCmd)
	rootCmd.AddCommand(grantCmd)
	rootCmd.AddCommand(messageCmd)
	rootCmd.AddCommand(verifyCmd)
}

// newClient wires config, logger, and transport into a forum client.
func newClient() (*discourse.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if _, err := logger.Init(cfg); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return discourse.NewClient(
		discourse.Config{
			Host:        cfg.ForumHost,
			APIUsername: cfg.APIUsername,
			APIKey:      cfg.APIKey,
		},
		httpclient.NewRestyClient(cfg.RequestTimeout),
		logger.Zap{},
	)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
