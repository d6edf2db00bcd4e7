package main

import (
	"fmt"
	"os"

	"github.com/samvad-hq/samvad-talk-courier/internal/cli"
	"github.com/samvad-hq/samvad-talk-courier/internal/logger"
)

func main() {
	defer logger.Close()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "talkcourier: %v\n", err)
		os.Exit(1)
	}
}
