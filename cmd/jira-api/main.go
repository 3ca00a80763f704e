package main

import (
	"os"

	"log/slog"

	"github.com/ylchen07/jira-api/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		slog.Default().Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
