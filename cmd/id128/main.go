package main

import (
	"log/slog"
	"os"
)

const applicationName = "id128"

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
