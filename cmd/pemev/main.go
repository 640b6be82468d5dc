package main

import (
	"log/slog"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
