package main

import (
	"log/slog"
	"os"

	"github.com/thenoetrevino/lista/internal/launcher"
)

func main() {
	if err := launcher.Serve(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
