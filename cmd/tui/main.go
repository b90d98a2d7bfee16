package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/lista/internal/launcher"
)

func main() {
	if err := launcher.LaunchTUI(); err != nil {
		// slog goes to the log file while the TUI runs, so the user
		// still needs the failure on stderr.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
