package main

import (
	"os"

	"github.com/andywolf/skillgate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Hook failures have already been logged to stderr; the non-zero
		// exit is the signal the host CLI acts on.
		os.Exit(1)
	}
}
