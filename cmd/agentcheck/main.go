package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mcpchecker/agentcheck/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Violations were already printed as diagnostics.
		if !errors.Is(err, cli.ErrViolations) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
