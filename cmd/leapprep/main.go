// Package main provides the CLI entry point for LeapPrep.
package main

import (
	"os"

	"github.com/leapstack-labs/leapprep/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
