// Package main provides the entry point for the lumen CLI.
package main

import (
	"os"

	"github.com/lumen-sh/lumen/cmd/lumen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
