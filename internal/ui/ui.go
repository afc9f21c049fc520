// Package ui renders search results: an interactive picker when stdout is a
// terminal, plain line output for pipes and scripts.
package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lumen-sh/lumen/internal/provider"
)

// Searcher is the query surface the picker drives. Each keystroke issues a
// fresh query; Execute launches the selected result.
type Searcher interface {
	Search(query string) []provider.ListResult
	Execute(res provider.ListResult) error
}

// IsTTY checks if output is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DetectNoColor checks if the NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, set := os.LookupEnv("NO_COLOR")
	return set
}
