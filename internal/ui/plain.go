package ui

import (
	"fmt"
	"io"

	"github.com/lumen-sh/lumen/internal/provider"
)

// PrintResults writes ranked results as plain lines (for pipes and scripts).
// Format: score<TAB>label, best match first.
func PrintResults(w io.Writer, results []provider.ListResult) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", r.Score, r.Label); err != nil {
			return err
		}
	}
	return nil
}

// PrintLabels writes result labels only, one per line.
func PrintLabels(w io.Writer, results []provider.ListResult) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.Label); err != nil {
			return err
		}
	}
	return nil
}
