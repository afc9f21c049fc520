package cmd

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumen-sh/lumen/internal/engine"
	"github.com/lumen-sh/lumen/internal/ui"
)

// newSearchCmd creates the search command: one query, ranked results on
// stdout, no interaction.
func newSearchCmd() *cobra.Command {
	var limit int
	var labelsOnly bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search once and print ranked results",
		Long: `Run a single query against all enabled providers and print the merged
ranking to stdout, best match first. Output is one result per line:
score, a tab, then the label.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			e, err := engine.New(cfg, slog.Default())
			if err != nil {
				return err
			}
			defer e.Close()

			results := e.Search(query)
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}

			if labelsOnly {
				return ui.PrintLabels(cmd.OutOrStdout(), results)
			}
			return ui.PrintResults(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of results (0 = all)")
	cmd.Flags().BoolVar(&labelsOnly, "labels", false, "Print labels only, without scores")

	return cmd
}
