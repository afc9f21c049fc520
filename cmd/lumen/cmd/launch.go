package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumen-sh/lumen/internal/engine"
)

// newLaunchCmd creates the launch command: query once, launch the best match.
func newLaunchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launch <query>",
		Short: "Launch the best match for a query",
		Long: `Run a single query and launch the top-ranked result as a detached
process, without opening the picker. Fails when nothing matches.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			e, err := engine.New(cfg, slog.Default())
			if err != nil {
				return err
			}
			defer e.Close()

			results := e.Search(query)
			if len(results) == 0 {
				return fmt.Errorf("no results for %q", query)
			}

			best := results[0]
			if err := e.Execute(best); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), best.Label)
			return nil
		},
	}

	return cmd
}
