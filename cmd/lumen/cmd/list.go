package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lumen-sh/lumen/internal/engine"
)

// newListCmd creates the list command: dump the discovered applications.
func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered desktop applications",
		Long: `Print the desktop applications the launcher would search, as discovered
from the application directories (or the application store when enabled).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := engine.New(cfg, slog.Default())
			if err != nil {
				return err
			}
			defer e.Close()

			applications := e.Applications()

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(applications)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, app := range applications {
				terminal := ""
				if app.Terminal {
					terminal = "terminal"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", app.Name, app.Exec, terminal)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output applications as JSON")

	return cmd
}
