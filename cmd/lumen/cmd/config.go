package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lumen-sh/lumen/configs"
	"github.com/lumen-sh/lumen/internal/config"
)

// newConfigCmd creates the config command: show the effective configuration.
func newConfigCmd() *cobra.Command {
	var showPath bool
	var initConfig bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the effective configuration as YAML: defaults, merged with the
config file, with LUMEN_* environment overrides applied.

With --init, write a commented starter config to the config path instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := configPath
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}

			if showPath {
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}

			if initConfig {
				return writeStarterConfig(cmd, path)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&showPath, "path", false, "Print the config file path instead")
	cmd.Flags().BoolVar(&initConfig, "init", false, "Write a starter config file")

	return cmd
}

// writeStarterConfig writes the embedded template to path. An existing config
// is never overwritten.
func writeStarterConfig(cmd *cobra.Command, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(configs.UserConfigTemplate), 0o644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
