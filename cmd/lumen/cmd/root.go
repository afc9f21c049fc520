// Package cmd provides the CLI commands for Lumen.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumen-sh/lumen/internal/config"
	"github.com/lumen-sh/lumen/internal/engine"
	"github.com/lumen-sh/lumen/internal/logging"
	"github.com/lumen-sh/lumen/internal/ui"
	"github.com/lumen-sh/lumen/pkg/version"
)

var (
	configPath string
	debugMode  bool
	noColor    bool

	cfg            config.Config
	loggingCleanup func()
)

// NewRootCmd creates the root command for the lumen CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lumen",
		Short: "Fuzzy application launcher for the terminal",
		Long: `Lumen is a keyboard-driven application launcher.

Running 'lumen' opens an interactive picker: type to fuzzy-search desktop
applications, PATH binaries and arithmetic expressions, press Enter to
launch. The launched process is detached and outlives the launcher.`,
		Version: version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			return runPicker(cmd)
		},
	}

	cmd.SetVersionTemplate("lumen version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/lumen/config.yaml)")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.lumen/logs/")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	cmd.PersistentPreRunE = setup
	cmd.PersistentPostRun = teardown

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newLaunchCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup loads configuration and installs file logging. The launcher owns the
// terminal, so nothing is logged to stderr.
func setup(_ *cobra.Command, _ []string) error {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	var err error
	if cfg, err = config.Load(path); err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	if cfg.Log.File != "" {
		logCfg.FilePath = cfg.Log.File
	}
	if debugMode {
		logCfg.Level = "debug"
	}

	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	loggingCleanup = cleanup
	slog.SetDefault(logger)

	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
}

// runPicker runs the interactive picker, the default when lumen is invoked
// without a subcommand.
func runPicker(cmd *cobra.Command) error {
	if !ui.IsTTY(os.Stdout) {
		return fmt.Errorf("stdout is not a terminal; use 'lumen search <query>' for scripted output")
	}

	e, err := engine.New(cfg, slog.Default())
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.StartWatch(cmd.Context()); err != nil {
		return err
	}

	styles := ui.GetStyles(noColor || ui.DetectNoColor())
	launched, err := ui.NewPicker(e, styles).Run()
	if err != nil {
		return err
	}

	slog.Info("picker closed", slog.Bool("launched", launched))
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
