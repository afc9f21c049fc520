// Package config loads Lumen configuration.
//
// Precedence, lowest to highest: built-in defaults, the user config file
// (~/.config/lumen/config.yaml), then LUMEN_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lumen-sh/lumen/internal/desktop"
	"github.com/lumen-sh/lumen/internal/errors"
	"github.com/lumen-sh/lumen/internal/provider/calc"
	"github.com/lumen-sh/lumen/internal/provider/programs"
)

// Config is the complete Lumen configuration.
type Config struct {
	Launch    LaunchConfig    `yaml:"launch"`
	Providers ProvidersConfig `yaml:"providers"`
	Paths     PathsConfig     `yaml:"paths"`
	Store     StoreConfig     `yaml:"store"`
	Watch     WatchConfig     `yaml:"watch"`
	Log       LogConfig       `yaml:"log"`
}

// LaunchConfig configures process spawning.
type LaunchConfig struct {
	// Terminal is the emulator used for terminal launches when $TERMINAL
	// is unset.
	Terminal string `yaml:"terminal"`
	// SettleDelay is how long to wait after a spawn before returning,
	// giving the child time to establish itself (e.g. "100ms").
	SettleDelay string `yaml:"settle_delay"`
}

// ProvidersConfig toggles individual search providers.
type ProvidersConfig struct {
	Desktop  bool `yaml:"desktop"`
	Programs bool `yaml:"programs"`
	Calc     bool `yaml:"calc"`

	// HistorySize bounds the arithmetic provider's equation history.
	HistorySize int `yaml:"history_size"`
}

// PathsConfig overrides the scanned directories.
type PathsConfig struct {
	// ApplicationDirs replaces the XDG application directories when set.
	ApplicationDirs []string `yaml:"application_dirs"`
	// ProgramDirs are the bin directories scanned for executables.
	ProgramDirs []string `yaml:"program_dirs"`
}

// StoreConfig configures the SQLite application store.
type StoreConfig struct {
	// Enabled loads the desktop provider from the store instead of a
	// filesystem scan (the store is refreshed when stale).
	Enabled bool `yaml:"enabled"`
	// Path is the database location. Empty uses ~/.lumen/applications.db.
	Path string `yaml:"path"`
}

// WatchConfig configures the application-directory watcher.
type WatchConfig struct {
	Enabled bool `yaml:"enabled"`
	// Debounce coalesces change bursts before a rescan (e.g. "500ms").
	Debounce string `yaml:"debounce"`
}

// LogConfig configures file logging.
type LogConfig struct {
	Level string `yaml:"level"`
	// File is the log path. Empty uses ~/.lumen/logs/lumen.log.
	File string `yaml:"file"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Launch: LaunchConfig{
			Terminal:    "xterm",
			SettleDelay: "100ms",
		},
		Providers: ProvidersConfig{
			Desktop:     true,
			Programs:    true,
			Calc:        true,
			HistorySize: calc.DefaultHistorySize,
		},
		Paths: PathsConfig{
			ProgramDirs: programs.DefaultDirs,
		},
		Store: StoreConfig{},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: "500ms",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the user config file location.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve config directory: %w", err)
	}
	return filepath.Join(configDir, "lumen", "config.yaml"), nil
}

// Load reads configuration from path, merged over defaults, with LUMEN_*
// environment overrides applied last. A missing file is not an error; the
// defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return Config{}, errors.New(errors.ErrCodeConfigNotFound,
				fmt.Sprintf("cannot read config file %s", path), err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, errors.ConfigError(
					fmt.Sprintf("invalid config file %s", path), err)
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv applies LUMEN_* environment overrides.
func applyEnv(cfg *Config) {
	if v := os.Getenv("LUMEN_TERMINAL"); v != "" {
		cfg.Launch.Terminal = v
	}
	if v := os.Getenv("LUMEN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LUMEN_STORE_PATH"); v != "" {
		cfg.Store.Path = v
		cfg.Store.Enabled = true
	}
	if v := os.Getenv("LUMEN_HISTORY_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Providers.HistorySize = n
		}
	}
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if _, err := time.ParseDuration(c.Launch.SettleDelay); err != nil {
		return errors.ConfigError(
			fmt.Sprintf("invalid launch.settle_delay %q", c.Launch.SettleDelay), err)
	}
	if _, err := time.ParseDuration(c.Watch.Debounce); err != nil {
		return errors.ConfigError(
			fmt.Sprintf("invalid watch.debounce %q", c.Watch.Debounce), err)
	}
	if c.Providers.HistorySize < 0 {
		return errors.ConfigError("providers.history_size must not be negative", nil)
	}
	if !c.Providers.Desktop && !c.Providers.Programs && !c.Providers.Calc {
		return errors.ConfigError("at least one provider must be enabled", nil)
	}
	return nil
}

// SettleDelay returns the parsed settle delay.
// Validate guarantees the value parses.
func (c Config) SettleDelay() time.Duration {
	d, _ := time.ParseDuration(c.Launch.SettleDelay)
	return d
}

// WatchDebounce returns the parsed watch debounce.
func (c Config) WatchDebounce() time.Duration {
	d, _ := time.ParseDuration(c.Watch.Debounce)
	return d
}

// ResolveTerminal returns the terminal emulator for wrapped launches:
// $TERMINAL when set, otherwise the configured fallback.
func (c Config) ResolveTerminal() string {
	if v := os.Getenv("TERMINAL"); v != "" {
		return v
	}
	return c.Launch.Terminal
}

// ApplicationDirs returns the directories scanned for desktop entries:
// the configured override, or the standard XDG locations.
func (c Config) ApplicationDirs() []string {
	if len(c.Paths.ApplicationDirs) > 0 {
		return c.Paths.ApplicationDirs
	}
	return desktop.SearchDirs()
}
