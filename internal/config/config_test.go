package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.True(t, cfg.Providers.Desktop)
	assert.True(t, cfg.Providers.Programs)
	assert.True(t, cfg.Providers.Calc)
	assert.Equal(t, 100, cfg.Providers.HistorySize)
	assert.Equal(t, 100*time.Millisecond, cfg.SettleDelay())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "xterm", cfg.Launch.Terminal)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
launch:
  terminal: kitty
  settle_delay: 50ms
providers:
  desktop: true
  programs: false
  calc: true
  history_size: 10
paths:
  program_dirs: ["/usr/local/bin"]
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "kitty", cfg.Launch.Terminal)
	assert.Equal(t, 50*time.Millisecond, cfg.SettleDelay())
	assert.False(t, cfg.Providers.Programs)
	assert.Equal(t, 10, cfg.Providers.HistorySize)
	assert.Equal(t, []string{"/usr/local/bin"}, cfg.Paths.ProgramDirs)
}

func TestLoad_InvalidYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("launch: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("launch:\n  terminal: kitty\n"), 0o644))

	t.Setenv("LUMEN_TERMINAL", "alacritty")
	t.Setenv("LUMEN_HISTORY_SIZE", "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "alacritty", cfg.Launch.Terminal)
	assert.Equal(t, 7, cfg.Providers.HistorySize)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad settle delay", func(c *Config) { c.Launch.SettleDelay = "soon" }},
		{"bad debounce", func(c *Config) { c.Watch.Debounce = "often" }},
		{"negative history", func(c *Config) { c.Providers.HistorySize = -1 }},
		{"no providers", func(c *Config) {
			c.Providers.Desktop = false
			c.Providers.Programs = false
			c.Providers.Calc = false
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestResolveTerminal_PrefersEnv(t *testing.T) {
	cfg := Default()

	t.Setenv("TERMINAL", "foot")
	assert.Equal(t, "foot", cfg.ResolveTerminal())

	t.Setenv("TERMINAL", "")
	assert.Equal(t, "xterm", cfg.ResolveTerminal())
}

func TestApplicationDirs_OverrideWins(t *testing.T) {
	cfg := Default()
	cfg.Paths.ApplicationDirs = []string{"/custom/apps"}
	assert.Equal(t, []string{"/custom/apps"}, cfg.ApplicationDirs())
}
