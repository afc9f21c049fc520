package programs

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-sh/lumen/internal/desktop"
	"github.com/lumen-sh/lumen/internal/launch"
)

func writeBinary(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
	return path
}

func TestDiscover_FindsExecutablesOnly(t *testing.T) {
	dir := t.TempDir()
	writeBinary(t, dir, "htop")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("doc"), 0o644))

	programs := Discover([]string{dir}, nil)

	require.Len(t, programs, 1)
	assert.Equal(t, "htop", programs[0].Name)
	assert.Equal(t, filepath.Join(dir, "htop"), programs[0].Exec)
	assert.True(t, programs[0].Terminal, "PATH binaries launch in a terminal")
}

func TestDiscover_SkipsMissingDirs(t *testing.T) {
	assert.Empty(t, Discover([]string{"/nonexistent/bin"}, nil))
}

func TestDiscover_DedupesByExecSubstring(t *testing.T) {
	dir := t.TempDir()
	path := writeBinary(t, dir, "firefox")

	desktopApps := []desktop.Application{
		{Name: "Firefox Web Browser", Exec: path + " --new-window"},
	}

	programs := Discover([]string{dir}, desktopApps)
	assert.Empty(t, programs, "binary referenced by a desktop Exec is excluded")
}

func TestDiscover_DedupesByNormalizedName(t *testing.T) {
	dir := t.TempDir()
	writeBinary(t, dir, "image-viewer")

	desktopApps := []desktop.Application{
		{Name: "Image Viewer", Exec: "/usr/lib/imgv/run"},
	}

	programs := Discover([]string{dir}, desktopApps)
	assert.Empty(t, programs, "normalized name match is excluded")
}

func TestDiscover_KeepsUncoveredBinaries(t *testing.T) {
	dir := t.TempDir()
	writeBinary(t, dir, "rg")

	desktopApps := []desktop.Application{
		{Name: "Firefox", Exec: "/usr/bin/firefox"},
	}

	programs := Discover([]string{dir}, desktopApps)
	require.Len(t, programs, 1)
	assert.Equal(t, "rg", programs[0].Name)
}

func TestNormalizeName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Image Viewer", "imageviewer"},
		{"image-viewer", "imageviewer"},
		{"image_viewer", "imageviewer"},
		{"HTOP", "htop"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeName(tt.in))
	}
}

func TestSearch_EmptyQueryIsNotCandidate(t *testing.T) {
	p := New([]desktop.Application{{Name: "htop", Exec: "/usr/bin/htop", Terminal: true}},
		launch.NewExecutor("xterm", 0, slog.Default()), slog.Default())

	ok, err := p.Search("")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSearch_RanksAndProjectsResults(t *testing.T) {
	p := New([]desktop.Application{
		{Name: "htop", Exec: "/usr/bin/htop", Terminal: true},
		{Name: "top", Exec: "/usr/bin/top", Terminal: true},
	}, launch.NewExecutor("xterm", 0, slog.Default()), slog.Default())

	ok, err := p.Search("htop")
	require.NoError(t, err)
	require.True(t, ok)

	results := p.Results()
	require.NotEmpty(t, results)
	assert.Equal(t, "htop", results[0].Label)
	assert.Equal(t, launch.KindSpawn, results[0].Launch.Kind)
	assert.True(t, results[0].Launch.Terminal)
}
