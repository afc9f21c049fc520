package watcher

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevant(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"desktop create", fsnotify.Event{Name: "/apps/a.desktop", Op: fsnotify.Create}, true},
		{"desktop write", fsnotify.Event{Name: "/apps/a.desktop", Op: fsnotify.Write}, true},
		{"desktop remove", fsnotify.Event{Name: "/apps/a.desktop", Op: fsnotify.Remove}, true},
		{"desktop chmod only", fsnotify.Event{Name: "/apps/a.desktop", Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: "/apps/notes.txt", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevant(tt.event))
		})
	}
}

func TestWatcher_NoWatchableDirsFails(t *testing.T) {
	w := New([]string{"/nonexistent/a", "/nonexistent/b"}, 0, func() {}, slog.Default())
	err := w.Start(context.Background())
	assert.Error(t, err)
}

func TestWatcher_DebouncedRefresh(t *testing.T) {
	dir := t.TempDir()

	var refreshes atomic.Int32
	w := New([]string{dir}, 50*time.Millisecond, func() {
		refreshes.Add(1)
	}, slog.Default())

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	// A burst of writes must coalesce into one refresh.
	for i := 0; i < 3; i++ {
		path := filepath.Join(dir, "burst.desktop")
		require.NoError(t, os.WriteFile(path, []byte("[Desktop Entry]\nName=B\n"), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return refreshes.Load() == 1
	}, 2*time.Second, 20*time.Millisecond, "burst should produce exactly one refresh")
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()

	var refreshes atomic.Int32
	w := New([]string{dir}, 30*time.Millisecond, func() {
		refreshes.Add(1)
	}, slog.Default())

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, int32(0), refreshes.Load())
}
