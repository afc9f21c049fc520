// Package watcher refreshes the application set when desktop entries change
// on disk. Events are debounced so bursts from package installs trigger a
// single rescan. The refresh callback runs between query cycles, never
// during one; providers swap their candidate source wholesale.
package watcher

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lumen-sh/lumen/internal/errors"
)

// DefaultDebounce coalesces event bursts before a refresh fires.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches application directories for desktop entry changes.
type Watcher struct {
	dirs     []string
	debounce time.Duration
	onChange func()
	log      *slog.Logger

	fsw  *fsnotify.Watcher
	done chan struct{}
}

// New creates a watcher over dirs. onChange is invoked after changes settle.
func New(dirs []string, debounce time.Duration, onChange func(), log *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = slog.Default()
	}
	return &Watcher{dirs: dirs, debounce: debounce, onChange: onChange, log: log}
}

// Start begins watching. Missing directories are skipped; the watcher fails
// only if no directory can be watched at all. It runs until Stop is called
// or ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.New(errors.ErrCodeWatcherFailed, "cannot create watcher", err)
	}

	watched := 0
	for _, dir := range w.dirs {
		if err := fsw.Add(dir); err != nil {
			w.log.Debug("not watching directory",
				slog.String("dir", dir),
				slog.String("error", err.Error()))
			continue
		}
		watched++
	}
	if watched == 0 {
		_ = fsw.Close()
		return errors.New(errors.ErrCodeWatcherFailed, "no watchable application directories", nil)
	}

	w.fsw = fsw
	w.done = make(chan struct{})

	go w.run(ctx)

	w.log.Info("watching application directories", slog.Int("count", watched))
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
// Safe to call only after a successful Start.
func (w *Watcher) Stop() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			w.log.Debug("desktop entry changed",
				slog.String("path", event.Name),
				slog.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", slog.String("error", err.Error()))

		case <-fire:
			timer = nil
			fire = nil
			w.onChange()
		}
	}
}

// relevant reports whether an event concerns a desktop entry.
func relevant(event fsnotify.Event) bool {
	if filepath.Ext(event.Name) != ".desktop" {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
