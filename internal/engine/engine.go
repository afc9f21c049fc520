// Package engine assembles the search providers behind a single query
// surface: one call fans the query out to every enabled provider and merges
// the ranked results for the rendering layer.
package engine

import (
	"context"
	"log/slog"

	"github.com/lumen-sh/lumen/internal/config"
	"github.com/lumen-sh/lumen/internal/desktop"
	"github.com/lumen-sh/lumen/internal/launch"
	"github.com/lumen-sh/lumen/internal/provider"
	"github.com/lumen-sh/lumen/internal/provider/apps"
	"github.com/lumen-sh/lumen/internal/provider/calc"
	"github.com/lumen-sh/lumen/internal/provider/programs"
	"github.com/lumen-sh/lumen/internal/store"
	"github.com/lumen-sh/lumen/internal/watcher"
)

// Engine owns the provider registry and the resources behind it.
type Engine struct {
	cfg      config.Config
	log      *slog.Logger
	exec     *launch.Executor
	registry *provider.Registry
	scanner  *desktop.Scanner

	desktopProv *apps.Provider
	appStore    *store.Store
	watch       *watcher.Watcher
}

// New builds the engine from configuration. Candidate sources are read once
// here; a failing optional collaborator (store, watcher) degrades that
// feature, it does not fail other providers.
func New(cfg config.Config, log *slog.Logger) (*Engine, error) {
	if log == nil {
		log = slog.Default()
	}

	e := &Engine{
		cfg:      cfg,
		log:      log,
		exec:     launch.NewExecutor(cfg.ResolveTerminal(), cfg.SettleDelay(), log),
		registry: provider.NewRegistry(log),
		scanner:  desktop.NewScanner(log),
	}

	var desktopApps []desktop.Application
	if cfg.Providers.Desktop || cfg.Providers.Programs {
		var err error
		desktopApps, err = e.loadApplications()
		if err != nil {
			return nil, err
		}
	}

	if cfg.Providers.Desktop {
		e.desktopProv = apps.New(desktopApps, e.exec, log)
		e.registry.Register(e.desktopProv)
	}
	if cfg.Providers.Programs {
		e.registry.Register(programs.FromScan(
			e.programDirs(), desktopApps, e.exec, log))
	}
	if cfg.Providers.Calc {
		e.registry.Register(calc.New(cfg.Providers.HistorySize, log))
	}

	return e, nil
}

// loadApplications reads the desktop application set, preferring the store
// when enabled and populated, falling back to (and then seeding the store
// from) a filesystem scan.
func (e *Engine) loadApplications() ([]desktop.Application, error) {
	if !e.cfg.Store.Enabled {
		return e.scanner.Scan(e.cfg.ApplicationDirs()), nil
	}

	path := e.cfg.Store.Path
	if path == "" {
		var err error
		if path, err = store.DefaultPath(); err != nil {
			return nil, err
		}
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	e.appStore = s

	count, err := s.Count()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		e.log.Debug("loading applications from store", slog.Int("count", count))
		return s.List()
	}

	applications := e.scanner.Scan(e.cfg.ApplicationDirs())
	if err := s.Replace(applications); err != nil {
		e.log.Warn("cannot seed application store", slog.String("error", err.Error()))
	}
	return applications, nil
}

func (e *Engine) programDirs() []string {
	if len(e.cfg.Paths.ProgramDirs) > 0 {
		return e.cfg.Paths.ProgramDirs
	}
	return programs.DefaultDirs
}

// Search dispatches query to all providers and returns the merged ranked
// results. One query cycle is fully synchronous.
func (e *Engine) Search(query string) []provider.ListResult {
	candidates := e.registry.Search(query)
	return provider.Aggregate(candidates)
}

// Execute launches the selected result.
func (e *Engine) Execute(res provider.ListResult) error {
	return e.exec.Launch(res.Launch)
}

// Providers exposes the registry's providers in registration order.
func (e *Engine) Providers() []provider.Provider {
	return e.registry.Providers()
}

// Applications returns the desktop provider's current candidate set.
// Nil when the desktop provider is disabled.
func (e *Engine) Applications() []desktop.Application {
	if e.desktopProv == nil {
		return nil
	}
	return e.desktopProv.Applications()
}

// StartWatch begins refreshing the desktop provider when application
// directories change. No-op when disabled or the desktop provider is off.
func (e *Engine) StartWatch(ctx context.Context) error {
	if !e.cfg.Watch.Enabled || e.desktopProv == nil {
		return nil
	}

	e.watch = watcher.New(e.cfg.ApplicationDirs(), e.cfg.WatchDebounce(), e.refresh, e.log)
	if err := e.watch.Start(ctx); err != nil {
		// Watching is best-effort; the scan at construction still stands.
		e.log.Warn("application watcher disabled", slog.String("error", err.Error()))
		e.watch = nil
	}
	return nil
}

// refresh rescans the application directories and swaps the desktop
// provider's candidate set. Runs between query cycles.
func (e *Engine) refresh() {
	applications := e.scanner.Scan(e.cfg.ApplicationDirs())
	e.desktopProv.SetApplications(applications)
	if e.appStore != nil {
		if err := e.appStore.Replace(applications); err != nil {
			e.log.Warn("cannot refresh application store", slog.String("error", err.Error()))
		}
	}
	e.log.Info("application set refreshed", slog.Int("count", len(applications)))
}

// Close releases engine resources.
func (e *Engine) Close() {
	if e.watch != nil {
		_ = e.watch.Stop()
	}
	if e.appStore != nil {
		_ = e.appStore.Close()
	}
}
