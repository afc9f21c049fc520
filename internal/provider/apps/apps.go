// Package apps implements the desktop-file search provider.
//
// Candidates are the desktop entries discovered under the standard
// application directories (or loaded from the application store). The
// candidate set is read at construction and only replaced wholesale between
// query cycles, never mutated during one.
package apps

import (
	"log/slog"
	"sync"

	"github.com/lumen-sh/lumen/internal/desktop"
	"github.com/lumen-sh/lumen/internal/launch"
	"github.com/lumen-sh/lumen/internal/provider"
	"github.com/lumen-sh/lumen/internal/rank"
	"github.com/lumen-sh/lumen/internal/store"
)

// ProviderName identifies the desktop-file provider in logs.
const ProviderName = "desktop_files"

// Provider ranks and launches desktop applications.
type Provider struct {
	exec *launch.Executor
	log  *slog.Logger

	mu      sync.Mutex
	apps    []desktop.Application
	results []rank.Scored
}

// New creates the provider over a fixed application set.
func New(applications []desktop.Application, exec *launch.Executor, log *slog.Logger) *Provider {
	if log == nil {
		log = slog.Default()
	}
	return &Provider{apps: applications, exec: exec, log: log}
}

// FromScan creates the provider by scanning the given application
// directories at construction time.
func FromScan(scanner *desktop.Scanner, dirs []string, exec *launch.Executor, log *slog.Logger) *Provider {
	return New(scanner.Scan(dirs), exec, log)
}

// FromStore creates the provider from the persisted application store
// instead of a live scan.
func FromStore(s *store.Store, exec *launch.Executor, log *slog.Logger) (*Provider, error) {
	applications, err := s.List()
	if err != nil {
		return nil, err
	}
	return New(applications, exec, log), nil
}

// Name implements provider.Provider.
func (p *Provider) Name() string { return ProviderName }

// Applications returns the current candidate set.
func (p *Provider) Applications() []desktop.Application {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.apps
}

// SetApplications replaces the candidate set and clears ranked state. Called
// by the watcher between query cycles when the application set changes.
func (p *Provider) SetApplications(applications []desktop.Application) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.apps = applications
	p.results = nil
}

// Search ranks application names against query. Empty queries and queries
// with no matches report non-candidacy.
func (p *Provider) Search(query string) (bool, error) {
	if query == "" {
		return false, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	names := make([]string, len(p.apps))
	for i, app := range p.apps {
		names[i] = app.Name
	}

	results := rank.Rank(names, query)
	if len(results) == 0 {
		p.log.Debug("no applications matched",
			slog.String("provider", ProviderName),
			slog.String("query", query))
		return false, nil
	}

	p.results = results
	p.log.Debug("applications matched",
		slog.String("provider", ProviderName),
		slog.String("query", query),
		slog.Int("count", len(results)))

	return true, nil
}

// Results projects the current ranking into launchable records.
func (p *Provider) Results() []provider.ListResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]provider.ListResult, 0, len(p.results))
	for _, r := range p.results {
		app := p.apps[r.Index]
		out = append(out, provider.ListResult{
			Label:  app.Name,
			Score:  r.Score,
			Launch: launch.Spawn(app.Name, app.Exec, app.Terminal),
		})
	}
	return out
}

// Execute spawns the selected application as a detached process.
func (p *Provider) Execute(res provider.ListResult) error {
	return p.exec.Launch(res.Launch)
}
