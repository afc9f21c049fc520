// Package programs implements the PATH-binary search provider.
//
// Executables discovered under the configured bin directories become
// lightweight application records. Binaries already exposed through a
// desktop entry are excluded so the same application is not listed twice.
package programs

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lumen-sh/lumen/internal/desktop"
	"github.com/lumen-sh/lumen/internal/launch"
	"github.com/lumen-sh/lumen/internal/provider"
	"github.com/lumen-sh/lumen/internal/rank"
)

// ProviderName identifies the programs provider in logs.
const ProviderName = "programs"

// DefaultDirs are the bin directories scanned when none are configured.
var DefaultDirs = []string{"/usr/bin"}

// Provider ranks and launches PATH executables.
type Provider struct {
	exec *launch.Executor
	log  *slog.Logger

	mu       sync.Mutex
	programs []desktop.Application
	results  []rank.Scored
}

// New creates the provider over a fixed program set.
func New(programs []desktop.Application, exec *launch.Executor, log *slog.Logger) *Provider {
	if log == nil {
		log = slog.Default()
	}
	return &Provider{programs: programs, exec: exec, log: log}
}

// FromScan creates the provider by scanning dirs for executables at
// construction, excluding any binary already covered by a desktop entry.
func FromScan(dirs []string, desktopApps []desktop.Application, exec *launch.Executor, log *slog.Logger) *Provider {
	return New(Discover(dirs, desktopApps), exec, log)
}

// Discover scans dirs for executable files and returns application records
// for those not already represented in desktopApps. PATH binaries carry no
// terminal hint, so they are launched in a terminal.
func Discover(dirs []string, desktopApps []desktop.Application) []desktop.Application {
	var programs []desktop.Application
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			info, err := e.Info()
			if err != nil || info.Mode()&0o111 == 0 {
				continue
			}

			path := filepath.Join(dir, e.Name())
			prog := desktop.Application{
				Name:     strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
				Exec:     path,
				Terminal: true,
				Path:     path,
			}

			if coveredByDesktopEntry(prog, desktopApps) {
				continue
			}
			programs = append(programs, prog)
		}
	}
	return programs
}

// coveredByDesktopEntry reports whether a PATH binary is already exposed via
// a desktop entry, either because the entry's Exec references the binary
// path or because the names match after normalization.
func coveredByDesktopEntry(prog desktop.Application, desktopApps []desktop.Application) bool {
	progName := normalizeName(prog.Name)
	for _, app := range desktopApps {
		if app.Exec != "" && strings.Contains(app.Exec, prog.Exec) {
			return true
		}
		if normalizeName(app.Name) == progName {
			return true
		}
	}
	return false
}

// normalizeName lower-cases a name and strips spaces, hyphens and
// underscores, so "Image Viewer" matches "image-viewer".
func normalizeName(name string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "_", "")
	return replacer.Replace(strings.ToLower(name))
}

// Name implements provider.Provider.
func (p *Provider) Name() string { return ProviderName }

// Programs returns the current candidate set.
func (p *Provider) Programs() []desktop.Application {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.programs
}

// Search ranks program names against query. Empty queries and queries with
// no matches report non-candidacy.
func (p *Provider) Search(query string) (bool, error) {
	if query == "" {
		return false, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	names := make([]string, len(p.programs))
	for i, prog := range p.programs {
		names[i] = prog.Name
	}

	results := rank.Rank(names, query)
	if len(results) == 0 {
		return false, nil
	}

	p.results = results
	p.log.Debug("programs matched",
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
		prog := p.programs[r.Index]
		out = append(out, provider.ListResult{
			Label:  prog.Name,
			Score:  r.Score,
			Launch: launch.Spawn(prog.Name, prog.Exec, prog.Terminal),
		})
	}
	return out
}

// Execute spawns the selected program as a detached process.
func (p *Provider) Execute(res provider.ListResult) error {
	return p.exec.Launch(res.Launch)
}
