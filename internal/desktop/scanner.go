package desktop

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
)

// cacheSize bounds the parsed-entry cache. Typical systems carry a few
// hundred desktop entries.
const cacheSize = 1024

// cachedEntry pairs a parsed application with the source file's mtime so a
// rescan only reparses files that changed since the last pass.
type cachedEntry struct {
	modTime int64
	app     Application
}

// Scanner discovers desktop entries across application directories.
// Scans are safe for concurrent use; the parse cache is shared.
type Scanner struct {
	mu    sync.Mutex
	cache *lru.Cache[string, cachedEntry]
	log   *slog.Logger
}

// NewScanner creates a Scanner with a bounded parse cache.
func NewScanner(log *slog.Logger) *Scanner {
	if log == nil {
		log = slog.Default()
	}
	// lru.New only fails for non-positive sizes.
	cache, _ := lru.New[string, cachedEntry](cacheSize)
	return &Scanner{cache: cache, log: log}
}

// Scan parses every *.desktop file under dirs. Directories are scanned in
// parallel; missing directories are skipped. Entries that cannot be read are
// logged and dropped. Results are ordered by source path so repeated scans
// of an unchanged tree are identical.
func (s *Scanner) Scan(dirs []string) []Application {
	var (
		mu   sync.Mutex
		apps []Application
	)

	var g errgroup.Group
	for _, dir := range dirs {
		g.Go(func() error {
			found := s.scanDir(dir)
			mu.Lock()
			apps = append(apps, found...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(apps, func(i, j int) bool { return apps[i].Path < apps[j].Path })
	return apps
}

func (s *Scanner) scanDir(dir string) []Application {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Debug("skipping application directory",
				slog.String("dir", dir),
				slog.String("error", err.Error()))
		}
		return nil
	}

	var apps []Application
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".desktop" {
			continue
		}
		path := filepath.Join(dir, e.Name())

		info, err := e.Info()
		if err != nil {
			continue
		}

		if app, ok := s.cached(path, info.ModTime().Unix()); ok {
			apps = append(apps, app)
			continue
		}

		app, err := ParseEntry(path)
		if err != nil {
			s.log.Warn("unreadable desktop entry",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}

		s.remember(path, info.ModTime().Unix(), app)
		apps = append(apps, app)
	}
	return apps
}

func (s *Scanner) cached(path string, modTime int64) (Application, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cache.Get(path)
	if !ok || entry.modTime != modTime {
		return Application{}, false
	}
	return entry.app, true
}

func (s *Scanner) remember(path string, modTime int64, app Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(path, cachedEntry{modTime: modTime, app: app})
}
