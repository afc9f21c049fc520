package provider

import (
	"log/slog"
	"sort"
)

// Registry is an ordered collection of providers, queried once per
// submitted search. Fan-out is sequential and synchronous: each provider's
// Search completes before the next is invoked, and no provider observes
// another's state.
type Registry struct {
	providers []Provider
	log       *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{log: log}
}

// Register appends a provider. Registration order is query order.
func (r *Registry) Register(p Provider) {
	r.providers = append(r.providers, p)
}

// Providers returns the registered providers in registration order.
func (r *Registry) Providers() []Provider {
	return r.providers
}

// Search dispatches query to every provider in registration order and
// returns the subset that claimed candidacy. A provider error is logged and
// that provider skipped; other providers are unaffected.
func (r *Registry) Search(query string) []Provider {
	var candidates []Provider
	for _, p := range r.providers {
		ok, err := p.Search(query)
		if err != nil {
			r.log.Error("provider search failed",
				slog.String("provider", p.Name()),
				slog.String("query", query),
				slog.String("error", err.Error()))
			continue
		}
		if !ok {
			continue
		}
		r.log.Debug("provider is candidate",
			slog.String("provider", p.Name()),
			slog.String("query", query))
		candidates = append(candidates, p)
	}
	return candidates
}

// Aggregate merges the ranked result lists of the given candidate providers
// into the single list handed to the rendering layer. The merge sorts by
// descending score and is stable, so each provider's internal order is
// preserved among equal scores and earlier-registered providers rank first
// on cross-provider ties.
func Aggregate(candidates []Provider) []ListResult {
	var merged []ListResult
	for _, p := range candidates {
		merged = append(merged, p.Results()...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	return merged
}
