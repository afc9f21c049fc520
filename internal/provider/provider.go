// Package provider defines the search-provider contract and the registry
// that fans a query out to every registered provider.
//
// A provider wraps its own candidate source (desktop entries, PATH binaries,
// an equation history) behind a uniform interface: claim candidacy for a
// query, expose ranked results, execute a selected result. The registry
// never distinguishes concrete provider types.
package provider

import "github.com/lumen-sh/lumen/internal/launch"

// ListResult is the engine-to-UI boundary type: a display label, a rank, and
// a data-only launch action resolved by the launch executor. Its validity
// does not depend on provider state outliving the call.
type ListResult struct {
	// Label is the display string for the rendering layer.
	Label string
	// Score is the result's rank. Higher is better.
	Score int
	// Launch is everything needed to execute the result.
	Launch launch.Action
}

// Provider is the plugin contract implemented by every search provider.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string

	// Search evaluates candidacy for query and refreshes provider-local
	// derived state (re-ranking, or evaluating and recording an equation).
	// "No results" is normal control flow: an empty query or a query with
	// zero matches returns (false, nil), never an error. Errors are
	// reserved for exceptional conditions such as a required collaborator
	// that was never registered.
	Search(query string) (bool, error)

	// Results projects current provider state into display and launch
	// records. It must not mutate state and is safe to call any number of
	// times after Search. Results are ordered by descending score.
	Results() []ListResult

	// Execute launches the given result. Providers whose results are
	// display-only implement this as a no-op.
	Execute(res ListResult) error
}
