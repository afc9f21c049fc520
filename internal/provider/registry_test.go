package provider

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-sh/lumen/internal/launch"
)

// fakeProvider records Search calls and serves canned results.
type fakeProvider struct {
	name      string
	candidate bool
	err       error
	results   []ListResult
	queries   []string
	executed  []ListResult
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Search(query string) (bool, error) {
	f.queries = append(f.queries, query)
	return f.candidate, f.err
}

func (f *fakeProvider) Results() []ListResult { return f.results }

func (f *fakeProvider) Execute(res ListResult) error {
	f.executed = append(f.executed, res)
	return nil
}

func results(scores ...int) []ListResult {
	out := make([]ListResult, len(scores))
	for i, s := range scores {
		out[i] = ListResult{
			Label:  fmt.Sprintf("r%d", s),
			Score:  s,
			Launch: launch.NoOp(),
		}
	}
	return out
}

func TestRegistry_FanOutInRegistrationOrder(t *testing.T) {
	a := &fakeProvider{name: "a", candidate: true}
	b := &fakeProvider{name: "b", candidate: false}
	c := &fakeProvider{name: "c", candidate: true}

	r := NewRegistry(slog.Default())
	r.Register(a)
	r.Register(b)
	r.Register(c)

	candidates := r.Search("query")

	require.Len(t, candidates, 2)
	assert.Equal(t, "a", candidates[0].Name())
	assert.Equal(t, "c", candidates[1].Name())

	for _, p := range []*fakeProvider{a, b, c} {
		assert.Equal(t, []string{"query"}, p.queries, "every provider sees the query")
	}
}

func TestRegistry_ErroringProviderIsSkippedOthersUnaffected(t *testing.T) {
	broken := &fakeProvider{name: "broken", err: fmt.Errorf("database never registered")}
	healthy := &fakeProvider{name: "healthy", candidate: true}

	r := NewRegistry(slog.Default())
	r.Register(broken)
	r.Register(healthy)

	candidates := r.Search("query")

	require.Len(t, candidates, 1)
	assert.Equal(t, "healthy", candidates[0].Name())
}

func TestAggregate_DescendingAcrossProviders(t *testing.T) {
	a := &fakeProvider{name: "a", results: results(90, 40)}
	b := &fakeProvider{name: "b", results: results(70, 10)}

	merged := Aggregate([]Provider{a, b})

	require.Len(t, merged, 4)
	got := make([]int, len(merged))
	for i, r := range merged {
		got[i] = r.Score
	}
	assert.Equal(t, []int{90, 70, 40, 10}, got)
}

func TestAggregate_PreservesPerProviderOrderOnTies(t *testing.T) {
	a := &fakeProvider{name: "a", results: []ListResult{
		{Label: "a1", Score: 50}, {Label: "a2", Score: 50},
	}}
	b := &fakeProvider{name: "b", results: []ListResult{
		{Label: "b1", Score: 50},
	}}

	merged := Aggregate([]Provider{a, b})

	require.Len(t, merged, 3)
	assert.Equal(t, "a1", merged[0].Label)
	assert.Equal(t, "a2", merged[1].Label)
	assert.Equal(t, "b1", merged[2].Label, "earlier-registered provider ranks first on ties")
}

func TestAggregate_EmptyCandidates(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}
