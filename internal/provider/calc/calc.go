// Package calc implements the arithmetic search provider.
//
// Queries that evaluate as infix arithmetic produce equations kept in a
// bounded, newest-first history. A query that is purely a numeric literal is
// not a candidate: plain numbers are usually typed for other providers.
// Results are display-only; launching an equation is a no-op.
package calc

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/expr-lang/expr"

	"github.com/lumen-sh/lumen/internal/launch"
	"github.com/lumen-sh/lumen/internal/provider"
)

// ProviderName identifies the arithmetic provider in logs.
const ProviderName = "calc"

// DefaultHistorySize bounds the equation history.
const DefaultHistorySize = 100

// Equation is one evaluated expression.
type Equation struct {
	// Expression is the evaluated expression, whitespace stripped.
	Expression string
	// Result is the formatted value, or a failure marker.
	Result string
	// Valid reports whether evaluation succeeded.
	Valid bool
}

// Provider evaluates arithmetic queries against a bounded history.
type Provider struct {
	capacity int
	log      *slog.Logger

	mu      sync.Mutex
	history []Equation // newest first
}

// New creates the provider. capacity <= 0 uses DefaultHistorySize.
func New(capacity int, log *slog.Logger) *Provider {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	if log == nil {
		log = slog.Default()
	}
	return &Provider{capacity: capacity, log: log}
}

// Name implements provider.Provider.
func (p *Provider) Name() string { return ProviderName }

// Search evaluates query as an arithmetic expression.
//
// Candidacy rules: an empty query or a pure numeric literal is not a
// candidate. A successful evaluation is always a candidate and records the
// equation unless it duplicates a recent entry. A failed evaluation is
// still a candidate when the query contains an arithmetic operator, showing
// the evaluator is in progress rather than irrelevant.
func (p *Provider) Search(query string) (bool, error) {
	expression := strings.ReplaceAll(strings.TrimSpace(query), " ", "")
	if expression == "" {
		return false, nil
	}

	// Plain numbers are not equations.
	if _, err := strconv.ParseFloat(expression, 64); err == nil {
		return false, nil
	}

	result, err := evaluate(expression)
	if err != nil {
		if strings.ContainsAny(expression, "+-*/") {
			p.log.Debug("expression in progress",
				slog.String("provider", ProviderName),
				slog.String("expression", expression))
			return true, nil
		}
		return false, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	eq := Equation{Expression: expression, Result: result, Valid: true}
	if p.isRecentDuplicate(eq) {
		p.log.Debug("duplicate equation suppressed",
			slog.String("provider", ProviderName),
			slog.String("expression", expression))
		return true, nil
	}

	p.history = append([]Equation{eq}, p.history...)
	if len(p.history) > p.capacity {
		p.history = p.history[:p.capacity]
	}

	p.log.Info("evaluated expression",
		slog.String("provider", ProviderName),
		slog.String("expression", expression),
		slog.String("result", result))

	return true, nil
}

// isRecentDuplicate compares an equation against the two most recent history
// entries: an exact or substring expression match suppresses insertion.
func (p *Provider) isRecentDuplicate(eq Equation) bool {
	for i := 0; i < len(p.history) && i < 2; i++ {
		recent := p.history[i].Expression
		if eq.Expression == recent ||
			strings.Contains(recent, eq.Expression) ||
			strings.Contains(eq.Expression, recent) {
			return true
		}
	}
	return false
}

// History returns a copy of the equation history, newest first.
func (p *Provider) History() []Equation {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Equation, len(p.history))
	copy(out, p.history)
	return out
}

// Results exposes the valid history entries, newest first with descending
// scores. Equations are display-only, so every launch action is a no-op.
func (p *Provider) Results() []provider.ListResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]provider.ListResult, 0, len(p.history))
	for _, eq := range p.history {
		if !eq.Valid {
			continue
		}
		out = append(out, provider.ListResult{
			Label:  fmt.Sprintf("%s = %s", eq.Expression, eq.Result),
			Score:  len(p.history) - len(out),
			Launch: launch.NoOp(),
		})
	}
	return out
}

// Execute is a logging no-op; arithmetic results are display-only.
func (p *Provider) Execute(res provider.ListResult) error {
	p.log.Info("equation selected", slog.String("result", res.Label))
	return nil
}

// evaluate parses and evaluates an infix arithmetic expression, returning
// the formatted numeric value. Non-numeric results are rejected so queries
// that merely happen to be valid expressions ("true", quoted strings) do not
// claim candidacy.
func evaluate(expression string) (string, error) {
	value, err := expr.Eval(expression, nil)
	if err != nil {
		return "", err
	}

	switch v := value.(type) {
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("expression result is not numeric: %T", value)
	}
}
