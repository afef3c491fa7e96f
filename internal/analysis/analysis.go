// Package analysis produces the market commentary shown at the end of each
// round. Providers never fail: any problem turns into a fallback line.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/playperu/tycoon/internal/tycoon"
)

// NoAction is reported as the last action of a team that has not chosen yet.
const NoAction = "None"

// TeamSnapshot is the read-only view of a team a provider sees.
type TeamSnapshot struct {
	Name       string
	Metrics    tycoon.Metrics
	LastAction string
}

// ScenarioSnapshot is the read-only view of the scenario that just finished.
type ScenarioSnapshot struct {
	Title       string
	Description string
}

// Provider comments on the market after a round. Analyze must return a
// non-empty string and must not block past ctx.
type Provider interface {
	Analyze(ctx context.Context, teams []TeamSnapshot, scenario ScenarioSnapshot, round int) string
	Check(ctx context.Context) error
}

// SnapshotTeams converts teams for a provider call.
func SnapshotTeams(teams []tycoon.Team) []TeamSnapshot {
	out := make([]TeamSnapshot, len(teams))
	for i, t := range teams {
		last := t.LastAction()
		if last == "" {
			last = NoAction
		}
		out[i] = TeamSnapshot{Name: t.Name, Metrics: t.Metrics, LastAction: last}
	}
	return out
}

func SnapshotScenario(s tycoon.Scenario) ScenarioSnapshot {
	return ScenarioSnapshot{Title: s.Title, Description: s.Description}
}

type Kind string

const (
	KindCanned     Kind = "canned"
	KindGenerative Kind = "generative"
)

type Config struct {
	Kind    Kind
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// New builds the provider selected by cfg.Kind.
func New(cfg Config, logger *slog.Logger) (Provider, error) {
	switch cfg.Kind {
	case KindCanned, "":
		return NewCanned(nil), nil
	case KindGenerative:
		return NewGenerative(GenerativeConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		}, logger), nil
	default:
		return nil, fmt.Errorf("unknown analysis provider %q: %w", cfg.Kind, tycoon.ErrConfiguration)
	}
}
