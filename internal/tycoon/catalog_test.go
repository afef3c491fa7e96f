package tycoon_test

import (
	"errors"
	"testing"

	"github.com/playperu/tycoon/internal/tycoon"
)

func TestBuiltinCatalogIsValid(t *testing.T) {
	catalog := tycoon.Scenarios()
	if len(catalog) != 10 {
		t.Errorf("scenarios = %d, want 10", len(catalog))
	}
	if err := tycoon.ValidateCatalog(catalog); err != nil {
		t.Fatalf("ValidateCatalog: %v", err)
	}
}

func TestScenariosReturnsCopy(t *testing.T) {
	a := tycoon.Scenarios()
	a[0].Title = "changed"
	a[0].Choices[0].Impact.Revenue = 1

	b := tycoon.Scenarios()
	if b[0].Title == "changed" || b[0].Choices[0].Impact.Revenue == 1 {
		t.Fatal("mutating the returned catalog leaked into the built-in one")
	}
}

func TestValidateCatalog(t *testing.T) {
	tests := []struct {
		name    string
		catalog []tycoon.Scenario
		wantErr bool
	}{
		{"empty", nil, true},
		{"no choices", []tycoon.Scenario{{ID: 1}}, true},
		{"blank choice id", []tycoon.Scenario{{ID: 1, Choices: []tycoon.Choice{{Label: "x"}}}}, true},
		{"duplicate choice", []tycoon.Scenario{{ID: 1, Choices: []tycoon.Choice{{ID: "a"}, {ID: "a"}}}}, true},
		{"single choice", []tycoon.Scenario{{ID: 1, Choices: []tycoon.Choice{{ID: "a"}}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tycoon.ValidateCatalog(tt.catalog)
			if tt.wantErr && !errors.Is(err, tycoon.ErrConfiguration) {
				t.Errorf("err = %v, want ErrConfiguration", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRoster(t *testing.T) {
	roster := tycoon.Roster()
	if len(roster) != 4 {
		t.Fatalf("roster size = %d, want 4", len(roster))
	}
	seen := map[string]bool{}
	for _, r := range roster {
		if seen[r.Name] || seen[r.Tag] {
			t.Errorf("duplicate roster identity %+v", r)
		}
		seen[r.Name], seen[r.Tag] = true, true
	}
}

func TestLeaderboardStableDescending(t *testing.T) {
	teams := []tycoon.Team{
		tycoon.NewTeam(0, "Alpha Corp", "blue"),
		tycoon.NewTeam(1, "Beta Ltd", "red"),
		tycoon.NewTeam(2, "Gamma Inc", "green"),
		tycoon.NewTeam(3, "Delta Co", "purple"),
	}
	teams[0].Metrics.Revenue = 12000
	teams[1].Metrics.Revenue = 20000
	teams[2].Metrics.Revenue = 12000
	teams[3].Metrics.Revenue = -500

	got := tycoon.Leaderboard(teams)

	wantIDs := []int{1, 0, 2, 3}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("rank %d = team %d, want team %d", i, got[i].ID, id)
		}
	}
	if teams[0].ID != 0 || teams[1].ID != 1 {
		t.Error("Leaderboard reordered its input")
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		name string
		out  tycoon.TurnOutcome
		want tycoon.Cue
	}{
		{"badge wins", tycoon.TurnOutcome{Impact: tycoon.Impact{Revenue: -1}, Unlocked: []tycoon.BadgeID{tycoon.BadgeScalable}}, tycoon.CueMilestone},
		{"loss", tycoon.TurnOutcome{Impact: tycoon.Impact{Revenue: -500}}, tycoon.CueLoss},
		{"big revenue", tycoon.TurnOutcome{Impact: tycoon.Impact{Revenue: 2001}}, tycoon.CueMoney},
		{"many customers", tycoon.TurnOutcome{Impact: tycoon.Impact{Customers: 301}}, tycoon.CueMoney},
		{"modest", tycoon.TurnOutcome{Impact: tycoon.Impact{Revenue: 2000, Customers: 300}}, tycoon.CueClick},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tycoon.CueFor(tt.out); got != tt.want {
				t.Errorf("CueFor = %q, want %q", got, tt.want)
			}
		})
	}

	if got := tycoon.RoundEndCue(nil); got != tycoon.CueMilestone {
		t.Errorf("RoundEndCue(nil) = %q, want milestone", got)
	}
	if got := tycoon.RoundEndCue([]tycoon.BadgeID{tycoon.BadgeUnicorn}); got != tycoon.CueNone {
		t.Errorf("RoundEndCue(badges) = %q, want none", got)
	}
}
