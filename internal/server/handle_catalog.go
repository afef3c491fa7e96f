package server

import (
	"net/http"

	"github.com/playperu/tycoon/internal/game"
	"github.com/playperu/tycoon/internal/tycoon"
)

// badgeDisplay is how the presentation layer renders each badge.
var badgeDisplay = map[tycoon.BadgeID]struct{ Icon, Color string }{
	tycoon.BadgeUnicorn:        {Icon: "crown", Color: "yellow"},
	tycoon.BadgeTechTitan:      {Icon: "cpu", Color: "purple"},
	tycoon.BadgeViralSensation: {Icon: "users", Color: "pink"},
	tycoon.BadgeBrandIcon:      {Icon: "megaphone", Color: "indigo"},
	tycoon.BadgeScalable:       {Icon: "rocket", Color: "orange"},
}

type BadgeInfo struct {
	ID          tycoon.BadgeID `json:"id"`
	Label       string         `json:"label"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Color       string         `json:"color"`
}

func handleCatalogScenarios(g *game.Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scenarios := g.Scenarios()
		out := make([]ScenarioInfo, len(scenarios))
		for i, sc := range scenarios {
			out[i] = scenarioInfo(sc, i+1)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleCatalogBadges() http.HandlerFunc {
	rules := tycoon.BadgeRules()
	badges := make([]BadgeInfo, len(rules))
	for i, rule := range rules {
		d := badgeDisplay[rule.ID]
		badges[i] = BadgeInfo{
			ID:          rule.ID,
			Label:       rule.Label,
			Description: rule.Description,
			Icon:        d.Icon,
			Color:       d.Color,
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, badges)
	}
}
