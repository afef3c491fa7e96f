package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/playperu/tycoon/internal/game"
	"github.com/playperu/tycoon/internal/tycoon"
)

// ChoiceInfo is a choice as offered to a team: the impact stays hidden until
// the choice is made.
type ChoiceInfo struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type ScenarioInfo struct {
	ID          int          `json:"id"`
	Round       int          `json:"round"`
	Unit        string       `json:"unit"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Choices     []ChoiceInfo `json:"choices"`
}

// GameStateResponse is the session plus what a board needs to render it.
type GameStateResponse struct {
	game.Session
	TotalRounds int           `json:"totalRounds"`
	MaxTeams    int           `json:"maxTeams"`
	ActiveTeam  *tycoon.Team  `json:"activeTeam"`
	Scenario    *ScenarioInfo `json:"scenario"`
	Leaderboard []tycoon.Team `json:"leaderboard"`
}

type StartGameRequest struct {
	TeamCount int `json:"teamCount"`
}

type SelectChoiceRequest struct {
	ChoiceID string `json:"choiceId"`
}

func scenarioInfo(sc tycoon.Scenario, round int) ScenarioInfo {
	info := ScenarioInfo{
		ID:          sc.ID,
		Round:       round,
		Unit:        sc.Unit,
		Title:       sc.Title,
		Description: sc.Description,
		Choices:     make([]ChoiceInfo, len(sc.Choices)),
	}
	for i, c := range sc.Choices {
		info.Choices[i] = ChoiceInfo{ID: c.ID, Label: c.Label, Description: c.Description}
	}
	return info
}

func gameState(g *game.Game) GameStateResponse {
	s := g.Snapshot()
	resp := GameStateResponse{
		Session:     s,
		TotalRounds: len(g.Scenarios()),
		MaxTeams:    g.MaxTeams(),
		Leaderboard: tycoon.Leaderboard(s.Teams),
	}
	if s.Phase == tycoon.PhaseTeamTurn {
		active := s.Teams[s.TeamIndex]
		resp.ActiveTeam = &active
	}
	if s.Phase.InRound() {
		info := scenarioInfo(g.Scenarios()[s.RoundIndex], s.RoundIndex+1)
		resp.Scenario = &info
	}
	return resp
}

func handleGameState(g *game.Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, gameState(g))
	}
}

func handleLeaderboard(g *game.Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, g.Leaderboard())
	}
}

func handleStartGame(logger *slog.Logger, g *game.Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartGameRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := g.StartGame(req.TeamCount); err != nil {
			writeGameError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, gameState(g))
	}
}

func handleSelectChoice(logger *slog.Logger, g *game.Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectChoiceRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.ChoiceID = strings.TrimSpace(req.ChoiceID)
		if req.ChoiceID == "" {
			writeError(w, http.StatusBadRequest, "choiceId is required")
			return
		}
		if err := g.SelectChoice(req.ChoiceID); err != nil {
			writeGameError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, gameState(g))
	}
}

// handleTransition serves the body-less controls.
func handleTransition(logger *slog.Logger, g *game.Game, op func() error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := op(); err != nil {
			writeGameError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, gameState(g))
	}
}

func handleBeginDecisionPhase(logger *slog.Logger, g *game.Game) http.HandlerFunc {
	return handleTransition(logger, g, g.BeginDecisionPhase)
}

func handleAcknowledge(logger *slog.Logger, g *game.Game) http.HandlerFunc {
	return handleTransition(logger, g, g.AcknowledgeResult)
}

func handleNextRound(logger *slog.Logger, g *game.Game) http.HandlerFunc {
	return handleTransition(logger, g, g.ProceedToNextRound)
}

func handleReset(g *game.Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g.Reset()
		writeJSON(w, http.StatusOK, gameState(g))
	}
}
