package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/playperu/tycoon/internal/handler/health"
	"github.com/playperu/tycoon/internal/tycoon"
)

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "E-Com Tycoon API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Facilitator and board API for the E-Com Tycoon classroom game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Validates the scenario catalog and the market analysis provider.")
	getHealthz.AddRespStructure(health.Report{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(health.Report{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /ws/events
	getWSEvents, _ := r.NewOperationContext(http.MethodGet, "/ws/events")
	getWSEvents.SetSummary("WebSocket event stream")
	getWSEvents.SetDescription("Upgrades to a WebSocket that pushes every game event as a JSON text message.")
	getWSEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWSEvents)

	// POST /api/facilitator/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/facilitator/login")
	postLogin.SetSummary("Facilitator login")
	postLogin.SetDescription("Exchanges the facilitator password for a Bearer token. 404 when facilitator auth is off.")
	postLogin.AddReqStructure(FacilitatorLoginRequest{})
	postLogin.AddRespStructure(FacilitatorLoginResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postLogin)

	// GET /api/catalog/scenarios
	getScenarios, _ := r.NewOperationContext(http.MethodGet, "/api/catalog/scenarios")
	getScenarios.SetSummary("List scenarios")
	getScenarios.SetDescription("Returns every round's scenario. Choice impacts are not disclosed.")
	getScenarios.AddRespStructure([]ScenarioInfo{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getScenarios)

	// GET /api/catalog/badges
	getBadges, _ := r.NewOperationContext(http.MethodGet, "/api/catalog/badges")
	getBadges.SetSummary("List badges")
	getBadges.SetDescription("Returns the badge rules in evaluation order with display hints.")
	getBadges.AddRespStructure([]BadgeInfo{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getBadges)

	// GET /api/game
	getGame, _ := r.NewOperationContext(http.MethodGet, "/api/game")
	getGame.SetSummary("Get game state")
	getGame.SetDescription("Returns the session, the active team, the current scenario and the leaderboard.")
	getGame.AddRespStructure(GameStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getGame)

	// GET /api/game/leaderboard
	getLeaderboard, _ := r.NewOperationContext(http.MethodGet, "/api/game/leaderboard")
	getLeaderboard.SetSummary("Leaderboard")
	getLeaderboard.SetDescription("Teams ordered by revenue, highest first. Ties keep roster order.")
	getLeaderboard.AddRespStructure([]tycoon.Team{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getLeaderboard)

	// GET /api/game/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/game/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of game transitions. Each message is a \"game\" event.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// POST /api/game/start
	postStart, _ := r.NewOperationContext(http.MethodPost, "/api/game/start")
	postStart.SetSummary("Start game")
	postStart.SetDescription("Creates the teams and opens round one. Only valid during setup.")
	postStart.AddReqStructure(StartGameRequest{})
	addControlResponses(postStart)
	_ = r.AddOperation(postStart)

	controls := []struct {
		path, summary, description string
	}{
		{"/api/game/begin", "Begin decision phase", "Moves from the scenario intro to the first team's turn."},
		{"/api/game/acknowledge", "Acknowledge result", "Dismisses the last turn result and passes play to the next team, or ends the round."},
		{"/api/game/next", "Next round", "Leaves the round summary for the next scenario, or ends the game after the last one."},
		{"/api/game/reset", "Reset game", "Discards all progress and returns to setup. Always succeeds."},
	}
	for _, c := range controls {
		op, _ := r.NewOperationContext(http.MethodPost, c.path)
		op.SetSummary(c.summary)
		op.SetDescription(c.description)
		addControlResponses(op)
		_ = r.AddOperation(op)
	}

	// POST /api/game/choice
	postChoice, _ := r.NewOperationContext(http.MethodPost, "/api/game/choice")
	postChoice.SetSummary("Select choice")
	postChoice.SetDescription("Applies the active team's decision for the current scenario.")
	postChoice.AddReqStructure(SelectChoiceRequest{})
	addControlResponses(postChoice)
	postChoice.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(postChoice)

	return r.Spec
}

func addControlResponses(op openapi.OperationContext) {
	op.AddRespStructure(GameStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	op.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	op.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	op.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
