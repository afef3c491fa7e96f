package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/playperu/tycoon/internal/handler/health"
)

func addRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	g := deps.Game
	broker := deps.Broker
	auth := newFacilitatorAuth(deps.Facilitator)
	limiter := newRateLimiter(deps.RateLimit)

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("E-Com Tycoon API", "/openapi.json", "/docs"))
	r.Mount("/healthz", health.NewHandler(logger, deps.Checks).Routes())
	r.Get("/ws/events", handleWSEvents(logger, broker))

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.Post("/facilitator/login", handleFacilitatorLogin(logger, auth))

		r.Get("/catalog/scenarios", handleCatalogScenarios(g))
		r.Get("/catalog/badges", handleCatalogBadges())

		r.Get("/game", handleGameState(g))
		r.Get("/game/leaderboard", handleLeaderboard(g))
		r.Get("/game/events", handleEvents(broker))

		// Game controls, facilitator only when a password is configured.
		r.Group(func(r chi.Router) {
			r.Use(requireFacilitator(logger, auth))
			r.Post("/game/start", handleStartGame(logger, g))
			r.Post("/game/begin", handleBeginDecisionPhase(logger, g))
			r.Post("/game/choice", handleSelectChoice(logger, g))
			r.Post("/game/acknowledge", handleAcknowledge(logger, g))
			r.Post("/game/next", handleNextRound(logger, g))
			r.Post("/game/reset", handleReset(g))
		})
	})

	if deps.Board != nil {
		logger.Info("serving board UI")
		r.NotFound(handleBoard(deps.Board))
	}
}
