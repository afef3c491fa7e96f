package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/playperu/tycoon/internal/config"
	"github.com/playperu/tycoon/internal/game"
	"github.com/playperu/tycoon/internal/handler/health"
)

type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

// Deps are the collaborators the HTTP layer exposes.
type Deps struct {
	Game        *game.Game
	Broker      *Broker
	Checks      map[string]health.Checker
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	Facilitator config.FacilitatorConfig
	// Board, when set, is served for every path no API route claims.
	Board fs.FS
}

func New(addr string, logger *slog.Logger, deps Deps) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           newRouter(logger, deps),
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: logger,
	}
}

func newRouter(logger *slog.Logger, deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if deps.RateLimit.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(newStructuredLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(newCORS(logger, deps.CORS))

	addRoutes(r, logger, deps)
	return r
}

func (s *Server) Run(_ context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}

	err = s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
