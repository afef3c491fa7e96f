package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

const checkTimeout = 3 * time.Second

// Checker verifies that a dependency of the game is usable.
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to a Checker.
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error { return f(ctx) }

type Handler struct {
	checks map[string]Checker
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger, checks map[string]Checker) *Handler {
	return &Handler{checks: checks, logger: logger}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.check)
	return r
}

// Result is the outcome of one named check.
type Result struct {
	Status string `json:"status"`
}

// Report maps check names to their results.
type Report map[string]Result

// Run executes every check concurrently and reports whether all passed.
func (h *Handler) Run(ctx context.Context) (Report, bool) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	var (
		mu      sync.Mutex
		report  = make(Report, len(h.checks))
		healthy = true
	)

	var eg errgroup.Group
	for name, c := range h.checks {
		eg.Go(func() error {
			status := "ok"
			if err := c.Check(ctx); err != nil {
				h.logger.Error("health check failed", "name", name, "error", err)
				status = "error"
			}

			mu.Lock()
			report[name] = Result{Status: status}
			if status != "ok" {
				healthy = false
			}
			mu.Unlock()
			return nil
		})
	}
	_ = eg.Wait()

	return report, healthy
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	report, healthy := h.Run(r.Context())

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(report)
}
