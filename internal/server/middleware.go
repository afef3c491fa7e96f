package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/playperu/tycoon/internal/config"
)

func newStructuredLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("http request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration_ms", time.Since(start).Milliseconds(),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// newCORS lets the board and the facilitator console run on another origin.
// Auth travels in the Authorization header, so credentials stay off.
func newCORS(logger *slog.Logger, cfg config.CORSConfig) func(next http.Handler) http.Handler {
	methods := []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Origins,
		AllowedMethods: methods,
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		Debug:          cfg.Debug,
	})

	logger.Debug("cors configured",
		"allowed_origins", cfg.Origins,
		"allowed_methods", methods,
		"debug", cfg.Debug,
	)
	return c.Handler
}
