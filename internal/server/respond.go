package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/playperu/tycoon/internal/tycoon"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

const maxBodyBytes = 1 << 16

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeGameError maps an orchestrator error to its HTTP status. Domain
// errors carry a message safe to show; anything else is internal.
func writeGameError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, tycoon.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, tycoon.ErrInvalidChoice):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, tycoon.ErrConfiguration):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("game operation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
