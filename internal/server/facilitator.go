package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/playperu/tycoon/internal/config"
)

const facilitatorSubject = "facilitator"

var errNoToken = errors.New("no bearer token")

// facilitatorAuth guards the game controls. A nil *facilitatorAuth means the
// controls are open.
type facilitatorAuth struct {
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

func newFacilitatorAuth(cfg config.FacilitatorConfig) *facilitatorAuth {
	if !cfg.Enabled() {
		return nil
	}
	return &facilitatorAuth{
		passwordHash: []byte(cfg.PasswordHash),
		secret:       []byte(cfg.JWTSecret),
		ttl:          cfg.TokenTTL,
		now:          time.Now,
	}
}

func (a *facilitatorAuth) checkPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil
}

func (a *facilitatorAuth) issue() (string, time.Time, error) {
	now := a.now()
	expires := now.Add(a.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   facilitatorSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}
	return signed, expires, nil
}

func (a *facilitatorAuth) verify(token string) error {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(facilitatorSubject),
		jwt.WithTimeFunc(a.now),
		jwt.WithExpirationRequired(),
	)
	return err
}

func bearerToken(r *http.Request) (string, error) {
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || token == "" {
		return "", errNoToken
	}
	return token, nil
}

func requireFacilitator(logger *slog.Logger, auth *facilitatorAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auth == nil {
				next.ServeHTTP(w, r)
				return
			}

			token, err := bearerToken(r)
			if err == nil {
				err = auth.verify(token)
			}
			if err != nil {
				logger.Debug("facilitator auth rejected", "path", r.URL.Path, "error", err)
				writeError(w, http.StatusUnauthorized, "not authenticated")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type FacilitatorLoginRequest struct {
	Password string `json:"password"`
}

type FacilitatorLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func handleFacilitatorLogin(logger *slog.Logger, auth *facilitatorAuth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if auth == nil {
			writeError(w, http.StatusNotFound, "facilitator login is disabled")
			return
		}

		var req FacilitatorLoginRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Password == "" {
			writeError(w, http.StatusBadRequest, "password is required")
			return
		}
		if !auth.checkPassword(req.Password) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		token, expires, err := auth.issue()
		if err != nil {
			logger.Error("issuing facilitator token", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, FacilitatorLoginResponse{Token: token, ExpiresAt: expires})
	}
}
