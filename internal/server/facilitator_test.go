package server

import (
	"net/http"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/playperu/tycoon/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func facilitatorDeps(t *testing.T, password string) Deps {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	deps := testDeps(t)
	deps.Facilitator = config.FacilitatorConfig{
		PasswordHash: string(hash),
		JWTSecret:    testSecret,
		TokenTTL:     time.Hour,
	}
	return deps
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": {"Bearer " + token}}
}

func TestFacilitatorLogin(t *testing.T) {
	r := testRouter(t, facilitatorDeps(t, "classroom"))

	rec := doJSON(t, r, http.MethodPost, "/api/facilitator/login", FacilitatorLoginRequest{Password: "wrong"}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password status = %d, want 401", rec.Code)
	}

	rec = doJSON(t, r, http.MethodPost, "/api/facilitator/login", FacilitatorLoginRequest{}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty password status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, r, http.MethodPost, "/api/facilitator/login", FacilitatorLoginRequest{Password: "classroom"}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", rec.Code, rec.Body)
	}
	resp := decode[FacilitatorLoginResponse](t, rec)
	if resp.Token == "" {
		t.Fatal("empty token")
	}
	if until := time.Until(resp.ExpiresAt); until <= 0 || until > time.Hour {
		t.Errorf("expiresAt = %v", resp.ExpiresAt)
	}

	rec = doJSON(t, r, http.MethodPost, "/api/game/start", StartGameRequest{TeamCount: 2}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("start without token status = %d, want 401", rec.Code)
	}

	rec = doJSON(t, r, http.MethodPost, "/api/game/start", StartGameRequest{TeamCount: 2}, bearer(resp.Token))
	if rec.Code != http.StatusOK {
		t.Fatalf("start with token status = %d: %s", rec.Code, rec.Body)
	}

	// Reads stay public.
	if rec := doJSON(t, r, http.MethodGet, "/api/game", nil, nil); rec.Code != http.StatusOK {
		t.Errorf("GET /api/game status = %d", rec.Code)
	}
}

func TestFacilitatorLoginDisabled(t *testing.T) {
	r := testRouter(t, testDeps(t))

	rec := doJSON(t, r, http.MethodPost, "/api/facilitator/login", FacilitatorLoginRequest{Password: "x"}, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, r, http.MethodPost, "/api/game/start", StartGameRequest{TeamCount: 2}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("open start status = %d: %s", rec.Code, rec.Body)
	}
}

func TestFacilitatorTokenRejected(t *testing.T) {
	deps := facilitatorDeps(t, "classroom")
	r := testRouter(t, deps)

	other := newFacilitatorAuth(config.FacilitatorConfig{
		PasswordHash: "x",
		JWTSecret:    "ffffffffffffffffffffffffffffffff",
		TokenTTL:     time.Hour,
	})
	forged, _, err := other.issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	expiring := newFacilitatorAuth(deps.Facilitator)
	expiring.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := expiring.issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tests := []struct {
		name   string
		header http.Header
	}{
		{"missing", nil},
		{"not bearer", http.Header{"Authorization": {"Basic abc"}}},
		{"garbage", bearer("not.a.jwt")},
		{"wrong secret", bearer(forged)},
		{"expired", bearer(expired)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodPost, "/api/game/reset", nil, tt.header)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
		})
	}
}
