package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/tycoon/internal/analysis"
	"github.com/playperu/tycoon/internal/config"
	"github.com/playperu/tycoon/internal/game"
)

func newTestGame(t *testing.T, broker *Broker) *game.Game {
	t.Helper()
	g, err := game.New(game.Options{
		Analyst:  analysis.NewCanned(rand.New(rand.NewPCG(1, 2))),
		Notifier: broker,
		Logger:   slog.New(slog.DiscardHandler),
	})
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	t.Cleanup(g.Close)
	return g
}

func testDeps(t *testing.T) Deps {
	t.Helper()
	broker := NewBroker()
	return Deps{
		Game:   newTestGame(t, broker),
		Broker: broker,
		CORS:   config.CORSConfig{Origins: []string{"*"}},
	}
}

func testRouter(t *testing.T, deps Deps) chi.Router {
	t.Helper()
	return newRouter(slog.New(slog.DiscardHandler), deps)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response: %v (body %q)", err, rec.Body.String())
	}
	return v
}

func TestCORSPreflight(t *testing.T) {
	deps := testDeps(t)
	deps.CORS = config.CORSConfig{Origins: []string{"http://board.test"}}
	r := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodOptions, "/api/game/start", nil)
	req.Header.Set("Origin", "http://board.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://board.test" {
		t.Errorf("Allow-Origin = %q, want http://board.test", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/game", nil)
	req.Header.Set("Origin", "http://elsewhere.test")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin for unknown origin = %q, want empty", got)
	}
}
