package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandleOpenAPI(t *testing.T) {
	h := handleOpenAPI()
	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rec := httptest.NewRecorder()

	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "application/json") {
		t.Fatalf("content-type = %q, want application/json", got)
	}

	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&doc); err != nil {
		t.Fatalf("decoding spec: %v", err)
	}

	for path, method := range map[string]string{
		"/healthz":               "get",
		"/ws/events":             "get",
		"/api/facilitator/login": "post",
		"/api/catalog/scenarios": "get",
		"/api/catalog/badges":    "get",
		"/api/game":              "get",
		"/api/game/leaderboard":  "get",
		"/api/game/events":       "get",
		"/api/game/start":        "post",
		"/api/game/begin":        "post",
		"/api/game/choice":       "post",
		"/api/game/acknowledge":  "post",
		"/api/game/next":         "post",
		"/api/game/reset":        "post",
	} {
		if _, ok := doc.Paths[path][method]; !ok {
			t.Errorf("spec missing %s %s", strings.ToUpper(method), path)
		}
	}
}

func TestSwaggerUI(t *testing.T) {
	r := testRouter(t, testDeps(t))

	req := httptest.NewRequest(http.MethodGet, "/docs/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "text/html") {
		t.Fatalf("content-type = %q, want text/html", got)
	}
}
