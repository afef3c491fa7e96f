package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/playperu/tycoon/internal/tycoon"
)

func sampleTeams() []TeamSnapshot {
	alpha := tycoon.NewTeam(0, "Alpha Corp", "blue")
	alpha.History = append(alpha.History, "Join a Marketplace")
	alpha.Metrics.Revenue = 15000
	beta := tycoon.NewTeam(1, "Beta Ltd", "red")
	return SnapshotTeams([]tycoon.Team{alpha, beta})
}

func TestSnapshotTeams(t *testing.T) {
	teams := sampleTeams()
	if teams[0].LastAction != "Join a Marketplace" {
		t.Errorf("alpha last action = %q", teams[0].LastAction)
	}
	if teams[1].LastAction != NoAction {
		t.Errorf("beta last action = %q, want %q", teams[1].LastAction, NoAction)
	}
	if teams[0].Metrics.Revenue != 15000 {
		t.Errorf("alpha revenue = %d", teams[0].Metrics.Revenue)
	}
}

func TestCannedPicksFromRoundTable(t *testing.T) {
	c := NewCanned(rand.New(rand.NewPCG(1, 2)))

	for round := 1; round <= 10; round++ {
		got := c.Analyze(context.Background(), nil, ScenarioSnapshot{}, round)
		if !slices.Contains(roundLines[round], got) {
			t.Errorf("round %d: %q not in round table", round, got)
		}
	}
}

func TestCannedFallsBackOutOfRange(t *testing.T) {
	c := NewCanned(nil)

	for _, round := range []int{0, 11, 99, -1} {
		got := c.Analyze(context.Background(), nil, ScenarioSnapshot{}, round)
		if !slices.Contains(fallbackLines, got) {
			t.Errorf("round %d: %q not in fallback pool", round, got)
		}
	}
}

func TestNew(t *testing.T) {
	p, err := New(Config{Kind: KindCanned}, slog.Default())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.(*Canned); !ok {
		t.Errorf("canned kind built %T", p)
	}

	p, err = New(Config{Kind: KindGenerative}, slog.Default())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.(*Generative); !ok {
		t.Errorf("generative kind built %T", p)
	}

	if _, err := New(Config{Kind: "oracle"}, slog.Default()); !errors.Is(err, tycoon.ErrConfiguration) {
		t.Errorf("unknown kind err = %v, want ErrConfiguration", err)
	}
}

func TestGenerativeWithoutKey(t *testing.T) {
	g := NewGenerative(GenerativeConfig{}, slog.Default())

	if got := g.Analyze(context.Background(), sampleTeams(), ScenarioSnapshot{}, 1); got != unavailableText {
		t.Errorf("got %q, want unavailable text", got)
	}
	if err := g.Check(context.Background()); err == nil {
		t.Error("Check without key should fail")
	}
}

func newChatServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func chatCompletion(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	}
}

func TestGenerativeAnalyze(t *testing.T) {
	var prompt string
	srv := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Model != "tycoon-model" {
			t.Errorf("model = %q", body.Model)
		}
		if len(body.Messages) > 0 {
			prompt = body.Messages[0].Content
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion("  Alpha Corp is soaring. Beta Ltd should watch its cash.  "))
	})

	g := NewGenerative(GenerativeConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL + "/",
		Model:   "tycoon-model",
		Timeout: 5 * time.Second,
	}, slog.Default())

	got := g.Analyze(context.Background(), sampleTeams(), ScenarioSnapshot{Title: "The Digital Leap", Description: "Go online."}, 1)
	if got != "Alpha Corp is soaring. Beta Ltd should watch its cash." {
		t.Errorf("got %q", got)
	}

	for _, want := range []string{
		"Round: 1",
		"The Digital Leap - Go online.",
		"Alpha Corp: Rev $15000, Cust 0, Infra 10, Brand 10. Last Action: Join a Marketplace",
		"Beta Ltd: Rev $10000, Cust 0, Infra 10, Brand 10. Last Action: None",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGenerativeEmptyResponse(t *testing.T) {
	srv := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion("   "))
	})

	g := NewGenerative(GenerativeConfig{APIKey: "k", BaseURL: srv.URL + "/"}, slog.Default())
	if got := g.Analyze(context.Background(), sampleTeams(), ScenarioSnapshot{}, 2); got != emptyText {
		t.Errorf("got %q, want %q", got, emptyText)
	}
}

func TestGenerativeFailureFallsBack(t *testing.T) {
	srv := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	})

	g := NewGenerative(GenerativeConfig{APIKey: "k", BaseURL: srv.URL + "/"}, slog.Default())
	if got := g.Analyze(context.Background(), sampleTeams(), ScenarioSnapshot{}, 3); got != failureText {
		t.Errorf("got %q, want %q", got, failureText)
	}
}

func TestGenerativeTimeoutFallsBack(t *testing.T) {
	release := make(chan struct{})
	srv := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	g := NewGenerative(GenerativeConfig{APIKey: "k", BaseURL: srv.URL + "/", Timeout: 50 * time.Millisecond}, slog.Default())

	start := time.Now()
	got := g.Analyze(context.Background(), sampleTeams(), ScenarioSnapshot{}, 4)
	if got != failureText {
		t.Errorf("got %q, want %q", got, failureText)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("analysis took %s, timeout not honoured", elapsed)
	}
}
