package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	unavailableText = "Market Analysis unavailable (Check API Key). General trend: The market is reacting to recent infrastructure investments."
	emptyText       = "Market is volatile."
	failureText     = "Analysts are crunching the numbers. Competition is heating up!"

	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 10 * time.Second
)

var errNoAPIKey = errors.New("no api key configured")

type GenerativeConfig struct {
	APIKey string
	// BaseURL points at any OpenAI-compatible endpoint. Empty uses the
	// library default.
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Generative asks a chat-completion model for commentary.
type Generative struct {
	client  openai.Client
	enabled bool
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

func NewGenerative(cfg GenerativeConfig, logger *slog.Logger) *Generative {
	g := &Generative{
		enabled: strings.TrimSpace(cfg.APIKey) != "",
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}
	if g.model == "" {
		g.model = defaultModel
	}
	if g.timeout <= 0 {
		g.timeout = defaultTimeout
	}
	if !g.enabled {
		return g
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	g.client = openai.NewClient(opts...)
	return g
}

func (g *Generative) Analyze(ctx context.Context, teams []TeamSnapshot, scenario ScenarioSnapshot, round int) string {
	if !g.enabled {
		return unavailableText
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(teams, scenario, round)),
		},
	})
	if err != nil {
		g.logger.Error("market analysis request failed", "round", round, "error", err)
		return failureText
	}
	if len(resp.Choices) == 0 {
		return emptyText
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return emptyText
	}
	return text
}

// Check verifies the backend accepts the configured credentials.
func (g *Generative) Check(ctx context.Context) error {
	if !g.enabled {
		return errNoAPIKey
	}
	if _, err := g.client.Models.List(ctx); err != nil {
		return fmt.Errorf("listing models: %w", err)
	}
	return nil
}

func buildPrompt(teams []TeamSnapshot, scenario ScenarioSnapshot, round int) string {
	summaries := make([]string, len(teams))
	for i, t := range teams {
		summaries[i] = fmt.Sprintf("%s: Rev $%d, Cust %d, Infra %g, Brand %g. Last Action: %s",
			t.Name, t.Metrics.Revenue, t.Metrics.Customers,
			t.Metrics.Infrastructure, t.Metrics.BrandAwareness, t.LastAction)
	}

	var b strings.Builder
	b.WriteString("You are an E-commerce business analyst for a simulation game.\n")
	fmt.Fprintf(&b, "Round: %d\n", round)
	fmt.Fprintf(&b, "Scenario Context: %s - %s\n\n", scenario.Title, scenario.Description)
	b.WriteString("Team Data:\n")
	b.WriteString(strings.Join(summaries, "\n"))
	b.WriteString("\n\nProvide a witty, 2-sentence commentary on the market state. ")
	b.WriteString("Mention one team doing well and one risk factor for the group.\n")
	b.WriteString("Keep it under 40 words.")
	return b.String()
}
