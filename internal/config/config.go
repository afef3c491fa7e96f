package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	MaxTeams int `env:"GAME_MAX_TEAMS" envDefault:"4"`

	// BoardDir is an optional directory holding a built board UI.
	BoardDir string `env:"BOARD_DIR"`

	Analysis    AnalysisConfig    `envPrefix:"ANALYSIS_"`
	CORS        CORSConfig        `envPrefix:"CORS_"`
	RateLimit   RateLimitConfig   `envPrefix:"RATE_LIMIT_"`
	Facilitator FacilitatorConfig `envPrefix:"FACILITATOR_"`
}

type AnalysisConfig struct {
	// Provider is "canned" or "generative".
	Provider string        `env:"PROVIDER" envDefault:"canned"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
	APIKey   string        `env:"API_KEY"`
	BaseURL  string        `env:"BASE_URL"`
	Model    string        `env:"MODEL" envDefault:"gpt-4o-mini"`
}

type CORSConfig struct {
	Origins []string `env:"ORIGINS" envDefault:"*" envSeparator:","`
	Debug   bool     `env:"DEBUG" envDefault:"false"`
}

type RateLimitConfig struct {
	Enabled           bool    `env:"ENABLED" envDefault:"true"`
	RequestsPerSecond float64 `env:"RPS" envDefault:"10"`
	Burst             int     `env:"BURST" envDefault:"20"`
	TrustProxy        bool    `env:"TRUST_PROXY" envDefault:"false"`
}

// FacilitatorConfig protects the game controls. With an empty PasswordHash
// anyone may drive the game.
type FacilitatorConfig struct {
	PasswordHash string        `env:"PASSWORD_HASH"`
	JWTSecret    string        `env:"JWT_SECRET"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"12h"`
}

func (f FacilitatorConfig) Enabled() bool { return f.PasswordHash != "" }

// Load reads an optional .env file from the working directory, then parses
// the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	if c.Facilitator.Enabled() && len(c.Facilitator.JWTSecret) < 32 {
		return errors.New("FACILITATOR_JWT_SECRET must be at least 32 characters when FACILITATOR_PASSWORD_HASH is set")
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive when rate limiting is enabled")
	}
	return nil
}
