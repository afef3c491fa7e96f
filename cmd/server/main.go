package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/playperu/tycoon/internal/analysis"
	"github.com/playperu/tycoon/internal/config"
	"github.com/playperu/tycoon/internal/game"
	"github.com/playperu/tycoon/internal/handler/health"
	"github.com/playperu/tycoon/internal/server"
	"github.com/playperu/tycoon/internal/tycoon"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Market analysis ---
	analyst, err := analysis.New(analysis.Config{
		Kind:    analysis.Kind(cfg.Analysis.Provider),
		APIKey:  cfg.Analysis.APIKey,
		BaseURL: cfg.Analysis.BaseURL,
		Model:   cfg.Analysis.Model,
		Timeout: cfg.Analysis.Timeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("creating analysis provider: %w", err)
	}
	logger.Info("analysis provider ready", "provider", cfg.Analysis.Provider)

	// --- Game ---
	broker := server.NewBroker()
	g, err := game.New(game.Options{
		MaxTeams:        cfg.MaxTeams,
		Analyst:         analyst,
		AnalysisTimeout: cfg.Analysis.Timeout,
		Notifier:        broker,
		Logger:          logger,
	})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	defer g.Close()
	logger.Info("game ready", "rounds", len(g.Scenarios()), "max_teams", g.MaxTeams())

	board, err := boardFS(cfg.BoardDir)
	if err != nil {
		return err
	}

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, server.Deps{
		Game:   g,
		Broker: broker,
		Checks: map[string]health.Checker{
			"catalog": health.CheckerFunc(func(context.Context) error {
				return tycoon.ValidateCatalog(g.Scenarios())
			}),
			"analysis": analyst,
		},
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
		Facilitator: cfg.Facilitator,
		Board:       board,
	})

	// --- Run ---
	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(egctx)
	})

	eg.Go(func() error {
		<-egctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return eg.Wait()
}

func boardFS(dir string) (fs.FS, error) {
	if dir == "" {
		return nil, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("board dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("board dir %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}
