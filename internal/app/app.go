// Package app wires configuration, adapters and use cases into a
// runnable service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"QuoteBalance/internal/candidates"
	"QuoteBalance/internal/config"
	"QuoteBalance/internal/gender"
	"QuoteBalance/internal/infrastructure/genderize"
	"QuoteBalance/internal/infrastructure/llm"
	"QuoteBalance/internal/infrastructure/websearch"
	"QuoteBalance/internal/logging"
	"QuoteBalance/internal/ports"
	"QuoteBalance/internal/server"
	"QuoteBalance/internal/usecase"
)

const shutdownGrace = 10 * time.Second

// Application owns the HTTP server and its dependency graph.
type Application struct {
	cfg    config.Config
	logger *slog.Logger
	server *server.Server
}

// New builds the full application from configuration.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	var model ports.ChatModel
	if cfg.OpenAI.APIKey != "" {
		completion, err := llm.New(cfg.OpenAI)
		if err != nil {
			return nil, fmt.Errorf("build completion client: %w", err)
		}
		model = completion
	} else {
		baseLogger.Warn("no OpenAI API key configured; article analysis is disabled")
	}

	analyzer := usecase.NewAnalyzer(usecase.AnalyzerDeps{
		Model:  model,
		Logger: baseLogger.With("component", "analyzer"),
	})

	classifier := gender.NewClassifier(
		genderize.NewClient(cfg.Genderize.Endpoint, cfg.Genderize.APIKey),
		baseLogger.With("component", "classifier"),
	)
	filter := candidates.NewFilter(classifier, cfg.Search.Candidates,
		baseLogger.With("component", "filter"))

	suggester := usecase.NewSuggester(usecase.SuggesterDeps{
		Searcher: websearch.NewClient(cfg.Search),
		Filter:   filter,
		Logger:   baseLogger.With("component", "suggester"),
	})

	srv, err := server.New(cfg.Server, server.Deps{
		Analyzer:  analyzer,
		Suggester: suggester,
		Logger:    baseLogger.With("component", "server"),
	})
	if err != nil {
		return nil, fmt.Errorf("build server: %w", err)
	}

	return &Application{cfg: cfg, logger: baseLogger, server: srv}, nil
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		a.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return <-errCh
	}
}
