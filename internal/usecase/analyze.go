package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"QuoteBalance/internal/domain"
	"QuoteBalance/internal/ports"
	"QuoteBalance/internal/reply"
)

// ErrEmptyArticle rejects requests carrying no article text.
var ErrEmptyArticle = errors.New("article text is empty")

// AnalyzerDeps wires the driven adapters into the extraction workflow.
type AnalyzerDeps struct {
	Model  ports.ChatModel
	Logger *slog.Logger
}

// Analyzer implements the quote-extraction workflow: prompt the model
// with the article text, parse its reply, map records into the analysis.
type Analyzer struct {
	model  ports.ChatModel
	logger *slog.Logger
}

// NewAnalyzer constructs the orchestration component.
func NewAnalyzer(deps AnalyzerDeps) *Analyzer {
	return &Analyzer{model: deps.Model, logger: deps.Logger}
}

// Analyze runs one extraction over articleText. An unparseable model
// reply is not an error for the caller: it degrades to an analysis with
// zero individuals, which the surface presents as "no sources detected".
func (a *Analyzer) Analyze(ctx context.Context, articleText string) (domain.Analysis, error) {
	if strings.TrimSpace(articleText) == "" {
		return domain.Analysis{}, ErrEmptyArticle
	}
	if a.model == nil {
		return domain.Analysis{}, fmt.Errorf("chat model is not configured")
	}

	raw, err := a.model.Complete(ctx, extractionPrompt, articleText)
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("extract sources: %w", err)
	}

	records, err := reply.Parse(raw)
	if err != nil {
		a.warn("model reply not parseable", "error", err, "reply_length", len(raw))
		return domain.Analysis{Individuals: []domain.QuotedIndividual{}}, nil
	}

	analysis := reply.Assemble(records)
	a.debug("analysis complete",
		"individuals", len(analysis.Individuals),
		"has_location", analysis.Location.Location != nil)
	return analysis, nil
}

func (a *Analyzer) debug(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}

func (a *Analyzer) warn(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Warn(msg, args...)
	}
}
