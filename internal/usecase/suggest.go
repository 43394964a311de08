package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"QuoteBalance/internal/candidates"
	"QuoteBalance/internal/domain"
	"QuoteBalance/internal/ports"
)

// SuggesterDeps wires the search adapter and the candidate filter.
type SuggesterDeps struct {
	Searcher ports.ProfileSearcher
	Filter   *candidates.Filter
	Logger   *slog.Logger
}

// Suggester finds alternative sources of the minority gender for one job
// title extracted from the analyzed article.
type Suggester struct {
	searcher ports.ProfileSearcher
	filter   *candidates.Filter
	logger   *slog.Logger
}

// NewSuggester constructs the orchestration component.
func NewSuggester(deps SuggesterDeps) *Suggester {
	return &Suggester{searcher: deps.Searcher, filter: deps.Filter, logger: deps.Logger}
}

// Suggest searches for profiles matching jobTitle (and location, when
// known) and filters them down to minority-gender candidates.
func (s *Suggester) Suggest(ctx context.Context, location, jobTitle string, minority domain.Gender) ([]domain.CandidateProfile, error) {
	if s.searcher == nil {
		return nil, fmt.Errorf("profile searcher is not configured")
	}
	if s.filter == nil {
		return nil, fmt.Errorf("candidate filter is not configured")
	}

	items, err := s.searcher.Search(ctx, domain.ProfileQuery{
		JobTitle: jobTitle,
		Location: location,
		Minority: minority,
	})
	if err != nil {
		return nil, fmt.Errorf("search profiles for %q: %w", jobTitle, err)
	}
	s.debug("search done", "job_title", jobTitle, "items", len(items))

	profiles, err := s.filter.Select(ctx, items, minority, jobTitle)
	if err != nil {
		return nil, fmt.Errorf("filter candidates for %q: %w", jobTitle, err)
	}
	s.debug("filter done", "job_title", jobTitle, "candidates", len(profiles))

	return profiles, nil
}

func (s *Suggester) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
