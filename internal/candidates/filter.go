// Package candidates turns raw profile search results into suggested
// alternative sources of the requested minority gender. Every exclusion
// rule is a named predicate applied in a fixed order; a result failing
// any rule is dropped, and collection stops at the configured cap.
package candidates

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"QuoteBalance/internal/domain"
	"QuoteBalance/internal/gender"
)

const defaultLimit = 5

// The Genderize API reads a leading "Dr" as a male name, so the honorific
// is stripped before classification.
var drHonorific = regexp.MustCompile(`(?i)^Dr\.?\s+`)

// Filter classifies and screens search results.
type Filter struct {
	classifier *gender.Classifier
	limit      int
	logger     *slog.Logger
}

// NewFilter builds a filter keeping at most limit candidates; limit <= 0
// selects the default of 5.
func NewFilter(classifier *gender.Classifier, limit int, logger *slog.Logger) *Filter {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &Filter{classifier: classifier, limit: limit, logger: logger}
}

// Select returns the first qualifying candidates in input order. Gender
// classification of the items runs concurrently, but acceptance and the
// cap are applied strictly in input order so truncation stays
// deterministic.
func (f *Filter) Select(ctx context.Context, items []domain.SearchItem, minority domain.Gender, jobTitle string) ([]domain.CandidateProfile, error) {
	if f.classifier == nil {
		return nil, fmt.Errorf("gender classifier is not configured")
	}

	classifications := make([]gender.Classification, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			name, _, _ := parseHeading(item.Heading)
			cls, err := f.classifier.Classify(gctx, name, item.Snippet)
			if err != nil {
				return err
			}
			classifications[i] = cls
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("classify candidates: %w", err)
	}

	selected := make([]domain.CandidateProfile, 0, f.limit)
	for i, item := range items {
		name, title, company := parseHeading(item.Heading)
		cls := classifications[i]

		switch {
		case !matchesMinority(cls, minority):
			f.debug("candidate dropped", "name", name, "rule", "minority", "label", cls.Label)
		case sheNameFalsePositive(name, cls):
			f.debug("candidate dropped", "name", name, "rule", "she-in-name")
		case jobTitleCollision(name, jobTitle):
			f.debug("candidate dropped", "name", name, "rule", "job-title-in-name")
		default:
			selected = append(selected, domain.CandidateProfile{
				Name:    name,
				Title:   title,
				Company: company,
				Gender:  cls.Label.Display(),
				About:   truncateAtSentence(item.Snippet),
				Link:    item.Link,
			})
		}

		if len(selected) >= f.limit {
			break
		}
	}

	return selected, nil
}

// matchesMinority requires exact label equality, except that a
// "probably female" verdict counts toward a female minority: the context
// override exists precisely to rescue women the name service misses.
func matchesMinority(cls gender.Classification, minority domain.Gender) bool {
	if cls.Label == minority {
		return true
	}
	return minority == domain.Female && cls.Label == domain.ProbablyFemale
}

// sheNameFalsePositive drops results that matched the search's feminine
// pronoun terms only because "she" appears as a word in the person's own
// name, unless that person explicitly self-identifies as female.
func sheNameFalsePositive(name string, cls gender.Classification) bool {
	if cls.SelfIdentified && cls.Label == domain.Female {
		return false
	}
	return gender.ContainsSheWord(name)
}

// jobTitleCollision drops results whose name contains the searched job
// title, which otherwise surfaces surnames like Carpenter, Cook or Baker.
func jobTitleCollision(name, jobTitle string) bool {
	if strings.TrimSpace(jobTitle) == "" {
		return false
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(jobTitle))
}

// parseHeading splits a result heading into name, title and company,
// removing profile-site boilerplate and a leading Dr honorific.
func parseHeading(heading string) (name, title, company string) {
	heading = strings.Replace(heading, "| LinkedIn", "", 1)
	heading = strings.Replace(heading, "| Professional Profile", "", 1)
	heading = drHonorific.ReplaceAllString(strings.TrimSpace(heading), "")

	name = strings.TrimSpace(heading)
	if parts := strings.Split(heading, " - "); len(parts) > 1 {
		name = strings.TrimSpace(parts[0])
		title = strings.TrimSpace(parts[1])
		if len(parts) > 2 {
			company = strings.TrimSpace(parts[2])
		}
	}
	return name, title, company
}

// truncateAtSentence cuts the snippet at the last full stop so that the
// "about" text never ends mid-sentence. A snippet without one yields an
// empty string.
func truncateAtSentence(snippet string) string {
	return snippet[:strings.LastIndex(snippet, ".")+1]
}

func (f *Filter) debug(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}
