// Package gender decides the gender label of a named person by combining
// an external name-gender inference service with explicit
// self-identification markers and pronouns in the surrounding text.
package gender

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"QuoteBalance/internal/domain"
	"QuoteBalance/internal/ports"
)

var (
	// sheWord matches "she" as a standalone word. The trailing class keeps
	// the match anchored to punctuation or whitespace so that names merely
	// containing the substring (Shea, Sheppard) do not match.
	sheWord = regexp.MustCompile(`(?i)\bshe\b[\p{P}\s]?`)

	// femininePronoun is the broader context probe, also accepting "her".
	femininePronoun = regexp.MustCompile(`(?i)\b(?:she|her)\b[\p{P}\s]?`)
)

// ContainsSheWord reports a standalone "she" in s. The candidate filter
// reuses it to reject results matched only because of the person's name.
func ContainsSheWord(s string) bool {
	return sheWord.MatchString(s)
}

// Classification is the final verdict for one name.
type Classification struct {
	Label       domain.Gender
	Probability float64

	// SelfIdentified is set when a pronoun-pair marker in the name itself
	// decided the label.
	SelfIdentified bool
}

// Classifier resolves names through a lookup service and applies the
// override ladder: service inference < context pronouns < explicit
// self-identification.
type Classifier struct {
	lookup ports.GenderLookup
	logger *slog.Logger
}

// NewClassifier wires the name-gender lookup service.
func NewClassifier(lookup ports.GenderLookup, logger *slog.Logger) *Classifier {
	return &Classifier{lookup: lookup, logger: logger}
}

// Classify determines the gender of fullName. surrounding is any text
// about the same person (profile snippet, article sentence) consulted
// when the service inference is uncertain.
func (c *Classifier) Classify(ctx context.Context, fullName, surrounding string) (Classification, error) {
	if c.lookup == nil {
		return Classification{}, fmt.Errorf("gender lookup is not configured")
	}

	guess, err := c.lookup.Lookup(ctx, forename(fullName))
	if err != nil {
		return Classification{}, fmt.Errorf("lookup gender for %q: %w", fullName, err)
	}

	cls := Classification{Label: guess.Gender, Probability: guess.Probability}
	if cls.Label == "" {
		cls.Label = domain.Undetermined
	}

	// A feminine pronoun next to a non-female, less-than-certain inference
	// demotes the service answer to a hint.
	if cls.Label != domain.Female && cls.Probability < 1 && femininePronoun.MatchString(surrounding) {
		cls.Label = domain.ProbablyFemale
	}

	// Explicit pronoun-pair markers in the name are authoritative.
	switch {
	case identifiesMale(fullName):
		cls.Label = domain.Male
		cls.SelfIdentified = true
	case identifiesFemale(fullName):
		cls.Label = domain.Female
		cls.SelfIdentified = true
	case identifiesNonBinary(fullName):
		cls.Label = domain.NonBinary
		cls.SelfIdentified = true
	}

	c.debug("classified name", "name", fullName, "label", cls.Label, "probability", cls.Probability)
	return cls, nil
}

// forename returns the first whitespace-delimited token of a name.
func forename(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func identifiesMale(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "(he/him)") || strings.Contains(lower, "(he / him)")
}

func identifiesFemale(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "(she/her)") || strings.Contains(lower, "(she / her)")
}

func identifiesNonBinary(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "(they/them)") || strings.Contains(lower, "(they / them)")
}

func (c *Classifier) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
