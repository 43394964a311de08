package ports

import (
	"context"

	"QuoteBalance/internal/domain"
)

// ChatModel sends an instruction prompt plus user content to an LLM
// completion API and returns the raw message content.
type ChatModel interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// GenderLookup infers the likely gender of a forename via an external
// name-gender service.
type GenderLookup interface {
	Lookup(ctx context.Context, forename string) (domain.GenderGuess, error)
}

// ProfileSearcher runs a web search for profile-like results matching a
// job title, location and target gender.
type ProfileSearcher interface {
	Search(ctx context.Context, query domain.ProfileQuery) ([]domain.SearchItem, error)
}
