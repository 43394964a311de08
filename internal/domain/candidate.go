package domain

// SearchItem is one raw profile-like web search result.
type SearchItem struct {
	Heading string
	Snippet string
	Link    string
}

// ProfileQuery describes a single candidate search.
type ProfileQuery struct {
	JobTitle string
	Location string
	Minority Gender
}

// CandidateProfile is a search result that survived filtering and can be
// suggested as an alternative source.
type CandidateProfile struct {
	Name    string
	Title   string
	Company string
	Gender  string
	About   string
	Link    string
}
