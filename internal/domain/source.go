package domain

import "encoding/json"

// Location is the place a story is set in, when the model could find one.
type Location struct {
	Location *string `json:"location"`
}

// QuotedIndividual is one person quoted as a source in the analyzed text.
// Extra holds keys the extraction prompt may grow over time; they are
// passed through to the response untouched.
type QuotedIndividual struct {
	Name       string
	Gender     string
	Reasons    string
	Confidence *float64
	Role       string
	LinkedIn   bool
	Quotes     []string
	Extra      map[string]json.RawMessage
}

// MarshalJSON merges the known fields with any passthrough keys.
func (q QuotedIndividual) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(q.Extra)+6)
	for key, value := range q.Extra {
		out[key] = value
	}
	out["name"] = q.Name
	out["gender"] = q.Gender
	out["reasons"] = q.Reasons
	out["role"] = q.Role
	out["linkedin"] = q.LinkedIn
	quotes := q.Quotes
	if quotes == nil {
		quotes = []string{}
	}
	out["quotes"] = quotes
	if q.Confidence != nil {
		out["confidence"] = *q.Confidence
	}
	return json.Marshal(out)
}

// Analysis is the outcome of one extraction run over a block of text.
// It is request-scoped and never persisted.
type Analysis struct {
	Location    Location
	Individuals []QuotedIndividual
}
