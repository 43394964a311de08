package reply

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"QuoteBalance/internal/domain"
)

// Assemble maps a parsed record sequence onto the analysis result. A
// first record carrying a "location" key is consumed as the location;
// prompt variants without one are equally valid, in which case every
// record is an individual and the location stays null.
func Assemble(records []Record) domain.Analysis {
	analysis := domain.Analysis{Individuals: []domain.QuotedIndividual{}}

	rest := records
	if len(records) > 0 {
		if raw, ok := records[0]["location"]; ok {
			_ = json.Unmarshal(raw, &analysis.Location.Location)
			rest = records[1:]
		}
	}

	for _, rec := range rest {
		analysis.Individuals = append(analysis.Individuals, toIndividual(rec))
	}

	return analysis
}

func toIndividual(rec Record) domain.QuotedIndividual {
	ind := domain.QuotedIndividual{}

	for key, value := range rec {
		switch key {
		case "name":
			ind.Name = decodeString(value)
		case "gender":
			ind.Gender = decodeString(value)
		case "reasons":
			ind.Reasons = decodeString(value)
		case "role":
			ind.Role = decodeString(value)
		case "confidence":
			var confidence float64
			if err := json.Unmarshal(value, &confidence); err == nil {
				ind.Confidence = &confidence
			}
		case "linkedin":
			ind.LinkedIn = decodeYesNo(value)
		case "quotes":
			ind.Quotes = decodeQuotes(value)
		default:
			if ind.Extra == nil {
				ind.Extra = map[string]json.RawMessage{}
			}
			ind.Extra[key] = value
		}
	}

	return ind
}

func decodeString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return s
}

// decodeYesNo accepts the prompt's "yes"/"no" strings as well as a plain
// JSON bool.
func decodeYesNo(raw json.RawMessage) bool {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.EqualFold(strings.TrimSpace(s), "yes")
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	return false
}

// decodeQuotes accepts either a JSON string list or the prompt's
// <ul><li> markup and returns the quotes in document order.
func decodeQuotes(raw json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var markup string
	if err := json.Unmarshal(raw, &markup); err != nil {
		return nil
	}
	return SplitQuotes(markup)
}

// SplitQuotes extracts the text of each list item from the quote markup
// the extraction prompt asks for. Markup without list items degrades to a
// single quote holding the whole text.
func SplitQuotes(markup string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		if text := strings.TrimSpace(markup); text != "" {
			return []string{text}
		}
		return nil
	}

	var quotes []string
	doc.Find("li").Each(func(_ int, item *goquery.Selection) {
		if text := strings.TrimSpace(item.Text()); text != "" {
			quotes = append(quotes, text)
		}
	})

	if len(quotes) == 0 {
		if text := strings.TrimSpace(doc.Text()); text != "" {
			quotes = append(quotes, text)
		}
	}

	return quotes
}
