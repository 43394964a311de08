// Package reply turns the raw text returned by the extraction model into
// structured records. The model is asked for a JSON array but is not
// trusted to produce one: replies arrive with byte-order marks,
// over-escaped apostrophes, stray wrapper characters or missing array
// brackets, so parsing is a strict attempt followed by a fragment-level
// recovery pass.
package reply

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnparseable reports that the model reply could not be decoded even
// after recovery. Callers treat it as a "no sources detected" outcome
// rather than a hard failure.
var ErrUnparseable = errors.New("model reply is not parseable")

// Record is one parsed object with its full key set preserved, so that
// keys added by future prompt revisions survive a round trip.
type Record map[string]json.RawMessage

// fragmentSep matches the boundary between two serialized records when
// the model emits bare objects instead of an array, tolerating one or
// two newlines between them.
var fragmentSep = regexp.MustCompile(`\},\n\n?\{`)

// Parse decodes a model reply into an ordered record sequence.
// An empty array is a valid reply and yields an empty, non-nil slice.
func Parse(raw string) ([]Record, error) {
	text := normalize(raw)

	var records []Record
	if err := json.Unmarshal([]byte(text), &records); err == nil {
		return records, nil
	}

	return recoverRecords(text)
}

// normalize strips a leading BOM, surrounding whitespace and the
// backslash-escaped apostrophes the model sometimes produces.
func normalize(raw string) string {
	raw = strings.TrimPrefix(raw, "\uFEFF")
	raw = strings.TrimSpace(raw)
	return strings.ReplaceAll(raw, `\'`, "'")
}

// recoverRecords handles replies that are valid per record but broken as
// a whole: when the text is not bracketed as an array, the first and last
// characters are assumed to be stray wrappers and dropped, the remainder
// is split at record boundaries, and every fragment is re-wrapped in
// braces and decoded on its own.
func recoverRecords(text string) ([]Record, error) {
	if !strings.HasPrefix(text, "[") && len(text) >= 2 {
		text = text[1 : len(text)-1]
	}

	parts := fragmentSep.Split(text, -1)
	records := make([]Record, 0, len(parts))
	for _, part := range parts {
		var rec Record
		if err := json.Unmarshal([]byte("{"+part+"}"), &rec); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnparseable, err)
		}
		records = append(records, rec)
	}

	return records, nil
}
