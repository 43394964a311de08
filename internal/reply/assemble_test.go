package reply

import (
	"testing"
)

func TestAssembleWithLocation(t *testing.T) {
	t.Parallel()

	records, err := Parse(wellFormed)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	analysis := Assemble(records)

	if analysis.Location.Location == nil || *analysis.Location.Location != "Cardiff, Wales" {
		t.Fatalf("unexpected location: %v", analysis.Location.Location)
	}
	if len(analysis.Individuals) != 2 {
		t.Fatalf("expected 2 individuals, got %d", len(analysis.Individuals))
	}

	first := analysis.Individuals[0]
	if first.Name != "Jane Doe" || first.Gender != "Female" {
		t.Fatalf("unexpected first individual: %+v", first)
	}
	if !first.LinkedIn {
		t.Fatalf("linkedin 'yes' should map to true")
	}
	if len(first.Quotes) != 1 || first.Quotes[0] != "'Highly concerning,' she said." {
		t.Fatalf("unexpected quotes: %v", first.Quotes)
	}

	second := analysis.Individuals[1]
	if second.LinkedIn {
		t.Fatalf("linkedin 'no' should map to false")
	}
}

func TestAssembleNullLocation(t *testing.T) {
	t.Parallel()

	records, err := Parse(`[{"location": null}, {"name": "A", "gender": "Male", "quotes": "<ul><li>q</li></ul>"}]`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	analysis := Assemble(records)
	if analysis.Location.Location != nil {
		t.Fatalf("expected null location, got %q", *analysis.Location.Location)
	}
	if len(analysis.Individuals) != 1 {
		t.Fatalf("expected 1 individual, got %d", len(analysis.Individuals))
	}
}

func TestAssembleWithoutLocationRecord(t *testing.T) {
	t.Parallel()

	records, err := Parse(`[{"name": "A", "gender": "Female", "quotes": ["first", "second"]}]`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	analysis := Assemble(records)
	if analysis.Location.Location != nil {
		t.Fatalf("location should stay null when no location record is present")
	}
	if len(analysis.Individuals) != 1 {
		t.Fatalf("expected 1 individual, got %d", len(analysis.Individuals))
	}
	if got := analysis.Individuals[0].Quotes; len(got) != 2 || got[0] != "first" {
		t.Fatalf("quote list form not preserved: %v", got)
	}
}

func TestAssemblePreservesUnknownKeys(t *testing.T) {
	t.Parallel()

	records, err := Parse(`[{"name": "A", "pronouns": "they/them", "confidence": 0.75}]`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	analysis := Assemble(records)
	ind := analysis.Individuals[0]

	if ind.Confidence == nil || *ind.Confidence != 0.75 {
		t.Fatalf("confidence not consumed: %v", ind.Confidence)
	}
	raw, ok := ind.Extra["pronouns"]
	if !ok {
		t.Fatalf("unknown key dropped: %+v", ind.Extra)
	}
	if string(raw) != `"they/them"` {
		t.Fatalf("unknown key mutated: %s", raw)
	}
}

func TestAssembleOptionalFieldsAbsent(t *testing.T) {
	t.Parallel()

	records, err := Parse(`[{"name": "A", "gender": "Male", "role": "Analyst", "quotes": "<ul><li>q</li></ul>"}]`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	ind := Assemble(records).Individuals[0]
	if ind.Reasons != "" || ind.Confidence != nil || ind.LinkedIn {
		t.Fatalf("absent optional fields should stay zero: %+v", ind)
	}
}

func TestSplitQuotesFallsBackToPlainText(t *testing.T) {
	t.Parallel()

	quotes := SplitQuotes("A single sentence without markup.")
	if len(quotes) != 1 || quotes[0] != "A single sentence without markup." {
		t.Fatalf("unexpected quotes: %v", quotes)
	}
}
