package candidates

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"QuoteBalance/internal/domain"
	"QuoteBalance/internal/gender"
)

type fakeLookup struct {
	answers map[string]domain.GenderGuess
}

func (f *fakeLookup) Lookup(_ context.Context, forename string) (domain.GenderGuess, error) {
	if guess, ok := f.answers[forename]; ok {
		return guess, nil
	}
	return domain.GenderGuess{}, nil
}

func femaleLookup(forenames ...string) *fakeLookup {
	answers := map[string]domain.GenderGuess{}
	for _, n := range forenames {
		answers[n] = domain.GenderGuess{Gender: domain.Female, Probability: 0.99}
	}
	return &fakeLookup{answers: answers}
}

func item(heading, snippet string) domain.SearchItem {
	return domain.SearchItem{Heading: heading, Snippet: snippet, Link: "https://example.org/in/profile"}
}

func TestParseHeading(t *testing.T) {
	t.Parallel()

	cases := []struct {
		heading              string
		name, title, company string
	}{
		{"Jane Doe - Teacher - Acme Schools | LinkedIn", "Jane Doe", "Teacher", "Acme Schools"},
		{"Jane Doe - Teacher | Professional Profile", "Jane Doe", "Teacher", ""},
		{"Jane Doe | LinkedIn", "Jane Doe", "", ""},
		{"Dr. Jane Doe - Surgeon | LinkedIn", "Jane Doe", "Surgeon", ""},
		{"Dr Jane Doe | LinkedIn", "Jane Doe", "", ""},
	}
	for _, tc := range cases {
		name, title, company := parseHeading(tc.heading)
		if name != tc.name || title != tc.title || company != tc.company {
			t.Fatalf("parseHeading(%q) = %q/%q/%q, want %q/%q/%q",
				tc.heading, name, title, company, tc.name, tc.title, tc.company)
		}
	}
}

func TestSelectCapsAtFive(t *testing.T) {
	t.Parallel()

	var items []domain.SearchItem
	lookup := &fakeLookup{answers: map[string]domain.GenderGuess{}}
	for i := 0; i < 8; i++ {
		forename := fmt.Sprintf("Anna%d", i)
		lookup.answers[forename] = domain.GenderGuess{Gender: domain.Female, Probability: 0.99}
		items = append(items, item(forename+" Lee - Engineer | LinkedIn", "Builds things."))
	}

	f := NewFilter(gender.NewClassifier(lookup, nil), 0, nil)
	profiles, err := f.Select(context.Background(), items, domain.Female, "Engineer")
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if len(profiles) != 5 {
		t.Fatalf("expected 5 profiles, got %d", len(profiles))
	}
	// First five in input order, not globally ranked.
	for i, p := range profiles {
		if want := fmt.Sprintf("Anna%d Lee", i); p.Name != want {
			t.Fatalf("profile %d is %q, want %q", i, p.Name, want)
		}
	}
}

func TestSelectRejectsWrongGender(t *testing.T) {
	t.Parallel()

	lookup := &fakeLookup{answers: map[string]domain.GenderGuess{
		"Anna": {Gender: domain.Female, Probability: 0.99},
		"John": {Gender: domain.Male, Probability: 0.99},
	}}
	items := []domain.SearchItem{
		item("John Park - Engineer | LinkedIn", "Builds bridges."),
		item("Anna Lee - Engineer | LinkedIn", "Builds tunnels."),
	}

	f := NewFilter(gender.NewClassifier(lookup, nil), 0, nil)
	profiles, err := f.Select(context.Background(), items, domain.Female, "Engineer")
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if len(profiles) != 1 || profiles[0].Name != "Anna Lee" {
		t.Fatalf("unexpected selection: %+v", profiles)
	}
	if profiles[0].Gender != "Female" {
		t.Fatalf("gender should be display-cased: %q", profiles[0].Gender)
	}
}

func TestSelectJobTitleSubstringRule(t *testing.T) {
	t.Parallel()

	// "Dr. Jane Shepherd" searched as "Shepherd": legitimately female but
	// excluded because the job title appears in her name.
	lookup := femaleLookup("Jane")
	items := []domain.SearchItem{
		item("Dr. Jane Shepherd - Shepherd | LinkedIn", "Tends an actual flock."),
	}

	f := NewFilter(gender.NewClassifier(lookup, nil), 0, nil)
	profiles, err := f.Select(context.Background(), items, domain.Female, "Shepherd")
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if len(profiles) != 0 {
		t.Fatalf("job-title collision should drop the candidate: %+v", profiles)
	}
}

func TestSelectSheInNameRule(t *testing.T) {
	t.Parallel()

	lookup := femaleLookup("She", "Li")
	items := []domain.SearchItem{
		item("She Wang - Analyst | LinkedIn", "Analyses markets."),
		item("Li She (she/her) - Analyst | LinkedIn", "Analyses markets."),
	}

	f := NewFilter(gender.NewClassifier(lookup, nil), 0, nil)
	profiles, err := f.Select(context.Background(), items, domain.Female, "Analyst")
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	// The bare name is a false-positive match; the self-identified one stays.
	if len(profiles) != 1 || !strings.HasPrefix(profiles[0].Name, "Li She") {
		t.Fatalf("unexpected selection: %+v", profiles)
	}
}

func TestSelectProbablyFemaleCountsForFemale(t *testing.T) {
	t.Parallel()

	lookup := &fakeLookup{answers: map[string]domain.GenderGuess{
		"Sam": {Gender: domain.Male, Probability: 0.55},
	}}
	items := []domain.SearchItem{
		item("Sam Reyes - Nurse | LinkedIn", "She has led the ward for a decade."),
	}

	f := NewFilter(gender.NewClassifier(lookup, nil), 0, nil)
	profiles, err := f.Select(context.Background(), items, domain.Female, "Nurse")
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("probably-female candidate should qualify for a female search: %+v", profiles)
	}
	if profiles[0].Gender != "Probably female" {
		t.Fatalf("unexpected display label: %q", profiles[0].Gender)
	}
}

func TestSelectTeacherScenario(t *testing.T) {
	t.Parallel()

	// 10 results, 6 classify as female, 2 of those carry "Teacher" in the
	// name: 4 survive.
	lookup := &fakeLookup{answers: map[string]domain.GenderGuess{}}
	var items []domain.SearchItem
	for i, heading := range []string{
		"Amy Cole - Teacher | LinkedIn",
		"Brian Fox - Teacher | LinkedIn",
		"Carla Teacher - Teacher | LinkedIn",
		"Dana West - Teacher | LinkedIn",
		"Evan Hill - Teacher | LinkedIn",
		"Fay Teacher - Teacher | LinkedIn",
		"Gail Shaw - Teacher | LinkedIn",
		"Hugo Marsh - Teacher | LinkedIn",
		"Iris Lane - Teacher | LinkedIn",
		"Jack Cobb - Teacher | LinkedIn",
	} {
		forename := strings.Fields(heading)[0]
		female := i == 0 || i == 2 || i == 3 || i == 5 || i == 6 || i == 8
		if female {
			lookup.answers[forename] = domain.GenderGuess{Gender: domain.Female, Probability: 0.97}
		} else {
			lookup.answers[forename] = domain.GenderGuess{Gender: domain.Male, Probability: 0.97}
		}
		items = append(items, item(heading, "Teaches maths. Loves it"))
	}

	f := NewFilter(gender.NewClassifier(lookup, nil), 0, nil)
	profiles, err := f.Select(context.Background(), items, domain.Female, "Teacher")
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if len(profiles) != 4 {
		t.Fatalf("expected 4 profiles, got %d: %+v", len(profiles), profiles)
	}
	want := []string{"Amy Cole", "Dana West", "Gail Shaw", "Iris Lane"}
	for i, p := range profiles {
		if p.Name != want[i] {
			t.Fatalf("profile %d is %q, want %q", i, p.Name, want[i])
		}
	}
}

func TestTruncateAtSentence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"First sentence. Second fragment witho", "First sentence."},
		{"One. Two. Three tr", "One. Two."},
		{"no terminator at all", ""},
	}
	for _, tc := range cases {
		if got := truncateAtSentence(tc.in); got != tc.want {
			t.Fatalf("truncateAtSentence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
