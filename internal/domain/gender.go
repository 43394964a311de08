package domain

import "strings"

// Gender is the normalized label produced by name-based classification.
type Gender string

const (
	Male      Gender = "male"
	Female    Gender = "female"
	NonBinary Gender = "non-binary"

	// Undetermined replaces a null answer from the inference service.
	Undetermined Gender = "undetermined"

	// ProbablyFemale marks a non-female inference contradicted by feminine
	// pronouns in the surrounding text.
	ProbablyFemale Gender = "probably female"
)

// NormalizeGender lowers and trims a label coming in over the wire.
func NormalizeGender(value string) Gender {
	return Gender(strings.ToLower(strings.TrimSpace(value)))
}

// Display upper-cases the first letter only, leaving the rest unchanged.
func (g Gender) Display() string {
	if g == "" {
		return ""
	}
	s := string(g)
	return strings.ToUpper(s[:1]) + s[1:]
}

// GenderGuess is the raw answer of the name-gender inference service.
// Gender is empty when the service could not decide.
type GenderGuess struct {
	Gender      Gender
	Probability float64
}
