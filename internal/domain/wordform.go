package domain

import (
	"strconv"
	"strings"
)

// WordForm selects which written form of a sense an operation reports:
// the surface form as it appears in the sense entry (possibly
// multiword), or the lemma of its head word.
type WordForm string

const (
	WordFormSurface WordForm = "SURFACE"
	WordFormLemma   WordForm = "LEMMA"
)

func (f WordForm) String() string { return string(f) }

func (f WordForm) IsValid() bool {
	switch f {
	case WordFormSurface, WordFormLemma:
		return true
	}
	return false
}

// ParseWordForm resolves a user-supplied label into a WordForm. An
// empty label defaults to the surface form.
func ParseWordForm(label string) (WordForm, error) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "", "SURFACE", "WORD":
		return WordFormSurface, nil
	case "LEMMA", "LEMMAS":
		return WordFormLemma, nil
	}
	return "", NewValidationError("form", "unknown label "+strconv.Quote(label))
}
