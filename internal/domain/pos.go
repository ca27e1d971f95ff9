package domain

import (
	"strconv"
	"strings"
)

// PartOfSpeech represents the grammatical category of a synset.
// RuWordNet encodes it as the first letter of the synset identifier
// ("N12658" is a noun synset).
type PartOfSpeech string

const (
	PartOfSpeechNoun      PartOfSpeech = "NOUN"
	PartOfSpeechVerb      PartOfSpeech = "VERB"
	PartOfSpeechAdjective PartOfSpeech = "ADJECTIVE"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective:
		return true
	}
	return false
}

// Prefix returns the synset identifier prefix for the part of speech.
func (p PartOfSpeech) Prefix() string {
	switch p {
	case PartOfSpeechNoun:
		return "N"
	case PartOfSpeechVerb:
		return "V"
	case PartOfSpeechAdjective:
		return "A"
	}
	return ""
}

// AllPartsOfSpeech lists every part of speech present in the RuWordNet
// distribution, in the order its files are conventionally named.
func AllPartsOfSpeech() []PartOfSpeech {
	return []PartOfSpeech{PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective}
}

// PartOfSpeechFromSynsetID derives the part of speech from a synset
// identifier prefix. The second return value is false for identifiers
// outside the N/V/A convention.
func PartOfSpeechFromSynsetID(id string) (PartOfSpeech, bool) {
	if id == "" {
		return "", false
	}
	switch id[0] {
	case 'N':
		return PartOfSpeechNoun, true
	case 'V':
		return PartOfSpeechVerb, true
	case 'A':
		return PartOfSpeechAdjective, true
	}
	return "", false
}

// ParsePartOfSpeech resolves a user-supplied label into a PartOfSpeech.
// Accepted (case-insensitive): full names ("noun"), common short forms
// ("adj"), and identifier prefixes ("N").
func ParsePartOfSpeech(label string) (PartOfSpeech, error) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "NOUN", "N":
		return PartOfSpeechNoun, nil
	case "VERB", "V":
		return PartOfSpeechVerb, nil
	case "ADJECTIVE", "ADJ", "A":
		return PartOfSpeechAdjective, nil
	}
	return "", NewValidationError("part_of_speech", "unknown label "+strconv.Quote(label))
}
