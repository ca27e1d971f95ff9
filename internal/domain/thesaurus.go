// Package domain holds the entity types of the RuWordNet thesaurus and
// the result shapes returned by lookup operations. Entities are built
// once at load time and never mutated afterwards.
package domain

// Synset is one node of the thesaurus graph: a set of words sharing a
// single meaning, plus the typed edges leading out of that meaning.
type Synset struct {
	ID           string
	PartOfSpeech PartOfSpeech
	// RuthesName is the concept title inherited from the RuThes
	// thesaurus, e.g. "НОГА (НИЖНЯЯ КОНЕЧНОСТЬ)".
	RuthesName string
	// Definition is the gloss text; empty for many synsets.
	Definition string
	// Words are the normalized member surface forms in file order.
	Words []string
	// Relations maps a relation type name ("hypernym", "domain", ...)
	// to the target synset identifiers, in file order.
	Relations map[string][]string
}

// Sense is one word form belonging to exactly one synset.
type Sense struct {
	// Name is the normalized surface form, possibly multiword.
	Name string
	// Lemma is the normalized dictionary form of the head word.
	Lemma string
	// SynsetID identifies the owning synset.
	SynsetID string
	// Meaning is the sense ordinal as recorded in the distribution
	// ("1" for the first, and only, meaning of a monosemous word).
	Meaning string
}

// SynsetInfo pairs a synset identifier with its human-readable titles.
type SynsetInfo struct {
	ID         string
	RuthesName string
	Definition string
}

// SynonymGroup holds the synonyms a word has within one of its synsets.
type SynonymGroup struct {
	SynsetID   string
	RuthesName string
	// Words are the other member words of the synset; the query word
	// itself is excluded.
	Words []string
}

// RelatedWords is one group of words reachable from a synset over a
// single relation type. When the query asked for per-synset grouping,
// SynsetID names the target synset and one RelatedWords is produced per
// edge; otherwise SynsetID is empty and Words merges every target of
// the relation.
type RelatedWords struct {
	Relation string
	SynsetID string
	Words    []string
}

// SynsetRelatives aggregates the related-word groups of one source
// synset, used when a query word resolves to several synsets.
type SynsetRelatives struct {
	SynsetID  string
	Relations []RelatedWords
}
