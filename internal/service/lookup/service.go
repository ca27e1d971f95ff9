// Package lookup is the public query surface over the loaded thesaurus.
// Every operation is a pure read; the absence policy is uniform across
// all of them: an unknown word is an empty result, an unknown synset
// identifier is domain.ErrNotFound, and an uninterpretable argument
// (unknown relation type or part-of-speech label) is a validation
// error.
package lookup

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"

	"github.com/heartmarshall/ruwordnet/internal/domain"
)

type thesaurusIndex interface {
	SynsetIDs(word string) []string
	Synset(id string) (*domain.Synset, error)
	HasRelationType(name string) bool
	RelationTypes() []string
	PartitionByPolysemy(pos domain.PartOfSpeech, form domain.WordForm) (polysemous, monosemous []string)
}

// Service answers thesaurus queries against an immutable index.
type Service struct {
	log   *slog.Logger
	index thesaurusIndex
}

// NewService creates a lookup service over a loaded index.
func NewService(logger *slog.Logger, index thesaurusIndex) *Service {
	return &Service{
		log:   logger.With("service", "lookup"),
		index: index,
	}
}

// SynsetIDs returns the identifiers of every synset the word belongs
// to. Unknown words yield an empty slice, never an error.
func (s *Service) SynsetIDs(word string) []string {
	ids := s.index.SynsetIDs(word)
	if ids == nil {
		return []string{}
	}
	return ids
}

// SynsetInfo resolves the word to its synsets and attaches each
// synset's ruthes name and definition. Unknown words yield an empty
// slice.
func (s *Service) SynsetInfo(word string) []domain.SynsetInfo {
	ids := s.index.SynsetIDs(word)
	infos := make([]domain.SynsetInfo, 0, len(ids))
	for _, id := range ids {
		syn, err := s.index.Synset(id)
		if err != nil {
			// The word index only ever references loaded synsets.
			s.log.Warn("word index references missing synset",
				slog.String("word", word), slog.String("synset_id", id))
			continue
		}
		infos = append(infos, domain.SynsetInfo{
			ID:         syn.ID,
			RuthesName: syn.RuthesName,
			Definition: syn.Definition,
		})
	}
	return infos
}

// Definition returns the ruthes name and definition of a synset.
func (s *Service) Definition(synsetID string) (domain.SynsetInfo, error) {
	syn, err := s.index.Synset(synsetID)
	if err != nil {
		return domain.SynsetInfo{}, err
	}
	return domain.SynsetInfo{
		ID:         syn.ID,
		RuthesName: syn.RuthesName,
		Definition: syn.Definition,
	}, nil
}

// SynsetWords returns the member surface forms of a synset.
func (s *Service) SynsetWords(synsetID string) ([]string, error) {
	syn, err := s.index.Synset(synsetID)
	if err != nil {
		return nil, err
	}
	words := make([]string, len(syn.Words))
	copy(words, syn.Words)
	return words, nil
}

// Synonyms returns, per synset of the word, the other member words of
// that synset. Unknown words yield an empty slice.
func (s *Service) Synonyms(word string) []domain.SynonymGroup {
	normalized := domain.NormalizeWord(word)
	ids := s.index.SynsetIDs(normalized)

	groups := make([]domain.SynonymGroup, 0, len(ids))
	for _, id := range ids {
		syn, err := s.index.Synset(id)
		if err != nil {
			continue
		}
		words := make([]string, 0, len(syn.Words))
		for _, w := range syn.Words {
			if w != normalized {
				words = append(words, w)
			}
		}
		groups = append(groups, domain.SynonymGroup{
			SynsetID:   syn.ID,
			RuthesName: syn.RuthesName,
			Words:      words,
		})
	}
	return groups
}

// Relations returns every outgoing edge of a synset as a relation
// type → target identifiers map. A known synset without relations
// yields an empty map.
func (s *Service) Relations(synsetID string) (map[string][]string, error) {
	syn, err := s.index.Synset(synsetID)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(syn.Relations))
	for name, targets := range syn.Relations {
		ids := make([]string, len(targets))
		copy(ids, targets)
		out[name] = ids
	}
	return out, nil
}

// RelatedWords returns the member words of the synsets reachable from
// synsetID, restricted to the given relation types. A nil or empty
// filter means every relation type. Naming a relation type outside the
// loaded schema is a validation error; a schema type simply absent for
// this synset produces no matches.
//
// With includeSynsets one group is produced per (relation, target
// synset) edge; without it, the targets of each relation are merged
// into a single deduplicated word list.
func (s *Service) RelatedWords(synsetID string, relations []string, includeSynsets bool) ([]domain.RelatedWords, error) {
	if err := s.validateRelationFilter(relations); err != nil {
		return nil, err
	}
	syn, err := s.index.Synset(synsetID)
	if err != nil {
		return nil, err
	}
	return s.relatedWordsOf(syn, relations, includeSynsets), nil
}

// WordRelatives resolves the word to its synsets and returns, per
// source synset, the one-hop related words per RelatedWords. Unknown
// words yield an empty slice.
func (s *Service) WordRelatives(word string, relations []string, includeSynsets bool) ([]domain.SynsetRelatives, error) {
	if err := s.validateRelationFilter(relations); err != nil {
		return nil, err
	}

	ids := s.index.SynsetIDs(word)
	out := make([]domain.SynsetRelatives, 0, len(ids))
	for _, id := range ids {
		syn, err := s.index.Synset(id)
		if err != nil {
			continue
		}
		out = append(out, domain.SynsetRelatives{
			SynsetID:  id,
			Relations: s.relatedWordsOf(syn, relations, includeSynsets),
		})
	}
	return out, nil
}

// SenseRelatives narrows WordRelatives to a single sense of the word.
// The synset itself must exist; if it exists but does not contain the
// word, the answer is still given for the synset and the inconsistency
// is logged.
func (s *Service) SenseRelatives(word, synsetID string, relations []string, includeSynsets bool) ([]domain.RelatedWords, error) {
	if err := s.validateRelationFilter(relations); err != nil {
		return nil, err
	}
	syn, err := s.index.Synset(synsetID)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(s.index.SynsetIDs(word), synsetID) {
		s.log.Warn("word does not belong to requested synset",
			slog.String("word", word),
			slog.String("synset_id", synsetID),
		)
	}
	return s.relatedWordsOf(syn, relations, includeSynsets), nil
}

// PolysemousWords returns the sorted entries of the given part of
// speech that belong to more than one synset of that part of speech.
// The form label selects surface forms (default) or lemmas.
func (s *Service) PolysemousWords(posLabel, formLabel string) ([]string, error) {
	pos, form, err := parsePartition(posLabel, formLabel)
	if err != nil {
		return nil, err
	}
	polysemous, _ := s.index.PartitionByPolysemy(pos, form)
	if polysemous == nil {
		polysemous = []string{}
	}
	return polysemous, nil
}

// MonosemousWords returns the sorted entries of the given part of
// speech that belong to exactly one synset of that part of speech.
// The form label selects surface forms (default) or lemmas.
func (s *Service) MonosemousWords(posLabel, formLabel string) ([]string, error) {
	pos, form, err := parsePartition(posLabel, formLabel)
	if err != nil {
		return nil, err
	}
	_, monosemous := s.index.PartitionByPolysemy(pos, form)
	if monosemous == nil {
		monosemous = []string{}
	}
	return monosemous, nil
}

func parsePartition(posLabel, formLabel string) (domain.PartOfSpeech, domain.WordForm, error) {
	pos, err := domain.ParsePartOfSpeech(posLabel)
	if err != nil {
		return "", "", err
	}
	form, err := domain.ParseWordForm(formLabel)
	if err != nil {
		return "", "", err
	}
	return pos, form, nil
}

// RelationTypes returns the loaded relation type schema, sorted.
func (s *Service) RelationTypes() []string {
	return s.index.RelationTypes()
}

func (s *Service) validateRelationFilter(relations []string) error {
	for _, name := range relations {
		if !s.index.HasRelationType(name) {
			return domain.NewValidationError("relations",
				fmt.Sprintf("unknown relation type %q", name))
		}
	}
	return nil
}

// relatedWordsOf walks the outgoing edges of one synset. Relation types
// are visited in sorted order so results are deterministic.
func (s *Service) relatedWordsOf(syn *domain.Synset, relations []string, includeSynsets bool) []domain.RelatedWords {
	wanted := func(name string) bool {
		if len(relations) == 0 {
			return true
		}
		return slices.Contains(relations, name)
	}

	names := make([]string, 0, len(syn.Relations))
	for name := range syn.Relations {
		if wanted(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := make([]domain.RelatedWords, 0, len(names))
	for _, name := range names {
		if includeSynsets {
			for _, targetID := range syn.Relations[name] {
				target, err := s.index.Synset(targetID)
				if err != nil {
					// Dangling edge, already counted at load.
					continue
				}
				words := make([]string, len(target.Words))
				copy(words, target.Words)
				out = append(out, domain.RelatedWords{
					Relation: name,
					SynsetID: targetID,
					Words:    words,
				})
			}
			continue
		}

		var words []string
		seen := make(map[string]struct{})
		for _, targetID := range syn.Relations[name] {
			target, err := s.index.Synset(targetID)
			if err != nil {
				continue
			}
			for _, w := range target.Words {
				if _, ok := seen[w]; ok {
					continue
				}
				seen[w] = struct{}{}
				words = append(words, w)
			}
		}
		out = append(out, domain.RelatedWords{Relation: name, Words: words})
	}
	return out
}
