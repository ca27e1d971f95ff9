package thesaurus

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/ruwordnet/internal/domain"
)

// Paths names the nine files of a RuWordNet distribution, grouped by
// part of speech.
type Paths struct {
	Senses    map[domain.PartOfSpeech]string
	Synsets   map[domain.PartOfSpeech]string
	Relations map[domain.PartOfSpeech]string
}

// DefaultPaths returns the standard distribution layout under dir:
// senses.N.xml, synsets.N.xml, synset_relations.N.xml and the V/A
// counterparts.
func DefaultPaths(dir string) Paths {
	p := Paths{
		Senses:    make(map[domain.PartOfSpeech]string, 3),
		Synsets:   make(map[domain.PartOfSpeech]string, 3),
		Relations: make(map[domain.PartOfSpeech]string, 3),
	}
	for _, pos := range domain.AllPartsOfSpeech() {
		suffix := pos.Prefix()
		p.Senses[pos] = filepath.Join(dir, "senses."+suffix+".xml")
		p.Synsets[pos] = filepath.Join(dir, "synsets."+suffix+".xml")
		p.Relations[pos] = filepath.Join(dir, "synset_relations."+suffix+".xml")
	}
	return p
}

// Stats describes what the build phase saw, for startup logging.
type Stats struct {
	Synsets          int
	Senses           int
	Relations        int
	Words            int
	Lemmas           int
	RelationTypes    int
	DanglingTargets  int
	OrphanedSenses   int
	MalformedSynsets int
}

// Index holds the loaded thesaurus. It is built once by Load and is
// immutable afterwards, so it may be shared across goroutines without
// locking.
type Index struct {
	synsets       map[string]*domain.Synset
	wordSynsets   map[string][]string
	lemmaSynsets  map[string][]string
	relationTypes map[string]struct{}
	stats         Stats
}

// posPayload is the parse result of one part-of-speech file group.
type posPayload struct {
	pos       domain.PartOfSpeech
	senses    []domain.Sense
	synsets   []SynsetRecord
	relations []RelationRecord
}

// Load parses every distribution file named by paths and assembles the
// lookup tables. The three part-of-speech groups are parsed
// concurrently; any missing or malformed file fails the whole load, so
// a returned Index is never partial.
func Load(ctx context.Context, logger *slog.Logger, paths Paths) (*Index, error) {
	start := time.Now()

	order := domain.AllPartsOfSpeech()
	payloads := make([]posPayload, len(order))

	g, _ := errgroup.WithContext(ctx)
	for i, pos := range order {
		g.Go(func() error {
			senses, err := ParseSenses(paths.Senses[pos])
			if err != nil {
				return fmt.Errorf("%s: %w", pos, err)
			}
			synsets, err := ParseSynsets(paths.Synsets[pos])
			if err != nil {
				return fmt.Errorf("%s: %w", pos, err)
			}
			relations, err := ParseRelations(paths.Relations[pos])
			if err != nil {
				return fmt.Errorf("%s: %w", pos, err)
			}
			payloads[i] = posPayload{pos: pos, senses: senses, synsets: synsets, relations: relations}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load thesaurus: %w", err)
	}

	ix := &Index{
		synsets:       make(map[string]*domain.Synset),
		wordSynsets:   make(map[string][]string),
		lemmaSynsets:  make(map[string][]string),
		relationTypes: make(map[string]struct{}),
	}

	// Assembly is sequential and ordered N, V, A so repeated loads
	// produce identical tables.
	for _, p := range payloads {
		ix.addSynsets(p)
	}
	for _, p := range payloads {
		ix.addSenses(p)
	}
	for _, p := range payloads {
		ix.addRelations(p)
	}

	ix.stats.Words = len(ix.wordSynsets)
	ix.stats.Lemmas = len(ix.lemmaSynsets)
	ix.stats.RelationTypes = len(ix.relationTypes)

	logger.Info("thesaurus loaded",
		slog.Int("synsets", ix.stats.Synsets),
		slog.Int("senses", ix.stats.Senses),
		slog.Int("relations", ix.stats.Relations),
		slog.Int("words", ix.stats.Words),
		slog.Int("lemmas", ix.stats.Lemmas),
		slog.Int("relation_types", ix.stats.RelationTypes),
		slog.Duration("took", time.Since(start)),
	)
	if ix.stats.DanglingTargets > 0 || ix.stats.OrphanedSenses > 0 || ix.stats.MalformedSynsets > 0 {
		logger.Warn("thesaurus data quality issues",
			slog.Int("dangling_relation_targets", ix.stats.DanglingTargets),
			slog.Int("orphaned_senses", ix.stats.OrphanedSenses),
			slog.Int("malformed_synset_ids", ix.stats.MalformedSynsets),
		)
	}

	return ix, nil
}

func (ix *Index) addSynsets(p posPayload) {
	for _, rec := range p.synsets {
		pos, ok := domain.PartOfSpeechFromSynsetID(rec.ID)
		if !ok {
			ix.stats.MalformedSynsets++
			continue
		}
		ix.synsets[rec.ID] = &domain.Synset{
			ID:           rec.ID,
			PartOfSpeech: pos,
			RuthesName:   rec.RuthesName,
			Definition:   rec.Definition,
			Relations:    make(map[string][]string),
		}
		ix.stats.Synsets++
	}
}

func (ix *Index) addSenses(p posPayload) {
	for _, sense := range p.senses {
		ix.stats.Senses++
		syn, ok := ix.synsets[sense.SynsetID]
		if !ok {
			ix.stats.OrphanedSenses++
			continue
		}
		if sense.Name != "" {
			if !slices.Contains(syn.Words, sense.Name) {
				syn.Words = append(syn.Words, sense.Name)
			}
			if !slices.Contains(ix.wordSynsets[sense.Name], sense.SynsetID) {
				ix.wordSynsets[sense.Name] = append(ix.wordSynsets[sense.Name], sense.SynsetID)
			}
		}
		if sense.Lemma != "" {
			if !slices.Contains(ix.lemmaSynsets[sense.Lemma], sense.SynsetID) {
				ix.lemmaSynsets[sense.Lemma] = append(ix.lemmaSynsets[sense.Lemma], sense.SynsetID)
			}
		}
	}
}

func (ix *Index) addRelations(p posPayload) {
	for _, rel := range p.relations {
		ix.stats.Relations++
		ix.relationTypes[rel.Name] = struct{}{}

		// Dangling targets are a data-quality concern, not a load
		// failure: the edge is kept and counted.
		if _, ok := ix.synsets[rel.ChildID]; !ok {
			ix.stats.DanglingTargets++
		}
		parent, ok := ix.synsets[rel.ParentID]
		if !ok {
			// An edge out of an unknown synset has nowhere to hang.
			continue
		}
		parent.Relations[rel.Name] = append(parent.Relations[rel.Name], rel.ChildID)
	}
}

// Stats returns the build-phase counters.
func (ix *Index) Stats() Stats { return ix.stats }

// SynsetIDs returns the identifiers of every synset containing the
// word, across all parts of speech, in load order. The word is
// normalized before lookup. An unknown word yields a nil slice.
func (ix *Index) SynsetIDs(word string) []string {
	ids := ix.wordSynsets[domain.NormalizeWord(word)]
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Synset returns the synset for the identifier, or domain.ErrNotFound.
func (ix *Index) Synset(id string) (*domain.Synset, error) {
	syn, ok := ix.synsets[id]
	if !ok {
		return nil, fmt.Errorf("synset %s: %w", id, domain.ErrNotFound)
	}
	return syn, nil
}

// HasRelationType reports whether the relation type name occurs
// anywhere in the loaded schema.
func (ix *Index) HasRelationType(name string) bool {
	_, ok := ix.relationTypes[name]
	return ok
}

// RelationTypes returns every relation type name seen at load time,
// sorted.
func (ix *Index) RelationTypes() []string {
	names := make([]string, 0, len(ix.relationTypes))
	for name := range ix.relationTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PartitionByPolysemy splits the vocabulary of one part of speech into
// polysemous entries (more than one synset of that part of speech) and
// monosemous entries (exactly one). The form selects the vocabulary
// view: surface forms or lemmas. Both slices are sorted. An entry
// belonging only to synsets of other parts of speech appears in
// neither.
func (ix *Index) PartitionByPolysemy(pos domain.PartOfSpeech, form domain.WordForm) (polysemous, monosemous []string) {
	vocabulary := ix.wordSynsets
	if form == domain.WordFormLemma {
		vocabulary = ix.lemmaSynsets
	}

	prefix := pos.Prefix()
	for word, ids := range vocabulary {
		n := 0
		for _, id := range ids {
			if strings.HasPrefix(id, prefix) {
				n++
			}
		}
		switch {
		case n > 1:
			polysemous = append(polysemous, word)
		case n == 1:
			monosemous = append(monosemous, word)
		}
	}
	sort.Strings(polysemous)
	sort.Strings(monosemous)
	return polysemous, monosemous
}
