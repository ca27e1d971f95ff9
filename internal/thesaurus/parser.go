// Package thesaurus loads the RuWordNet XML distribution into an
// immutable in-memory index and answers read-only lookups against it.
//
// The parsers in this file are pure functions: file path in, records
// out. Index assembly lives in index.go.
package thesaurus

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/heartmarshall/ruwordnet/internal/domain"
)

// RuWordNet XML internal types for deserialization. Attribute names are
// fixed by the distribution schema.

type sensesDocument struct {
	XMLName xml.Name    `xml:"senses"`
	Senses  []senseElem `xml:"sense"`
}

type senseElem struct {
	Name     string `xml:"name,attr"`
	Lemma    string `xml:"lemma,attr"`
	SynsetID string `xml:"synset_id,attr"`
	Meaning  string `xml:"meaning,attr"`
}

type synsetsDocument struct {
	XMLName xml.Name     `xml:"synsets"`
	Synsets []synsetElem `xml:"synset"`
}

type synsetElem struct {
	ID         string `xml:"id,attr"`
	RuthesName string `xml:"ruthes_name,attr"`
	Definition string `xml:"definition,attr"`
}

type relationsDocument struct {
	XMLName   xml.Name       `xml:"relations"`
	Relations []relationElem `xml:"relation"`
}

type relationElem struct {
	ParentID string `xml:"parent_id,attr"`
	ChildID  string `xml:"child_id,attr"`
	Name     string `xml:"name,attr"`
}

// SynsetRecord is one raw synset row before index assembly.
type SynsetRecord struct {
	ID         string
	RuthesName string
	Definition string
}

// RelationRecord is one raw directed edge before index assembly.
type RelationRecord struct {
	ParentID string
	ChildID  string
	Name     string
}

// ParseSenses reads a senses.X.xml file. Surface forms and lemmas are
// normalized on the way in so every later comparison uses one casing.
func ParseSenses(path string) ([]domain.Sense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open senses file: %w", err)
	}
	defer f.Close()

	var doc sensesDocument
	if err := xml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode senses XML %s: %w", path, err)
	}

	senses := make([]domain.Sense, 0, len(doc.Senses))
	for _, s := range doc.Senses {
		senses = append(senses, domain.Sense{
			Name:     domain.NormalizeWord(s.Name),
			Lemma:    domain.NormalizeWord(s.Lemma),
			SynsetID: s.SynsetID,
			Meaning:  s.Meaning,
		})
	}
	return senses, nil
}

// ParseSynsets reads a synsets.X.xml file.
func ParseSynsets(path string) ([]SynsetRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open synsets file: %w", err)
	}
	defer f.Close()

	var doc synsetsDocument
	if err := xml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode synsets XML %s: %w", path, err)
	}

	records := make([]SynsetRecord, 0, len(doc.Synsets))
	for _, s := range doc.Synsets {
		records = append(records, SynsetRecord{
			ID:         s.ID,
			RuthesName: s.RuthesName,
			Definition: s.Definition,
		})
	}
	return records, nil
}

// ParseRelations reads a synset_relations.X.xml file.
func ParseRelations(path string) ([]RelationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open relations file: %w", err)
	}
	defer f.Close()

	var doc relationsDocument
	if err := xml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode relations XML %s: %w", path, err)
	}

	records := make([]RelationRecord, 0, len(doc.Relations))
	for _, r := range doc.Relations {
		records = append(records, RelationRecord{
			ParentID: r.ParentID,
			ChildID:  r.ChildID,
			Name:     r.Name,
		})
	}
	return records, nil
}
