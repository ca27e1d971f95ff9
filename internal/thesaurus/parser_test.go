package thesaurus

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile is a test helper that creates a file with given content.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// --- ParseSenses ---

func TestParseSenses_FileNotFound(t *testing.T) {
	_, err := ParseSenses("/nonexistent/senses.N.xml")
	if err == nil {
		t.Error("ParseSenses should return error for missing file")
	}
}

func TestParseSenses_InvalidXML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "senses.N.xml", "<senses><sense")
	_, err := ParseSenses(path)
	if err == nil {
		t.Error("ParseSenses should return error for malformed XML")
	}
}

func TestParseSenses_NormalizesForms(t *testing.T) {
	path := writeFile(t, t.TempDir(), "senses.N.xml", `<?xml version="1.0" encoding="UTF-8"?>
<senses>
  <sense name="ЧАСТЬ  ТЕЛА" lemma="ЧАСТЬ" synset_id="N010" meaning="1"/>
</senses>`)

	senses, err := ParseSenses(path)
	if err != nil {
		t.Fatalf("ParseSenses: %v", err)
	}
	if len(senses) != 1 {
		t.Fatalf("expected 1 sense, got %d", len(senses))
	}
	s := senses[0]
	if s.Name != "часть тела" {
		t.Errorf("Name = %q, want %q", s.Name, "часть тела")
	}
	if s.Lemma != "часть" {
		t.Errorf("Lemma = %q, want %q", s.Lemma, "часть")
	}
	if s.SynsetID != "N010" || s.Meaning != "1" {
		t.Errorf("unexpected sense: %+v", s)
	}
}

func TestParseSenses_EmptyDocument(t *testing.T) {
	path := writeFile(t, t.TempDir(), "senses.V.xml", `<senses></senses>`)
	senses, err := ParseSenses(path)
	if err != nil {
		t.Fatalf("ParseSenses: %v", err)
	}
	if len(senses) != 0 {
		t.Errorf("expected 0 senses, got %d", len(senses))
	}
}

// --- ParseSynsets ---

func TestParseSynsets_FileNotFound(t *testing.T) {
	_, err := ParseSynsets("/nonexistent/synsets.N.xml")
	if err == nil {
		t.Error("ParseSynsets should return error for missing file")
	}
}

func TestParseSynsets_ExtractsAttributes(t *testing.T) {
	path := writeFile(t, t.TempDir(), "synsets.N.xml", `<?xml version="1.0" encoding="UTF-8"?>
<synsets>
  <synset id="N12658" ruthes_name="КОДИРОВАНИЕ ОТ ЗАВИСИМОСТИ" definition=""/>
  <synset id="N30873" ruthes_name="МЕДИЦИНА" definition="область науки"/>
</synsets>`)

	records, err := ParseSynsets(path)
	if err != nil {
		t.Fatalf("ParseSynsets: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 synsets, got %d", len(records))
	}
	if records[0].ID != "N12658" || records[0].RuthesName != "КОДИРОВАНИЕ ОТ ЗАВИСИМОСТИ" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].Definition != "область науки" {
		t.Errorf("Definition = %q, want %q", records[1].Definition, "область науки")
	}
}

// --- ParseRelations ---

func TestParseRelations_FileNotFound(t *testing.T) {
	_, err := ParseRelations("/nonexistent/synset_relations.N.xml")
	if err == nil {
		t.Error("ParseRelations should return error for missing file")
	}
}

func TestParseRelations_InvalidXML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "synset_relations.N.xml", "not xml")
	_, err := ParseRelations(path)
	if err == nil {
		t.Error("ParseRelations should return error for malformed XML")
	}
}

func TestParseRelations_ExtractsEdges(t *testing.T) {
	path := writeFile(t, t.TempDir(), "synset_relations.N.xml", `<?xml version="1.0" encoding="UTF-8"?>
<relations>
  <relation parent_id="N12658" child_id="N37195" name="hypernym"/>
  <relation parent_id="N12658" child_id="N30873" name="domain"/>
</relations>`)

	records, err := ParseRelations(path)
	if err != nil {
		t.Fatalf("ParseRelations: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 relations, got %d", len(records))
	}
	if records[0].ParentID != "N12658" || records[0].ChildID != "N37195" || records[0].Name != "hypernym" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
}
