package store

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/vpontis/mochify/internal/vocab"
	"github.com/vpontis/mochify/pkg/types"
)

// --- test helpers ---

func testSetup(t *testing.T) (*Store, string) {
	t.Helper()
	tmpDir := t.TempDir()

	store, err := NewStore(types.StoreConfig{
		DataDir:    filepath.Join(tmpDir, "data"),
		MaxResults: 50,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	return store, tmpDir
}

func writeArtifact(t *testing.T, tmpDir string, records []types.VocabularyRecord) string {
	t.Helper()
	path := filepath.Join(tmpDir, "vocabulary-base.json")
	if err := vocab.WriteRecords(path, records); err != nil {
		t.Fatal(err)
	}
	return path
}

func sampleRecords() []types.VocabularyRecord {
	return []types.VocabularyRecord{
		{Word: "att vara", Class: types.ClassVerb, CEFR: "A1"},
		{Word: "en bil", Class: types.ClassNounEn, CEFR: "A1"},
		{Word: "ett hus", Class: types.ClassNounEtt, CEFR: "A1"},
		{Word: "att springa", Class: types.ClassVerb, CEFR: "A2"},
	}
}

// --- ingest ---

func TestIngestAndRetrieve(t *testing.T) {
	store, tmpDir := testSetup(t)
	path := writeArtifact(t, tmpDir, sampleRecords())

	var buf bytes.Buffer
	if err := store.Ingest(context.Background(), path, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "ingested") {
		t.Errorf("unexpected ingest output: %s", buf.String())
	}

	results, err := store.Retrieve(context.Background(), QueryOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	// Frequency order preserved via position.
	for i, want := range []string{"att vara", "en bil", "ett hus", "att springa"} {
		if results[i].Word != want {
			t.Errorf("result %d = %q, want %q", i, results[i].Word, want)
		}
		if results[i].Position != i+1 {
			t.Errorf("result %d position = %d, want %d", i, results[i].Position, i+1)
		}
	}
}

func TestIngestSkipsUnchanged(t *testing.T) {
	store, tmpDir := testSetup(t)
	path := writeArtifact(t, tmpDir, sampleRecords())

	var buf bytes.Buffer
	if err := store.Ingest(context.Background(), path, &buf); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := store.Ingest(context.Background(), path, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "skipped") {
		t.Errorf("second ingest should skip, got: %s", buf.String())
	}
}

func TestIngestReplacesChanged(t *testing.T) {
	store, tmpDir := testSetup(t)
	path := writeArtifact(t, tmpDir, sampleRecords())

	if err := store.Ingest(context.Background(), path, os.Stderr); err != nil {
		t.Fatal(err)
	}

	replacement := []types.VocabularyRecord{
		{Word: "en katt", Class: types.ClassNounEn, CEFR: "A1"},
	}
	writeArtifact(t, tmpDir, replacement)
	// Force a distinct mod-time; file systems may round to the second.
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	if err := store.Ingest(context.Background(), path, os.Stderr); err != nil {
		t.Fatal(err)
	}

	results, err := store.Retrieve(context.Background(), QueryOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Word != "en katt" {
		t.Fatalf("re-ingest did not replace rows: %+v", results)
	}
}

// --- retrieve ---

func TestRetrieveFilters(t *testing.T) {
	store, tmpDir := testSetup(t)
	path := writeArtifact(t, tmpDir, sampleRecords())
	if err := store.Ingest(context.Background(), path, os.Stderr); err != nil {
		t.Fatal(err)
	}

	verbs, err := store.Retrieve(context.Background(), QueryOptions{Class: types.ClassVerb})
	if err != nil {
		t.Fatal(err)
	}
	if len(verbs) != 2 {
		t.Fatalf("got %d verbs, want 2", len(verbs))
	}

	a2, err := store.Retrieve(context.Background(), QueryOptions{CEFR: "A2"})
	if err != nil {
		t.Fatal(err)
	}
	if len(a2) != 1 || a2[0].Word != "att springa" {
		t.Fatalf("CEFR filter: %+v", a2)
	}

	both, err := store.Retrieve(context.Background(), QueryOptions{Class: types.ClassVerb, CEFR: "A1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(both) != 1 || both[0].Word != "att vara" {
		t.Fatalf("combined filter: %+v", both)
	}
}

func TestRetrieveFullText(t *testing.T) {
	store, tmpDir := testSetup(t)
	path := writeArtifact(t, tmpDir, sampleRecords())
	if err := store.Ingest(context.Background(), path, os.Stderr); err != nil {
		t.Fatal(err)
	}

	results, err := store.Retrieve(context.Background(), QueryOptions{Query: "bil"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Word != "en bil" {
		t.Fatalf("full-text search: %+v", results)
	}
}

func TestRetrieveLimit(t *testing.T) {
	store, tmpDir := testSetup(t)
	path := writeArtifact(t, tmpDir, sampleRecords())
	if err := store.Ingest(context.Background(), path, os.Stderr); err != nil {
		t.Fatal(err)
	}

	results, err := store.Retrieve(context.Background(), QueryOptions{MaxResults: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}

// --- tally ---

func TestTally(t *testing.T) {
	store, tmpDir := testSetup(t)
	path := writeArtifact(t, tmpDir, sampleRecords())
	if err := store.Ingest(context.Background(), path, os.Stderr); err != nil {
		t.Fatal(err)
	}

	tally, err := store.Tally(context.Background(), QueryOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if tally[types.ClassVerb] != 2 || tally[types.ClassNounEn] != 1 || tally[types.ClassNounEtt] != 1 {
		t.Errorf("tally = %v", tally)
	}
	if tally.Total() != 4 {
		t.Errorf("tally total = %d, want 4", tally.Total())
	}
}

// --- export ---

func TestExport(t *testing.T) {
	store, tmpDir := testSetup(t)
	path := writeArtifact(t, tmpDir, sampleRecords())
	if err := store.Ingest(context.Background(), path, os.Stderr); err != nil {
		t.Fatal(err)
	}

	jsonPath, err := store.ExportJSON(context.Background(), QueryOptions{})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	var fromJSON []QueryResult
	if err := json.Unmarshal(data, &fromJSON); err != nil {
		t.Fatal(err)
	}
	if len(fromJSON) != 4 {
		t.Fatalf("JSON export has %d entries, want 4", len(fromJSON))
	}

	yamlPath, err := store.ExportYAML(context.Background(), QueryOptions{Class: types.ClassVerb})
	if err != nil {
		t.Fatal(err)
	}
	data, err = os.ReadFile(yamlPath)
	if err != nil {
		t.Fatal(err)
	}
	var fromYAML []QueryResult
	if err := yaml.Unmarshal(data, &fromYAML); err != nil {
		t.Fatal(err)
	}
	if len(fromYAML) != 2 {
		t.Fatalf("filtered YAML export has %d entries, want 2", len(fromYAML))
	}
}
