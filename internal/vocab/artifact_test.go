package vocab

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vpontis/mochify/pkg/types"
)

func TestWriteReadRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocabulary-base.json")
	records := []types.VocabularyRecord{
		{Word: "att vara", Class: types.ClassVerb, CEFR: "A1"},
		{Word: "en bil", Class: types.ClassNounEn, CEFR: "A1"},
		{Word: "ett hus", Class: types.ClassNounEtt, CEFR: "A1"},
	}

	if err := WriteRecords(path, records); err != nil {
		t.Fatal(err)
	}

	got, err := ReadRecords(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(records) {
		t.Fatalf("got %d records, want %d", len(got), len(records))
	}
	for i := range records {
		if got[i] != records[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], records[i])
		}
	}
}

func TestWriteRecordsKeepsSwedishCharacters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	records := []types.VocabularyRecord{
		{Word: "att gå", Class: types.ClassVerb, CEFR: "A1"},
		{Word: "åtta", Class: types.ClassNumeral, CEFR: "A1"},
		{Word: "en ö", Class: types.ClassNounEn, CEFR: "A2"},
	}

	if err := WriteRecords(path, records); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{"att gå", "åtta", "en ö"} {
		if !strings.Contains(text, want) {
			t.Errorf("artifact does not contain %q literally:\n%s", want, text)
		}
	}
	if strings.Contains(text, `\u`) {
		t.Errorf("artifact escapes non-ASCII:\n%s", text)
	}
}

func TestWriteRecordsEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")

	if err := WriteRecords(path, nil); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(data)), "[") {
		t.Errorf("empty artifact should be a JSON array, got %q", data)
	}
}

func TestWriteRecordsWorldReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	if err := WriteRecords(path, []types.VocabularyRecord{{Word: "en bil", Class: types.ClassNounEn, CEFR: "A1"}}); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0o644 {
		t.Errorf("artifact mode = %o, want 644", got)
	}
}

func TestWriteRecordsNoPartialArtifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing-subdir", "out.json")

	if err := WriteRecords(path, []types.VocabularyRecord{{Word: "en bil", Class: types.ClassNounEn, CEFR: "A1"}}); err == nil {
		t.Fatal("expected error for unwritable destination")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("failed write left an artifact behind")
	}
	// No stray temp files either.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("failed write left temp files: %v", entries)
	}
}

func TestWriteRowsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kelly-150-raw.json")
	rows := []types.SourceRow{
		{Word: "och", Class: "conjunction", CEFR: "A1", Examples: "pojkar och flickor"},
		{Word: "hus", Class: types.ClassNounEtt, Grammar: "ett", CEFR: "A1"},
	}

	if err := WriteRows(path, rows); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"och", "pojkar och flickor", `"grammar": "ett"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("raw artifact missing %q:\n%s", want, data)
		}
	}
}
