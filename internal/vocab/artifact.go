package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vpontis/mochify/pkg/types"
)

// WriteRecords writes the built vocabulary to path as an indented JSON
// array. Swedish characters are written literally, not escaped.
func WriteRecords(path string, records []types.VocabularyRecord) error {
	if records == nil {
		records = []types.VocabularyRecord{}
	}
	return writeJSON(path, records)
}

// ReadRecords loads a vocabulary artifact from disk.
func ReadRecords(path string) ([]types.VocabularyRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary artifact: %w", err)
	}
	var records []types.VocabularyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing vocabulary artifact %s: %w", path, err)
	}
	return records, nil
}

// WriteRows writes raw source rows to path as an indented JSON array.
// Used by the extract stage to dump the head of the sheet unfiltered.
func WriteRows(path string, rows []types.SourceRow) error {
	if rows == nil {
		rows = []types.SourceRow{}
	}
	return writeJSON(path, rows)
}

// ReadRows loads a raw extract artifact from disk.
func ReadRows(path string) ([]types.SourceRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading raw artifact: %w", err)
	}
	var rows []types.SourceRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing raw artifact %s: %w", path, err)
	}
	return rows, nil
}

// writeJSON marshals v into a temp file beside path and renames it into
// place, so a failed run never leaves a partial artifact.
func writeJSON(path string, v any) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp artifact: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding artifact %s: %w", path, err)
	}
	// CreateTemp opens the file 0600; artifacts are world-readable.
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("writing artifact %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing artifact %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing artifact %s: %w", path, err)
	}
	return nil
}
