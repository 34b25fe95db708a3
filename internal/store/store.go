// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists built vocabulary lists in a SQLite database with
// full-text word search, so the flashcard tooling can query by class,
// CEFR level, or free text without re-reading the workbook.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vpontis/mochify/internal/vocab"
	"github.com/vpontis/mochify/pkg/types"
)

const dbFile = "mochify.db"

// Store manages the vocabulary SQLite database.
type Store struct {
	db         *sql.DB
	dataDir    string
	maxResults int
}

// NewStore opens or creates the database at dataDir/mochify.db, creating
// the schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{db: db, dataDir: dataDir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS vocabulary (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			artifact TEXT NOT NULL,
			position INTEGER NOT NULL,
			word TEXT NOT NULL,
			word_class TEXT NOT NULL,
			cefr TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_vocabulary_class ON vocabulary(word_class)`,
		`CREATE INDEX IF NOT EXISTS idx_vocabulary_cefr ON vocabulary(cefr)`,
		`CREATE TABLE IF NOT EXISTS ingest_status (
			artifact TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='vocabulary_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE vocabulary_fts USING fts5(word, content=vocabulary, content_rowid=rowid)`,
			`CREATE TRIGGER vocabulary_ai AFTER INSERT ON vocabulary BEGIN
				INSERT INTO vocabulary_fts(rowid, word) VALUES (new.rowid, new.word);
			END`,
			`CREATE TRIGGER vocabulary_ad AFTER DELETE ON vocabulary BEGIN
				INSERT INTO vocabulary_fts(vocabulary_fts, rowid, word) VALUES('delete', old.rowid, old.word);
			END`,
			`CREATE TRIGGER vocabulary_au AFTER UPDATE ON vocabulary BEGIN
				INSERT INTO vocabulary_fts(vocabulary_fts, rowid, word) VALUES('delete', old.rowid, old.word);
				INSERT INTO vocabulary_fts(rowid, word) VALUES (new.rowid, new.word);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Ingest loads the vocabulary artifact at path into the database. An
// unchanged artifact (same mod-time as the last ingest) is skipped;
// a changed one replaces its previous rows in one transaction.
func (s *Store) Ingest(ctx context.Context, path string, w io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat artifact %s: %w", path, err)
	}
	modTime := info.ModTime().UTC().Format(time.RFC3339Nano)
	artifact := filepath.Base(path)

	var storedModTime string
	err = s.db.QueryRowContext(ctx,
		`SELECT file_mod_time FROM ingest_status WHERE artifact = ?`, artifact,
	).Scan(&storedModTime)
	if err == nil && storedModTime == modTime {
		fmt.Fprintf(w, "skipped %s (unchanged)\n", artifact)
		return nil
	}

	records, err := vocab.ReadRecords(path)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM vocabulary WHERE artifact = ?`, artifact); err != nil {
		return fmt.Errorf("deleting old rows: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO vocabulary (artifact, position, word, word_class, cefr) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, artifact, i+1, r.Word, string(r.Class), r.CEFR); err != nil {
			return fmt.Errorf("inserting word %q: %w", r.Word, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO ingest_status (artifact, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(artifact) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		artifact, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating ingest status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing ingest: %w", err)
	}

	fmt.Fprintf(w, "ingested %s (%d words)\n", artifact, len(records))
	return nil
}
