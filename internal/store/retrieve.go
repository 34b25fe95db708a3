// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/vpontis/mochify/pkg/types"
)

// QueryOptions holds parameters for vocabulary queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string matched against the
	// formatted word.
	Query string

	// Class filters by word class.
	Class types.WordClass

	// CEFR filters by proficiency level.
	CEFR string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Class == "" && q.CEFR == ""
}

// QueryResult is a VocabularyRecord with its frequency-rank position.
type QueryResult struct {
	types.VocabularyRecord
	Position int `json:"position" yaml:"position"`
}

// Retrieve queries the vocabulary with optional full-text search and
// structured filters. Full-text queries are ranked by relevance;
// structured-only queries keep frequency order.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT v.position, v.word, v.word_class, v.cefr
			FROM vocabulary_fts
			JOIN vocabulary v ON v.rowid = vocabulary_fts.rowid
			WHERE vocabulary_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT v.position, v.word, v.word_class, v.cefr
			FROM vocabulary v
			WHERE 1=1`)
	}

	if opts.Class != "" {
		qb.WriteString(` AND v.word_class = ?`)
		args = append(args, string(opts.Class))
	}

	if opts.CEFR != "" {
		qb.WriteString(` AND v.cefr = ?`)
		args = append(args, opts.CEFR)
	}

	if useFTS {
		qb.WriteString(` ORDER BY vocabulary_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY v.position`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying vocabulary: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			qr    QueryResult
			class string
		)
		if err := rows.Scan(&qr.Position, &qr.Word, &class, &qr.CEFR); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		qr.Class = types.WordClass(class)
		results = append(results, qr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating results: %w", err)
	}
	return results, nil
}

// Tally counts stored words per class, honoring the same filters as
// Retrieve except the limit.
func (s *Store) Tally(ctx context.Context, opts QueryOptions) (types.ClassTally, error) {
	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT word_class, count(*) FROM vocabulary WHERE 1=1`)
	if opts.Class != "" {
		qb.WriteString(` AND word_class = ?`)
		args = append(args, string(opts.Class))
	}
	if opts.CEFR != "" {
		qb.WriteString(` AND cefr = ?`)
		args = append(args, opts.CEFR)
	}
	qb.WriteString(` GROUP BY word_class`)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("tallying vocabulary: %w", err)
	}
	defer rows.Close()

	tally := types.ClassTally{}
	for rows.Next() {
		var (
			class string
			count int
		)
		if err := rows.Scan(&class, &count); err != nil {
			return nil, fmt.Errorf("scanning tally: %w", err)
		}
		tally[types.WordClass(class)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tally: %w", err)
	}
	return tally, nil
}
