// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vocab builds the beginner vocabulary list from Kelly frequency
// rows: filter by word class, format each headword with its article or
// infinitive marker, and truncate to a fixed cap.
package vocab

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vpontis/mochify/pkg/types"
)

// Result holds the built vocabulary and the per-class tally over the
// emitted records. Tally.Total() always equals len(Records).
type Result struct {
	Records []types.VocabularyRecord
	Tally   types.ClassTally
}

// Builder applies the inclusion and formatting rules.
type Builder struct {
	maxWords  int
	poolSize  int
	essential map[string]bool
}

// excludedClasses are filtered out wholesale; only essential words
// override the exclusion.
var excludedClasses = map[types.WordClass]bool{
	types.ClassNumeral:    true,
	types.ClassProperName: true,
}

// NewBuilder creates a Builder from cfg. Zero fields fall back to the
// defaults of the original recipe: 150-word cap, 200-row pool, and the
// spelled-out number allow-list.
func NewBuilder(cfg types.BuildConfig) *Builder {
	if cfg.MaxWords <= 0 {
		cfg.MaxWords = 150
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 200
	}
	if cfg.EssentialWords == nil {
		cfg.EssentialWords = types.DefaultEssentialWords()
	}

	essential := make(map[string]bool, len(cfg.EssentialWords))
	for _, w := range cfg.EssentialWords {
		essential[w] = true
	}
	return &Builder{
		maxWords:  cfg.MaxWords,
		poolSize:  cfg.PoolSize,
		essential: essential,
	}
}

// Eligible reports whether a row survives the class filter. Numerals and
// proper names are dropped unless the trimmed headword is essential.
func (b *Builder) Eligible(row types.SourceRow) bool {
	if !excludedClasses[row.Class] {
		return true
	}
	return b.essential[strings.TrimSpace(row.Word)]
}

// stripVariants removes the parenthetical variant suffix, if any, and
// trims the remainder: "springa (spring, sprang, sprungit)" → "springa".
func stripVariants(word string) string {
	if i := strings.Index(word, "("); i >= 0 {
		word = word[:i]
	}
	return strings.TrimSpace(word)
}

// FormatWord strips variants and attaches the grammatical marker: "att"
// for verbs, "en"/"ett" articles for nouns. The grammar marker is
// consulted before the class-only fallback, though both branches of each
// noun class currently resolve to the same article.
func FormatWord(row types.SourceRow) string {
	word := stripVariants(row.Word)
	switch {
	case row.Class == types.ClassVerb:
		return "att " + word
	case row.Class == types.ClassNounEn && row.Grammar == "en":
		return "en " + word
	case row.Class == types.ClassNounEtt && row.Grammar == "ett":
		return "ett " + word
	case row.Class == types.ClassNounEn:
		return "en " + word
	case row.Class == types.ClassNounEtt:
		return "ett " + word
	default:
		return word
	}
}

// Build runs the pipeline over rows: filter, bound the pool, format, and
// truncate. Relative row order is preserved throughout; once the cap is
// reached the remaining candidates are dropped, and rows beyond the pool
// are never consulted even when the cap is unmet.
func (b *Builder) Build(rows []types.SourceRow) (Result, error) {
	pool := make([]types.SourceRow, 0, b.poolSize)
	for _, row := range rows {
		if len(pool) >= b.poolSize {
			break
		}
		if b.Eligible(row) {
			pool = append(pool, row)
		}
	}

	res := Result{Tally: types.ClassTally{}}
	for _, row := range pool {
		if len(res.Records) >= b.maxWords {
			break
		}
		if stripVariants(row.Word) == "" {
			return Result{}, fmt.Errorf("empty headword %q (class %s)", row.Word, row.Class)
		}
		res.Records = append(res.Records, types.VocabularyRecord{
			Word:  FormatWord(row),
			Class: row.Class,
			CEFR:  row.CEFR,
		})
		res.Tally[row.Class]++
	}
	return res, nil
}

// WriteSummary prints the selected count and the word-class distribution,
// most frequent class first.
func WriteSummary(out io.Writer, res Result) {
	fmt.Fprintf(out, "Selected %d words\n", len(res.Records))
	fmt.Fprintln(out, "\nWord class distribution:")
	WriteTally(out, res.Tally)
}

// WriteTally prints per-class counts, most frequent class first.
func WriteTally(out io.Writer, tally types.ClassTally) {
	for _, c := range sortedClasses(tally) {
		fmt.Fprintf(out, "  %s: %d\n", c, tally[c])
	}
}

// sortedClasses orders tally keys by descending count, then name.
func sortedClasses(tally types.ClassTally) []types.WordClass {
	classes := make([]types.WordClass, 0, len(tally))
	for c := range tally {
		classes = append(classes, c)
	}
	sort.Slice(classes, func(i, j int) bool {
		if tally[classes[i]] != tally[classes[j]] {
			return tally[classes[i]] > tally[classes[j]]
		}
		return classes[i] < classes[j]
	})
	return classes
}
