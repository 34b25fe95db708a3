// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// WordClass categorizes a Kelly-list headword. The Kelly export carries
// more classes than the ones named here; unrecognized values pass through
// untouched.
type WordClass string

const (
	ClassVerb       WordClass = "verb"
	ClassNounEn     WordClass = "noun-en"
	ClassNounEtt    WordClass = "noun-ett"
	ClassNumeral    WordClass = "numeral"
	ClassProperName WordClass = "proper name"
)

// SourceRow is one row of the Kelly frequency sheet, mapped from the
// spreadsheet columns at the workbook boundary. Rows are read once and
// never mutated.
type SourceRow struct {
	// Word is the raw headword, possibly carrying parenthetical variants,
	// e.g. "springa (spring, sprang, sprungit)".
	Word string `json:"word" yaml:"word"`

	// Class is the word-class tag from the "Word classes" column.
	Class WordClass `json:"word_class" yaml:"word_class"`

	// Grammar is the optional gender/number marker ("en", "ett"), empty
	// when the cell is blank.
	Grammar string `json:"grammar,omitempty" yaml:"grammar,omitempty"`

	// CEFR is the proficiency-level label, passed through unchanged.
	CEFR string `json:"cefr" yaml:"cefr"`

	// Examples is the free-text usage example, empty when absent. Only the
	// raw extract carries it; the built vocabulary does not.
	Examples string `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// VocabularyRecord is one formatted entry of the built vocabulary list.
type VocabularyRecord struct {
	// Word is the formatted headword: variants stripped, article or
	// infinitive marker attached ("en bil", "att springa").
	Word string `json:"word" yaml:"word"`

	// Class is copied from the source row.
	Class WordClass `json:"word_class" yaml:"word_class"`

	// CEFR is copied from the source row.
	CEFR string `json:"cefr" yaml:"cefr"`
}

// ClassTally maps a word class to the number of emitted records carrying it.
// The counts cover emitted records only, never the wider candidate pool.
type ClassTally map[WordClass]int

// Total returns the sum of all per-class counts.
func (t ClassTally) Total() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}
