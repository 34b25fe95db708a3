package types

// DefaultSheet is the Kelly export sheet the pipeline reads.
const DefaultSheet = "Swedish_M3_CEFR"

// WorkbookConfig holds settings for the spreadsheet boundary.
type WorkbookConfig struct {
	// Path is the Kelly-list workbook file (e.g. "swedish-kelly.xlsx").
	Path string `json:"path" yaml:"path"`

	// Sheet is the sheet holding the CEFR-annotated frequency list
	// (default "Swedish_M3_CEFR").
	Sheet string `json:"sheet" yaml:"sheet"`
}

// ExtractConfig holds settings for the raw-row extract stage.
type ExtractConfig struct {
	// Limit is the number of leading rows to dump (default 150).
	Limit int `json:"limit" yaml:"limit"`

	// OutputPath is the raw JSON artifact (default "kelly-150-raw.json").
	OutputPath string `json:"output_path" yaml:"output_path"`

	// SampleSize is the number of entries echoed to the console (default 20).
	SampleSize int `json:"sample_size" yaml:"sample_size"`
}

// BuildConfig holds settings for the vocabulary builder.
type BuildConfig struct {
	// MaxWords caps the built vocabulary list (default 150).
	MaxWords int `json:"max_words" yaml:"max_words"`

	// PoolSize bounds the candidate pool: only the first PoolSize rows
	// that survive the class filter are considered (default 200). Rows
	// beyond the pool are never consulted, even when the cap is unmet.
	PoolSize int `json:"pool_size" yaml:"pool_size"`

	// EssentialWords force-includes headwords that would otherwise fall to
	// the class filter. Defaults to the spelled-out numbers one through
	// ten plus "hundra" and "tusen".
	EssentialWords []string `json:"essential_words" yaml:"essential_words"`

	// OutputPath is the vocabulary artifact (default "vocabulary-base.json").
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// StoreConfig holds settings for the vocabulary store.
type StoreConfig struct {
	// DataDir is the directory holding the SQLite database and exports
	// (default "data").
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of query results (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Workbook WorkbookConfig `json:"workbook" yaml:"workbook"`
	Extract  ExtractConfig  `json:"extract" yaml:"extract"`
	Build    BuildConfig    `json:"build" yaml:"build"`
	Store    StoreConfig    `json:"store" yaml:"store"`
}

// DefaultEssentialWords is the force-include allow-list: the spelled-out
// Swedish digits one through ten plus "hundra" and "tusen". Numerals are
// excluded as a class, but basic counting words are pedagogically essential.
func DefaultEssentialWords() []string {
	return []string{
		"ett", "en", "två", "tre", "fyra", "fem", "sex", "sju",
		"åtta", "nio", "tio", "hundra", "tusen",
	}
}
