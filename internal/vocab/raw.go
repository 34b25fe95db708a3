package vocab

import (
	"fmt"
	"io"

	"github.com/vpontis/mochify/pkg/types"
)

// DumpRaw writes the first cfg.Limit rows unfiltered to cfg.OutputPath
// and prints a numbered sample plus the word-class distribution to out.
// Zero config fields fall back to the original recipe: 150 rows, 20
// sample entries, kelly-150-raw.json.
func DumpRaw(rows []types.SourceRow, cfg types.ExtractConfig, out io.Writer) error {
	if cfg.Limit <= 0 {
		cfg.Limit = 150
	}
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = 20
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "kelly-150-raw.json"
	}

	fmt.Fprintf(out, "Total words: %d\n", len(rows))

	if cfg.Limit > len(rows) {
		cfg.Limit = len(rows)
	}
	head := rows[:cfg.Limit]

	fmt.Fprintf(out, "\nSample entries (first %d):\n", min(cfg.SampleSize, len(head)))
	for i, row := range head {
		if i >= cfg.SampleSize {
			break
		}
		fmt.Fprintf(out, "%3d. %-15s [%-10s] CEFR: %s\n", i+1, row.Word, row.Class, row.CEFR)
		if row.Examples != "" {
			fmt.Fprintf(out, "     Example: %s\n", truncate(row.Examples, 100))
		}
	}

	if err := WriteRows(cfg.OutputPath, head); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nSaved %d entries to %s\n", len(head), cfg.OutputPath)

	tally := types.ClassTally{}
	for _, row := range head {
		tally[row.Class]++
	}
	fmt.Fprintf(out, "\nWord class distribution in top %d:\n", len(head))
	WriteTally(out, tally)

	return nil
}

// truncate shortens s to at most n runes, appending an ellipsis when cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
