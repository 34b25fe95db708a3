package workbook

import (
	"fmt"
	"io"
)

// sampleColumns bounds the first-row sample printed per sheet.
const sampleColumns = 5

// Inspect writes a human-readable report of the workbook to out: every
// sheet's name, column headers, row count, and a sample of the first data
// row. Diagnostics only; nothing here is machine-consumed.
func (w *Workbook) Inspect(out io.Writer) error {
	names := w.SheetNames()

	fmt.Fprintln(out, "Available sheets in the workbook:")
	for i, name := range names {
		fmt.Fprintf(out, "  %d. %s\n", i+1, name)
	}

	fmt.Fprintln(out, "\nExamining each sheet:")
	for _, name := range names {
		raw, err := w.f.GetRows(name)
		if err != nil {
			return fmt.Errorf("reading sheet %q: %w", name, err)
		}

		fmt.Fprintf(out, "\n%q sheet:\n", name)
		if len(raw) == 0 {
			fmt.Fprintln(out, "  - empty")
			continue
		}

		headers := make([]string, len(raw[0]))
		for i, h := range raw[0] {
			headers[i] = normalizeHeader(h)
		}
		fmt.Fprintf(out, "  - Columns: %v\n", headers)
		fmt.Fprintf(out, "  - Rows: %d\n", len(raw)-1)

		if len(raw) > 1 {
			fmt.Fprintln(out, "  - First row sample:")
			for i, h := range headers {
				if i >= sampleColumns {
					break
				}
				fmt.Fprintf(out, "    %s: %s\n", h, cell(raw[1], i))
			}
		}
	}
	return nil
}
