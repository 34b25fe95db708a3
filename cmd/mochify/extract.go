package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vpontis/mochify/internal/vocab"
	"github.com/vpontis/mochify/internal/workbook"
	"github.com/vpontis/mochify/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [workbook]",
	Short: "Dump the leading raw rows of the CEFR sheet to JSON",
	Long: `Extract reads the CEFR-annotated frequency sheet and writes its first
--limit rows unfiltered to a JSON artifact, printing a numbered sample and
the word-class distribution. The artifact keeps every mapped column,
including usage examples.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

// extractConfig resolves the extract settings: explicitly set flags win
// over the config file, which wins over the flag defaults.
func extractConfig(cmd *cobra.Command) types.ExtractConfig {
	cfg := effectiveConfig().Extract

	if cmd.Flags().Changed("limit") || cfg.Limit == 0 {
		cfg.Limit, _ = cmd.Flags().GetInt("limit")
	}
	if cmd.Flags().Changed("output") || cfg.OutputPath == "" {
		cfg.OutputPath, _ = cmd.Flags().GetString("output")
	}
	if cmd.Flags().Changed("sample") || cfg.SampleSize == 0 {
		cfg.SampleSize, _ = cmd.Flags().GetInt("sample")
	}
	return cfg
}

func runExtract(cmd *cobra.Command, args []string) error {
	wb, err := workbook.Open(workbookConfig(cmd, args))
	if err != nil {
		return err
	}
	defer wb.Close()

	rows, err := wb.Rows()
	if err != nil {
		return err
	}

	return vocab.DumpRaw(rows, extractConfig(cmd), os.Stdout)
}

func init() {
	extractCmd.Flags().String("sheet", types.DefaultSheet, "sheet holding the CEFR frequency list")
	extractCmd.Flags().Int("limit", 150, "number of leading rows to dump")
	extractCmd.Flags().String("output", "kelly-150-raw.json", "raw JSON artifact path")
	extractCmd.Flags().Int("sample", 20, "number of entries echoed to the console")

	rootCmd.AddCommand(extractCmd)
}
