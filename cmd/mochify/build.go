package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vpontis/mochify/internal/vocab"
	"github.com/vpontis/mochify/internal/workbook"
	"github.com/vpontis/mochify/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build [workbook]",
	Short: "Build the filtered, formatted vocabulary list",
	Long: `Build reads the CEFR frequency sheet, drops numerals and proper names
(keeping the essential counting words), attaches "en"/"ett" articles and
the "att" infinitive marker, and writes the first --max-words entries to a
JSON artifact for the flashcard app.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

// buildConfig resolves the build settings: explicitly set flags win over
// the config file, which wins over the flag defaults.
func buildConfig(cmd *cobra.Command) types.BuildConfig {
	cfg := effectiveConfig().Build

	if cmd.Flags().Changed("max-words") || cfg.MaxWords == 0 {
		cfg.MaxWords, _ = cmd.Flags().GetInt("max-words")
	}
	if cmd.Flags().Changed("pool-size") || cfg.PoolSize == 0 {
		cfg.PoolSize, _ = cmd.Flags().GetInt("pool-size")
	}
	if cmd.Flags().Changed("essential") || len(cfg.EssentialWords) == 0 {
		cfg.EssentialWords, _ = cmd.Flags().GetStringSlice("essential")
	}
	if cmd.Flags().Changed("output") || cfg.OutputPath == "" {
		cfg.OutputPath, _ = cmd.Flags().GetString("output")
	}
	return cfg
}

func runBuild(cmd *cobra.Command, args []string) error {
	wb, err := workbook.Open(workbookConfig(cmd, args))
	if err != nil {
		return err
	}
	defer wb.Close()

	rows, err := wb.Rows()
	if err != nil {
		return err
	}

	cfg := buildConfig(cmd)
	res, err := vocab.NewBuilder(cfg).Build(rows)
	if err != nil {
		return err
	}

	vocab.WriteSummary(os.Stdout, res)

	if err := vocab.WriteRecords(cfg.OutputPath, res.Records); err != nil {
		return err
	}
	fmt.Printf("\nSaved %d words to %s\n", len(res.Records), cfg.OutputPath)

	return nil
}

func init() {
	buildCmd.Flags().String("sheet", types.DefaultSheet, "sheet holding the CEFR frequency list")
	buildCmd.Flags().Int("max-words", 150, "cap on the built vocabulary list")
	buildCmd.Flags().Int("pool-size", 200, "candidate pool taken from the head of the filtered rows")
	buildCmd.Flags().String("output", "vocabulary-base.json", "vocabulary JSON artifact path")
	buildCmd.Flags().StringSlice("essential", types.DefaultEssentialWords(), "headwords kept despite the class filter")

	rootCmd.AddCommand(buildCmd)
}
