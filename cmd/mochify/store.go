// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vpontis/mochify/internal/store"
	"github.com/vpontis/mochify/internal/vocab"
	"github.com/vpontis/mochify/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the SQLite vocabulary store (ingest, list, export)",
	Long: `Store keeps built vocabulary lists in a local SQLite database with
full-text word search. Use subcommands to ingest a built artifact, query
words by class, CEFR level, or free text, or export the database.`,
}

// --- ingest subcommand ---

var storeIngestCmd = &cobra.Command{
	Use:   "ingest [artifact]",
	Short: "Load a built vocabulary artifact into the store",
	Long: `Ingest reads a vocabulary JSON artifact (the output of build) into the
database. An unchanged artifact is skipped on subsequent runs; a changed
one replaces its previous rows.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStoreIngest,
}

func runStoreIngest(cmd *cobra.Command, args []string) error {
	path := "vocabulary-base.json"
	if len(args) > 0 {
		path = args[0]
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.Ingest(context.Background(), path, os.Stdout)
}

// --- list subcommand ---

var storeListCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "Query stored vocabulary by text, class, or CEFR level",
	RunE:  runStoreList,
}

func runStoreList(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := queryOptsFromFlags(cmd, args)

	results, err := s.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No words found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-25s  %-12s  %s\n", "Rank", "Word", "Class", "CEFR")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 52))
	for _, r := range results {
		fmt.Fprintf(os.Stdout, "%-5d  %-25s  %-12s  %s\n", r.Position, r.Word, r.Class, r.CEFR)
	}
	fmt.Fprintf(os.Stdout, "\n%d words\n", len(results))

	tally, err := s.Tally(context.Background(), opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "\nWord class distribution:")
	vocab.WriteTally(os.Stdout, tally)

	return nil
}

// --- export subcommand ---

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the vocabulary store to YAML or JSON",
	Long: `Export writes the stored vocabulary (or a filtered subset) to
export.yaml or export.json in the data directory. Supports the same
filter flags as list.`,
	RunE: runStoreExport,
}

func runStoreExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := queryOptsFromFlags(cmd, args)

	var path string
	switch format {
	case "yaml", "":
		path, err = s.ExportYAML(context.Background(), opts)
	case "json":
		path, err = s.ExportJSON(context.Background(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Println("Exported to", path)
	return nil
}

// --- shared helpers ---

func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg := effectiveConfig().Store

	if cmd.Flags().Changed("data-dir") || cfg.DataDir == "" {
		cfg.DataDir, _ = cmd.Flags().GetString("data-dir")
	}
	if cmd.Flags().Changed("max-results") || cfg.MaxResults == 0 {
		cfg.MaxResults, _ = cmd.Flags().GetInt("max-results")
	}
	return store.NewStore(cfg)
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) store.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	class, _ := cmd.Flags().GetString("class")
	cefr, _ := cmd.Flags().GetString("cefr")
	limit, _ := cmd.Flags().GetInt("limit")

	return store.QueryOptions{
		Query:      queryText,
		Class:      types.WordClass(class),
		CEFR:       cefr,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	storeCmd.PersistentFlags().String("data-dir", "data", "directory for the database and exports")
	storeCmd.PersistentFlags().Int("max-results", 50, "maximum number of query results")

	// List flags.
	storeListCmd.Flags().String("query", "", "full-text search over the formatted word")
	storeListCmd.Flags().String("class", "", "filter by word class (e.g. verb, noun-en)")
	storeListCmd.Flags().String("cefr", "", "filter by CEFR level (A1-C2)")
	storeListCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	storeListCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	storeExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	storeExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	storeExportCmd.Flags().String("class", "", "filter by word class for partial export")
	storeExportCmd.Flags().String("cefr", "", "filter by CEFR level for partial export")

	// Wire subcommands.
	storeCmd.AddCommand(storeIngestCmd)
	storeCmd.AddCommand(storeListCmd)
	storeCmd.AddCommand(storeExportCmd)

	rootCmd.AddCommand(storeCmd)
}
