// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mochify CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vpontis/mochify/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the mochify CLI.
var rootCmd = &cobra.Command{
	Use:   "mochify",
	Short: "Swedish vocabulary extraction from the Kelly frequency list",
	Long: `mochify turns the Swedish Kelly-list frequency spreadsheet into
flashcard-ready vocabulary artifacts. Each pipeline stage is a subcommand:
sheets inspects the workbook, extract dumps the leading raw entries, build
produces the filtered and formatted vocabulary list, and store manages a
local SQLite vocabulary database.

The stages run one-shot, top to bottom, against a local file; either the
full artifact is written or nothing is.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mochify.yaml or ~/.config/mochify/config.yaml)")
	rootCmd.PersistentFlags().String("workbook", "swedish-kelly.xlsx", "Kelly-list workbook file")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mochify")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mochify"))
		}
	}

	viper.SetEnvPrefix("MOCHIFY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// effectiveConfig assembles the per-stage configuration from the loaded
// config file. Unset keys come back zero and are filled from flag values
// by the per-command helpers.
func effectiveConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Workbook: types.WorkbookConfig{
			Path:  viper.GetString("workbook.path"),
			Sheet: viper.GetString("workbook.sheet"),
		},
		Extract: types.ExtractConfig{
			Limit:      viper.GetInt("extract.limit"),
			OutputPath: viper.GetString("extract.output_path"),
			SampleSize: viper.GetInt("extract.sample_size"),
		},
		Build: types.BuildConfig{
			MaxWords:       viper.GetInt("build.max_words"),
			PoolSize:       viper.GetInt("build.pool_size"),
			EssentialWords: viper.GetStringSlice("build.essential_words"),
			OutputPath:     viper.GetString("build.output_path"),
		},
		Store: types.StoreConfig{
			DataDir:    viper.GetString("store.data_dir"),
			MaxResults: viper.GetInt("store.max_results"),
		},
	}
}

// workbookConfig resolves the workbook settings: positional argument
// first, then an explicitly set flag, then the config file, then the
// flag default.
func workbookConfig(cmd *cobra.Command, args []string) types.WorkbookConfig {
	cfg := effectiveConfig().Workbook

	switch {
	case len(args) > 0:
		cfg.Path = args[0]
	case cmd.Flags().Changed("workbook") || cfg.Path == "":
		cfg.Path, _ = cmd.Flags().GetString("workbook")
	}

	if f := cmd.Flags().Lookup("sheet"); f != nil && (f.Changed || cfg.Sheet == "") {
		cfg.Sheet = f.Value.String()
	}
	if cfg.Sheet == "" {
		cfg.Sheet = types.DefaultSheet
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
