package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vpontis/mochify/internal/workbook"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets [workbook]",
	Short: "List the sheets and columns of the Kelly workbook",
	Long: `Sheets opens the workbook and prints every sheet's name, column
headers, row count, and a sample of the first data row. Use it to verify
the sheet and column names before running extract or build.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSheets,
}

func runSheets(cmd *cobra.Command, args []string) error {
	wb, err := workbook.Open(workbookConfig(cmd, args))
	if err != nil {
		return err
	}
	defer wb.Close()

	return wb.Inspect(os.Stdout)
}

func init() {
	rootCmd.AddCommand(sheetsCmd)
}
