package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of mochify",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mochify %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
