// Package cmd contains the chain tooling app.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var difficulty int

func init() {
	rootCmd.PersistentFlags().IntVarP(&difficulty, "difficulty", "d", 3, "Leading '0' characters required in a block hash.")
}

var rootCmd = &cobra.Command{
	Use:   "chain",
	Short: "In-memory proof of work chain tooling",
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
