package cmd

import (
	"fmt"

	"github.com/ardanlabs/hashchain/foundation/hashchain"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify <payload>...",
	Short: "Mine the payloads and run the chain integrity check",
	Args:  cobra.MinimumNArgs(1),
	RunE:  verifyRun,
}

func verifyRun(cmd *cobra.Command, args []string) error {
	chain := hashchain.New(difficulty, nil)

	for _, payload := range args {
		chain.Add(payload)
	}

	if err := chain.Verify(); err != nil {
		return fmt.Errorf("verifying chain: %w", err)
	}

	fmt.Printf("chain of %d blocks verified at difficulty %d\n", chain.Length(), chain.Difficulty())
	return nil
}
