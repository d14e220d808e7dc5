package cmd

import (
	"fmt"
	"time"

	"github.com/ardanlabs/hashchain/foundation/hashchain"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mineCmd)
}

var mineCmd = &cobra.Command{
	Use:   "mine <payload>...",
	Short: "Mine the payloads into a new chain and print it",
	Args:  cobra.MinimumNArgs(1),
	RunE:  mineRun,
}

func mineRun(cmd *cobra.Command, args []string) error {
	chain := hashchain.New(difficulty, nil)

	for _, payload := range args {
		t := time.Now()
		chain.Add(payload)
		fmt.Printf("mined tx[%s] in %v\n", payload, time.Since(t))
	}

	fmt.Println(chain)
	return nil
}
