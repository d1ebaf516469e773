package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "quoter",
	Short: "Manifold Markets quoting bot",
	Long: `Automated quoting bot for Manifold binary prediction markets.

The bot reads each open market's recent trade history, estimates a fair-price
band from a volume-weighted moving average of the tape, and rests a two-tier
ladder of YES/NO limit orders around the estimate. Markets the account has
already traded in are skipped; a reset run cancels the account's own open
limit orders instead.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
