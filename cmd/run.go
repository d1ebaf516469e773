package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/manifoldbot/quoter/internal/app"
	"github.com/manifoldbot/quoter/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Quote all eligible open markets",
	Long: `Runs one quoting pass:
1. Loads the account's bet history and builds the exclusion set
2. Fetches all open binary markets not yet traded in
3. Estimates a fair-price band per market from its trade tape
4. Submits a two-tier ladder of resting limit orders per market

Markets with fewer than the minimum number of qualifying trades are skipped.
Use --market to quote a single market by slug, --dry-run to journal the
ladder without submitting.`,
	RunE: runQuoter,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("market", "m", "", "Quote only a single market by slug (for debugging)")
	runCmd.Flags().Bool("dry-run", false, "Build and journal orders without submitting them")
}

func runQuoter(cmd *cobra.Command, args []string) error {
	// Load .env if present; environment variables take precedence.
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.RunMode = config.ModeAddBets

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		cfg.DryRun = true
	}

	if !cfg.DryRun {
		err = cfg.RequireAPIKey()
		if err != nil {
			return err
		}
	}

	logger, err := config.NewLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	singleMarket, _ := cmd.Flags().GetString("market")

	application, err := app.New(cfg, logger, &app.Options{
		SingleMarket: singleMarket,
	})
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = application.Run(ctx)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	return nil
}
