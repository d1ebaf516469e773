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
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Cancel the account's open limit orders",
	Long: `Cancels every open, unfilled limit order the account has resting.

By default the run stops there, leaving the account flat. With --requote the
run continues into a full quoting pass with an empty exclusion set, which can
immediately re-open orders in markets the reset just exited.`,
	RunE: runReset,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().Bool("requote", false, "Re-quote all eligible markets after cancelling")
	resetCmd.Flags().Bool("dry-run", false, "Journal cancellations without issuing them")
}

func runReset(cmd *cobra.Command, args []string) error {
	// Load .env if present; environment variables take precedence.
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.RunMode = config.ModeReset

	requote, _ := cmd.Flags().GetBool("requote")
	if requote {
		cfg.ResetRequote = true
	}

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

	application, err := app.New(cfg, logger, nil)
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
