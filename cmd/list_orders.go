package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/manifoldbot/quoter/internal/manifold"
	"github.com/manifoldbot/quoter/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var listOrdersCmd = &cobra.Command{
	Use:   "list-orders",
	Short: "List the account's open limit orders",
	Long: `Fetches the account's bet history and prints every limit order that is
still resting, the set a reset run would cancel. No API key is needed.`,
	RunE: runListOrders,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(listOrdersCmd)
}

func runListOrders(cmd *cobra.Command, args []string) error {
	// Load .env if present; environment variables take precedence.
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := config.NewLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := manifold.NewClient(&manifold.ClientConfig{
		BaseURL:  cfg.ManifoldAPIURL,
		PageSize: cfg.PageSize,
		Timeout:  cfg.HTTPTimeout,
		Logger:   logger,
	})

	bets, err := client.BetsForUser(ctx, cfg.ManifoldUser)
	if err != nil {
		return fmt.Errorf("fetch bets for %s: %w", cfg.ManifoldUser, err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BET ID\tMARKET\tOUTCOME\tLIMIT\tAMOUNT\tPLACED")

	open := 0

	for i := range bets {
		b := &bets[i]
		if !b.IsOpenLimitOrder() {
			continue
		}

		open++

		amount := b.Amount
		if b.OrderAmount != nil {
			amount = *b.OrderAmount
		}

		placed := time.UnixMilli(b.CreatedTime).UTC().Format(time.RFC3339)
		fmt.Fprintf(w, "%s\t%s\t%s\t%.3f\t%.2f\t%s\n", b.ID, b.ContractID, b.Outcome, *b.LimitProb, amount, placed)
	}

	err = w.Flush()
	if err != nil {
		return err
	}

	fmt.Printf("\n%d open limit orders\n", open)

	return nil
}
