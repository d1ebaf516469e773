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
	"github.com/manifoldbot/quoter/internal/markets"
	"github.com/manifoldbot/quoter/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var listMarketsCmd = &cobra.Command{
	Use:   "list-markets",
	Short: "List open binary markets eligible for quoting",
	Long: `Fetches every market from the Manifold API and prints the open binary
ones, the same universe a quoting run starts from. No API key is needed.`,
	RunE: runListMarkets,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(listMarketsCmd)
	listMarketsCmd.Flags().Int("limit", 50, "Maximum number of markets to print (0 for all)")
}

func runListMarkets(cmd *cobra.Command, args []string) error {
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

	svc := markets.New(&markets.Config{
		Client: client,
		Logger: logger,
	})

	open, err := svc.OpenBinaryMarkets(ctx, nil)
	if err != nil {
		return fmt.Errorf("list open markets: %w", err)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit > 0 && len(open) > limit {
		open = open[:limit]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCLOSES\tVOLUME\tPROB\tQUESTION")

	for _, m := range open {
		closes := ""
		if m.CloseTime != nil {
			closes = time.UnixMilli(*m.CloseTime).UTC().Format("2006-01-02")
		}

		fmt.Fprintf(w, "%s\t%s\t%.0f\t%.2f\t%s\n", m.ID, closes, m.Volume, m.Probability, m.Question)
	}

	return w.Flush()
}
