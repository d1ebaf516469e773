package app

import (
	"context"
	"fmt"

	"github.com/manifoldbot/quoter/pkg/batch"
	"github.com/manifoldbot/quoter/pkg/config"
	"github.com/manifoldbot/quoter/pkg/types"
	"go.uber.org/zap"
)

// Run executes one quoting run in the configured mode and returns when every
// batch has completed or the first batch failure surfaces. Cancelling ctx
// lets the in-flight batch finish and skips the rest.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("run-starting",
		zap.String("run-id", a.runID),
		zap.String("mode", a.cfg.RunMode),
		zap.String("username", a.cfg.ManifoldUser),
		zap.Bool("dry-run", a.cfg.DryRun),
		zap.Int("batch-size", a.cfg.BatchSize))

	a.startMetricsServer()
	a.healthChecker.SetReady(true)
	defer a.Close()

	var err error
	switch a.cfg.RunMode {
	case config.ModeReset:
		err = a.runReset(ctx)
	default:
		err = a.runAdd(ctx, true)
	}

	if err != nil {
		a.logger.Error("run-failed", zap.String("run-id", a.runID), zap.Error(err))
		return err
	}

	a.logger.Info("run-complete", zap.String("run-id", a.runID))
	return nil
}

// runAdd quotes all eligible markets. With useExclusions, markets the
// account has already traded in are skipped; the post-reset requote pass
// runs with the exclusion set deliberately empty.
func (a *App) runAdd(ctx context.Context, useExclusions bool) error {
	if a.opts.SingleMarket != "" {
		return a.runSingleMarket(ctx)
	}

	exclude := map[string]struct{}{}
	if useExclusions {
		bets, err := a.client.BetsForUser(ctx, a.cfg.ManifoldUser)
		if err != nil {
			return fmt.Errorf("load own bets: %w", err)
		}
		exclude = exclusionSet(bets)
	}

	eligible, err := a.marketSvc.OpenBinaryMarkets(ctx, exclude)
	if err != nil {
		return fmt.Errorf("load markets: %w", err)
	}

	ops := make([]batch.Op[struct{}], len(eligible))
	for i, market := range eligible {
		ops[i] = func(ctx context.Context) (struct{}, error) {
			return struct{}{}, a.quoter.Quote(ctx, market)
		}
	}

	_, err = batch.WaitAll(ctx, ops, a.cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("quote markets: %w", err)
	}

	return nil
}

// runReset cancels the account's open limit orders. Requoting afterwards is
// an explicit opt-in: the requote pass runs with an empty exclusion set and
// can immediately re-open positions in markets the reset just exited.
func (a *App) runReset(ctx context.Context) error {
	bets, err := a.client.BetsForUser(ctx, a.cfg.ManifoldUser)
	if err != nil {
		return fmt.Errorf("load own bets: %w", err)
	}

	err = a.quoter.Reset(ctx, bets)
	if err != nil {
		return fmt.Errorf("reset orders: %w", err)
	}

	if !a.cfg.ResetRequote {
		return nil
	}

	a.logger.Info("reset-requote-starting")
	return a.runAdd(ctx, false)
}

func (a *App) runSingleMarket(ctx context.Context) error {
	slug := a.opts.SingleMarket
	a.logger.Info("single-market-mode", zap.String("slug", slug))

	market, err := a.client.MarketBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("fetch market by slug %q: %w", slug, err)
	}

	return a.quoter.Quote(ctx, market.LiteMarket)
}

// exclusionSet collects the distinct market IDs the account has already
// traded in. Computed once at run start, read-only thereafter.
func exclusionSet(bets []types.Bet) map[string]struct{} {
	exclude := make(map[string]struct{}, len(bets))
	for i := range bets {
		exclude[bets[i].ContractID] = struct{}{}
	}
	return exclude
}
