// Package quoter manages the order lifecycle per market: deciding whether a
// market gets quoted, turning its trade tape into a ladder of resting limit
// orders, and cancelling the engine's own stale orders on a reset pass.
package quoter

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/manifoldbot/quoter/internal/quoting"
	"github.com/manifoldbot/quoter/internal/storage"
	"github.com/manifoldbot/quoter/pkg/types"
	"go.uber.org/zap"
)

// MarketSource provides full-market fetches (normally the cached market service).
type MarketSource interface {
	FullMarket(ctx context.Context, id string) (*types.FullMarket, error)
}

// OrderClient submits and cancels limit orders.
type OrderClient interface {
	PlaceBet(ctx context.Context, req *types.PlaceBetRequest) (*types.PlacedBet, error)
	CancelBet(ctx context.Context, betID string) error
}

// Quoter decides, sizes and submits quotes for individual markets.
type Quoter struct {
	markets    MarketSource
	orders     OrderClient
	journal    storage.Storage
	logger     *zap.Logger
	runID      string
	minTrades  int
	stakeBase  float64
	stakeSlope float64
	dryRun     bool
}

// Config holds quoter configuration.
type Config struct {
	Markets    MarketSource
	Orders     OrderClient
	Journal    storage.Storage
	Logger     *zap.Logger
	RunID      string
	MinTrades  int     // minimum qualifying trades before a market is quoted
	StakeBase  float64 // base stake floor
	StakeSlope float64 // stake growth per log-unit of traded volume
	DryRun     bool    // build and journal orders without submitting
}

// New creates a new quoter.
func New(cfg *Config) *Quoter {
	return &Quoter{
		markets:    cfg.Markets,
		orders:     cfg.Orders,
		journal:    cfg.Journal,
		logger:     cfg.Logger,
		runID:      cfg.RunID,
		minTrades:  cfg.MinTrades,
		stakeBase:  cfg.StakeBase,
		stakeSlope: cfg.StakeSlope,
		dryRun:     cfg.DryRun,
	}
}

// Quote fetches one market's full trade tape and, if the market has enough
// qualifying trades, submits a two-tier ladder of resting limit orders
// around the estimated fair price. Submissions within the market fire
// concurrently; a failed submission does not roll back its siblings, but any
// failure is reported to the caller.
func (q *Quoter) Quote(ctx context.Context, market types.LiteMarket) error {
	full, err := q.markets.FullMarket(ctx, market.ID)
	if err != nil {
		return err
	}

	qualifying := qualifyingTrades(full.Bets)
	if len(qualifying) < q.minTrades {
		MarketsSkippedTotal.WithLabelValues("too-few-trades").Inc()
		q.logger.Debug("market-skipped",
			zap.String("market-id", market.ID),
			zap.Int("qualifying-trades", len(qualifying)),
			zap.Int("min-trades", q.minTrades))
		return nil
	}

	vol := quoting.TotalVolume(qualifying)
	stake := q.stakeBase + q.stakeSlope*math.Log(vol)
	bands := quoting.Bands(qualifying)

	var requests []*types.PlaceBetRequest
	for i, band := range bands {
		// The outer band is less likely to fill and acts as a safety-net
		// quote, so it carries proportionally more stake.
		ladder := quoting.BuildLadder(market.ID, band, stake*float64(i+1))
		for j := range ladder {
			requests = append(requests, &ladder[j])
		}
	}

	q.logger.Info("market-bands-computed",
		zap.String("market-id", market.ID),
		zap.String("question", full.Question),
		zap.Int("qualifying-trades", len(qualifying)),
		zap.Float64("volume", vol),
		zap.Float64("stake", stake),
		zap.Int("orders", len(requests)))

	if len(requests) == 0 {
		MarketsSkippedTotal.WithLabelValues("degenerate-bands").Inc()
		return nil
	}

	err = q.submitAll(ctx, full, requests)
	if err != nil {
		return err
	}

	MarketsQuotedTotal.Inc()
	return nil
}

// submitAll fires all submissions concurrently and joins them, recording a
// per-order outcome rather than letting one failure hide the others.
func (q *Quoter) submitAll(ctx context.Context, market *types.FullMarket, requests []*types.PlaceBetRequest) error {
	outcomes := make([]error, len(requests))

	var wg sync.WaitGroup
	for i, req := range requests {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[i] = q.submitOne(ctx, market, req)
		}()
	}
	wg.Wait()

	for i, err := range outcomes {
		if err != nil {
			q.logger.Warn("order-submission-failed",
				zap.String("market-id", market.ID),
				zap.String("outcome", requests[i].Outcome),
				zap.Float64("limit-prob", requests[i].LimitProb),
				zap.Error(err))
		}
	}

	return errors.Join(outcomes...)
}

func (q *Quoter) submitOne(ctx context.Context, market *types.FullMarket, req *types.PlaceBetRequest) error {
	if q.dryRun {
		return q.journal.RecordOrder(ctx, &storage.Record{
			RunID:     q.runID,
			Action:    storage.ActionDryRun,
			MarketID:  req.ContractID,
			Question:  market.Question,
			Outcome:   req.Outcome,
			LimitProb: req.LimitProb,
			Amount:    req.Amount,
			At:        time.Now(),
		})
	}

	placed, err := q.orders.PlaceBet(ctx, req)
	if err != nil {
		return err
	}

	return q.journal.RecordOrder(ctx, &storage.Record{
		RunID:     q.runID,
		Action:    storage.ActionPlace,
		MarketID:  req.ContractID,
		Question:  market.Question,
		Outcome:   req.Outcome,
		LimitProb: req.LimitProb,
		Amount:    req.Amount,
		BetID:     placed.ID,
		At:        time.Now(),
	})
}

// Reset cancels the caller's own open, unfilled limit orders. Cancellations
// fire concurrently; a failure for one order does not block the others.
func (q *Quoter) Reset(ctx context.Context, bets []types.Bet) error {
	var open []types.Bet
	for i := range bets {
		if bets[i].IsOpenLimitOrder() {
			open = append(open, bets[i])
		}
	}

	q.logger.Info("reset-cancelling-orders",
		zap.Int("own-bets", len(bets)),
		zap.Int("open-limit-orders", len(open)))

	outcomes := make([]error, len(open))

	var wg sync.WaitGroup
	for i := range open {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[i] = q.cancelOne(ctx, &open[i])
		}()
	}
	wg.Wait()

	for i, err := range outcomes {
		if err != nil {
			q.logger.Warn("order-cancel-failed",
				zap.String("bet-id", open[i].ID),
				zap.Error(err))
		} else {
			OrdersResetTotal.Inc()
		}
	}

	return errors.Join(outcomes...)
}

func (q *Quoter) cancelOne(ctx context.Context, bet *types.Bet) error {
	limitProb := 0.0
	if bet.LimitProb != nil {
		limitProb = *bet.LimitProb
	}

	if q.dryRun {
		return q.journal.RecordOrder(ctx, &storage.Record{
			RunID:     q.runID,
			Action:    storage.ActionDryRun,
			MarketID:  bet.ContractID,
			Outcome:   bet.Outcome,
			LimitProb: limitProb,
			Amount:    bet.Amount,
			BetID:     bet.ID,
			At:        time.Now(),
		})
	}

	err := q.orders.CancelBet(ctx, bet.ID)
	if err != nil {
		return err
	}

	return q.journal.RecordOrder(ctx, &storage.Record{
		RunID:     q.runID,
		Action:    storage.ActionCancel,
		MarketID:  bet.ContractID,
		Outcome:   bet.Outcome,
		LimitProb: limitProb,
		Amount:    bet.Amount,
		BetID:     bet.ID,
		At:        time.Now(),
	})
}

// qualifyingTrades filters the tape to informative fills and orders them
// oldest first; the API serves bets newest first.
func qualifyingTrades(bets []types.Bet) []types.Bet {
	var qualifying []types.Bet
	for i := range bets {
		if bets[i].IsQualifying() {
			qualifying = append(qualifying, bets[i])
		}
	}

	sort.SliceStable(qualifying, func(i, j int) bool {
		return qualifying[i].CreatedTime < qualifying[j].CreatedTime
	})

	return qualifying
}
