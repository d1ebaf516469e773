package storage

import (
	"context"

	"go.uber.org/zap"
)

// ConsoleStorage implements Storage by writing journal entries to the log.
type ConsoleStorage struct {
	logger *zap.Logger
}

// NewConsoleStorage creates a new console journal.
func NewConsoleStorage(logger *zap.Logger) *ConsoleStorage {
	logger.Info("console-journal-initialized")
	return &ConsoleStorage{
		logger: logger,
	}
}

// RecordOrder logs one order action.
func (c *ConsoleStorage) RecordOrder(ctx context.Context, rec *Record) error {
	c.logger.Info("order-journaled",
		zap.String("run-id", rec.RunID),
		zap.String("action", rec.Action),
		zap.String("market-id", rec.MarketID),
		zap.String("question", rec.Question),
		zap.String("outcome", rec.Outcome),
		zap.Float64("limit-prob", rec.LimitProb),
		zap.Float64("amount", rec.Amount),
		zap.String("bet-id", rec.BetID))

	return nil
}

// Close is a no-op for console storage.
func (c *ConsoleStorage) Close() error {
	return nil
}
