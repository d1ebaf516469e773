// Package storage journals the engine's order activity for post-run
// auditing. Runs keep no other persistent state: a failed run is re-invoked
// from scratch and the journal is the only record of what it did.
package storage

import (
	"context"
	"time"
)

// Actions recorded in the journal.
const (
	ActionPlace   = "place"
	ActionCancel  = "cancel"
	ActionDryRun  = "dry-run"
)

// Record is one journal entry: a limit order placed, cancelled, or built but
// withheld in dry-run mode.
type Record struct {
	RunID     string
	Action    string
	MarketID  string
	Question  string
	Outcome   string // YES or NO, empty for cancellations
	LimitProb float64
	Amount    float64
	BetID     string
	At        time.Time
}

// Storage is the interface for the quote journal.
type Storage interface {
	// RecordOrder journals one order action.
	RecordOrder(ctx context.Context, rec *Record) error

	// Close closes the journal.
	Close() error
}
