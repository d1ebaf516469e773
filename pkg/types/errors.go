package types

import "fmt"

// FetchError represents a failed market or bet list fetch. Fetches are not
// retried; the error surfaces as a failed batch item in the orchestrator.
type FetchError struct {
	Resource   string // "markets", "market", "bets"
	URL        string
	StatusCode int // 0 if the request never completed
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.Resource, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// SubmissionError represents a failed order submission or cancellation.
// It is isolated per order: sibling submissions in the same concurrent group
// still run to completion.
type SubmissionError struct {
	MarketID string
	Outcome  string // YES or NO, empty for cancellations
	BetID    string // set for cancellations
	Err      error
}

func (e *SubmissionError) Error() string {
	if e.BetID != "" {
		return fmt.Sprintf("cancel order %s: %v", e.BetID, e.Err)
	}
	return fmt.Sprintf("submit %s order on market %s: %v", e.Outcome, e.MarketID, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
