package types

import "time"

// OutcomeTypeBinary is the only market kind the quoting engine will touch.
// Manifold also serves FREE_RESPONSE, MULTIPLE_CHOICE and NUMERIC markets.
const OutcomeTypeBinary = "BINARY"

// LiteMarket represents a market summary from GET /v0/markets.
// All timestamps are milliseconds since epoch, as served by the API.
type LiteMarket struct {
	ID              string  `json:"id"`
	CreatorUsername string  `json:"creatorUsername"`
	CreatedTime     int64   `json:"createdTime"`
	CloseTime       *int64  `json:"closeTime,omitempty"`
	Question        string  `json:"question"`
	URL             string  `json:"url"`
	OutcomeType     string  `json:"outcomeType"`
	Mechanism       string  `json:"mechanism"`
	Probability     float64 `json:"probability"`
	Volume          float64 `json:"volume"`
	Volume24Hours   float64 `json:"volume24Hours"`
	IsResolved      bool    `json:"isResolved"`
	Resolution      string  `json:"resolution,omitempty"`
	TotalLiquidity  float64 `json:"totalLiquidity,omitempty"`
}

// FullMarket is a market together with its complete ordered bet tape,
// from GET /v0/market/{id}.
type FullMarket struct {
	LiteMarket
	Bets []Bet `json:"bets"`
}

// IsOpenBinary reports whether the market is eligible for quoting: a binary
// market that has not resolved and whose close time is known and in the future.
// Markets without a close time are skipped rather than assumed open.
func (m *LiteMarket) IsOpenBinary(now time.Time) bool {
	if m.OutcomeType != OutcomeTypeBinary || m.IsResolved {
		return false
	}
	if m.CloseTime == nil {
		return false
	}
	return *m.CloseTime > now.UnixMilli()
}
