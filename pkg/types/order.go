package types

// Bet outcomes accepted by POST /v0/bet.
const (
	OutcomeYes = "YES"
	OutcomeNo  = "NO"
)

// PlaceBetRequest is the body of POST /v0/bet. Setting LimitProb turns the
// bet into a resting limit order at that probability.
type PlaceBetRequest struct {
	ContractID string  `json:"contractId"`
	Outcome    string  `json:"outcome"`
	Amount     float64 `json:"amount"`
	LimitProb  float64 `json:"limitProb"`
}

// PlacedBet is the bet object returned by POST /v0/bet.
type PlacedBet struct {
	ID          string  `json:"betId"`
	ContractID  string  `json:"contractId"`
	Outcome     string  `json:"outcome"`
	Amount      float64 `json:"amount"`
	LimitProb   float64 `json:"limitProb,omitempty"`
	IsFilled    bool    `json:"isFilled,omitempty"`
	IsCancelled bool    `json:"isCancelled,omitempty"`
}
