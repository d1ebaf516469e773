package types

// Bet represents a single trade on a market, from GET /v0/bets or the bet
// tape embedded in a full market. Amount is negative for sell-equivalent bets.
// The limit-order fields are only present when the bet is itself a resting
// limit order rather than an immediate fill, hence the pointer types.
type Bet struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	ContractID  string  `json:"contractId"`
	CreatedTime int64   `json:"createdTime"`
	Amount      float64 `json:"amount"`
	Outcome     string  `json:"outcome"`
	Shares      float64 `json:"shares"`
	ProbBefore  float64 `json:"probBefore"`
	ProbAfter   float64 `json:"probAfter"`

	// Limit order fields (nil / zero for ordinary bets).
	OrderAmount *float64 `json:"orderAmount,omitempty"`
	LimitProb   *float64 `json:"limitProb,omitempty"`
	IsFilled    bool     `json:"isFilled,omitempty"`
	IsCancelled bool     `json:"isCancelled,omitempty"`
	Fills       []Fill   `json:"fills,omitempty"`

	IsSold               bool `json:"isSold,omitempty"`
	IsAnte               bool `json:"isAnte,omitempty"`
	IsLiquidityProvision bool `json:"isLiquidityProvision,omitempty"`
	IsRedemption         bool `json:"isRedemption,omitempty"`
}

// Fill records a transaction that partially or fully filled a limit order.
type Fill struct {
	MatchedBetID *string `json:"matchedBetId"`
	Amount       float64 `json:"amount"`
	Shares       float64 `json:"shares"`
	Timestamp    int64   `json:"timestamp"`
	IsSale       bool    `json:"isSale,omitempty"`
}

// IsLimitOrder reports whether the bet is a resting limit order.
func (b *Bet) IsLimitOrder() bool {
	return b.LimitProb != nil
}

// IsOpenLimitOrder reports whether the bet is a limit order that is still
// resting: neither fully filled nor cancelled.
func (b *Bet) IsOpenLimitOrder() bool {
	return b.IsLimitOrder() && !b.IsFilled && !b.IsCancelled
}

// IsQualifying reports whether the bet counts as an informative fill for
// price estimation. Resting limit orders are excluded because they do not
// reflect realized trading pressure.
func (b *Bet) IsQualifying() bool {
	return !b.IsLimitOrder()
}
