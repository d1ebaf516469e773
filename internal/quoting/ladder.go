package quoting

import (
	"math"

	"github.com/manifoldbot/quoter/pkg/types"
)

// Orders this close to 0 or 1 are disallowed, both for numerical stability
// and to avoid pathological all-or-nothing exposure.
const (
	minLimitProb = 0.001
	maxLimitProb = 0.999
)

// BuildLadder converts a band plus a notional stake into a pair of opposing
// limit orders: YES at the low bound, NO at the high bound, sized so that
// the worst-case combined position is bounded by a common share count.
//
// Degenerate bands (NaN bounds, or bounds outside (minLimitProb,
// maxLimitProb)) produce no orders. That is an expected, frequent outcome
// for illiquid or extreme-probability markets, not an error.
func BuildLadder(marketID string, band Band, amount float64) []types.PlaceBetRequest {
	if !validBound(band.Low) || !validBound(band.High) {
		DegenerateBandsTotal.Inc()
		return nil
	}

	shares := math.Min(amount/band.Low, amount/(1-band.High))
	yesAmount := shares * band.Low
	noAmount := shares * (1 - band.High)

	LadderOrdersBuiltTotal.Add(2)

	return []types.PlaceBetRequest{
		{
			ContractID: marketID,
			Outcome:    types.OutcomeYes,
			Amount:     yesAmount,
			LimitProb:  band.Low,
		},
		{
			ContractID: marketID,
			Outcome:    types.OutcomeNo,
			Amount:     noAmount,
			LimitProb:  band.High,
		},
	}
}

func validBound(p float64) bool {
	return !math.IsNaN(p) && p > minLimitProb && p < maxLimitProb
}
