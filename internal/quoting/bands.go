package quoting

import (
	"math"

	"github.com/manifoldbot/quoter/pkg/types"
)

// Band is a (low, high) probability interval where resting orders should be
// placed. Ephemeral: derived per market per run, never persisted.
type Band struct {
	Low  float64
	High float64
}

// MinQualifyingTrades is the fewest qualifying trades from which a band can
// be derived at all. The lifecycle manager applies its own, larger minimum
// before quoting.
const MinQualifyingTrades = 2

// TotalVolume returns the total traded notional of the given trades.
func TotalVolume(trades []types.Bet) float64 {
	vol := 0.0
	for i := range trades {
		vol += math.Abs(trades[i].Amount)
	}
	return vol
}

// updateFactor derives the adaptive smoothing factor from log total volume.
// Markets with more trading history get a smaller, slower-moving factor.
// Monotonically non-increasing in logVol, clamped to [0.1, 0.3].
func updateFactor(logVol float64) float64 {
	return 0.1 + 0.2*math.Max(0, 12-logVol)/12
}

// Bands derives the quote bands for one market from its qualifying trades,
// time-ordered ascending. Returns nil for fewer than MinQualifyingTrades
// trades; otherwise exactly two concentric bands, inner first. The outer
// band sits one standard deviation beyond the inner on both sides, so the
// ladder can rest a tighter order near the fair price and a wider safety-net
// order further out.
func Bands(trades []types.Bet) []Band {
	if len(trades) < MinQualifyingTrades {
		return nil
	}

	vol := TotalVolume(trades)
	alpha := updateFactor(math.Log(vol))

	// Estimate drift and dispersion of the tape as deviations from the
	// current price, weighted by each trade's notional.
	lastPrice := trades[len(trades)-1].ProbAfter
	obs := make([]Observation, len(trades))
	for i := range trades {
		obs[i] = Observation{
			Price: lastPrice - trades[i].ProbAfter,
			Size:  math.Abs(trades[i].Amount),
		}
	}

	est := EstimateVolumeWeighted(obs, alpha)

	// Spread scales with the distance to the nearest probability boundary,
	// keeping bands inside the valid range. Systematic drift widens the band
	// on the side the price is trending toward.
	downSpread := 2 * lastPrice * est.StdDev
	upSpread := 2 * est.StdDev * (1 - lastPrice)

	low := lastPrice - downSpread + math.Min(est.Average, 0)
	high := lastPrice + upSpread + math.Max(0, est.Average)

	BandsComputedTotal.Add(2)

	return []Band{
		{Low: low, High: high},
		{Low: low - est.StdDev, High: high + est.StdDev},
	}
}
