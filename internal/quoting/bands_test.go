package quoting

import (
	"math"
	"testing"

	"github.com/manifoldbot/quoter/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tape(probs []float64, amount float64) []types.Bet {
	bets := make([]types.Bet, len(probs))
	for i, p := range probs {
		bets[i] = types.Bet{
			ID:          string(rune('a' + i)),
			Amount:      amount,
			ProbBefore:  p,
			ProbAfter:   p,
			CreatedTime: int64(i),
		}
	}
	return bets
}

func TestBands_TooFewTrades(t *testing.T) {
	assert.Nil(t, Bands(nil))
	assert.Nil(t, Bands(tape([]float64{0.5}, 10)))
}

func TestBands_ReturnsExactlyTwo(t *testing.T) {
	bands := Bands(tape([]float64{0.45, 0.5, 0.55, 0.5}, 25))
	require.Len(t, bands, 2)
}

func TestBands_OuterIsInnerPlusStdDev(t *testing.T) {
	bands := Bands(tape([]float64{0.40, 0.45, 0.55, 0.50, 0.52}, 40))
	require.Len(t, bands, 2)

	inner, outer := bands[0], bands[1]

	// The outer band sits exactly one standard deviation beyond the inner
	// on both sides.
	lowGap := inner.Low - outer.Low
	highGap := outer.High - inner.High
	assert.InDelta(t, lowGap, highGap, 1e-12)
	assert.Greater(t, lowGap, 0.0)
}

func TestBands_FlatTapeCollapsesToLastPrice(t *testing.T) {
	bands := Bands(tape([]float64{0.5, 0.5, 0.5}, 30))
	require.Len(t, bands, 2)

	// Zero dispersion and zero drift: both bands collapse onto the last
	// traded probability.
	assert.InDelta(t, 0.5, bands[0].Low, 1e-12)
	assert.InDelta(t, 0.5, bands[0].High, 1e-12)
	assert.InDelta(t, 0.5, bands[1].Low, 1e-12)
	assert.InDelta(t, 0.5, bands[1].High, 1e-12)
}

func TestBands_DriftWidensTrendingSide(t *testing.T) {
	up := Bands(tape([]float64{0.40, 0.44, 0.48, 0.52, 0.56}, 50))
	require.Len(t, up, 2)
	last := 0.56

	// On an up-trending tape the deviation series lastPrice - probAfter is
	// positive on average, so only the high side moves beyond the plain
	// spread while the low side keeps its symmetric distance.
	upSideWidth := up[0].High - last
	downSideWidth := last - up[0].Low
	assert.Greater(t, upSideWidth, downSideWidth)
}

func TestUpdateFactor_ClampedAndMonotonic(t *testing.T) {
	prev := math.Inf(1)
	for logVol := 0.0; logVol <= 20; logVol += 0.25 {
		f := updateFactor(logVol)
		assert.GreaterOrEqual(t, f, 0.1, "logVol=%v", logVol)
		assert.LessOrEqual(t, f, 0.3, "logVol=%v", logVol)
		assert.LessOrEqual(t, f, prev, "updateFactor must be non-increasing at logVol=%v", logVol)
		prev = f
	}

	assert.InDelta(t, 0.3, updateFactor(0), 1e-12)
	assert.InDelta(t, 0.1, updateFactor(12), 1e-12)
	assert.InDelta(t, 0.1, updateFactor(18), 1e-12)
}

func TestTotalVolume_AbsoluteAmounts(t *testing.T) {
	bets := []types.Bet{
		{Amount: 30},
		{Amount: -20},
		{Amount: 50},
	}
	assert.Equal(t, 100.0, TotalVolume(bets))
}
