package quoting

import (
	"math"
	"testing"

	"github.com/manifoldbot/quoter/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLadder_SizesBothLegs(t *testing.T) {
	orders := BuildLadder("mkt1", Band{Low: 0.4, High: 0.6}, 100)
	require.Len(t, orders, 2)

	// shares = min(100/0.4, 100/0.4) = 250 on both legs.
	yes, no := orders[0], orders[1]

	assert.Equal(t, "mkt1", yes.ContractID)
	assert.Equal(t, types.OutcomeYes, yes.Outcome)
	assert.InDelta(t, 0.4, yes.LimitProb, 1e-12)
	assert.InDelta(t, 100, yes.Amount, 1e-9)

	assert.Equal(t, "mkt1", no.ContractID)
	assert.Equal(t, types.OutcomeNo, no.Outcome)
	assert.InDelta(t, 0.6, no.LimitProb, 1e-12)
	assert.InDelta(t, 100, no.Amount, 1e-9)
}

func TestBuildLadder_AsymmetricBandBoundsWorstCase(t *testing.T) {
	// 100/0.2 = 500 vs 100/(1-0.5) = 200: the NO leg binds.
	orders := BuildLadder("mkt1", Band{Low: 0.2, High: 0.5}, 100)
	require.Len(t, orders, 2)

	assert.InDelta(t, 200*0.2, orders[0].Amount, 1e-9)
	assert.InDelta(t, 100, orders[1].Amount, 1e-9)
}

func TestBuildLadder_RejectsDegenerateBands(t *testing.T) {
	tests := []struct {
		name string
		band Band
	}{
		{"low at floor", Band{Low: 0.0005, High: 0.6}},
		{"high at ceiling", Band{Low: 0.4, High: 0.9995}},
		{"low exactly min", Band{Low: minLimitProb, High: 0.6}},
		{"high exactly max", Band{Low: 0.4, High: maxLimitProb}},
		{"nan low", Band{Low: math.NaN(), High: 0.6}},
		{"nan high", Band{Low: 0.4, High: math.NaN()}},
		{"negative low", Band{Low: -0.1, High: 0.6}},
		{"high above one", Band{Low: 0.4, High: 1.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, BuildLadder("mkt1", tt.band, 100))
		})
	}
}
