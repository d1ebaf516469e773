// Package quoting contains the statistical core of the engine: a
// volume-weighted exponential estimator over a market's trade tape, the
// derivation of fair-price bands from it, and the translation of a band into
// a pair of opposing limit orders.
package quoting

import "math"

// volumeUnit is the notional volume that counts as one "tick" of estimator
// time. Decay is measured in units of traded volume, not wall clock: the
// estimate converges faster after large trades and slower after many small
// ones.
const volumeUnit = 100.0

// Observation is a single (price, size) sample for the estimator. Size is
// the absolute traded notional of the sample.
type Observation struct {
	Price float64
	Size  float64
}

// Estimate is the output of the volume-weighted estimator.
type Estimate struct {
	Average  float64
	Variance float64
	StdDev   float64
}

// EstimateVolumeWeighted runs an exponentially-weighted moving average and
// variance over obs with smoothing factor alpha in (0,1). Each observation's
// effective weight is 1 - (1-alpha)^(size/volumeUnit).
//
// The observations must be time-ordered ascending and non-empty; callers
// guard with a minimum-trade-count check before invoking.
func EstimateVolumeWeighted(obs []Observation, alpha float64) Estimate {
	average := obs[0].Price
	variance := 0.0

	for _, o := range obs[1:] {
		a := 1 - math.Pow(1-alpha, math.Abs(o.Size)/volumeUnit)
		average = average*(1-a) + o.Price*a
		deviation := o.Price - average
		variance = variance*(1-a) + deviation*deviation*a
	}

	return Estimate{
		Average:  average,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}
}
