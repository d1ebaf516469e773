package quoting

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BandsComputedTotal tracks price bands derived from trade tapes.
	BandsComputedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "manifold_quoter_bands_computed_total",
		Help: "Total number of price bands computed",
	})

	// DegenerateBandsTotal tracks bands rejected as out of range or NaN.
	DegenerateBandsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "manifold_quoter_degenerate_bands_total",
		Help: "Total number of bands skipped as degenerate (NaN or out of range)",
	})

	// LadderOrdersBuiltTotal tracks limit order requests produced by the ladder builder.
	LadderOrdersBuiltTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "manifold_quoter_ladder_orders_built_total",
		Help: "Total number of limit order requests built from bands",
	})
)
