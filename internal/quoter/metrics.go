package quoter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MarketsQuotedTotal tracks markets that received a full quote ladder.
	MarketsQuotedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "manifold_quoter_markets_quoted_total",
		Help: "Total number of markets quoted",
	})

	// MarketsSkippedTotal tracks markets skipped without orders, by reason.
	MarketsSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "manifold_quoter_markets_skipped_total",
			Help: "Total number of markets skipped without quoting",
		},
		[]string{"reason"},
	)

	// OrdersResetTotal tracks own limit orders cancelled during reset passes.
	OrdersResetTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "manifold_quoter_orders_reset_total",
		Help: "Total number of own limit orders cancelled during reset",
	})
)
