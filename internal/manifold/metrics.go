package manifold

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks API GET requests by resource.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "manifold_quoter_api_requests_total",
			Help: "Total number of Manifold API fetch requests",
		},
		[]string{"resource"},
	)

	// RequestErrorsTotal tracks failed API GET requests by resource.
	RequestErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "manifold_quoter_api_request_errors_total",
			Help: "Total number of failed Manifold API fetch requests",
		},
		[]string{"resource"},
	)

	// RequestDurationSeconds tracks API GET latency by resource.
	RequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "manifold_quoter_api_request_duration_seconds",
			Help:    "Duration of Manifold API fetch requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource"},
	)

	// OrdersPlacedTotal tracks successful limit order submissions.
	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "manifold_quoter_orders_placed_total",
		Help: "Total number of limit orders successfully submitted",
	})

	// OrderErrorsTotal tracks failed limit order submissions.
	OrderErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "manifold_quoter_order_errors_total",
		Help: "Total number of failed limit order submissions",
	})

	// CancelsTotal tracks successful order cancellations.
	CancelsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "manifold_quoter_cancels_total",
		Help: "Total number of limit orders successfully cancelled",
	})

	// CancelErrorsTotal tracks failed order cancellations.
	CancelErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "manifold_quoter_cancel_errors_total",
		Help: "Total number of failed limit order cancellations",
	})
)
