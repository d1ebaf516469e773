package markets

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MarketsFetchedTotal tracks market summaries fetched across runs.
	MarketsFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "manifold_quoter_markets_fetched_total",
		Help: "Total number of market summaries fetched",
	})

	// EligibleMarkets tracks the eligible market count of the latest filter pass.
	EligibleMarkets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "manifold_quoter_eligible_markets",
		Help: "Number of eligible markets in the most recent filter pass",
	})

	// CacheHitsTotal tracks full-market cache hits.
	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "manifold_quoter_market_cache_hits_total",
		Help: "Total number of full-market cache hits",
	})

	// CacheMissesTotal tracks full-market cache misses.
	CacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "manifold_quoter_market_cache_misses_total",
		Help: "Total number of full-market cache misses",
	})
)
