// Package app wires the components together and drives a single quoting run:
// load the caller's bets, build the exclusion set, fetch eligible markets,
// and execute the selected mode across them in rate-bounded batches.
package app

import (
	"sync"

	"github.com/manifoldbot/quoter/internal/manifold"
	"github.com/manifoldbot/quoter/internal/markets"
	"github.com/manifoldbot/quoter/internal/quoter"
	"github.com/manifoldbot/quoter/internal/storage"
	"github.com/manifoldbot/quoter/pkg/cache"
	"github.com/manifoldbot/quoter/pkg/config"
	"github.com/manifoldbot/quoter/pkg/healthprobe"
	"github.com/manifoldbot/quoter/pkg/httpserver"
	"go.uber.org/zap"
)

// App is the run orchestrator.
type App struct {
	cfg           *config.Config
	logger        *zap.Logger
	opts          *Options
	client        *manifold.Client
	marketSvc     *markets.Service
	quoter        *quoter.Quoter
	journal       storage.Storage
	marketCache   cache.Cache
	healthChecker *healthprobe.HealthChecker
	httpServer    *httpserver.Server // nil when metrics are disabled
	runID         string
	wg            sync.WaitGroup
}

// Options holds per-invocation options.
type Options struct {
	SingleMarket string // for debugging: quote only this market, by slug
}
