// Package markets selects which markets the engine may quote and caches
// full-market fetches for the duration of a run.
package markets

import (
	"context"
	"time"

	"github.com/manifoldbot/quoter/pkg/cache"
	"github.com/manifoldbot/quoter/pkg/types"
	"go.uber.org/zap"
)

// APIClient is the slice of the Manifold client the service consumes.
type APIClient interface {
	Markets(ctx context.Context) ([]types.LiteMarket, error)
	FullMarket(ctx context.Context, id string) (*types.FullMarket, error)
}

// Service provides eligible-market listing and cached full-market fetches.
type Service struct {
	client APIClient
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// Config holds service configuration.
type Config struct {
	Client APIClient
	Cache  cache.Cache // optional; nil disables caching
	TTL    time.Duration
	Logger *zap.Logger
}

// New creates a new market service.
func New(cfg *Config) *Service {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &Service{
		client: cfg.Client,
		cache:  cfg.Cache,
		ttl:    ttl,
		logger: cfg.Logger,
		now:    time.Now,
	}
}

// OpenBinaryMarkets fetches all markets and filters them to open binary
// markets not in the exclusion set.
func (s *Service) OpenBinaryMarkets(ctx context.Context, exclude map[string]struct{}) ([]types.LiteMarket, error) {
	all, err := s.client.Markets(ctx)
	if err != nil {
		return nil, err
	}

	MarketsFetchedTotal.Add(float64(len(all)))

	now := s.now()
	eligible := make([]types.LiteMarket, 0, len(all))
	for i := range all {
		m := &all[i]
		if !m.IsOpenBinary(now) {
			continue
		}
		if _, skip := exclude[m.ID]; skip {
			continue
		}
		eligible = append(eligible, *m)
	}

	EligibleMarkets.Set(float64(len(eligible)))
	s.logger.Info("markets-filtered",
		zap.Int("total", len(all)),
		zap.Int("eligible", len(eligible)),
		zap.Int("excluded", len(exclude)))

	return eligible, nil
}

// FullMarket fetches one market with its full trade tape, serving repeat
// requests within the TTL from the cache. A reset pass followed by a requote
// pass reads each tape only once.
func (s *Service) FullMarket(ctx context.Context, id string) (*types.FullMarket, error) {
	cacheKey := "market:" + id

	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKey); ok {
			if market, ok := cached.(*types.FullMarket); ok {
				CacheHitsTotal.Inc()
				return market, nil
			}
		}
		CacheMissesTotal.Inc()
	}

	market, err := s.client.FullMarket(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(cacheKey, market, s.ttl)
	}

	return market, nil
}
