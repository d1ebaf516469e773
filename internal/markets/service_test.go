package markets

import (
	"context"
	"testing"
	"time"

	"github.com/manifoldbot/quoter/pkg/cache"
	"github.com/manifoldbot/quoter/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClient struct {
	markets         []types.LiteMarket
	fullMarketCalls int
}

func (f *fakeClient) Markets(ctx context.Context) ([]types.LiteMarket, error) {
	return f.markets, nil
}

func (f *fakeClient) FullMarket(ctx context.Context, id string) (*types.FullMarket, error) {
	f.fullMarketCalls++
	return &types.FullMarket{LiteMarket: types.LiteMarket{ID: id}}, nil
}

func ms(t time.Time) *int64 {
	v := t.UnixMilli()
	return &v
}

func TestOpenBinaryMarkets_Filter(t *testing.T) {
	now := time.Now()
	future := ms(now.Add(24 * time.Hour))
	past := ms(now.Add(-24 * time.Hour))

	client := &fakeClient{markets: []types.LiteMarket{
		{ID: "open", OutcomeType: types.OutcomeTypeBinary, CloseTime: future},
		{ID: "resolved", OutcomeType: types.OutcomeTypeBinary, CloseTime: future, IsResolved: true},
		{ID: "closed", OutcomeType: types.OutcomeTypeBinary, CloseTime: past},
		{ID: "no-close-time", OutcomeType: types.OutcomeTypeBinary},
		{ID: "free-response", OutcomeType: "FREE_RESPONSE", CloseTime: future},
		{ID: "already-traded", OutcomeType: types.OutcomeTypeBinary, CloseTime: future},
	}}

	svc := New(&Config{Client: client, Logger: zap.NewNop()})

	exclude := map[string]struct{}{"already-traded": {}}
	eligible, err := svc.OpenBinaryMarkets(context.Background(), exclude)
	require.NoError(t, err)

	require.Len(t, eligible, 1)
	assert.Equal(t, "open", eligible[0].ID)
}

func TestOpenBinaryMarkets_EmptyExclusion(t *testing.T) {
	now := time.Now()
	client := &fakeClient{markets: []types.LiteMarket{
		{ID: "a", OutcomeType: types.OutcomeTypeBinary, CloseTime: ms(now.Add(time.Hour))},
		{ID: "b", OutcomeType: types.OutcomeTypeBinary, CloseTime: ms(now.Add(time.Hour))},
	}}

	svc := New(&Config{Client: client, Logger: zap.NewNop()})

	eligible, err := svc.OpenBinaryMarkets(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, eligible, 2)
}

func TestFullMarket_CacheHitSkipsSecondFetch(t *testing.T) {
	client := &fakeClient{}

	c, err := cache.NewRistrettoCache(&cache.RistrettoConfig{
		NumCounters: 1000,
		MaxCost:     100,
		BufferItems: 64,
		Logger:      zap.NewNop(),
	})
	require.NoError(t, err)
	defer c.Close()

	svc := New(&Config{Client: client, Cache: c, Logger: zap.NewNop()})

	_, err = svc.FullMarket(context.Background(), "mkt-1")
	require.NoError(t, err)
	c.Wait()

	_, err = svc.FullMarket(context.Background(), "mkt-1")
	require.NoError(t, err)

	assert.Equal(t, 1, client.fullMarketCalls)
}

func TestFullMarket_NoCacheConfigured(t *testing.T) {
	client := &fakeClient{}
	svc := New(&Config{Client: client, Logger: zap.NewNop()})

	_, err := svc.FullMarket(context.Background(), "mkt-1")
	require.NoError(t, err)
	_, err = svc.FullMarket(context.Background(), "mkt-1")
	require.NoError(t, err)

	assert.Equal(t, 2, client.fullMarketCalls)
}
