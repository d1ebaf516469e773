package manifold

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/manifoldbot/quoter/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&ClientConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Logger:  zap.NewNop(),
	})
}

func TestFullMarket(t *testing.T) {
	limitProb := 0.35

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/market/mkt-1", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		market := types.FullMarket{
			LiteMarket: types.LiteMarket{
				ID:          "mkt-1",
				Question:    "Will it rain tomorrow?",
				OutcomeType: types.OutcomeTypeBinary,
				Probability: 0.42,
			},
			Bets: []types.Bet{
				{ID: "b1", Amount: 25, ProbBefore: 0.40, ProbAfter: 0.42},
				{ID: "b2", Amount: 10, LimitProb: &limitProb},
			},
		}
		_ = json.NewEncoder(w).Encode(market)
	})

	market, err := client.FullMarket(context.Background(), "mkt-1")
	require.NoError(t, err)

	assert.Equal(t, "mkt-1", market.ID)
	require.Len(t, market.Bets, 2)
	assert.True(t, market.Bets[0].IsQualifying())
	assert.False(t, market.Bets[1].IsQualifying())
}

func TestFullMarket_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"market not found"}`, http.StatusNotFound)
	})

	_, err := client.FullMarket(context.Background(), "missing")
	require.Error(t, err)

	var fetchErr *types.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Equal(t, "market", fetchErr.Resource)
}

func TestPlaceBet(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bet", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Key test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req types.PlaceBetRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "mkt-1", req.ContractID)
		assert.Equal(t, types.OutcomeYes, req.Outcome)
		assert.InDelta(t, 0.40, req.LimitProb, 1e-9)

		_ = json.NewEncoder(w).Encode(types.PlacedBet{ID: "bet-123"})
	})

	placed, err := client.PlaceBet(context.Background(), &types.PlaceBetRequest{
		ContractID: "mkt-1",
		Outcome:    types.OutcomeYes,
		Amount:     100,
		LimitProb:  0.40,
	})
	require.NoError(t, err)
	assert.Equal(t, "bet-123", placed.ID)
}

func TestPlaceBet_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"insufficient balance"}`, http.StatusForbidden)
	})

	_, err := client.PlaceBet(context.Background(), &types.PlaceBetRequest{
		ContractID: "mkt-1",
		Outcome:    types.OutcomeNo,
		Amount:     50,
		LimitProb:  0.60,
	})
	require.Error(t, err)

	var subErr *types.SubmissionError
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, "mkt-1", subErr.MarketID)
	assert.Equal(t, types.OutcomeNo, subErr.Outcome)
}

func TestCancelBet(t *testing.T) {
	var gotPath string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Key test-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	})

	err := client.CancelBet(context.Background(), "bet-42")
	require.NoError(t, err)
	assert.Equal(t, "/bet/cancel/bet-42", gotPath)
}

func TestCancelBet_Failure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"already cancelled"}`, http.StatusBadRequest)
	})

	err := client.CancelBet(context.Background(), "bet-42")
	require.Error(t, err)

	var subErr *types.SubmissionError
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, "bet-42", subErr.BetID)
}

func TestMarketBySlug(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/slug/will-it-rain", r.URL.Path)
		_ = json.NewEncoder(w).Encode(types.FullMarket{
			LiteMarket: types.LiteMarket{ID: "mkt-1"},
		})
	})

	market, err := client.MarketBySlug(context.Background(), "will-it-rain")
	require.NoError(t, err)
	assert.Equal(t, "mkt-1", market.ID)
}
