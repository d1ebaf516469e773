// Package manifold implements the HTTP client for the Manifold Markets v0
// REST API: paginated market and bet listings, full-market fetches, and
// authenticated limit order placement and cancellation.
package manifold

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/manifoldbot/quoter/pkg/types"
	"go.uber.org/zap"
)

// DefaultPageSize is the page size used for paginated listings. The API caps
// pages at 1000 entries; a shorter page signals the end of the listing.
const DefaultPageSize = 1000

// Client is an HTTP client for the Manifold v0 API.
type Client struct {
	baseURL    string
	apiKey     string
	pageSize   int
	httpClient *http.Client
	logger     *zap.Logger
}

// ClientConfig holds client configuration.
type ClientConfig struct {
	BaseURL  string
	APIKey   string
	PageSize int           // defaults to DefaultPageSize
	Timeout  time.Duration // per-call timeout; a timed-out call fails its batch item only
	Logger   *zap.Logger
}

// NewClient creates a new Manifold API client.
func NewClient(cfg *ClientConfig) *Client {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: cfg.Logger,
	}
}

// Markets fetches all markets, paginating with the `before` cursor until a
// short page signals completion.
func (c *Client) Markets(ctx context.Context) ([]types.LiteMarket, error) {
	markets, err := collectPages(ctx, c.pageSize,
		func(ctx context.Context, before string) ([]types.LiteMarket, error) {
			return c.marketsPage(ctx, before)
		},
		func(m types.LiteMarket) string { return m.ID },
	)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetched-markets", zap.Int("count", len(markets)))
	return markets, nil
}

func (c *Client) marketsPage(ctx context.Context, before string) ([]types.LiteMarket, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(c.pageSize))
	if before != "" {
		params.Set("before", before)
	}

	var page []types.LiteMarket
	err := c.getJSON(ctx, "markets", "/markets", params, &page)
	if err != nil {
		return nil, err
	}

	return page, nil
}

// FullMarket fetches one market with its complete ordered bet tape.
func (c *Client) FullMarket(ctx context.Context, id string) (*types.FullMarket, error) {
	var market types.FullMarket
	err := c.getJSON(ctx, "market", "/market/"+id, nil, &market)
	if err != nil {
		return nil, err
	}

	return &market, nil
}

// MarketBySlug fetches one market by its URL slug.
func (c *Client) MarketBySlug(ctx context.Context, slug string) (*types.FullMarket, error) {
	var market types.FullMarket
	err := c.getJSON(ctx, "market", "/slug/"+slug, nil, &market)
	if err != nil {
		return nil, err
	}

	return &market, nil
}

// BetsForUser fetches the complete bet history of one user, paginating with
// the `before` cursor.
func (c *Client) BetsForUser(ctx context.Context, username string) ([]types.Bet, error) {
	bets, err := collectPages(ctx, c.pageSize,
		func(ctx context.Context, before string) ([]types.Bet, error) {
			return c.betsPage(ctx, username, before)
		},
		func(b types.Bet) string { return b.ID },
	)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetched-bets",
		zap.String("username", username),
		zap.Int("count", len(bets)))
	return bets, nil
}

func (c *Client) betsPage(ctx context.Context, username, before string) ([]types.Bet, error) {
	params := url.Values{}
	params.Set("username", username)
	params.Set("limit", strconv.Itoa(c.pageSize))
	if before != "" {
		params.Set("before", before)
	}

	var page []types.Bet
	err := c.getJSON(ctx, "bets", "/bets", params, &page)
	if err != nil {
		return nil, err
	}

	return page, nil
}

// PlaceBet submits a limit order via POST /bet.
func (c *Client) PlaceBet(ctx context.Context, req *types.PlaceBetRequest) (*types.PlacedBet, error) {
	var placed types.PlacedBet
	err := c.postJSON(ctx, "/bet", req, &placed)
	if err != nil {
		OrderErrorsTotal.Inc()
		return nil, &types.SubmissionError{
			MarketID: req.ContractID,
			Outcome:  req.Outcome,
			Err:      err,
		}
	}

	OrdersPlacedTotal.Inc()
	return &placed, nil
}

// CancelBet cancels a resting limit order via POST /bet/cancel/{id}.
func (c *Client) CancelBet(ctx context.Context, betID string) error {
	err := c.postJSON(ctx, "/bet/cancel/"+betID, nil, nil)
	if err != nil {
		CancelErrorsTotal.Inc()
		return &types.SubmissionError{
			BetID: betID,
			Err:   err,
		}
	}

	CancelsTotal.Inc()
	return nil
}

func (c *Client) getJSON(ctx context.Context, resource, path string, params url.Values, out interface{}) error {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	start := time.Now()
	defer func() {
		RequestDurationSeconds.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	}()
	RequestsTotal.WithLabelValues(resource).Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return &types.FetchError{Resource: resource, URL: requestURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		RequestErrorsTotal.WithLabelValues(resource).Inc()
		return &types.FetchError{Resource: resource, URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		RequestErrorsTotal.WithLabelValues(resource).Inc()
		body, _ := io.ReadAll(resp.Body)
		return &types.FetchError{
			Resource:   resource,
			URL:        requestURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		RequestErrorsTotal.WithLabelValues(resource).Inc()
		return &types.FetchError{Resource: resource, URL: requestURL, Err: fmt.Errorf("read response body: %w", err)}
	}

	err = json.Unmarshal(body, out)
	if err != nil {
		RequestErrorsTotal.WithLabelValues(resource).Inc()
		return &types.FetchError{Resource: resource, URL: requestURL, Err: fmt.Errorf("unmarshal response: %w", err)}
	}

	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	requestURL := c.baseURL + path

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Key "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	err = json.Unmarshal(respBody, out)
	if err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
