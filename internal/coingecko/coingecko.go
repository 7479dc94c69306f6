// Package coingecko is a typed client for the CoinGecko crypto API:
// simple price snapshots, coin metadata, and free-text search. No
// credential is required; an API key is attached when configured.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/marketdash/market-dashboard-backend/internal/apperrors"
)

const defaultBaseURL = "https://api.coingecko.com/api/v3"

// Client is the interface consumed by the asset and search services.
type Client interface {
	SimplePrice(ctx context.Context, id string) (PriceSnapshot, error)
	CoinInfo(ctx context.Context, id string) (CoinInfo, error)
	Search(ctx context.Context, query string) (SearchResponse, error)
}

// HTTPClient is the production Client backed by the CoinGecko REST API.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPClient creates a CoinGecko client. apiKey may be empty for the
// free tier.
func NewHTTPClient(apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewHTTPClientWithBaseURL creates a client pointed at a non-default
// endpoint. Used by tests against httptest servers.
func NewHTTPClientWithBaseURL(apiKey, baseURL string) *HTTPClient {
	c := NewHTTPClient(apiKey)
	c.baseURL = baseURL
	return c
}

// PriceSnapshot is one coin's entry from the simple/price endpoint:
// spot price, 24h change, 24h volume, and market cap, all in USD.
// The endpoint does not report a 24h high or low.
type PriceSnapshot struct {
	USD          float64 `json:"usd"`
	USD24hChange float64 `json:"usd_24h_change"`
	USD24hVolume float64 `json:"usd_24h_vol"`
	USDMarketCap float64 `json:"usd_market_cap"`
}

// CoinInfo is the subset of coin metadata the dashboard consumes.
type CoinInfo struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// SearchResponse is the free-text search payload.
type SearchResponse struct {
	Coins []SearchCoin `json:"coins"`
}

// SearchCoin is a single search hit.
type SearchCoin struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// SimplePrice fetches the price snapshot for a coin. A missing entry
// for the requested id means the coin is unknown and maps to NotFound.
func (c *HTTPClient) SimplePrice(ctx context.Context, id string) (PriceSnapshot, error) {
	params := url.Values{
		"ids":                 {id},
		"vs_currencies":       {"usd"},
		"include_24hr_change": {"true"},
		"include_24hr_vol":    {"true"},
		"include_market_cap":  {"true"},
	}

	var body map[string]PriceSnapshot
	if err := c.get(ctx, "/simple/price", params, &body); err != nil {
		return PriceSnapshot{}, err
	}

	snap, ok := body[id]
	if !ok {
		return PriceSnapshot{}, apperrors.New(apperrors.KindNotFound, "Cryptocurrency not found")
	}
	return snap, nil
}

// CoinInfo fetches metadata for a coin.
func (c *HTTPClient) CoinInfo(ctx context.Context, id string) (CoinInfo, error) {
	params := url.Values{
		"localization":   {"false"},
		"tickers":        {"false"},
		"market_data":    {"true"},
		"community_data": {"false"},
		"developer_data": {"false"},
		"sparkline":      {"false"},
	}

	var info CoinInfo
	err := c.get(ctx, "/coins/"+url.PathEscape(id), params, &info)
	return info, err
}

// Search performs a free-text coin search.
func (c *HTTPClient) Search(ctx context.Context, query string) (SearchResponse, error) {
	var s SearchResponse
	err := c.get(ctx, "/search", url.Values{"query": {query}}, &s)
	return s, err
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.KindNetwork, "Network error. Please check your internet connection.", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.New(apperrors.KindUnavailable, fmt.Sprintf("Crypto service error: %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(apperrors.KindUnavailable, "Crypto service returned a malformed response", err)
	}
	return nil
}
