// Package finnhub is a typed client for the Finnhub stock API: real-time
// quotes, company profiles, and symbol search.
package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/marketdash/market-dashboard-backend/internal/apperrors"
)

const defaultBaseURL = "https://finnhub.io/api/v1"

// Client is the interface consumed by the asset service. It exists so
// tests can substitute a mock without network access.
type Client interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
	Profile(ctx context.Context, symbol string) (Profile, error)
	SearchSymbols(ctx context.Context, query string) (SearchResponse, error)
}

// HTTPClient is the production Client backed by the Finnhub REST API.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPClient creates a Finnhub client. The token may be empty;
// every call then fails fast with a configuration error.
func NewHTTPClient(token string) *HTTPClient {
	return &HTTPClient{
		baseURL: defaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewHTTPClientWithBaseURL creates a client pointed at a non-default
// endpoint. Used by tests against httptest servers.
func NewHTTPClientWithBaseURL(token, baseURL string) *HTTPClient {
	c := NewHTTPClient(token)
	c.baseURL = baseURL
	return c
}

// Quote is the real-time quote payload. Finnhub reports a current price
// of zero for unknown symbols.
type Quote struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	ChangePercent float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PreviousClose float64 `json:"pc"`
}

// Profile is the company profile payload. Only the display name is
// consumed.
type Profile struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Currency string `json:"currency"`
	Exchange string `json:"exchange"`
	Ticker   string `json:"ticker"`
}

// SearchResponse is the symbol-search payload.
type SearchResponse struct {
	Count  int            `json:"count"`
	Result []SearchResult `json:"result"`
}

// SearchResult is a single symbol-search hit.
type SearchResult struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Quote fetches the real-time quote for a symbol.
func (c *HTTPClient) Quote(ctx context.Context, symbol string) (Quote, error) {
	var q Quote
	err := c.get(ctx, "/quote", url.Values{"symbol": {symbol}}, &q)
	return q, err
}

// Profile fetches the company profile for a symbol.
func (c *HTTPClient) Profile(ctx context.Context, symbol string) (Profile, error) {
	var p Profile
	err := c.get(ctx, "/stock/profile2", url.Values{"symbol": {symbol}}, &p)
	return p, err
}

// SearchSymbols performs a free-text symbol search.
func (c *HTTPClient) SearchSymbols(ctx context.Context, query string) (SearchResponse, error) {
	var s SearchResponse
	err := c.get(ctx, "/search", url.Values{"q": {query}}, &s)
	return s, err
}

// get executes a GET against the Finnhub API and decodes the JSON
// response, translating failures into apperrors kinds.
func (c *HTTPClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.token == "" {
		return apperrors.New(apperrors.KindConfiguration, "Finnhub API key is not configured")
	}

	params.Set("token", c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.KindNetwork, "Network error. Please check your internet connection.", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return apperrors.New(apperrors.KindUnauthorized, "Invalid Finnhub API key")
	case resp.StatusCode != http.StatusOK:
		return apperrors.New(apperrors.KindUnavailable, fmt.Sprintf("Stock service error: %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(apperrors.KindUnavailable, "Stock service returned a malformed response", err)
	}
	return nil
}
