// Package newsapi is a typed client for the NewsAPI.org article search
// endpoint.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/marketdash/market-dashboard-backend/internal/apperrors"
)

const defaultBaseURL = "https://newsapi.org/v2"

// Client is the interface consumed by the news service.
type Client interface {
	Everything(ctx context.Context, query string, pageSize int) (ArticlesResponse, error)
}

// HTTPClient is the production Client backed by the NewsAPI REST API.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPClient creates a NewsAPI client. The key may be empty; every
// call then fails fast with a configuration error, which the news
// service absorbs by serving the fallback feed.
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

// HasCredential reports whether an API key is configured.
func (c *HTTPClient) HasCredential() bool { return c.apiKey != "" }

// ArticlesResponse is the article-search payload.
type ArticlesResponse struct {
	Status   string    `json:"status"`
	Articles []Article `json:"articles"`
}

// Article is a single upstream article.
type Article struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}

// Everything searches articles by keyword, most recent first.
func (c *HTTPClient) Everything(ctx context.Context, query string, pageSize int) (ArticlesResponse, error) {
	if c.apiKey == "" {
		return ArticlesResponse{}, apperrors.New(apperrors.KindConfiguration, "NewsAPI key is not configured")
	}

	params := url.Values{
		"q":        {query},
		"sortBy":   {"publishedAt"},
		"pageSize": {strconv.Itoa(pageSize)},
		"apiKey":   {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/everything?"+params.Encode(), nil)
	if err != nil {
		return ArticlesResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ArticlesResponse{}, apperrors.Wrap(apperrors.KindNetwork, "Network error. Please check your internet connection.", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return ArticlesResponse{}, apperrors.New(apperrors.KindUnauthorized, "Invalid NewsAPI key")
	default:
		return ArticlesResponse{}, apperrors.New(apperrors.KindUnavailable, fmt.Sprintf("News service error: %d", resp.StatusCode))
	}

	var a ArticlesResponse
	if err := json.NewDecoder(resp.Body).Decode(&a); err != nil {
		return ArticlesResponse{}, apperrors.Wrap(apperrors.KindUnavailable, "News service returned a malformed response", err)
	}
	return a, nil
}
