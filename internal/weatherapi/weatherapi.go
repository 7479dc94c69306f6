// Package weatherapi is a typed client for the WeatherAPI.com forecast
// endpoint, used for the 5-day outlook. It is a separate provider from
// OpenWeatherMap and carries its own credential.
package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/marketdash/market-dashboard-backend/internal/apperrors"
)

const defaultBaseURL = "https://api.weatherapi.com/v1"

// Client is the interface consumed by the location service.
type Client interface {
	Forecast(ctx context.Context, lat, lon float64, days int) (ForecastResponse, error)
}

// HTTPClient is the production Client backed by the WeatherAPI.com
// REST API.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPClient creates a WeatherAPI client. The key may be empty;
// every call then fails fast with a configuration error.
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

// ForecastResponse is the forecast payload, one ForecastDay per
// calendar day in chronological order.
type ForecastResponse struct {
	Forecast struct {
		ForecastDay []ForecastDay `json:"forecastday"`
	} `json:"forecast"`
}

// ForecastDay is one day of the outlook.
type ForecastDay struct {
	Date string `json:"date"`
	Day  struct {
		MaxTempC    float64 `json:"maxtemp_c"`
		MinTempC    float64 `json:"mintemp_c"`
		MaxWindKph  float64 `json:"maxwind_kph"`
		AvgHumidity float64 `json:"avghumidity"`
		RainChance  int     `json:"daily_chance_of_rain"`
		Condition   struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
		} `json:"condition"`
	} `json:"day"`
}

// Forecast fetches the daily outlook for coordinates.
func (c *HTTPClient) Forecast(ctx context.Context, lat, lon float64, days int) (ForecastResponse, error) {
	if c.apiKey == "" {
		return ForecastResponse{}, apperrors.New(apperrors.KindConfiguration, "WeatherAPI key is not configured")
	}

	params := url.Values{
		"key":    {c.apiKey},
		"q":      {fmt.Sprintf("%g,%g", lat, lon)},
		"days":   {fmt.Sprintf("%d", days)},
		"aqi":    {"no"},
		"alerts": {"no"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/forecast.json?"+params.Encode(), nil)
	if err != nil {
		return ForecastResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ForecastResponse{}, apperrors.Wrap(apperrors.KindNetwork, "Network error. Please check your internet connection.", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return ForecastResponse{}, apperrors.New(apperrors.KindUnauthorized, "Invalid WeatherAPI key")
	default:
		return ForecastResponse{}, apperrors.New(apperrors.KindUnavailable, fmt.Sprintf("Forecast service error: %d", resp.StatusCode))
	}

	var f ForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		return ForecastResponse{}, apperrors.Wrap(apperrors.KindUnavailable, "Forecast service returned a malformed response", err)
	}
	return f, nil
}
