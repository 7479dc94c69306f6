// Package openweather is a typed client for the OpenWeatherMap API:
// current conditions by free-text location and air pollution by
// coordinates.
package openweather

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

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client is the interface consumed by the location service.
type Client interface {
	CurrentWeather(ctx context.Context, query string) (WeatherResponse, error)
	AirPollution(ctx context.Context, lat, lon float64) (AirPollutionResponse, error)
}

// HTTPClient is the production Client backed by the OpenWeatherMap
// REST API.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPClient creates an OpenWeatherMap client. The key may be empty;
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

// WeatherResponse is the current-conditions payload. Units are metric;
// visibility is metres.
type WeatherResponse struct {
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility int    `json:"visibility"`
	Name       string `json:"name"`
	Sys        struct {
		Country string `json:"country"`
	} `json:"sys"`
	Dt int64 `json:"dt"`
}

// AirPollutionResponse is the air-quality payload. List typically holds
// one element; Main.AQI is the 1-5 tier.
type AirPollutionResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
		Components struct {
			CO   float64 `json:"co"`
			NO2  float64 `json:"no2"`
			O3   float64 `json:"o3"`
			SO2  float64 `json:"so2"`
			PM25 float64 `json:"pm2_5"`
			PM10 float64 `json:"pm10"`
		} `json:"components"`
	} `json:"list"`
}

// CurrentWeather fetches current conditions for a free-text location
// query. A 404 maps to NotFound, a 401 to Unauthorized.
func (c *HTTPClient) CurrentWeather(ctx context.Context, query string) (WeatherResponse, error) {
	var w WeatherResponse
	err := c.get(ctx, "/weather", url.Values{"q": {query}, "units": {"metric"}}, &w)
	return w, err
}

// AirPollution fetches pollutant concentrations for coordinates.
func (c *HTTPClient) AirPollution(ctx context.Context, lat, lon float64) (AirPollutionResponse, error) {
	params := url.Values{
		"lat": {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(lon, 'f', -1, 64)},
	}

	var a AirPollutionResponse
	err := c.get(ctx, "/air_pollution", params, &a)
	return a, err
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.apiKey == "" {
		return apperrors.New(apperrors.KindConfiguration, "OpenWeatherMap API key is not configured")
	}

	params.Set("appid", c.apiKey)
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

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return apperrors.New(apperrors.KindNotFound, "Location not found. Please check the spelling and try again.")
	case http.StatusUnauthorized:
		return apperrors.New(apperrors.KindUnauthorized, "Invalid API key. Please check your OpenWeatherMap API key.")
	default:
		return apperrors.New(apperrors.KindUnavailable, fmt.Sprintf("Weather service error: %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(apperrors.KindUnavailable, "Weather service returned a malformed response", err)
	}
	return nil
}
