package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/marketdash/market-dashboard-backend/internal/coingecko"
	"github.com/marketdash/market-dashboard-backend/internal/finnhub"
	"github.com/marketdash/market-dashboard-backend/internal/newsapi"
	"github.com/marketdash/market-dashboard-backend/internal/openweather"
	"github.com/marketdash/market-dashboard-backend/internal/weatherapi"
)

// MockFinnhubClient is a mock implementation of finnhub.Client for testing.
// It returns predefined test data instead of making actual API calls.
type MockFinnhubClient struct {
	// MockQuote is the quote returned from Quote
	MockQuote finnhub.Quote
	// MockProfile is the profile returned from Profile
	MockProfile finnhub.Profile
	// MockSearch is the response returned from SearchSymbols
	MockSearch finnhub.SearchResponse
	// MockError, when set, is returned from every method
	MockError error
	// ProfileError, when set, is returned from Profile only
	ProfileError error
	// QuoteCount tracks how many times Quote was called. Atomic:
	// the bootstrap fetches stocks from concurrent goroutines.
	QuoteCount atomic.Int64
	// SearchCount tracks how many times SearchSymbols was called
	SearchCount atomic.Int64
}

// NewMockFinnhubClient creates a mock Finnhub client with a plausible
// AAPL quote and profile.
func NewMockFinnhubClient() *MockFinnhubClient {
	return &MockFinnhubClient{
		MockQuote: finnhub.Quote{
			Current:       178.25,
			Change:        2.15,
			ChangePercent: 1.22,
			High:          179.80,
			Low:           176.10,
			Open:          176.50,
			PreviousClose: 176.10,
		},
		MockProfile: finnhub.Profile{
			Name:     "Apple Inc",
			Country:  "US",
			Currency: "USD",
			Exchange: "NASDAQ",
			Ticker:   "AAPL",
		},
	}
}

// Quote returns the configured MockQuote and MockError.
func (m *MockFinnhubClient) Quote(_ context.Context, _ string) (finnhub.Quote, error) {
	m.QuoteCount.Add(1)
	if m.MockError != nil {
		return finnhub.Quote{}, m.MockError
	}
	return m.MockQuote, nil
}

// Profile returns the configured MockProfile. ProfileError takes
// precedence over MockError so tests can fail the profile lookup while
// the quote succeeds.
func (m *MockFinnhubClient) Profile(_ context.Context, _ string) (finnhub.Profile, error) {
	if m.ProfileError != nil {
		return finnhub.Profile{}, m.ProfileError
	}
	if m.MockError != nil {
		return finnhub.Profile{}, m.MockError
	}
	return m.MockProfile, nil
}

// SearchSymbols returns the configured MockSearch and MockError.
func (m *MockFinnhubClient) SearchSymbols(_ context.Context, _ string) (finnhub.SearchResponse, error) {
	m.SearchCount.Add(1)
	if m.MockError != nil {
		return finnhub.SearchResponse{}, m.MockError
	}
	return m.MockSearch, nil
}

// WithError configures the mock to return the specified error.
func (m *MockFinnhubClient) WithError(err error) *MockFinnhubClient {
	m.MockError = err
	return m
}

// WithQuote configures the mock to return the specified quote.
func (m *MockFinnhubClient) WithQuote(q finnhub.Quote) *MockFinnhubClient {
	m.MockQuote = q
	return m
}

// MockCoinGeckoClient is a mock implementation of coingecko.Client for
// testing.
type MockCoinGeckoClient struct {
	MockPrice  coingecko.PriceSnapshot
	MockInfo   coingecko.CoinInfo
	MockSearch coingecko.SearchResponse
	MockError  error
	// InfoError, when set, is returned from CoinInfo only
	InfoError error
	// Call counters are atomic: the bootstrap fetches cryptos from
	// concurrent goroutines.
	PriceCount  atomic.Int64
	SearchCount atomic.Int64
}

// NewMockCoinGeckoClient creates a mock CoinGecko client with a
// plausible bitcoin price.
func NewMockCoinGeckoClient() *MockCoinGeckoClient {
	return &MockCoinGeckoClient{
		MockPrice: coingecko.PriceSnapshot{
			USD:          50000,
			USD24hChange: 2.5,
			USD24hVolume: 28000000000,
			USDMarketCap: 980000000000,
		},
		MockInfo: coingecko.CoinInfo{
			ID:     "bitcoin",
			Symbol: "btc",
			Name:   "Bitcoin",
		},
	}
}

// SimplePrice returns the configured MockPrice and MockError.
func (m *MockCoinGeckoClient) SimplePrice(_ context.Context, _ string) (coingecko.PriceSnapshot, error) {
	m.PriceCount.Add(1)
	if m.MockError != nil {
		return coingecko.PriceSnapshot{}, m.MockError
	}
	return m.MockPrice, nil
}

// CoinInfo returns the configured MockInfo. InfoError takes precedence
// over MockError.
func (m *MockCoinGeckoClient) CoinInfo(_ context.Context, _ string) (coingecko.CoinInfo, error) {
	if m.InfoError != nil {
		return coingecko.CoinInfo{}, m.InfoError
	}
	if m.MockError != nil {
		return coingecko.CoinInfo{}, m.MockError
	}
	return m.MockInfo, nil
}

// Search returns the configured MockSearch and MockError.
func (m *MockCoinGeckoClient) Search(_ context.Context, _ string) (coingecko.SearchResponse, error) {
	m.SearchCount.Add(1)
	if m.MockError != nil {
		return coingecko.SearchResponse{}, m.MockError
	}
	return m.MockSearch, nil
}

// WithError configures the mock to return the specified error.
func (m *MockCoinGeckoClient) WithError(err error) *MockCoinGeckoClient {
	m.MockError = err
	return m
}

// WithPrice configures the mock to return the specified price snapshot.
func (m *MockCoinGeckoClient) WithPrice(p coingecko.PriceSnapshot) *MockCoinGeckoClient {
	m.MockPrice = p
	return m
}

// MockOpenWeatherClient is a mock implementation of openweather.Client
// for testing.
type MockOpenWeatherClient struct {
	MockWeather openweather.WeatherResponse
	MockAir     openweather.AirPollutionResponse
	MockError   error
	// AirError, when set, is returned from AirPollution only
	AirError error
}

// CurrentWeather returns the configured MockWeather and MockError.
func (m *MockOpenWeatherClient) CurrentWeather(_ context.Context, _ string) (openweather.WeatherResponse, error) {
	if m.MockError != nil {
		return openweather.WeatherResponse{}, m.MockError
	}
	return m.MockWeather, nil
}

// AirPollution returns the configured MockAir. AirError takes
// precedence over MockError.
func (m *MockOpenWeatherClient) AirPollution(_ context.Context, _, _ float64) (openweather.AirPollutionResponse, error) {
	if m.AirError != nil {
		return openweather.AirPollutionResponse{}, m.AirError
	}
	if m.MockError != nil {
		return openweather.AirPollutionResponse{}, m.MockError
	}
	return m.MockAir, nil
}

// AirPollution builds an AirPollutionResponse with a single entry. It
// goes through the JSON decoder because the response type uses
// anonymous nested structs.
func AirPollution(aqi int, pm25 float64) openweather.AirPollutionResponse {
	payload := fmt.Sprintf(`{"list":[{"main":{"aqi":%d},"components":{"pm2_5":%g}}]}`, aqi, pm25)

	var resp openweather.AirPollutionResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		panic(err)
	}
	return resp
}

// MockWeatherAPIClient is a mock implementation of weatherapi.Client
// for testing.
type MockWeatherAPIClient struct {
	MockForecast weatherapi.ForecastResponse
	MockError    error
}

// Forecast returns the configured MockForecast and MockError.
func (m *MockWeatherAPIClient) Forecast(_ context.Context, _, _ float64, _ int) (weatherapi.ForecastResponse, error) {
	if m.MockError != nil {
		return weatherapi.ForecastResponse{}, m.MockError
	}
	return m.MockForecast, nil
}

// MockNewsAPIClient is a mock implementation of newsapi.Client for
// testing.
type MockNewsAPIClient struct {
	MockArticles newsapi.ArticlesResponse
	MockError    error
	CallCount    atomic.Int64
}

// Everything returns the configured MockArticles and MockError.
func (m *MockNewsAPIClient) Everything(_ context.Context, _ string, _ int) (newsapi.ArticlesResponse, error) {
	m.CallCount.Add(1)
	if m.MockError != nil {
		return newsapi.ArticlesResponse{}, m.MockError
	}
	return m.MockArticles, nil
}
