package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Providers ProviderConfig
	Refresh   RefreshConfig
	CORS      CORSConfig
	Log       LogConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// ProviderConfig holds the credentials for the upstream data providers.
// An empty key means the provider is unconfigured: stock and weather
// fetches then fail fast with a configuration error, while news falls
// back to the static feed. The CoinGecko key is optional (free tier).
type ProviderConfig struct {
	FinnhubAPIKey     string
	CoinGeckoAPIKey   string
	NewsAPIKey        string
	OpenWeatherAPIKey string
	WeatherAPIKey     string
}

// RefreshConfig holds the background refresh job settings.
type RefreshConfig struct {
	Enabled  bool
	Schedule string // robfig/cron spec, e.g. "@every 5m"
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Providers: ProviderConfig{
			FinnhubAPIKey:     getEnv("FINNHUB_API_KEY", ""),
			CoinGeckoAPIKey:   getEnv("COINGECKO_API_KEY", ""),
			NewsAPIKey:        getEnv("NEWS_API_KEY", ""),
			OpenWeatherAPIKey: getEnv("OPENWEATHER_API_KEY", ""),
			WeatherAPIKey:     getEnv("WEATHERAPI_KEY", ""),
		},
		Refresh: RefreshConfig{
			Enabled:  getEnv("REFRESH_ENABLED", "true") == "true",
			Schedule: getEnv("REFRESH_SCHEDULE", "@every 5m"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnv("LOG_PRETTY", "true") == "true",
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
