package handlers

import (
	"net/http"
	"time"

	"github.com/marketdash/market-dashboard-backend/internal/api/response"
	"github.com/marketdash/market-dashboard-backend/internal/config"
	"github.com/marketdash/market-dashboard-backend/internal/model"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	cfg *config.Config
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(cfg *config.Config) *SystemHandler {
	return &SystemHandler{cfg: cfg}
}

// HealthResponse represents the health check response. Providers maps
// each upstream to whether a credential is configured, so the frontend
// can warn about missing keys before the first failing fetch.
type HealthResponse struct {
	Status     string          `json:"status"`
	Providers  map[string]bool `json:"providers"`
	MarketOpen bool            `json:"marketOpen"`
}

// Health reports service status and provider credential presence.
//
// Endpoint: GET /api/system/health
// Response: 200 OK with HealthResponse
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	p := h.cfg.Providers
	response.RespondJSON(w, http.StatusOK, HealthResponse{
		Status: "healthy",
		Providers: map[string]bool{
			"finnhub":     p.FinnhubAPIKey != "",
			"coingecko":   true, // free tier, no credential required
			"newsapi":     p.NewsAPIKey != "",
			"openweather": p.OpenWeatherAPIKey != "",
			"weatherapi":  p.WeatherAPIKey != "",
		},
		MarketOpen: model.MarketOpen(time.Now()),
	})
}
