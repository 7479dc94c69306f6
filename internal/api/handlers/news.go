package handlers

import (
	"net/http"

	"github.com/marketdash/market-dashboard-backend/internal/api/response"
	"github.com/marketdash/market-dashboard-backend/internal/service"
	"github.com/marketdash/market-dashboard-backend/internal/store"
)

// NewsHandler serves the financial news feed.
type NewsHandler struct {
	news  *service.NewsService
	store *store.Dashboard
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(news *service.NewsService, dashboard *store.Dashboard) *NewsHandler {
	return &NewsHandler{news: news, store: dashboard}
}

// List returns the current news list, fetching lazily when the store
// holds none yet. News failures never surface; the fallback feed is
// served instead.
//
// Endpoint: GET /api/news
// Response: 200 OK with []model.NewsItem
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.store.News()
	if len(items) == 0 {
		items = h.news.FetchNews(r.Context())
		h.store.SetNews(items)
	}
	response.RespondJSON(w, http.StatusOK, items)
}
