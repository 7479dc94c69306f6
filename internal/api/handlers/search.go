package handlers

import (
	"net/http"

	"github.com/marketdash/market-dashboard-backend/internal/api/response"
	"github.com/marketdash/market-dashboard-backend/internal/model"
	"github.com/marketdash/market-dashboard-backend/internal/search"
	"github.com/marketdash/market-dashboard-backend/internal/service"
)

// SearchHandler serves the combined stock and crypto search.
type SearchHandler struct {
	search *service.SearchService
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{search: searchService}
}

// Search answers a free-text asset query with up to five stock and five
// crypto results, stocks first. Queries below the minimum length return
// an empty list without dispatching upstream lookups; debouncing while
// the user types is the caller's duty.
//
// Endpoint: GET /api/search?q=term
// Response: 200 OK with []model.SearchResult
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if len(q) < search.MinQueryLength {
		response.RespondJSON(w, http.StatusOK, []model.SearchResult{})
		return
	}
	response.RespondJSON(w, http.StatusOK, h.search.Search(r.Context(), q))
}
