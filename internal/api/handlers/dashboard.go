package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/marketdash/market-dashboard-backend/internal/api/request"
	"github.com/marketdash/market-dashboard-backend/internal/api/response"
	"github.com/marketdash/market-dashboard-backend/internal/store"
)

// DashboardHandler serves the derived dashboard view and its sort and
// filter settings.
type DashboardHandler struct {
	store *store.Dashboard
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboard *store.Dashboard) *DashboardHandler {
	return &DashboardHandler{store: dashboard}
}

// Get returns the current dashboard snapshot: the filtered and sorted
// asset list, portfolio, locations, news, and the error/loading flags.
//
// Endpoint: GET /api/dashboard
// Response: 200 OK with store.View
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.store.View())
}

// Sort adopts a sort key. Repeating the current key flips the
// direction.
//
// Endpoint: PUT /api/dashboard/sort
// Response: 200 OK with the updated store.View
// Error: 400 Bad Request on an unknown sort key
func (h *DashboardHandler) Sort(w http.ResponseWriter, r *http.Request) {
	var req request.SortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	key, err := req.Validate()
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	h.store.SetSort(key)
	response.RespondJSON(w, http.StatusOK, h.store.View())
}

// Filter sets the text, type, and favorites-only filters in one call.
//
// Endpoint: PUT /api/dashboard/filter
// Response: 200 OK with the updated store.View
// Error: 400 Bad Request on an unknown type filter
func (h *DashboardHandler) Filter(w http.ResponseWriter, r *http.Request) {
	var req request.FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	kind, err := req.Validate()
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	h.store.SetFilterText(req.Text)
	h.store.SetFilterType(kind)
	h.store.SetFavoritesOnly(req.FavoritesOnly)
	response.RespondJSON(w, http.StatusOK, h.store.View())
}
