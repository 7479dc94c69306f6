package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marketdash/market-dashboard-backend/internal/api/request"
	"github.com/marketdash/market-dashboard-backend/internal/api/response"
	"github.com/marketdash/market-dashboard-backend/internal/apperrors"
	"github.com/marketdash/market-dashboard-backend/internal/service"
	"github.com/marketdash/market-dashboard-backend/internal/store"
)

// LocationHandler handles location HTTP requests.
type LocationHandler struct {
	locations *service.LocationService
	store     *store.Dashboard
}

// NewLocationHandler creates a new LocationHandler
func NewLocationHandler(locations *service.LocationService, dashboard *store.Dashboard) *LocationHandler {
	return &LocationHandler{locations: locations, store: dashboard}
}

// Add resolves a free-text query and upserts the location into the
// working set. Querying the same city twice yields the same
// coordinate-derived ID and updates in place.
//
// Endpoint: POST /api/locations
// Response: 200 OK with the fetched record
// Error: 400 on validation, 404/401/412/502/503 per fetch error kind
func (h *LocationHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	h.store.SetLoading(true)
	defer h.store.SetLoading(false)

	rec, err := h.locations.FetchLocation(r.Context(), req.Query)
	if err != nil {
		h.store.SetError(apperrors.UserMessage(err))
		response.RespondAppError(w, err)
		return
	}

	h.store.UpsertLocation(rec)
	h.store.SetError("")
	response.RespondJSON(w, http.StatusOK, rec)
}

// ToggleFavorite flips the favorite flag of a stored location.
//
// Endpoint: POST /api/locations/{id}/favorite
// Response: 200 OK with the updated store.View
// Error: 404 Not Found when the location is not in the working set
func (h *LocationHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ToggleLocationFavorite(chi.URLParam(r, "id")); err != nil {
		response.RespondError(w, http.StatusNotFound, err.Error(), nil)
		return
	}
	response.RespondJSON(w, http.StatusOK, h.store.View())
}
