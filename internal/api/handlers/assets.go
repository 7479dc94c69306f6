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

// AssetHandler handles working-set asset HTTP requests.
type AssetHandler struct {
	assets *service.AssetService
	store  *store.Dashboard
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assets *service.AssetService, dashboard *store.Dashboard) *AssetHandler {
	return &AssetHandler{assets: assets, store: dashboard}
}

// Add fetches an asset and upserts it into the working set. The store's
// loading flag is set for the duration of the fetch; a fetch failure is
// recorded as the latest user-visible error, a success clears it.
//
// Endpoint: POST /api/assets
// Response: 200 OK with the fetched record
// Error: 400 on validation, 404/401/412/502/503 per fetch error kind
func (h *AssetHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	kind, err := req.Validate()
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	h.store.SetLoading(true)
	defer h.store.SetLoading(false)

	rec, err := h.assets.Fetch(r.Context(), req.Symbol, kind, req.ID)
	if err != nil {
		h.store.SetError(apperrors.UserMessage(err))
		response.RespondAppError(w, err)
		return
	}

	h.store.UpsertAsset(rec)
	h.store.SetError("")
	response.RespondJSON(w, http.StatusOK, rec)
}

// Remove drops a symbol from the working set.
//
// Endpoint: DELETE /api/assets/{symbol}
// Response: 204 No Content
// Error: 404 Not Found when the symbol is not in the working set
func (h *AssetHandler) Remove(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	if err := h.store.RemoveAsset(symbol); err != nil {
		response.RespondError(w, http.StatusNotFound, err.Error(), nil)
		return
	}
	response.RespondJSON(w, http.StatusNoContent, nil)
}

// ToggleFavorite flips a symbol's membership in the favorites set. It
// never fails.
//
// Endpoint: POST /api/assets/{symbol}/favorite
// Response: 200 OK with the updated store.View
func (h *AssetHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	h.store.ToggleFavorite(chi.URLParam(r, "symbol"))
	response.RespondJSON(w, http.StatusOK, h.store.View())
}
