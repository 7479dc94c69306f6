package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketdash/market-dashboard-backend/internal/api/handlers"
	"github.com/marketdash/market-dashboard-backend/internal/api/request"
	"github.com/marketdash/market-dashboard-backend/internal/apperrors"
	"github.com/marketdash/market-dashboard-backend/internal/finnhub"
	"github.com/marketdash/market-dashboard-backend/internal/model"
	"github.com/marketdash/market-dashboard-backend/internal/service"
	"github.com/marketdash/market-dashboard-backend/internal/store"
	"github.com/marketdash/market-dashboard-backend/internal/testutil"
)

func newAssetHandler(stocks *testutil.MockFinnhubClient, d *store.Dashboard) *handlers.AssetHandler {
	assets := service.NewAssetService(stocks, testutil.NewMockCoinGeckoClient(), zerolog.Nop())
	return handlers.NewAssetHandler(assets, d)
}

// TestAddAsset tests the add endpoint and its error bookkeeping.
//
// WHY: Adding is the one user action that owns the dashboard's
// user-visible error: a failed fetch must record it, a successful fetch
// must clear it, and neither outcome may leave the loading flag set.
func TestAddAsset(t *testing.T) {
	t.Run("fetches and upserts the asset", func(t *testing.T) {
		d := store.New()
		h := newAssetHandler(testutil.NewMockFinnhubClient(), d)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/assets",
			request.AddAssetRequest{Symbol: "AAPL", Type: "stock"})
		rec := httptest.NewRecorder()
		h.Add(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got model.AssetRecord
		testutil.DecodeJSON(t, rec, &got)
		assert.Equal(t, "AAPL", got.Symbol)

		v := d.View()
		assert.Len(t, v.Assets, 1)
		assert.False(t, v.Loading)
		assert.Empty(t, v.Error)
	})

	t.Run("unknown symbol records the error and responds 404", func(t *testing.T) {
		d := store.New()
		h := newAssetHandler(testutil.NewMockFinnhubClient().WithQuote(finnhub.Quote{}), d)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/assets",
			request.AddAssetRequest{Symbol: "NOPE", Type: "stock"})
		rec := httptest.NewRecorder()
		h.Add(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		v := d.View()
		assert.Empty(t, v.Assets)
		assert.Equal(t, "Stock symbol not found or market is closed", v.Error)
		assert.False(t, v.Loading)
	})

	t.Run("a later success clears the recorded error", func(t *testing.T) {
		d := store.New()
		d.SetError("Stock symbol not found or market is closed")
		h := newAssetHandler(testutil.NewMockFinnhubClient(), d)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/assets",
			request.AddAssetRequest{Symbol: "AAPL", Type: "stock"})
		rec := httptest.NewRecorder()
		h.Add(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, d.View().Error)
	})

	t.Run("missing credential responds 412", func(t *testing.T) {
		d := store.New()
		stocks := testutil.NewMockFinnhubClient().
			WithError(apperrors.New(apperrors.KindConfiguration, "Finnhub API key is not configured"))
		h := newAssetHandler(stocks, d)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/assets",
			request.AddAssetRequest{Symbol: "AAPL", Type: "stock"})
		rec := httptest.NewRecorder()
		h.Add(rec, req)

		assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
	})

	t.Run("validation failures respond 400", func(t *testing.T) {
		d := store.New()
		h := newAssetHandler(testutil.NewMockFinnhubClient(), d)

		for _, body := range []request.AddAssetRequest{
			{Symbol: "", Type: "stock"},
			{Symbol: "AAPL", Type: "bond"},
		} {
			req := testutil.NewJSONRequest(t, http.MethodPost, "/api/assets", body)
			rec := httptest.NewRecorder()
			h.Add(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		}
	})
}

// TestRemoveAsset tests the delete endpoint.
func TestRemoveAsset(t *testing.T) {
	t.Run("removes a known symbol", func(t *testing.T) {
		d := store.New()
		d.UpsertAsset(testutil.NewAsset().WithSymbol("AAPL").Build())
		h := newAssetHandler(testutil.NewMockFinnhubClient(), d)

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/assets/AAPL",
			map[string]string{"symbol": "AAPL"})
		rec := httptest.NewRecorder()
		h.Remove(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, d.Assets())
	})

	t.Run("unknown symbol responds 404", func(t *testing.T) {
		d := store.New()
		h := newAssetHandler(testutil.NewMockFinnhubClient(), d)

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/assets/NOPE",
			map[string]string{"symbol": "NOPE"})
		rec := httptest.NewRecorder()
		h.Remove(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// TestToggleFavoriteEndpoint tests the favorite toggle endpoint.
func TestToggleFavoriteEndpoint(t *testing.T) {
	d := store.New()
	d.UpsertAsset(testutil.NewAsset().WithSymbol("AAPL").Build())
	h := newAssetHandler(testutil.NewMockFinnhubClient(), d)

	req := testutil.NewRequestWithURLParams(http.MethodPost, "/api/assets/AAPL/favorite",
		map[string]string{"symbol": "AAPL"})
	rec := httptest.NewRecorder()
	h.ToggleFavorite(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var v store.View
	testutil.DecodeJSON(t, rec, &v)
	assert.Equal(t, []string{"AAPL"}, v.Favorites)
}
