package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketdash/market-dashboard-backend/internal/model"
	"github.com/marketdash/market-dashboard-backend/internal/store"
	"github.com/marketdash/market-dashboard-backend/internal/testutil"
)

// TestUpsertAsset tests the replace-in-place semantics of the working set.
//
// WHY: Symbol is the identity key. Re-adding an existing symbol must
// update the record without growing the set or changing its position,
// or the background refresh would duplicate every asset it touches.
func TestUpsertAsset(t *testing.T) {
	t.Run("replaces existing symbol without growing the set", func(t *testing.T) {
		d := store.New()
		d.UpsertAsset(testutil.NewAsset().WithSymbol("AAPL").WithPrice(100).Build())
		d.UpsertAsset(testutil.NewAsset().WithSymbol("TSLA").WithPrice(200).Build())

		d.UpsertAsset(testutil.NewAsset().WithSymbol("AAPL").WithPrice(150).Build())

		assets := d.Assets()
		require.Len(t, assets, 2)
		assert.Equal(t, "AAPL", assets[0].Symbol)
		assert.Equal(t, 150.0, assets[0].Price)
		assert.Equal(t, "TSLA", assets[1].Symbol)
	})

	t.Run("appends unknown symbol in arrival order", func(t *testing.T) {
		d := store.New()
		d.UpsertAsset(testutil.NewAsset().WithSymbol("MSFT").Build())
		d.UpsertAsset(testutil.NewCryptoAsset().Build())

		assets := d.Assets()
		require.Len(t, assets, 2)
		assert.Equal(t, "MSFT", assets[0].Symbol)
		assert.Equal(t, "BTC", assets[1].Symbol)
	})
}

// TestRemoveAsset tests removal and the not-found case.
func TestRemoveAsset(t *testing.T) {
	t.Run("removes asset and its favorite mark", func(t *testing.T) {
		d := store.New()
		d.UpsertAsset(testutil.NewAsset().WithSymbol("AAPL").Build())
		d.ToggleFavorite("AAPL")

		require.NoError(t, d.RemoveAsset("AAPL"))

		v := d.View()
		assert.Empty(t, v.Assets)
		assert.Empty(t, v.Favorites)
	})

	t.Run("unknown symbol returns an error", func(t *testing.T) {
		d := store.New()
		assert.Error(t, d.RemoveAsset("NOPE"))
	})
}

// TestToggleFavorite tests the flip semantics of the favorites set.
//
// WHY: Favoriting is a toggle, so two toggles must restore the prior
// state exactly.
func TestToggleFavorite(t *testing.T) {
	d := store.New()
	d.UpsertAsset(testutil.NewAsset().WithSymbol("AAPL").Build())

	d.ToggleFavorite("AAPL")
	assert.Equal(t, []string{"AAPL"}, d.View().Favorites)

	d.ToggleFavorite("AAPL")
	assert.Empty(t, d.View().Favorites)
}

// TestSetSort tests re-selecting the active sort key.
//
// WHY: Selecting the current key flips the direction instead of
// resetting it, so two selections of the same key restore the original
// order and a third flips it again.
func TestSetSort(t *testing.T) {
	d := store.New()

	d.SetSort(store.SortPrice)
	v := d.View()
	assert.Equal(t, store.SortPrice, v.SortBy)
	assert.True(t, v.SortAscending)

	d.SetSort(store.SortPrice)
	assert.False(t, d.View().SortAscending)

	d.SetSort(store.SortPrice)
	assert.True(t, d.View().SortAscending)

	// A different key resets to ascending.
	d.SetSort(store.SortChange)
	v = d.View()
	assert.Equal(t, store.SortChange, v.SortBy)
	assert.True(t, v.SortAscending)
}

// TestViewPipeline tests the filter-then-sort derivation.
//
// WHY: The view pipeline reduces by favorites, type, and name before
// sorting. Filters compose as a conjunction, and changing the sort of a
// filtered view must not resurrect filtered-out records.
func TestViewPipeline(t *testing.T) {
	seed := func() *store.Dashboard {
		d := store.New()
		d.UpsertAsset(testutil.NewAsset().WithSymbol("AAPL").WithName("Apple Inc").WithPrice(180).Build())
		d.UpsertAsset(testutil.NewAsset().WithSymbol("TSLA").WithName("Tesla Inc").WithPrice(250).Build())
		d.UpsertAsset(testutil.NewCryptoAsset().Build()) // BTC @ 50000
		return d
	}

	t.Run("type filter excludes the other variant", func(t *testing.T) {
		d := seed()
		d.SetFilterType(model.AssetTypeCrypto)

		v := d.View()
		require.Len(t, v.Assets, 1)
		assert.Equal(t, "BTC", v.Assets[0].Symbol)
	})

	t.Run("name filter matches symbol or name case-insensitively", func(t *testing.T) {
		d := seed()
		d.SetFilterText("tesla")

		v := d.View()
		require.Len(t, v.Assets, 1)
		assert.Equal(t, "TSLA", v.Assets[0].Symbol)
	})

	t.Run("favorites filter composes with type filter", func(t *testing.T) {
		d := seed()
		d.ToggleFavorite("AAPL")
		d.ToggleFavorite("BTC")
		d.SetFavoritesOnly(true)
		d.SetFilterType(model.AssetTypeStock)

		v := d.View()
		require.Len(t, v.Assets, 1)
		assert.Equal(t, "AAPL", v.Assets[0].Symbol)
	})

	t.Run("sort orders the filtered set", func(t *testing.T) {
		d := seed()
		d.SetFilterType(model.AssetTypeStock)
		d.SetSort(store.SortPrice)
		d.SetSort(store.SortPrice) // descending

		v := d.View()
		require.Len(t, v.Assets, 2)
		assert.Equal(t, "TSLA", v.Assets[0].Symbol)
		assert.Equal(t, "AAPL", v.Assets[1].Symbol)
	})
}

// TestViewPortfolio tests that the portfolio aggregates the favorite
// subset of the full working set, not the filtered view.
//
// WHY: Filtering is a display concern. Hiding a favorite via the name
// filter must not change the portfolio totals.
func TestViewPortfolio(t *testing.T) {
	d := store.New()
	d.UpsertAsset(testutil.NewAsset().WithSymbol("AAPL").WithName("Apple Inc").WithPrice(100).WithChange(10, 10).Build())
	d.UpsertAsset(testutil.NewAsset().WithSymbol("TSLA").WithName("Tesla Inc").WithPrice(50).WithChange(-5, -10).Build())
	d.UpsertAsset(testutil.NewCryptoAsset().Build())
	d.ToggleFavorite("AAPL")
	d.ToggleFavorite("TSLA")
	d.SetFilterText("apple") // hides TSLA from the asset list only

	v := d.View()
	require.Len(t, v.Assets, 1)
	assert.Equal(t, "AAPL", v.Assets[0].Symbol)
	require.Len(t, v.Portfolio.Assets, 2)
	assert.Equal(t, 150.0, v.Portfolio.TotalValue)
	assert.Equal(t, 5.0, v.Portfolio.TotalChange)
	assert.Equal(t, 0.0, v.Portfolio.TotalChangePercent)
}

// TestUpsertLocation tests the coordinate-keyed upsert and favorite
// survival.
//
// WHY: Re-adding the same city refreshes its weather. The favorite flag
// lives on the record, so a refresh that dropped it would silently
// unfavorite the location.
func TestUpsertLocation(t *testing.T) {
	t.Run("same coordinates replace in place", func(t *testing.T) {
		d := store.New()
		d.UpsertLocation(testutil.NewLocation().Build())
		d.UpsertLocation(testutil.NewLocation().WithName("London, UK").Build())

		v := d.View()
		require.Len(t, v.Locations, 1)
		assert.Equal(t, "London, UK", v.Locations[0].Name)
	})

	t.Run("favorite flag survives an update", func(t *testing.T) {
		d := store.New()
		loc := testutil.NewLocation().Build()
		d.UpsertLocation(loc)
		require.NoError(t, d.ToggleLocationFavorite(loc.ID))

		d.UpsertLocation(testutil.NewLocation().Build())

		v := d.View()
		require.Len(t, v.Locations, 1)
		assert.True(t, v.Locations[0].IsFavorite)
	})

	t.Run("toggling an unknown location fails", func(t *testing.T) {
		d := store.New()
		assert.Error(t, d.ToggleLocationFavorite("0-0"))
	})
}

// TestErrorAndLoading tests the user-visible error and loading flags.
func TestErrorAndLoading(t *testing.T) {
	d := store.New()

	d.SetLoading(true)
	d.SetError("Stock symbol not found or market is closed")

	v := d.View()
	assert.True(t, v.Loading)
	assert.Equal(t, "Stock symbol not found or market is closed", v.Error)

	d.SetLoading(false)
	d.SetError("")

	v = d.View()
	assert.False(t, v.Loading)
	assert.Empty(t, v.Error)
}

// TestParseSortKey tests sort key validation.
func TestParseSortKey(t *testing.T) {
	for _, valid := range []string{"name", "price", "change", "marketcap"} {
		key, err := store.ParseSortKey(valid)
		require.NoError(t, err)
		assert.Equal(t, store.SortKey(valid), key)
	}

	_, err := store.ParseSortKey("volume")
	assert.Error(t, err)
}
