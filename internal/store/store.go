// Package store holds the session-scoped dashboard state: the working
// set of assets and locations, favorites, view settings, and the latest
// error and loading flags.
//
// The Dashboard is an explicit state container owned by the composition
// root; there are no package-level singletons. All mutation happens
// through its methods in response to completed events, and derived
// views are recomputed from current state on every read. Nothing is
// cached.
package store

import (
	"slices"
	"sync"

	"github.com/marketdash/market-dashboard-backend/internal/apperrors"
	"github.com/marketdash/market-dashboard-backend/internal/assetops"
	"github.com/marketdash/market-dashboard-backend/internal/model"
)

// SortKey selects the ordering of the derived asset view.
type SortKey string

const (
	SortName      SortKey = "name"
	SortPrice     SortKey = "price"
	SortChange    SortKey = "change"
	SortMarketCap SortKey = "marketcap"
)

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortName, SortPrice, SortChange, SortMarketCap:
		return SortKey(s), nil
	}
	return "", apperrors.ErrInvalidSortKey
}

// Dashboard is the single in-session store of assets, locations, and
// favorites.
type Dashboard struct {
	mu sync.RWMutex

	assets    []model.AssetRecord
	locations []model.LocationRecord
	favorites map[string]struct{}
	news      []model.NewsItem

	lastErr string
	loading bool

	sortKey       SortKey
	sortAscending bool
	filterText    string
	filterType    model.AssetType
	favoritesOnly bool
}

// New creates an empty Dashboard with the default view settings:
// alphabetical ascending, no filters.
func New() *Dashboard {
	return &Dashboard{
		favorites:     make(map[string]struct{}),
		sortKey:       SortName,
		sortAscending: true,
		filterType:    model.AssetTypeAll,
	}
}

// UpsertAsset inserts a record or replaces the record with the same
// symbol in place, preserving its position in arrival order.
func (d *Dashboard) UpsertAsset(rec model.AssetRecord) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, a := range d.assets {
		if a.Symbol == rec.Symbol {
			d.assets[i] = rec
			return
		}
	}
	d.assets = append(d.assets, rec)
}

// RemoveAsset drops a symbol from the working set and the favorites
// set.
func (d *Dashboard) RemoveAsset(symbol string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, a := range d.assets {
		if a.Symbol == symbol {
			d.assets = slices.Delete(d.assets, i, i+1)
			delete(d.favorites, symbol)
			return nil
		}
	}
	return apperrors.ErrAssetNotFound
}

// Assets returns the working set in arrival order. Used by the
// background refresh job.
func (d *Dashboard) Assets() []model.AssetRecord {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.assets)
}

// ToggleFavorite flips a symbol's membership in the favorites set. It
// never fails; toggling an unknown symbol simply marks it.
func (d *Dashboard) ToggleFavorite(symbol string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.favorites[symbol]; ok {
		delete(d.favorites, symbol)
	} else {
		d.favorites[symbol] = struct{}{}
	}
}

// UpsertLocation inserts a record or replaces the record with the same
// coordinate-derived ID. The favorite flag of an existing record
// survives the update.
func (d *Dashboard) UpsertLocation(rec model.LocationRecord) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, l := range d.locations {
		if l.ID == rec.ID {
			rec.IsFavorite = l.IsFavorite
			d.locations[i] = rec
			return
		}
	}
	d.locations = append(d.locations, rec)
}

// ToggleLocationFavorite flips the favorite flag of a stored location.
func (d *Dashboard) ToggleLocationFavorite(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.locations {
		if d.locations[i].ID == id {
			d.locations[i].IsFavorite = !d.locations[i].IsFavorite
			return nil
		}
	}
	return apperrors.ErrLocationNotFound
}

// SetNews replaces the news list.
func (d *Dashboard) SetNews(items []model.NewsItem) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.news = items
}

// News returns the current news list.
func (d *Dashboard) News() []model.NewsItem {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.news)
}

// SetError records a user-visible error message. The latest error wins;
// there is no error history.
func (d *Dashboard) SetError(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastErr = msg
}

// SetLoading flips the in-flight flag.
func (d *Dashboard) SetLoading(loading bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loading = loading
}

// SetSort adopts a sort key. Requesting the key already in effect flips
// the direction; a new key resets to ascending. This toggle-on-repeat
// behavior is part of the UX contract.
func (d *Dashboard) SetSort(key SortKey) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.sortKey == key {
		d.sortAscending = !d.sortAscending
		return
	}
	d.sortKey = key
	d.sortAscending = true
}

// SetFilterText sets the free-text asset filter.
func (d *Dashboard) SetFilterText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.filterText = text
}

// SetFilterType sets the stock/crypto/all type filter.
func (d *Dashboard) SetFilterType(kind model.AssetType) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.filterType = kind
}

// SetFavoritesOnly toggles the favorites-only view.
func (d *Dashboard) SetFavoritesOnly(on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.favoritesOnly = on
}

// View is the derived snapshot the presentation layer consumes.
type View struct {
	Assets        []model.AssetRecord    `json:"assets"`
	Portfolio     model.Portfolio        `json:"portfolio"`
	Locations     []model.LocationRecord `json:"locations"`
	News          []model.NewsItem       `json:"news"`
	Favorites     []string               `json:"favorites"`
	Error         string                 `json:"error,omitempty"`
	Loading       bool                   `json:"loading"`
	SortBy        SortKey                `json:"sortBy"`
	SortAscending bool                   `json:"sortAscending"`
	FilterText    string                 `json:"filterText"`
	FilterType    model.AssetType        `json:"filterType"`
	FavoritesOnly bool                   `json:"favoritesOnly"`
}

// View recomputes the derived views from current state. The filter
// pipeline runs favorites -> type -> name before sorting, so sort
// stability is evaluated within the already-reduced set. The portfolio
// aggregates the favorite subset of the full working set, regardless of
// the active filters.
func (d *Dashboard) View() View {
	d.mu.RLock()
	defer d.mu.RUnlock()

	filtered := d.assets
	if d.favoritesOnly {
		filtered = d.favoriteSubset(filtered)
	}
	filtered = assetops.FilterByType(filtered, d.filterType)
	filtered = assetops.FilterByName(filtered, d.filterText)

	switch d.sortKey {
	case SortPrice:
		filtered = assetops.SortByPrice(filtered, d.sortAscending)
	case SortChange:
		filtered = assetops.SortByChange(filtered, d.sortAscending)
	case SortMarketCap:
		filtered = assetops.SortByMarketCap(filtered, d.sortAscending)
	default:
		filtered = assetops.SortAlphabetical(filtered, d.sortAscending)
	}

	favorites := make([]string, 0, len(d.favorites))
	for s := range d.favorites {
		favorites = append(favorites, s)
	}
	slices.Sort(favorites)

	return View{
		Assets:        filtered,
		Portfolio:     assetops.PortfolioSummary(d.favoriteSubset(d.assets)),
		Locations:     slices.Clone(d.locations),
		News:          slices.Clone(d.news),
		Favorites:     favorites,
		Error:         d.lastErr,
		Loading:       d.loading,
		SortBy:        d.sortKey,
		SortAscending: d.sortAscending,
		FilterText:    d.filterText,
		FilterType:    d.filterType,
		FavoritesOnly: d.favoritesOnly,
	}
}

// favoriteSubset keeps assets whose symbol is in the favorites set,
// preserving order. Callers hold the lock.
func (d *Dashboard) favoriteSubset(assets []model.AssetRecord) []model.AssetRecord {
	out := make([]model.AssetRecord, 0, len(assets))
	for _, a := range assets {
		if _, ok := d.favorites[a.Symbol]; ok {
			out = append(out, a)
		}
	}
	return out
}
