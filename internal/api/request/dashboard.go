package request

import (
	"github.com/marketdash/market-dashboard-backend/internal/apperrors"
	"github.com/marketdash/market-dashboard-backend/internal/model"
	"github.com/marketdash/market-dashboard-backend/internal/store"
)

// SortRequest changes the sort key of the derived asset view.
// Requesting the key already in effect flips the direction.
type SortRequest struct {
	Key string `json:"key"`
}

// Validate checks the sort key.
func (r *SortRequest) Validate() (store.SortKey, error) {
	return store.ParseSortKey(r.Key)
}

// FilterRequest sets the asset view filters in one call.
type FilterRequest struct {
	Text          string `json:"text"`
	Type          string `json:"type"`
	FavoritesOnly bool   `json:"favoritesOnly"`
}

// Validate normalizes the type filter; an empty type means all.
func (r *FilterRequest) Validate() (model.AssetType, error) {
	switch model.AssetType(r.Type) {
	case model.AssetTypeAll, "":
		return model.AssetTypeAll, nil
	case model.AssetTypeStock:
		return model.AssetTypeStock, nil
	case model.AssetTypeCrypto:
		return model.AssetTypeCrypto, nil
	}
	return "", apperrors.ErrInvalidAssetType
}
