package request

import (
	"strings"

	"github.com/marketdash/market-dashboard-backend/internal/apperrors"
	"github.com/marketdash/market-dashboard-backend/internal/model"
)

// AddAssetRequest adds or refreshes an asset in the working set. For
// crypto, ID is the CoinGecko lookup key; when omitted the lowercased
// symbol is used.
type AddAssetRequest struct {
	Symbol string `json:"symbol"`
	Type   string `json:"type"`
	ID     string `json:"id,omitempty"`
}

// Validate checks required fields and normalizes the asset type.
func (r *AddAssetRequest) Validate() (model.AssetType, error) {
	if strings.TrimSpace(r.Symbol) == "" {
		return "", apperrors.ErrInvalidSymbol
	}
	switch model.AssetType(r.Type) {
	case model.AssetTypeStock:
		return model.AssetTypeStock, nil
	case model.AssetTypeCrypto:
		return model.AssetTypeCrypto, nil
	}
	return "", apperrors.ErrInvalidAssetType
}
