package model

import "time"

// AssetType discriminates the two variants of AssetRecord.
type AssetType string

const (
	AssetTypeStock  AssetType = "stock"
	AssetTypeCrypto AssetType = "crypto"

	// AssetTypeAll is a filter value, never stored on a record.
	AssetTypeAll AssetType = "all"
)

// AssetRecord is the canonical internal representation of a tradable
// instrument. It is a tagged union: Type selects the variant, and the
// variant-only fields (Open/PreviousClose for stocks, ID/MarketCap for
// crypto) are zero-valued on the other variant.
//
// Symbol is the unique identity key within a working set: adding a
// record with an existing symbol replaces it in place.
type AssetRecord struct {
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	High          float64   `json:"high"`
	Low           float64   `json:"low"`
	Volume        float64   `json:"volume"`
	Timestamp     time.Time `json:"timestamp"`
	Type          AssetType `json:"type"`

	// Stock-only fields.
	Open          float64 `json:"open,omitempty"`
	PreviousClose float64 `json:"previousClose,omitempty"`

	// Crypto-only fields. ID is the canonical lowercase lookup key
	// (e.g. "bitcoin").
	ID        string  `json:"id,omitempty"`
	MarketCap float64 `json:"marketCap,omitempty"`
}

// Portfolio is an aggregate derived on demand from the favorite subset
// of the working set. It is never persisted.
//
// TotalChangePercent is the arithmetic mean of ChangePercent across the
// included assets, not a value-weighted figure.
type Portfolio struct {
	Assets             []AssetRecord `json:"assets"`
	TotalValue         float64       `json:"totalValue"`
	TotalChange        float64       `json:"totalChange"`
	TotalChangePercent float64       `json:"totalChangePercent"`
}

// SearchResult is a lookup hit used only to route a follow-up detail
// fetch. It is never stored in the working set.
type SearchResult struct {
	Symbol string    `json:"symbol"`
	Name   string    `json:"name"`
	Type   AssetType `json:"type"`

	// Exchange is set for stock results, ID for crypto results.
	Exchange string `json:"exchange,omitempty"`
	ID       string `json:"id,omitempty"`
}
