package testutil

import (
	"time"

	"github.com/marketdash/market-dashboard-backend/internal/model"
)

// AssetBuilder provides a fluent interface for creating test asset records.
//
// Example usage:
//
//	// Simple creation with defaults
//	asset := testutil.NewAsset().Build()
//
//	// Customized asset
//	asset := testutil.NewAsset().
//	    WithSymbol("TSLA").
//	    WithPrice(250.00).
//	    Build()
type AssetBuilder struct {
	rec model.AssetRecord
}

// NewAsset creates an AssetBuilder with sensible stock defaults.
func NewAsset() *AssetBuilder {
	return &AssetBuilder{
		rec: model.AssetRecord{
			Symbol:        "AAPL",
			Name:          "Apple Inc",
			Price:         178.25,
			Change:        2.15,
			ChangePercent: 1.22,
			High:          179.80,
			Low:           176.10,
			Open:          176.50,
			PreviousClose: 176.10,
			Timestamp:     time.Date(2026, 8, 1, 15, 30, 0, 0, time.UTC),
			Type:          model.AssetTypeStock,
		},
	}
}

// NewCryptoAsset creates an AssetBuilder with sensible crypto defaults.
func NewCryptoAsset() *AssetBuilder {
	return &AssetBuilder{
		rec: model.AssetRecord{
			Symbol:        "BTC",
			Name:          "Bitcoin",
			ID:            "bitcoin",
			Price:         50000,
			Change:        1250,
			ChangePercent: 2.5,
			High:          52500,
			Low:           47500,
			Volume:        28000000000,
			MarketCap:     980000000000,
			Timestamp:     time.Date(2026, 8, 1, 15, 30, 0, 0, time.UTC),
			Type:          model.AssetTypeCrypto,
		},
	}
}

// WithSymbol sets a custom symbol.
func (b *AssetBuilder) WithSymbol(symbol string) *AssetBuilder {
	b.rec.Symbol = symbol
	return b
}

// WithName sets a custom display name.
func (b *AssetBuilder) WithName(name string) *AssetBuilder {
	b.rec.Name = name
	return b
}

// WithPrice sets a custom price.
func (b *AssetBuilder) WithPrice(price float64) *AssetBuilder {
	b.rec.Price = price
	return b
}

// WithChange sets the absolute and percentage change together.
func (b *AssetBuilder) WithChange(change, changePercent float64) *AssetBuilder {
	b.rec.Change = change
	b.rec.ChangePercent = changePercent
	return b
}

// WithMarketCap sets a custom market cap.
func (b *AssetBuilder) WithMarketCap(cap float64) *AssetBuilder {
	b.rec.MarketCap = cap
	return b
}

// Build returns the constructed record.
func (b *AssetBuilder) Build() model.AssetRecord {
	return b.rec
}

// LocationBuilder provides a fluent interface for creating test
// location records.
type LocationBuilder struct {
	rec model.LocationRecord
}

// NewLocation creates a LocationBuilder with sensible defaults.
func NewLocation() *LocationBuilder {
	lat, lon := 51.51, -0.13
	return &LocationBuilder{
		rec: model.LocationRecord{
			ID:      model.LocationID(lat, lon),
			Name:    "London",
			Country: "GB",
			Lat:     lat,
			Lon:     lon,
			Weather: model.WeatherSnapshot{
				Temperature: 18,
				FeelsLike:   17,
				Description: "scattered clouds",
				Humidity:    62,
				WindSpeed:   4.1,
				Pressure:    1013,
				Visibility:  10,
				Icon:        "03d",
			},
			AirQuality: model.AirQualitySnapshot{
				AQI:            2,
				Level:          model.AirQualityFair,
				Recommendation: "Air quality is acceptable for most people.",
			},
		},
	}
}

// WithName sets a custom location name.
func (b *LocationBuilder) WithName(name string) *LocationBuilder {
	b.rec.Name = name
	return b
}

// WithCoords sets custom coordinates and recomputes the ID.
func (b *LocationBuilder) WithCoords(lat, lon float64) *LocationBuilder {
	b.rec.Lat = lat
	b.rec.Lon = lon
	b.rec.ID = model.LocationID(lat, lon)
	return b
}

// Favorite marks the location as a favorite.
func (b *LocationBuilder) Favorite() *LocationBuilder {
	b.rec.IsFavorite = true
	return b
}

// Build returns the constructed record.
func (b *LocationBuilder) Build() model.LocationRecord {
	return b.rec
}
