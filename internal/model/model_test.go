package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/marketdash/market-dashboard-backend/internal/model"
)

// TestAirQualityInfo tests the AQI tier mapping.
//
// WHY: The recommendation text is shown verbatim to the user, and
// out-of-range tiers (the provider occasionally returns 0) must fall
// back to the unavailable text rather than a wrong health warning.
func TestAirQualityInfo(t *testing.T) {
	tests := []struct {
		aqi            int
		level          model.AirQualityLevel
		recommendation string
	}{
		{1, model.AirQualityGood, "Air quality is good. Perfect for outdoor activities."},
		{2, model.AirQualityFair, "Air quality is acceptable for most people."},
		{3, model.AirQualityModerate, "Sensitive individuals should consider limiting outdoor activities."},
		{4, model.AirQualityPoor, "Everyone should limit outdoor activities."},
		{5, model.AirQualityVeryPoor, "Avoid outdoor activities. Health warnings recommended."},
		{0, model.AirQualityGood, "Air quality data unavailable."},
		{6, model.AirQualityGood, "Air quality data unavailable."},
	}

	for _, tt := range tests {
		level, recommendation := model.AirQualityInfo(tt.aqi)
		assert.Equal(t, tt.level, level, "aqi %d", tt.aqi)
		assert.Equal(t, tt.recommendation, recommendation, "aqi %d", tt.aqi)
	}
}

// TestLocationID tests the coordinate-derived identity key.
//
// WHY: The same coordinates must always produce the same key, and %g
// keeps it free of trailing zeros so 51.510 and 51.51 collide as
// intended.
func TestLocationID(t *testing.T) {
	assert.Equal(t, "51.51--0.13", model.LocationID(51.51, -0.13))
	assert.Equal(t, model.LocationID(51.510, -0.130), model.LocationID(51.51, -0.13))
	assert.Equal(t, "0-0", model.LocationID(0, 0))
}

// TestMarketOpen tests the display-purpose market clock.
func TestMarketOpen(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		open bool
	}{
		{"weekday mid-session", time.Date(2026, 8, 26, 11, 0, 0, 0, time.UTC), true},
		{"weekday opening hour", time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC), true},
		{"weekday closing hour", time.Date(2026, 8, 26, 16, 59, 0, 0, time.UTC), true},
		{"weekday before open", time.Date(2026, 8, 26, 8, 59, 0, 0, time.UTC), false},
		{"weekday after close", time.Date(2026, 8, 26, 17, 0, 0, 0, time.UTC), false},
		{"saturday mid-day", time.Date(2026, 8, 29, 11, 0, 0, 0, time.UTC), false},
		{"sunday mid-day", time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.open, model.MarketOpen(tt.at))
		})
	}
}
