package model

import (
	"fmt"
	"time"
)

// AirQualityLevel is the display tier derived from the 1-5 AQI index.
type AirQualityLevel string

const (
	AirQualityGood     AirQualityLevel = "Good"
	AirQualityFair     AirQualityLevel = "Fair"
	AirQualityModerate AirQualityLevel = "Moderate"
	AirQualityPoor     AirQualityLevel = "Poor"
	AirQualityVeryPoor AirQualityLevel = "Very Poor"
)

// LocationRecord is the canonical internal representation of a
// geographic point's weather, air-quality, and forecast bundle.
//
// ID is derived from the coordinates, not the name, so the same city
// queried twice resolves to the same record.
type LocationRecord struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Country    string             `json:"country"`
	Lat        float64            `json:"lat"`
	Lon        float64            `json:"lon"`
	Weather    WeatherSnapshot    `json:"weather"`
	AirQuality AirQualitySnapshot `json:"airQuality"`
	Forecast   []ForecastDay      `json:"forecast"`
	IsFavorite bool               `json:"isFavorite"`
}

// LocationID builds the deterministic identity key for a coordinate pair.
func LocationID(lat, lon float64) string {
	return fmt.Sprintf("%g-%g", lat, lon)
}

// WeatherSnapshot holds current conditions. Temperatures are rounded to
// whole degrees and visibility is kilometres.
type WeatherSnapshot struct {
	Temperature int       `json:"temperature"`
	FeelsLike   int       `json:"feelsLike"`
	Description string    `json:"description"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"windSpeed"`
	Pressure    int       `json:"pressure"`
	Visibility  float64   `json:"visibility"`
	Icon        string    `json:"icon"`
	Timestamp   time.Time `json:"timestamp"`
}

// AirQualitySnapshot holds the 1-5 AQI tier, six pollutant
// concentrations, and the display level and recommendation derived from
// the tier alone.
type AirQualitySnapshot struct {
	AQI            int             `json:"aqi"`
	CO             float64         `json:"co"`
	NO2            float64         `json:"no2"`
	O3             float64         `json:"o3"`
	SO2            float64         `json:"so2"`
	PM25           float64         `json:"pm2_5"`
	PM10           float64         `json:"pm10"`
	Level          AirQualityLevel `json:"level"`
	Recommendation string          `json:"recommendation"`
}

// AirQualityInfo maps an AQI tier to its display level and
// recommendation text. Values outside 1-5 get the "data unavailable"
// text with a Good level.
func AirQualityInfo(aqi int) (AirQualityLevel, string) {
	switch aqi {
	case 1:
		return AirQualityGood, "Air quality is good. Perfect for outdoor activities."
	case 2:
		return AirQualityFair, "Air quality is acceptable for most people."
	case 3:
		return AirQualityModerate, "Sensitive individuals should consider limiting outdoor activities."
	case 4:
		return AirQualityPoor, "Everyone should limit outdoor activities."
	case 5:
		return AirQualityVeryPoor, "Avoid outdoor activities. Health warnings recommended."
	default:
		return AirQualityGood, "Air quality data unavailable."
	}
}

// ForecastDay is one calendar day of forecast data. Date has no time
// component ("2006-01-02"); index 0 of a forecast sequence is the
// soonest day.
type ForecastDay struct {
	Date         string  `json:"date"`
	MaxTemp      int     `json:"maxTemp"`
	MinTemp      int     `json:"minTemp"`
	Description  string  `json:"description"`
	Icon         string  `json:"icon"`
	Humidity     int     `json:"humidity"`
	WindSpeed    float64 `json:"windSpeed"`
	ChanceOfRain int     `json:"chanceOfRain"`
}
