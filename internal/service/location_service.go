package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/marketdash/market-dashboard-backend/internal/format"
	"github.com/marketdash/market-dashboard-backend/internal/model"
	"github.com/marketdash/market-dashboard-backend/internal/openweather"
	"github.com/marketdash/market-dashboard-backend/internal/weatherapi"
)

// forecastDays is the length of the outlook requested from the forecast
// provider.
const forecastDays = 5

// LocationService resolves a free-text location query into a
// LocationRecord by combining three upstream calls: current weather,
// air quality for the resolved coordinates, and a 5-day forecast from a
// second provider.
type LocationService struct {
	weather  openweather.Client
	forecast weatherapi.Client
	log      zerolog.Logger
}

// NewLocationService creates a new LocationService.
func NewLocationService(weather openweather.Client, forecast weatherapi.Client, log zerolog.Logger) *LocationService {
	return &LocationService{
		weather:  weather,
		forecast: forecast,
		log:      log.With().Str("component", "locations").Logger(),
	}
}

// FetchLocation resolves a query into a LocationRecord.
//
// Only the current-weather call is fatal. Air-quality failure degrades
// to an all-zero snapshot with level Good and recommendation "Data
// unavailable"; forecast failure degrades to an empty sequence.
func (s *LocationService) FetchLocation(ctx context.Context, query string) (model.LocationRecord, error) {
	current, err := s.weather.CurrentWeather(ctx, query)
	if err != nil {
		return model.LocationRecord{}, err
	}

	lat, lon := current.Coord.Lat, current.Coord.Lon

	rec := model.LocationRecord{
		ID:         model.LocationID(lat, lon),
		Name:       current.Name,
		Country:    current.Sys.Country,
		Lat:        lat,
		Lon:        lon,
		Weather:    weatherSnapshot(current),
		AirQuality: s.airQuality(ctx, lat, lon),
		Forecast:   s.fiveDayForecast(ctx, lat, lon),
	}
	return rec, nil
}

func weatherSnapshot(w openweather.WeatherResponse) model.WeatherSnapshot {
	snap := model.WeatherSnapshot{
		Temperature: format.RoundTemp(w.Main.Temp),
		FeelsLike:   format.RoundTemp(w.Main.FeelsLike),
		Humidity:    w.Main.Humidity,
		WindSpeed:   w.Wind.Speed,
		Pressure:    w.Main.Pressure,
		Visibility:  float64(w.Visibility) / 1000,
		Timestamp:   time.Unix(w.Dt, 0).UTC(),
	}
	if len(w.Weather) > 0 {
		snap.Description = w.Weather[0].Description
		snap.Icon = w.Weather[0].Icon
	}
	return snap
}

// airQuality fetches pollutant data for coordinates. Any failure is
// absorbed into the documented fallback snapshot, never surfaced.
func (s *LocationService) airQuality(ctx context.Context, lat, lon float64) model.AirQualitySnapshot {
	fallback := model.AirQualitySnapshot{
		Level:          model.AirQualityGood,
		Recommendation: "Data unavailable",
	}

	resp, err := s.weather.AirPollution(ctx, lat, lon)
	if err != nil {
		s.log.Warn().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("air quality lookup failed")
		return fallback
	}
	if len(resp.List) == 0 {
		return fallback
	}

	entry := resp.List[0]
	level, recommendation := model.AirQualityInfo(entry.Main.AQI)
	return model.AirQualitySnapshot{
		AQI:            entry.Main.AQI,
		CO:             entry.Components.CO,
		NO2:            entry.Components.NO2,
		O3:             entry.Components.O3,
		SO2:            entry.Components.SO2,
		PM25:           entry.Components.PM25,
		PM10:           entry.Components.PM10,
		Level:          level,
		Recommendation: recommendation,
	}
}

// fiveDayForecast fetches the outlook for coordinates. Any failure is
// absorbed into an empty sequence, never surfaced.
func (s *LocationService) fiveDayForecast(ctx context.Context, lat, lon float64) []model.ForecastDay {
	resp, err := s.forecast.Forecast(ctx, lat, lon, forecastDays)
	if err != nil {
		s.log.Warn().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("forecast lookup failed")
		return []model.ForecastDay{}
	}

	days := make([]model.ForecastDay, len(resp.Forecast.ForecastDay))
	for i, d := range resp.Forecast.ForecastDay {
		days[i] = model.ForecastDay{
			Date:         d.Date,
			MaxTemp:      format.RoundTemp(d.Day.MaxTempC),
			MinTemp:      format.RoundTemp(d.Day.MinTempC),
			Description:  d.Day.Condition.Text,
			Icon:         d.Day.Condition.Icon,
			Humidity:     int(d.Day.AvgHumidity),
			WindSpeed:    d.Day.MaxWindKph,
			ChanceOfRain: d.Day.RainChance,
		}
	}
	return days
}
