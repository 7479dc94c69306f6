package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marketdash/market-dashboard-backend/internal/api"
	"github.com/marketdash/market-dashboard-backend/internal/coingecko"
	"github.com/marketdash/market-dashboard-backend/internal/config"
	"github.com/marketdash/market-dashboard-backend/internal/finnhub"
	"github.com/marketdash/market-dashboard-backend/internal/jobs"
	"github.com/marketdash/market-dashboard-backend/internal/logging"
	"github.com/marketdash/market-dashboard-backend/internal/newsapi"
	"github.com/marketdash/market-dashboard-backend/internal/openweather"
	"github.com/marketdash/market-dashboard-backend/internal/service"
	"github.com/marketdash/market-dashboard-backend/internal/store"
	"github.com/marketdash/market-dashboard-backend/internal/weatherapi"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Logger is not configured yet, fall back to stderr.
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})

	// Create provider clients
	stocks := finnhub.NewHTTPClient(cfg.Providers.FinnhubAPIKey)
	cryptos := coingecko.NewHTTPClient(cfg.Providers.CoinGeckoAPIKey)
	weather := openweather.NewHTTPClient(cfg.Providers.OpenWeatherAPIKey)
	forecast := weatherapi.NewHTTPClient(cfg.Providers.WeatherAPIKey)
	news := newsapi.NewHTTPClient(cfg.Providers.NewsAPIKey)

	// Create the dashboard state and services
	dashboard := store.New()
	assetService := service.NewAssetService(stocks, cryptos, log)
	locationService := service.NewLocationService(weather, forecast, log)
	newsService := service.NewNewsService(news, log)
	searchService := service.NewSearchService(stocks, cryptos, cfg.Providers.FinnhubAPIKey != "", log)

	// Create router
	router := api.NewRouter(dashboard, api.Services{
		Assets:    assetService,
		Locations: locationService,
		News:      newsService,
		Search:    searchService,
	}, cfg, log)

	// Load the initial working set before accepting traffic
	bootstrap := service.NewBootstrapService(assetService, newsService, dashboard, log)
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 60*time.Second)
	bootstrap.Load(loadCtx)
	loadCancel()

	// Start the background refresh schedule
	scheduler := jobs.NewScheduler(log)
	if cfg.Refresh.Enabled {
		refreshJob := jobs.NewRefreshJob(assetService, newsService, dashboard, log)
		if err := scheduler.AddJob(cfg.Refresh.Schedule, refreshJob); err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.Refresh.Schedule).Msg("Failed to schedule refresh job")
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
