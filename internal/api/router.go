package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/marketdash/market-dashboard-backend/internal/api/handlers"
	custommiddleware "github.com/marketdash/market-dashboard-backend/internal/api/middleware"
	"github.com/marketdash/market-dashboard-backend/internal/config"
	"github.com/marketdash/market-dashboard-backend/internal/service"
	"github.com/marketdash/market-dashboard-backend/internal/store"
)

// Services bundles the service layer the router wires handlers to.
type Services struct {
	Assets    *service.AssetService
	Locations *service.LocationService
	News      *service.NewsService
	Search    *service.SearchService
}

// NewRouter creates and configures the HTTP router
func NewRouter(dashboard *store.Dashboard, svcs Services, cfg *config.Config, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(cfg)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/dashboard", func(r chi.Router) {
			dashboardHandler := handlers.NewDashboardHandler(dashboard)
			r.Get("/", dashboardHandler.Get)
			r.Put("/sort", dashboardHandler.Sort)
			r.Put("/filter", dashboardHandler.Filter)
		})

		r.Route("/assets", func(r chi.Router) {
			assetHandler := handlers.NewAssetHandler(svcs.Assets, dashboard)
			r.Post("/", assetHandler.Add)
			r.Delete("/{symbol}", assetHandler.Remove)
			r.Post("/{symbol}/favorite", assetHandler.ToggleFavorite)
		})

		r.Route("/locations", func(r chi.Router) {
			locationHandler := handlers.NewLocationHandler(svcs.Locations, dashboard)
			r.Post("/", locationHandler.Add)
			r.Post("/{id}/favorite", locationHandler.ToggleFavorite)
		})

		r.Route("/search", func(r chi.Router) {
			searchHandler := handlers.NewSearchHandler(svcs.Search)
			r.Get("/", searchHandler.Search)
		})

		r.Route("/news", func(r chi.Router) {
			newsHandler := handlers.NewNewsHandler(svcs.News, dashboard)
			r.Get("/", newsHandler.List)
		})
	})

	return r
}
