package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/marketdash/market-dashboard-backend/internal/store"
)

// Popular assets seeded into the working set on startup. Only the
// leading slice of each list is loaded; the rest are suggestions for
// the search surface.
var (
	PopularStocks  = []string{"AAPL", "GOOGL", "MSFT", "TSLA", "AMZN"}
	PopularCryptos = []string{"bitcoin", "ethereum", "cardano", "polkadot", "chainlink"}
)

const (
	initialStocks  = 3
	initialCryptos = 2
)

// BootstrapService seeds the dashboard with popular assets and the news
// feed on startup.
type BootstrapService struct {
	assets *AssetService
	news   *NewsService
	store  *store.Dashboard
	log    zerolog.Logger
}

// NewBootstrapService creates a new BootstrapService.
func NewBootstrapService(assets *AssetService, news *NewsService, dashboard *store.Dashboard, log zerolog.Logger) *BootstrapService {
	return &BootstrapService{
		assets: assets,
		news:   news,
		store:  dashboard,
		log:    log.With().Str("component", "bootstrap").Logger(),
	}
}

// Load fetches the initial working set and news feed. Per-asset fetches
// run concurrently and upsert independently as they complete, so the
// arrival order of the working set is completion order. Individual
// failures are logged and skipped; the initial load never fails as a
// whole.
func (s *BootstrapService) Load(ctx context.Context) {
	g, gctx := errgroup.WithContext(ctx)

	for _, symbol := range PopularStocks[:initialStocks] {
		symbol := symbol
		g.Go(func() error {
			rec, err := s.assets.FetchStock(gctx, symbol)
			if err != nil {
				s.log.Warn().Err(err).Str("symbol", symbol).Msg("failed to load popular stock")
				return nil
			}
			s.store.UpsertAsset(rec)
			return nil
		})
	}

	for _, id := range PopularCryptos[:initialCryptos] {
		id := id
		g.Go(func() error {
			rec, err := s.assets.FetchCrypto(gctx, id)
			if err != nil {
				s.log.Warn().Err(err).Str("id", id).Msg("failed to load popular crypto")
				return nil
			}
			s.store.UpsertAsset(rec)
			return nil
		})
	}

	// Goroutines only ever return nil; Wait is for joining.
	_ = g.Wait()

	s.store.SetNews(s.news.FetchNews(ctx))

	s.log.Info().Int("assets", len(s.store.Assets())).Msg("initial load complete")
}

// Popular returns the seed lists, mirroring the shape the frontend's
// suggestion UI consumes.
func Popular() (stocks, cryptos []string) {
	return PopularStocks, PopularCryptos
}
