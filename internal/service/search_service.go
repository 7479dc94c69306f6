package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/marketdash/market-dashboard-backend/internal/coingecko"
	"github.com/marketdash/market-dashboard-backend/internal/finnhub"
	"github.com/marketdash/market-dashboard-backend/internal/model"
)

// maxResultsPerSource caps how many hits each lookup contributes to the
// combined list.
const maxResultsPerSource = 5

// SearchService runs the combined asset search: a stock symbol lookup
// and a crypto name lookup, dispatched concurrently and concatenated
// stocks first. Search is supplementary: an individual lookup failure
// is logged and swallowed so a failure in one source does not block
// results from the other.
type SearchService struct {
	stocks       finnhub.Client
	cryptos      coingecko.Client
	stockEnabled bool
	log          zerolog.Logger
}

// NewSearchService creates a new SearchService. stockEnabled gates the
// stock lookup; when no stock credential is configured the lookup is
// skipped entirely rather than attempted and failed.
func NewSearchService(stocks finnhub.Client, cryptos coingecko.Client, stockEnabled bool, log zerolog.Logger) *SearchService {
	return &SearchService{
		stocks:       stocks,
		cryptos:      cryptos,
		stockEnabled: stockEnabled,
		log:          log.With().Str("component", "search").Logger(),
	}
}

// Search dispatches both lookups and returns up to five results from
// each, stocks first. It never returns an error.
func (s *SearchService) Search(ctx context.Context, query string) []model.SearchResult {
	var stockResults, cryptoResults []model.SearchResult

	g, ctx := errgroup.WithContext(ctx)

	if s.stockEnabled {
		g.Go(func() error {
			resp, err := s.stocks.SearchSymbols(ctx, query)
			if err != nil {
				s.log.Warn().Err(err).Str("query", query).Msg("stock search failed")
				return nil
			}
			for _, hit := range resp.Result {
				stockResults = append(stockResults, model.SearchResult{
					Symbol:   hit.Symbol,
					Name:     hit.Description,
					Type:     model.AssetTypeStock,
					Exchange: hit.Type,
				})
				if len(stockResults) == maxResultsPerSource {
					break
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		resp, err := s.cryptos.Search(ctx, query)
		if err != nil {
			s.log.Warn().Err(err).Str("query", query).Msg("crypto search failed")
			return nil
		}
		for _, coin := range resp.Coins {
			cryptoResults = append(cryptoResults, model.SearchResult{
				Symbol: strings.ToUpper(coin.Symbol),
				Name:   coin.Name,
				Type:   model.AssetTypeCrypto,
				ID:     coin.ID,
			})
			if len(cryptoResults) == maxResultsPerSource {
				break
			}
		}
		return nil
	})

	// Goroutines only ever return nil; Wait is for joining.
	_ = g.Wait()

	results := make([]model.SearchResult, 0, len(stockResults)+len(cryptoResults))
	results = append(results, stockResults...)
	return append(results, cryptoResults...)
}
