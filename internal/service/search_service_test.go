package service_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketdash/market-dashboard-backend/internal/apperrors"
	"github.com/marketdash/market-dashboard-backend/internal/coingecko"
	"github.com/marketdash/market-dashboard-backend/internal/finnhub"
	"github.com/marketdash/market-dashboard-backend/internal/model"
	"github.com/marketdash/market-dashboard-backend/internal/service"
	"github.com/marketdash/market-dashboard-backend/internal/testutil"
)

func stockHits(symbols ...string) finnhub.SearchResponse {
	resp := finnhub.SearchResponse{Count: len(symbols)}
	for _, s := range symbols {
		resp.Result = append(resp.Result, finnhub.SearchResult{
			Symbol:      s,
			Description: s + " Inc",
			Type:        "Common Stock",
		})
	}
	return resp
}

func coinHits(ids ...string) coingecko.SearchResponse {
	var resp coingecko.SearchResponse
	for _, id := range ids {
		resp.Coins = append(resp.Coins, coingecko.SearchCoin{
			ID:     id,
			Symbol: id[:3],
			Name:   id,
		})
	}
	return resp
}

// TestSearch tests the combined lookup.
//
// WHY: The two lookups run concurrently but the result order is fixed:
// stocks first, then cryptos, each capped at five. A failure in one
// source must not suppress results from the other.
func TestSearch(t *testing.T) {
	log := zerolog.Nop()

	t.Run("concatenates stocks before cryptos", func(t *testing.T) {
		stocks := testutil.NewMockFinnhubClient()
		stocks.MockSearch = stockHits("AAPL", "AAPLW")
		cryptos := testutil.NewMockCoinGeckoClient()
		cryptos.MockSearch = coinHits("apecoin")

		svc := service.NewSearchService(stocks, cryptos, true, log)
		results := svc.Search(context.Background(), "ap")

		require.Len(t, results, 3)
		assert.Equal(t, model.AssetTypeStock, results[0].Type)
		assert.Equal(t, "AAPL", results[0].Symbol)
		assert.Equal(t, model.AssetTypeCrypto, results[2].Type)
		assert.Equal(t, "apecoin", results[2].ID)
		assert.Equal(t, "APE", results[2].Symbol)
	})

	t.Run("caps each source at five results", func(t *testing.T) {
		stocks := testutil.NewMockFinnhubClient()
		stocks.MockSearch = stockHits("A", "B", "C", "D", "E", "F", "G")
		cryptos := testutil.NewMockCoinGeckoClient()
		cryptos.MockSearch = coinHits("aaa", "bbb", "ccc", "ddd", "eee", "fff")

		svc := service.NewSearchService(stocks, cryptos, true, log)
		results := svc.Search(context.Background(), "a")

		assert.Len(t, results, 10)
	})

	t.Run("one failing source does not block the other", func(t *testing.T) {
		stocks := testutil.NewMockFinnhubClient().
			WithError(apperrors.New(apperrors.KindUnavailable, "Stock service error: 500"))
		cryptos := testutil.NewMockCoinGeckoClient()
		cryptos.MockSearch = coinHits("bitcoin")

		svc := service.NewSearchService(stocks, cryptos, true, log)
		results := svc.Search(context.Background(), "bit")

		require.Len(t, results, 1)
		assert.Equal(t, model.AssetTypeCrypto, results[0].Type)
	})

	t.Run("disabled stock lookup is never dispatched", func(t *testing.T) {
		stocks := testutil.NewMockFinnhubClient()
		stocks.MockSearch = stockHits("AAPL")
		cryptos := testutil.NewMockCoinGeckoClient()
		cryptos.MockSearch = coinHits("apecoin")

		svc := service.NewSearchService(stocks, cryptos, false, log)
		results := svc.Search(context.Background(), "ap")

		require.Len(t, results, 1)
		assert.Equal(t, model.AssetTypeCrypto, results[0].Type)
		assert.Zero(t, stocks.SearchCount.Load())
	})

	t.Run("both sources empty yields an empty list", func(t *testing.T) {
		svc := service.NewSearchService(testutil.NewMockFinnhubClient(), testutil.NewMockCoinGeckoClient(), true, log)
		results := svc.Search(context.Background(), "zzzz")
		assert.Empty(t, results)
	})
}
