package service_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketdash/market-dashboard-backend/internal/apperrors"
	"github.com/marketdash/market-dashboard-backend/internal/model"
	"github.com/marketdash/market-dashboard-backend/internal/newsapi"
	"github.com/marketdash/market-dashboard-backend/internal/service"
	"github.com/marketdash/market-dashboard-backend/internal/store"
	"github.com/marketdash/market-dashboard-backend/internal/testutil"
)

// TestBootstrapLoad tests seeding the working set on startup.
//
// WHY: The initial load fetches three popular stocks and two popular
// cryptos concurrently and must tolerate individual failures: a dead
// stock provider still leaves the cryptos and the news feed in place.
func TestBootstrapLoad(t *testing.T) {
	log := zerolog.Nop()

	t.Run("seeds stocks, cryptos, and news", func(t *testing.T) {
		stocks := testutil.NewMockFinnhubClient()
		cryptos := testutil.NewMockCoinGeckoClient()
		// Force the id-as-name fallback so the two cryptos keep
		// distinct symbols.
		cryptos.InfoError = apperrors.New(apperrors.KindUnavailable, "Crypto service error: 500")
		news := &testutil.MockNewsAPIClient{}
		news.MockArticles.Articles = []newsapi.Article{{Title: "Markets Rally"}}

		d := store.New()
		boot := service.NewBootstrapService(
			service.NewAssetService(stocks, cryptos, log),
			service.NewNewsService(news, log),
			d, log,
		)
		boot.Load(context.Background())

		assets := d.Assets()
		require.Len(t, assets, 5)

		var stockCount, cryptoCount int
		for _, a := range assets {
			switch a.Type {
			case model.AssetTypeStock:
				stockCount++
			case model.AssetTypeCrypto:
				cryptoCount++
			}
		}
		assert.Equal(t, 3, stockCount)
		assert.Equal(t, 2, cryptoCount)
		assert.NotEmpty(t, d.News())
		// The concurrent fetches hit the shared mocks once per seed.
		assert.EqualValues(t, 3, stocks.QuoteCount.Load())
		assert.EqualValues(t, 2, cryptos.PriceCount.Load())
	})

	t.Run("provider failures degrade instead of aborting", func(t *testing.T) {
		stocks := testutil.NewMockFinnhubClient().
			WithError(apperrors.New(apperrors.KindConfiguration, "Finnhub API key is not configured"))
		cryptos := testutil.NewMockCoinGeckoClient()
		cryptos.InfoError = apperrors.New(apperrors.KindUnavailable, "Crypto service error: 500")
		news := &testutil.MockNewsAPIClient{
			MockError: apperrors.New(apperrors.KindConfiguration, "NewsAPI key is not configured"),
		}

		d := store.New()
		boot := service.NewBootstrapService(
			service.NewAssetService(stocks, cryptos, log),
			service.NewNewsService(news, log),
			d, log,
		)
		boot.Load(context.Background())

		assets := d.Assets()
		require.Len(t, assets, 2)
		for _, a := range assets {
			assert.Equal(t, model.AssetTypeCrypto, a.Type)
		}
		// News degrades to the static feed.
		assert.Len(t, d.News(), 3)
	})
}

// TestPopular tests the seed list shape.
func TestPopular(t *testing.T) {
	stocks, cryptos := service.Popular()
	assert.Equal(t, []string{"AAPL", "GOOGL", "MSFT", "TSLA", "AMZN"}, stocks)
	assert.Equal(t, []string{"bitcoin", "ethereum", "cardano", "polkadot", "chainlink"}, cryptos)
}
