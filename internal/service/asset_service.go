package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/marketdash/market-dashboard-backend/internal/apperrors"
	"github.com/marketdash/market-dashboard-backend/internal/coingecko"
	"github.com/marketdash/market-dashboard-backend/internal/finnhub"
	"github.com/marketdash/market-dashboard-backend/internal/model"
)

// AssetService normalizes heterogeneous quote payloads from the stock
// and crypto providers into canonical AssetRecords.
type AssetService struct {
	stocks  finnhub.Client
	cryptos coingecko.Client
	log     zerolog.Logger
}

// NewAssetService creates a new AssetService.
func NewAssetService(stocks finnhub.Client, cryptos coingecko.Client, log zerolog.Logger) *AssetService {
	return &AssetService{
		stocks:  stocks,
		cryptos: cryptos,
		log:     log.With().Str("component", "assets").Logger(),
	}
}

// FetchStock fetches a real-time quote and a company profile for a
// ticker symbol and combines them into a stock AssetRecord.
//
// A quote with a zero current price means the symbol is unknown or the
// market is fully closed with no synthesized price, and maps to
// NotFound. The profile lookup is non-fatal: on failure or a missing
// name the symbol itself is used as the display name.
func (s *AssetService) FetchStock(ctx context.Context, symbol string) (model.AssetRecord, error) {
	quote, err := s.stocks.Quote(ctx, symbol)
	if err != nil {
		return model.AssetRecord{}, err
	}
	if quote.Current == 0 {
		return model.AssetRecord{}, apperrors.New(apperrors.KindNotFound, "Stock symbol not found or market is closed")
	}

	name := symbol
	if profile, err := s.stocks.Profile(ctx, symbol); err != nil {
		s.log.Warn().Err(err).Str("symbol", symbol).Msg("profile lookup failed, using symbol as name")
	} else if profile.Name != "" {
		name = profile.Name
	}

	return model.AssetRecord{
		Symbol:        strings.ToUpper(symbol),
		Name:          name,
		Price:         quote.Current,
		Change:        quote.Change,
		ChangePercent: quote.ChangePercent,
		High:          quote.High,
		Low:           quote.Low,
		Open:          quote.Open,
		PreviousClose: quote.PreviousClose,
		// Finnhub's quote endpoint does not report volume.
		Volume:    0,
		Timestamp: time.Now(),
		Type:      model.AssetTypeStock,
	}, nil
}

// FetchCrypto fetches a price snapshot and coin metadata for a
// CoinGecko lookup key and combines them into a crypto AssetRecord.
//
// The simple price endpoint reports no 24h high/low, so both are
// synthesized as price±5%. This is a deliberate approximation, not
// upstream data. The metadata lookup is non-fatal: on failure the
// lookup key serves as both name and symbol.
func (s *AssetService) FetchCrypto(ctx context.Context, id string) (model.AssetRecord, error) {
	snap, err := s.cryptos.SimplePrice(ctx, id)
	if err != nil {
		return model.AssetRecord{}, err
	}

	name, symbol := id, id
	if info, err := s.cryptos.CoinInfo(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("id", id).Msg("coin metadata lookup failed, using id as name")
	} else {
		if info.Name != "" {
			name = info.Name
		}
		if info.Symbol != "" {
			symbol = info.Symbol
		}
	}

	return model.AssetRecord{
		ID:            id,
		Symbol:        strings.ToUpper(symbol),
		Name:          name,
		Price:         snap.USD,
		Change:        snap.USD24hChange,
		ChangePercent: snap.USD24hChange,
		Volume:        snap.USD24hVolume,
		MarketCap:     snap.USDMarketCap,
		High:          snap.USD * 1.05,
		Low:           snap.USD * 0.95,
		Timestamp:     time.Now(),
		Type:          model.AssetTypeCrypto,
	}, nil
}

// Fetch routes to the right variant fetch. For crypto the id takes
// precedence over the symbol as the lookup key.
func (s *AssetService) Fetch(ctx context.Context, symbol string, kind model.AssetType, id string) (model.AssetRecord, error) {
	if kind == model.AssetTypeStock {
		return s.FetchStock(ctx, symbol)
	}
	if id == "" {
		id = strings.ToLower(symbol)
	}
	return s.FetchCrypto(ctx, id)
}

// Refresh re-fetches an existing record by its own identity.
func (s *AssetService) Refresh(ctx context.Context, rec model.AssetRecord) (model.AssetRecord, error) {
	return s.Fetch(ctx, rec.Symbol, rec.Type, rec.ID)
}
