// Package assetops provides the pure collection operators the dashboard
// derives its views from: sorting, filtering, and the portfolio fold.
//
// Every operator returns a new slice and never mutates its input, so
// views can be recomputed from the working set on every state change
// with predictable results. Sorts are stable: equal elements keep their
// relative order from the input.
package assetops

import (
	"slices"
	"strings"

	"github.com/marketdash/market-dashboard-backend/internal/model"
)

// SortByPrice orders assets by price. Ties preserve input order.
func SortByPrice(assets []model.AssetRecord, ascending bool) []model.AssetRecord {
	out := slices.Clone(assets)
	slices.SortStableFunc(out, func(a, b model.AssetRecord) int {
		return directed(compareFloat(a.Price, b.Price), ascending)
	})
	return out
}

// SortByChange orders assets by percentage change. Ties preserve input
// order.
func SortByChange(assets []model.AssetRecord, ascending bool) []model.AssetRecord {
	out := slices.Clone(assets)
	slices.SortStableFunc(out, func(a, b model.AssetRecord) int {
		return directed(compareFloat(a.ChangePercent, b.ChangePercent), ascending)
	})
	return out
}

// SortAlphabetical orders assets by symbol, case-insensitively. The
// direction is a comparator parameter rather than a post-hoc reversal,
// so tie order is preserved in both directions.
func SortAlphabetical(assets []model.AssetRecord, ascending bool) []model.AssetRecord {
	out := slices.Clone(assets)
	slices.SortStableFunc(out, func(a, b model.AssetRecord) int {
		return directed(strings.Compare(strings.ToLower(a.Symbol), strings.ToLower(b.Symbol)), ascending)
	})
	return out
}

// SortByMarketCap orders assets by market capitalization. Stocks carry
// no market cap in the quote payload and rank as zero.
func SortByMarketCap(assets []model.AssetRecord, ascending bool) []model.AssetRecord {
	out := slices.Clone(assets)
	slices.SortStableFunc(out, func(a, b model.AssetRecord) int {
		return directed(compareFloat(marketCap(a), marketCap(b)), ascending)
	})
	return out
}

func marketCap(a model.AssetRecord) float64 {
	if a.Type == model.AssetTypeCrypto {
		return a.MarketCap
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func directed(cmp int, ascending bool) int {
	if ascending {
		return cmp
	}
	return -cmp
}

// FilterByName keeps assets whose symbol or name contains the term,
// case-insensitively. An empty or whitespace-only term is a no-op and
// returns the input unchanged.
func FilterByName(assets []model.AssetRecord, term string) []model.AssetRecord {
	term = strings.TrimSpace(term)
	if term == "" {
		return assets
	}
	term = strings.ToLower(term)

	out := make([]model.AssetRecord, 0, len(assets))
	for _, a := range assets {
		if strings.Contains(strings.ToLower(a.Symbol), term) ||
			strings.Contains(strings.ToLower(a.Name), term) {
			out = append(out, a)
		}
	}
	return out
}

// FilterByType keeps assets matching the stock/crypto discriminator.
// AssetTypeAll is a passthrough.
func FilterByType(assets []model.AssetRecord, kind model.AssetType) []model.AssetRecord {
	if kind == model.AssetTypeAll {
		return assets
	}
	out := make([]model.AssetRecord, 0, len(assets))
	for _, a := range assets {
		if a.Type == kind {
			out = append(out, a)
		}
	}
	return out
}

// PortfolioSummary folds a set of assets into an aggregate. TotalValue
// sums prices, TotalChange sums absolute changes, and
// TotalChangePercent is the arithmetic mean of each asset's percentage
// change. An empty input yields an all-zero summary.
func PortfolioSummary(assets []model.AssetRecord) model.Portfolio {
	if len(assets) == 0 {
		return model.Portfolio{Assets: []model.AssetRecord{}}
	}

	p := model.Portfolio{Assets: slices.Clone(assets)}
	for _, a := range assets {
		p.TotalValue += a.Price
		p.TotalChange += a.Change
		p.TotalChangePercent += a.ChangePercent
	}
	p.TotalChangePercent /= float64(len(assets))
	return p
}
