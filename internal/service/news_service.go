package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/marketdash/market-dashboard-backend/internal/model"
	"github.com/marketdash/market-dashboard-backend/internal/newsapi"
)

const (
	newsQuery    = "finance OR stock OR cryptocurrency"
	newsPageSize = 10
)

// NewsService fetches the financial news feed. News is supplementary:
// it never surfaces an error, degrading to a built-in static feed when
// the provider is unconfigured or failing.
type NewsService struct {
	client newsapi.Client
	log    zerolog.Logger
}

// NewNewsService creates a new NewsService.
func NewNewsService(client newsapi.Client, log zerolog.Logger) *NewsService {
	return &NewsService{
		client: client,
		log:    log.With().Str("component", "news").Logger(),
	}
}

// FetchNews returns the latest financial headlines, most recent first.
// Any provider failure falls back to the static feed.
func (s *NewsService) FetchNews(ctx context.Context) []model.NewsItem {
	resp, err := s.client.Everything(ctx, newsQuery, newsPageSize)
	if err != nil {
		s.log.Warn().Err(err).Msg("news fetch failed, serving fallback feed")
		return FallbackNews(time.Now())
	}

	items := make([]model.NewsItem, len(resp.Articles))
	for i, a := range resp.Articles {
		items[i] = model.NewsItem{
			ID:          uuid.NewString(),
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
			ImageURL:    a.URLToImage,
		}
	}
	return items
}

// FallbackNews is the fixed three-item feed served when the news
// provider is unavailable. The "#" URL marks the items as linkless so
// the frontend suppresses the read-more affordance.
func FallbackNews(now time.Time) []model.NewsItem {
	return []model.NewsItem{
		{
			ID:          "mock-1",
			Title:       "Stock Market Reaches New Heights Amid Economic Recovery",
			Description: "Major indices continue their upward trajectory as investors remain optimistic about economic growth.",
			URL:         "#",
			Source:      "Financial Times",
			PublishedAt: now.Format(time.RFC3339),
		},
		{
			ID:          "mock-2",
			Title:       "Cryptocurrency Market Shows Strong Performance",
			Description: "Bitcoin and other major cryptocurrencies see significant gains as institutional adoption increases.",
			URL:         "#",
			Source:      "CoinDesk",
			PublishedAt: now.Add(-time.Hour).Format(time.RFC3339),
		},
		{
			ID:          "mock-3",
			Title:       "Tech Stocks Lead Market Rally",
			Description: "Technology companies report strong earnings, driving market sentiment higher.",
			URL:         "#",
			Source:      "Bloomberg",
			PublishedAt: now.Add(-2 * time.Hour).Format(time.RFC3339),
		},
	}
}
