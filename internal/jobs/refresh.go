package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/marketdash/market-dashboard-backend/internal/service"
	"github.com/marketdash/market-dashboard-backend/internal/store"
)

// refreshTimeout bounds one full refresh pass.
const refreshTimeout = 2 * time.Minute

// RefreshJob re-fetches every asset currently in the working set plus
// the news feed. Background refresh is supplementary, like search:
// per-asset failures are logged and skipped and the job never touches
// the dashboard's user-visible error.
type RefreshJob struct {
	assets *service.AssetService
	news   *service.NewsService
	store  *store.Dashboard
	log    zerolog.Logger
}

// NewRefreshJob creates a new RefreshJob.
func NewRefreshJob(assets *service.AssetService, news *service.NewsService, dashboard *store.Dashboard, log zerolog.Logger) *RefreshJob {
	return &RefreshJob{
		assets: assets,
		news:   news,
		store:  dashboard,
		log:    log.With().Str("job", "refresh").Logger(),
	}
}

// Name implements Job.
func (j *RefreshJob) Name() string { return "refresh" }

// Run implements Job. Each refreshed record upserts independently as it
// arrives; a record whose re-fetch fails keeps its previous snapshot.
func (j *RefreshJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	refreshed := 0
	for _, rec := range j.store.Assets() {
		updated, err := j.assets.Refresh(ctx, rec)
		if err != nil {
			j.log.Warn().Err(err).Str("symbol", rec.Symbol).Msg("refresh failed, keeping previous snapshot")
			continue
		}
		j.store.UpsertAsset(updated)
		refreshed++
	}

	j.store.SetNews(j.news.FetchNews(ctx))

	j.log.Debug().Int("refreshed", refreshed).Msg("refresh pass complete")
	return nil
}
