// Package syncer orchestrates upstream refreshes: it fetches through the
// request queue, normalizes responses, and upserts them into the store.
package syncer

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/geekcache/geekcache/internal/config"
	"github.com/geekcache/geekcache/internal/database"
	"github.com/geekcache/geekcache/internal/freshness"
)

// Fetcher is the request queue's submit surface. Every upstream call the
// syncer makes goes through it.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error)
}

// DeferredError reports that the upstream kept deferring a request past
// the retry budget. Unlike an upstream failure, the caller may safely
// retry the whole operation later.
type DeferredError struct {
	Endpoint string
	Attempts int
}

func (e *DeferredError) Error() string {
	return fmt.Sprintf("upstream deferred %s request past %d attempts; retry later", e.Endpoint, e.Attempts)
}

// Syncer holds no authoritative state of its own; everything durable
// lives in the repositories it writes through.
type Syncer struct {
	fetcher     Fetcher
	games       *database.GameRepository
	collections *database.CollectionRepository
	plays       *database.PlayRepository
	hot         *database.HotRepository
	policy      *freshness.Policy
	cfg         config.SyncConfig
	logger      *slog.Logger
	now         func() time.Time
}

func New(
	fetcher Fetcher,
	dbCtx *database.Context,
	policy *freshness.Policy,
	cfg config.SyncConfig,
	logger *slog.Logger,
) *Syncer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Syncer{
		fetcher:     fetcher,
		games:       database.NewGameRepository(dbCtx),
		collections: database.NewCollectionRepository(dbCtx),
		plays:       database.NewPlayRepository(dbCtx),
		hot:         database.NewHotRepository(dbCtx),
		policy:      policy,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

// cascadeGames refreshes every stale game in ids, pacing the dependent
// fetches so one parent sync cannot burst the queue. Failures here never
// abort the parent operation; they are logged and skipped.
func (s *Syncer) cascadeGames(ctx context.Context, ids []int64) {
	for _, id := range ids {
		stale, err := s.policy.NeedsRefresh(ctx, id)
		if err != nil {
			s.logger.Warn("cascade freshness check failed", "game", id, "error", err)
			continue
		}
		if !stale {
			continue
		}

		if !sleepCtx(ctx, s.cfg.CascadeDelay) {
			return
		}
		if _, err := s.SyncGame(ctx, id); err != nil {
			s.logger.Warn("cascade game refresh failed", "game", id, "error", err)
		}
	}
}

func distinctGameIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
