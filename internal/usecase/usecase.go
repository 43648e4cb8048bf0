// Package usecase exposes the operations consumed by the MCP shell and
// the CLI, combining the freshness policy, the synchronizer, and the
// persistent store.
package usecase

import (
	"time"

	"github.com/geekcache/geekcache/internal/config"
	"github.com/geekcache/geekcache/internal/database"
	"github.com/geekcache/geekcache/internal/freshness"
	"github.com/geekcache/geekcache/internal/syncer"
)

type Operations struct {
	games       *database.GameRepository
	collections *database.CollectionRepository
	plays       *database.PlayRepository
	hot         *database.HotRepository
	policy      *freshness.Policy
	syncer      *syncer.Syncer
	cfg         config.SyncConfig
	now         func() time.Time
}

func New(dbCtx *database.Context, policy *freshness.Policy, s *syncer.Syncer, cfg config.SyncConfig) *Operations {
	return &Operations{
		games:       database.NewGameRepository(dbCtx),
		collections: database.NewCollectionRepository(dbCtx),
		plays:       database.NewPlayRepository(dbCtx),
		hot:         database.NewHotRepository(dbCtx),
		policy:      policy,
		syncer:      s,
		cfg:         cfg,
		now:         time.Now,
	}
}
