package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/geekcache/geekcache/internal/bgg"
	"github.com/geekcache/geekcache/internal/config"
	"github.com/geekcache/geekcache/internal/database"
	"github.com/geekcache/geekcache/internal/freshness"
	"github.com/geekcache/geekcache/internal/queue"
	"github.com/geekcache/geekcache/internal/syncer"
	"github.com/geekcache/geekcache/internal/usecase"
)

// app wires the full stack for one command invocation. Stdout stays
// reserved for command output; diagnostics go to stderr.
type app struct {
	cfg    *config.Config
	dbCtx  *database.Context
	ops    *usecase.Operations
	cancel context.CancelFunc
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dbCtx, err := database.CreateDatabase("")
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ledger := database.NewRequestLogRepository(dbCtx)
	// Entries older than the sliding window no longer affect throttling.
	if _, err := ledger.PruneBefore(ctx, time.Now().Add(-cfg.Queue.Window)); err != nil {
		logger.Warn("request ledger prune failed", "error", err)
	}

	client := bgg.NewClient(cfg.Upstream)
	q := queue.New(client, ledger, cfg.Queue)

	queueCtx, cancel := context.WithCancel(context.Background())
	q.Start(queueCtx)

	policy := freshness.NewPolicy(database.NewGameRepository(dbCtx), cfg.Sync.DefaultTTL)
	s := syncer.New(q, dbCtx, policy, cfg.Sync, logger)

	return &app{
		cfg:    cfg,
		dbCtx:  dbCtx,
		ops:    usecase.New(dbCtx, policy, s, cfg.Sync),
		cancel: cancel,
	}, nil
}

func (a *app) Close() {
	a.cancel()
	_ = database.CloseDatabase(a.dbCtx)
}
