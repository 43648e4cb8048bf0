package database

import (
	"context"
	"fmt"
	"time"

	sqldb "github.com/geekcache/geekcache/internal/database/sqlc"
)

// RequestLogRepository is the request queue's sliding-window ledger. It is
// append-only; entries older than the widest window may be pruned but
// correctness does not depend on it.
type RequestLogRepository struct {
	ctx *Context
}

func NewRequestLogRepository(dbCtx *Context) *RequestLogRepository {
	return &RequestLogRepository{ctx: dbCtx}
}

func (r *RequestLogRepository) Append(ctx context.Context, endpoint string, at time.Time) error {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return fmt.Errorf("request log repository: missing database context")
	}

	return queries.InsertRequestLog(ctx, sqldb.InsertRequestLogParams{
		Endpoint:    endpoint,
		RequestedAt: nullTime(at),
	})
}

func (r *RequestLogRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, fmt.Errorf("request log repository: missing database context")
	}

	return queries.CountRequestsSince(ctx, since)
}

func (r *RequestLogRepository) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, fmt.Errorf("request log repository: missing database context")
	}

	return queries.PruneRequestLogBefore(ctx, cutoff)
}
