package database

import (
	"context"
	"fmt"

	sqldb "github.com/geekcache/geekcache/internal/database/sqlc"
)

type PlayRepository struct {
	ctx *Context
}

func NewPlayRepository(dbCtx *Context) *PlayRepository {
	return &PlayRepository{ctx: dbCtx}
}

// UpsertAll writes the given plays in one transaction. Upserts are keyed
// by the upstream play id, so re-syncing the same plays is a no-op.
func (r *PlayRepository) UpsertAll(ctx context.Context, plays []PlayRecord) error {
	if r.ctx == nil {
		return fmt.Errorf("play repository: missing database context")
	}

	return r.ctx.WithTx(ctx, func(q *sqldb.Queries) error {
		for _, play := range plays {
			params, err := playParams(play)
			if err != nil {
				return err
			}
			if err := q.UpsertPlay(ctx, params); err != nil {
				return fmt.Errorf("failed to upsert play %d: %w", play.ID, err)
			}
		}
		return nil
	})
}

func (r *PlayRepository) ListByUsername(ctx context.Context, username string, limit int64) ([]PlayRecord, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("play repository: missing database context")
	}

	rows, err := queries.ListPlaysByUsername(ctx, sqldb.ListPlaysByUsernameParams{
		Username: username,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	result := make([]PlayRecord, 0, len(rows))
	for _, row := range rows {
		record, err := mapPlayRow(row)
		if err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, nil
}
