package database

import (
	"context"
	"fmt"

	sqldb "github.com/geekcache/geekcache/internal/database/sqlc"
)

type HotRepository struct {
	ctx *Context
}

func NewHotRepository(dbCtx *Context) *HotRepository {
	return &HotRepository{ctx: dbCtx}
}

// ReplaceSnapshot swaps the entire hot-list for the given entries in one
// transaction. Entries absent from the new snapshot are deleted, not kept.
func (r *HotRepository) ReplaceSnapshot(ctx context.Context, entries []HotGameRecord) error {
	if r.ctx == nil {
		return fmt.Errorf("hot repository: missing database context")
	}

	return r.ctx.WithTx(ctx, func(q *sqldb.Queries) error {
		if err := q.DeleteAllHotGames(ctx); err != nil {
			return fmt.Errorf("failed to clear hot list: %w", err)
		}
		for _, entry := range entries {
			if err := q.InsertHotGame(ctx, hotGameParams(entry)); err != nil {
				return fmt.Errorf("failed to insert hot game %d: %w", entry.GameID, err)
			}
		}
		return nil
	})
}

func (r *HotRepository) List(ctx context.Context) ([]HotGameRecord, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("hot repository: missing database context")
	}

	rows, err := queries.ListHotGames(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]HotGameRecord, 0, len(rows))
	for _, row := range rows {
		result = append(result, mapHotGameRow(row))
	}
	return result, nil
}
