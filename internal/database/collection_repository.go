package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sqldb "github.com/geekcache/geekcache/internal/database/sqlc"
)

type CollectionRepository struct {
	ctx *Context
}

func NewCollectionRepository(dbCtx *Context) *CollectionRepository {
	return &CollectionRepository{ctx: dbCtx}
}

// ReplaceForUser atomically upserts the user row and swaps the user's
// collection for the given items. Either all rows become visible or none.
func (r *CollectionRepository) ReplaceForUser(ctx context.Context, username string, items []CollectionItemRecord, at time.Time) error {
	if r.ctx == nil {
		return fmt.Errorf("collection repository: missing database context")
	}

	return r.ctx.WithTx(ctx, func(q *sqldb.Queries) error {
		if err := q.UpsertUser(ctx, sqldb.UpsertUserParams{
			Username:    username,
			LastUpdated: nullTime(at),
		}); err != nil {
			return fmt.Errorf("failed to upsert user %s: %w", username, err)
		}

		if _, err := q.DeleteCollectionByUsername(ctx, username); err != nil {
			return fmt.Errorf("failed to clear collection for %s: %w", username, err)
		}

		for _, item := range items {
			params, err := collectionItemParams(item)
			if err != nil {
				return err
			}
			if err := q.InsertCollectionItem(ctx, params); err != nil {
				return fmt.Errorf("failed to insert collection item %d for %s: %w", item.GameID, username, err)
			}
		}
		return nil
	})
}

func (r *CollectionRepository) ListByUsername(ctx context.Context, username string) ([]CollectionItemRecord, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("collection repository: missing database context")
	}

	rows, err := queries.ListCollectionByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	result := make([]CollectionItemRecord, 0, len(rows))
	for _, row := range rows {
		record, err := mapCollectionItemRow(row)
		if err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, nil
}

func (r *CollectionRepository) FindUser(ctx context.Context, username string) (*UserRecord, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("collection repository: missing database context")
	}

	row, err := queries.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &UserRecord{
		Username:    row.Username,
		LastUpdated: optionalTime(row.LastUpdated),
	}, nil
}
