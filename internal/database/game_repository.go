package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sqldb "github.com/geekcache/geekcache/internal/database/sqlc"
)

type GameRepository struct {
	ctx *Context
}

func NewGameRepository(dbCtx *Context) *GameRepository {
	return &GameRepository{ctx: dbCtx}
}

func (r *GameRepository) FindByID(ctx context.Context, id int64) (*GameRecord, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("game repository: missing database context")
	}

	row, err := queries.FindGameByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	record, err := mapGameRow(row)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Upsert replaces the full game row. Partial updates are not supported;
// the caller always provides a complete record.
func (r *GameRepository) Upsert(ctx context.Context, record GameRecord) error {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return fmt.Errorf("game repository: missing database context")
	}

	params, err := gameParams(record)
	if err != nil {
		return err
	}
	return queries.UpsertGame(ctx, params)
}

// SearchByName returns games whose name contains the query, ordered by
// name and capped at limit. Matching is case-insensitive per SQLite's
// LIKE semantics.
func (r *GameRepository) SearchByName(ctx context.Context, query string, limit int64) ([]GameRecord, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("game repository: missing database context")
	}

	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(query)
	rows, err := queries.SearchGamesByName(ctx, sqldb.SearchGamesByNameParams{
		Pattern: "%" + escaped + "%",
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}

	result := make([]GameRecord, 0, len(rows))
	for _, row := range rows {
		record, err := mapGameRow(row)
		if err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, nil
}

func (r *GameRepository) ListAll(ctx context.Context) ([]GameRecord, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("game repository: missing database context")
	}

	rows, err := queries.ListGames(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]GameRecord, 0, len(rows))
	for _, row := range rows {
		record, err := mapGameRow(row)
		if err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, nil
}
