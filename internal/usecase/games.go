package usecase

import (
	"context"

	"github.com/geekcache/geekcache/internal/database"
)

// searchLimit caps local search results.
const searchLimit = 50

// EnsureGameFresh returns the cached game, refreshing it from upstream
// first when the record is stale or force is set. A nil record with a
// nil error means the game does not exist upstream.
func (o *Operations) EnsureGameFresh(ctx context.Context, id int64, force bool) (*database.GameRecord, error) {
	record, err := o.games.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !force && !o.policy.Stale(record) {
		return record, nil
	}

	found, err := o.syncer.SyncGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return o.games.FindByID(ctx, id)
}

// SearchGames performs a local substring match on cached game names,
// ordered by name and capped at 50 results. It never touches upstream.
func (o *Operations) SearchGames(ctx context.Context, query string) ([]database.GameRecord, error) {
	return o.games.SearchByName(ctx, query, searchLimit)
}
