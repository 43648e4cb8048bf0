package syncer

import (
	"context"
	"net/url"

	"github.com/geekcache/geekcache/internal/bgg"
	"github.com/geekcache/geekcache/internal/database"
)

// SyncCollection refreshes a user's collection through the two typed
// sub-fetches (base games, then expansions), merges them, and replaces
// the stored rows wholesale. Games the collection references but the
// cache has never seen are seeded from the collection payload before the
// memberships become visible; stale ones are then refreshed through the
// cascade.
func (s *Syncer) SyncCollection(ctx context.Context, username string) ([]database.CollectionItemRecord, error) {
	base, err := s.fetchCollection(ctx, username, false)
	if err != nil {
		return nil, err
	}
	expansions, err := s.fetchCollection(ctx, username, true)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	merged := append(append([]bgg.CollectionItem{}, base.Items...), expansions.Items...)

	items := make([]database.CollectionItemRecord, 0, len(merged))
	var ids []int64
	for _, item := range merged {
		items = append(items, normalizeCollectionItem(username, item, now))
		ids = append(ids, item.ObjectID)
	}

	if err := s.seedMissingGames(ctx, merged); err != nil {
		return nil, err
	}

	if err := s.collections.ReplaceForUser(ctx, username, items, now); err != nil {
		return nil, err
	}

	s.cascadeGames(ctx, distinctGameIDs(ids))
	return items, nil
}

func (s *Syncer) fetchCollection(ctx context.Context, username string, expansions bool) (*bgg.Collection, error) {
	params := url.Values{}
	params.Set("username", username)
	params.Set("stats", "1")
	if expansions {
		params.Set("subtype", "boardgameexpansion")
	} else {
		params.Set("excludesubtype", "boardgameexpansion")
	}

	var collection *bgg.Collection
	err := s.fetchDeferred(ctx, "collection", params, func(body []byte) error {
		parsed, err := bgg.ParseCollection(body)
		if err != nil {
			return err
		}
		collection = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return collection, nil
}

// seedMissingGames upserts a stub game row for every collection item
// whose game the cache has never seen, so no membership row ever
// references a missing game. Stubs carry a zero last_updated and are
// picked up as stale by the cascade.
func (s *Syncer) seedMissingGames(ctx context.Context, items []bgg.CollectionItem) error {
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ObjectID]; ok {
			continue
		}
		seen[item.ObjectID] = struct{}{}

		existing, err := s.games.FindByID(ctx, item.ObjectID)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := s.games.Upsert(ctx, stubGame(item, s.cfg.DefaultTTL)); err != nil {
			return err
		}
	}
	return nil
}
