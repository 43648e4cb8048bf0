package syncer

import (
	"context"
	"net/url"

	"github.com/geekcache/geekcache/internal/bgg"
	"github.com/geekcache/geekcache/internal/database"
)

// SyncHotList fetches the current hot list and atomically replaces the
// stored snapshot, then cascades a refresh for every listed game.
func (s *Syncer) SyncHotList(ctx context.Context) ([]database.HotGameRecord, error) {
	params := url.Values{}
	params.Set("type", "boardgame")

	body, err := s.fetcher.Fetch(ctx, "hot", params)
	if err != nil {
		return nil, err
	}

	items, err := bgg.ParseHotList(body)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	entries := make([]database.HotGameRecord, 0, len(items))
	var ids []int64
	for _, item := range items {
		entries = append(entries, normalizeHotItem(item, now))
		ids = append(ids, item.ID)
	}

	if err := s.hot.ReplaceSnapshot(ctx, entries); err != nil {
		return nil, err
	}

	s.cascadeGames(ctx, distinctGameIDs(ids))
	return entries, nil
}
