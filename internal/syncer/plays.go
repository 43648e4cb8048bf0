package syncer

import (
	"context"
	"net/url"

	"github.com/geekcache/geekcache/internal/bgg"
	"github.com/geekcache/geekcache/internal/database"
)

// SyncPlays fetches a user's play log, truncates it to maxPlays, upserts
// the records keyed by play identity, and cascades a refresh for every
// distinct game they reference.
func (s *Syncer) SyncPlays(ctx context.Context, username string, maxPlays int) ([]database.PlayRecord, error) {
	params := url.Values{}
	params.Set("username", username)

	body, err := s.fetcher.Fetch(ctx, "plays", params)
	if err != nil {
		return nil, err
	}

	parsed, err := bgg.ParsePlays(body)
	if err != nil {
		return nil, err
	}

	plays := parsed.Items
	if maxPlays > 0 && len(plays) > maxPlays {
		plays = plays[:maxPlays]
	}

	now := s.now().UTC()
	records := make([]database.PlayRecord, 0, len(plays))
	var ids []int64
	for _, play := range plays {
		records = append(records, normalizePlay(username, play, now))
		ids = append(ids, play.Item.ObjectID)
	}

	if err := s.plays.UpsertAll(ctx, records); err != nil {
		return nil, err
	}

	s.cascadeGames(ctx, distinctGameIDs(ids))
	return records, nil
}
