package syncer

import (
	"context"
	"net/url"
	"strconv"

	"github.com/geekcache/geekcache/internal/bgg"
)

// SyncGame fetches one game with statistics and replaces its cached
// record wholesale. It returns false when the upstream reports no
// matching item, which is a normal not-found outcome rather than an
// error.
func (s *Syncer) SyncGame(ctx context.Context, id int64) (bool, error) {
	params := url.Values{}
	params.Set("id", strconv.FormatInt(id, 10))
	params.Set("stats", "1")

	body, err := s.fetcher.Fetch(ctx, "thing", params)
	if err != nil {
		return false, err
	}

	items, err := bgg.ParseThings(body)
	if err != nil {
		return false, err
	}
	if len(items) == 0 {
		return false, nil
	}

	record := normalizeGame(items[0], s.now().UTC(), s.cfg.DefaultTTL)
	if err := s.games.Upsert(ctx, record); err != nil {
		return false, err
	}
	return true, nil
}
