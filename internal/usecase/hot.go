package usecase

import (
	"context"

	"github.com/geekcache/geekcache/internal/database"
)

// GetOrSyncHotList returns the cached hot-list snapshot, fetching it
// when the cache holds none or force is set. The snapshot carries no
// per-entry TTL; a refresh always replaces it as a whole.
func (o *Operations) GetOrSyncHotList(ctx context.Context, force bool) ([]database.HotGameRecord, error) {
	entries, err := o.hot.List(ctx)
	if err != nil {
		return nil, err
	}
	if !force && len(entries) > 0 {
		return entries, nil
	}
	return o.syncer.SyncHotList(ctx)
}
