package usecase

import (
	"context"

	"github.com/geekcache/geekcache/internal/database"
)

const (
	defaultPlaysRead = 10
	defaultPlaysSync = 100
)

// GetOrSyncPlays returns a user's most recent plays. The stored log is
// served directly unless it is empty or force is set; a sync fetches up
// to the caller's maximum, defaulting to 100 for a sync and 10 for a
// plain read.
func (o *Operations) GetOrSyncPlays(ctx context.Context, username string, maxPlays int, force bool) ([]database.PlayRecord, error) {
	readMax := maxPlays
	if readMax <= 0 {
		readMax = defaultPlaysRead
	}

	stored, err := o.plays.ListByUsername(ctx, username, int64(readMax))
	if err != nil {
		return nil, err
	}
	if !force && len(stored) > 0 {
		return stored, nil
	}

	syncMax := maxPlays
	if syncMax <= 0 {
		syncMax = defaultPlaysSync
	}
	if _, err := o.syncer.SyncPlays(ctx, username, syncMax); err != nil {
		return nil, err
	}

	return o.plays.ListByUsername(ctx, username, int64(readMax))
}
