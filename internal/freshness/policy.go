// Package freshness decides whether cached records are still usable.
package freshness

import (
	"context"
	"time"

	"github.com/geekcache/geekcache/internal/database"
)

// Policy answers staleness questions for cached games. It is advisory:
// concurrent refreshes of the same key are not excluded, which is safe
// because all writes are idempotent upserts.
type Policy struct {
	games      *database.GameRepository
	defaultTTL time.Duration
	now        func() time.Time
}

func NewPolicy(games *database.GameRepository, defaultTTL time.Duration) *Policy {
	return &Policy{
		games:      games,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// NeedsRefresh reports whether the game must be fetched from upstream.
// A missing record is unconditionally stale, whatever its key.
func (p *Policy) NeedsRefresh(ctx context.Context, id int64) (bool, error) {
	record, err := p.games.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return p.Stale(record), nil
}

// Stale reports whether the record's TTL has elapsed. A nil record is
// always stale.
func (p *Policy) Stale(record *database.GameRecord) bool {
	if record == nil {
		return true
	}
	ttl := record.TTL
	if ttl <= 0 {
		ttl = p.defaultTTL
	}
	return p.now().After(record.LastUpdated.Add(ttl))
}
