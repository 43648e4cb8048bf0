package usecase

import (
	"context"
	"errors"

	"github.com/geekcache/geekcache/internal/database"
	"github.com/geekcache/geekcache/internal/syncer"
)

// CollectionStatus tells the caller how a collection request ended.
// Queued means the upstream kept deferring past the retry budget; the
// caller may poll again later.
type CollectionStatus string

const (
	CollectionSuccess CollectionStatus = "success"
	CollectionQueued  CollectionStatus = "queued"
)

// CollectionFilters narrows a stored collection by status flags. Nil
// fields do not filter.
type CollectionFilters struct {
	Own        *bool
	PrevOwned  *bool
	ForTrade   *bool
	Want       *bool
	WantToPlay *bool
	WantToBuy  *bool
	Wishlist   *bool
	Preordered *bool
	Played     *bool
}

func (f CollectionFilters) matches(item database.CollectionItemRecord) bool {
	checks := []struct {
		filter *bool
		value  bool
	}{
		{f.Own, item.Status.Own},
		{f.PrevOwned, item.Status.PrevOwned},
		{f.ForTrade, item.Status.ForTrade},
		{f.Want, item.Status.Want},
		{f.WantToPlay, item.Status.WantToPlay},
		{f.WantToBuy, item.Status.WantToBuy},
		{f.Wishlist, item.Status.Wishlist},
		{f.Preordered, item.Status.Preordered},
		{f.Played, item.Status.Played},
	}
	for _, check := range checks {
		if check.filter != nil && *check.filter != check.value {
			return false
		}
	}
	return true
}

// CollectionResult is the outcome of a collection request.
type CollectionResult struct {
	Status CollectionStatus
	Items  []database.CollectionItemRecord
}

// GetOrSyncCollection returns a user's collection, refreshing it from
// upstream when it is stale, absent, or force is set. A deferred budget
// exhaustion yields a queued result instead of an error.
func (o *Operations) GetOrSyncCollection(ctx context.Context, username string, filters CollectionFilters, force bool) (*CollectionResult, error) {
	user, err := o.collections.FindUser(ctx, username)
	if err != nil {
		return nil, err
	}

	stale := user == nil || o.now().After(user.LastUpdated.Add(o.cfg.DefaultTTL))
	if force || stale {
		if _, err := o.syncer.SyncCollection(ctx, username); err != nil {
			var deferred *syncer.DeferredError
			if errors.As(err, &deferred) {
				return &CollectionResult{Status: CollectionQueued}, nil
			}
			return nil, err
		}
	}

	items, err := o.collections.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	filtered := make([]database.CollectionItemRecord, 0, len(items))
	for _, item := range items {
		if filters.matches(item) {
			filtered = append(filtered, item)
		}
	}

	return &CollectionResult{Status: CollectionSuccess, Items: filtered}, nil
}
