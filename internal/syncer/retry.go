package syncer

import (
	"context"
	"errors"
	"net/url"

	"github.com/geekcache/geekcache/internal/bgg"
)

// fetchDeferred runs one sub-fetch that may come back as "accepted, try
// later". The parse callback decides whether the body is data or the
// deferred shape; on deferral the fetch is retried up to the configured
// budget with a fixed delay in between. Exhausting the budget yields a
// DeferredError, which callers can tell apart from an upstream failure.
func (s *Syncer) fetchDeferred(ctx context.Context, endpoint string, params url.Values, parse func([]byte) error) error {
	attempts := s.cfg.DeferredAttempts
	if attempts <= 0 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		body, err := s.fetcher.Fetch(ctx, endpoint, params)
		if err != nil {
			return err
		}

		err = parse(body)
		if !errors.Is(err, bgg.ErrDeferred) {
			return err
		}

		if attempt < attempts {
			if !sleepCtx(ctx, s.cfg.DeferredDelay) {
				return ctx.Err()
			}
		}
	}

	return &DeferredError{Endpoint: endpoint, Attempts: attempts}
}
