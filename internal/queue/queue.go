// Package queue serializes all upstream fetches through a single
// rate-limited dispatcher.
package queue

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/geekcache/geekcache/internal/config"
)

// Transport performs one upstream fetch. The queue treats it as opaque
// and propagates its errors verbatim.
type Transport interface {
	Fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error)
}

// Ledger is the persistent sliding-window record of dispatched requests.
type Ledger interface {
	Append(ctx context.Context, endpoint string, at time.Time) error
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

type result struct {
	body []byte
	err  error
}

type job struct {
	endpoint string
	params   url.Values
	done     chan result
}

// Queue is the single serialization point for upstream I/O. One
// dispatcher drains jobs in FIFO order; a throttled job keeps its place
// at the head until the window has room.
type Queue struct {
	transport Transport
	ledger    Ledger
	cfg       config.QueueConfig
	limiter   *rate.Limiter
	jobs      chan *job
	startOnce sync.Once
	now       func() time.Time
}

func New(transport Transport, ledger Ledger, cfg config.QueueConfig) *Queue {
	spacing := rate.Inf
	if cfg.RequestSpacing > 0 {
		spacing = rate.Every(cfg.RequestSpacing)
	}
	return &Queue{
		transport: transport,
		ledger:    ledger,
		cfg:       cfg,
		limiter:   rate.NewLimiter(spacing, 1),
		jobs:      make(chan *job, 128),
		now:       time.Now,
	}
}

// Start launches the dispatcher. Calling it again is a no-op; there is
// never more than one dispatcher.
func (q *Queue) Start(ctx context.Context) {
	q.startOnce.Do(func() {
		go q.dispatch(ctx)
	})
}

// Fetch submits a job and suspends until it has been dispatched and
// completed. Safe for any number of concurrent callers. If the caller's
// context expires while the job is in flight, the job still completes
// and its result is discarded.
func (q *Queue) Fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	j := &job{endpoint: endpoint, params: params, done: make(chan result, 1)}

	select {
	case q.jobs <- j:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-j.done:
		return res.body, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (q *Queue) dispatch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-q.jobs:
			q.run(ctx, j)
		}
	}
}

// run resolves exactly one job. The result channel is buffered, so the
// send never blocks even when the submitter has gone away.
func (q *Queue) run(ctx context.Context, j *job) {
	// Minimum spacing between dispatches, independent of the window.
	if err := q.limiter.Wait(ctx); err != nil {
		j.done <- result{err: err}
		return
	}

	// Hold the job at the head while the trailing window is saturated.
	for {
		count, err := q.ledger.CountSince(ctx, q.now().Add(-q.cfg.Window))
		if err != nil {
			j.done <- result{err: fmt.Errorf("request ledger read failed: %w", err)}
			return
		}
		if count < int64(q.cfg.MaxPerWindow) {
			break
		}
		if !sleepCtx(ctx, q.cfg.ThrottleBackoff) {
			j.done <- result{err: ctx.Err()}
			return
		}
	}

	// The attempt is logged before the call completes so that a failed
	// call still counts against the limit.
	if err := q.ledger.Append(ctx, j.endpoint, q.now()); err != nil {
		j.done <- result{err: fmt.Errorf("request ledger append failed: %w", err)}
		return
	}

	body, err := q.transport.Fetch(ctx, j.endpoint, j.params)
	j.done <- result{body: body, err: err}
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
