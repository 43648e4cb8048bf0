package sqldb

import (
	"context"
	"database/sql"
	"time"
)

const insertRequestLog = `INSERT INTO request_log (endpoint, requested_at) VALUES (?, ?)`

// InsertRequestLogParams records one dispatched upstream request.
type InsertRequestLogParams struct {
	Endpoint    string
	RequestedAt sql.NullTime
}

func (q *Queries) InsertRequestLog(ctx context.Context, arg InsertRequestLogParams) error {
	_, err := q.db.ExecContext(ctx, insertRequestLog, arg.Endpoint, arg.RequestedAt)
	return err
}

const countRequestsSince = `SELECT COUNT(*) FROM request_log WHERE requested_at > ?`

func (q *Queries) CountRequestsSince(ctx context.Context, since time.Time) (int64, error) {
	row := q.db.QueryRowContext(ctx, countRequestsSince, since)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const pruneRequestLogBefore = `DELETE FROM request_log WHERE requested_at < ?`

func (q *Queries) PruneRequestLogBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, pruneRequestLogBefore, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
