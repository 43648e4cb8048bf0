package sqldb

import (
	"context"
	"database/sql"
)

const findUserByUsername = `SELECT username, last_updated FROM users WHERE username = ?`

func (q *Queries) FindUserByUsername(ctx context.Context, username string) (User, error) {
	row := q.db.QueryRowContext(ctx, findUserByUsername, username)
	var u User
	err := row.Scan(&u.Username, &u.LastUpdated)
	return u, err
}

const upsertUser = `INSERT INTO users (username, last_updated) VALUES (?, ?)
ON CONFLICT(username) DO UPDATE SET last_updated = excluded.last_updated`

// UpsertUserParams holds the row for an insert-or-replace of a user.
type UpsertUserParams struct {
	Username    string
	LastUpdated sql.NullTime
}

func (q *Queries) UpsertUser(ctx context.Context, arg UpsertUserParams) error {
	_, err := q.db.ExecContext(ctx, upsertUser, arg.Username, arg.LastUpdated)
	return err
}
