package sqldb

import (
	"context"
	"database/sql"
)

const upsertPlay = `INSERT INTO plays (id, username, game_id, played_at, quantity, comment, players, last_updated)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	username = excluded.username,
	game_id = excluded.game_id,
	played_at = excluded.played_at,
	quantity = excluded.quantity,
	comment = excluded.comment,
	players = excluded.players,
	last_updated = excluded.last_updated`

// UpsertPlayParams carries the full row for an insert-or-replace of a play.
type UpsertPlayParams struct {
	ID          int64
	Username    string
	GameID      int64
	PlayedAt    string
	Quantity    int64
	Comment     sql.NullString
	Players     string
	LastUpdated sql.NullTime
}

func (q *Queries) UpsertPlay(ctx context.Context, arg UpsertPlayParams) error {
	_, err := q.db.ExecContext(ctx, upsertPlay,
		arg.ID, arg.Username, arg.GameID, arg.PlayedAt, arg.Quantity, arg.Comment, arg.Players, arg.LastUpdated,
	)
	return err
}

const listPlaysByUsername = `SELECT p.id, p.username, p.game_id, g.name, p.played_at, p.quantity, p.comment, p.players, p.last_updated
FROM plays p
JOIN games g ON g.id = p.game_id
WHERE p.username = ? ORDER BY p.played_at DESC, p.id DESC LIMIT ?`

// ListPlaysByUsernameParams holds the owner and result cap for a play listing.
type ListPlaysByUsernameParams struct {
	Username string
	Limit    int64
}

// ListPlaysByUsernameRow joins each play with its game's name.
type ListPlaysByUsernameRow struct {
	Play
	GameName string
}

func (q *Queries) ListPlaysByUsername(ctx context.Context, arg ListPlaysByUsernameParams) ([]ListPlaysByUsernameRow, error) {
	rows, err := q.db.QueryContext(ctx, listPlaysByUsername, arg.Username, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ListPlaysByUsernameRow
	for rows.Next() {
		var p ListPlaysByUsernameRow
		if err := rows.Scan(&p.ID, &p.Username, &p.GameID, &p.GameName, &p.PlayedAt, &p.Quantity, &p.Comment, &p.Players, &p.LastUpdated); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
