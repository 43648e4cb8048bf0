package sqldb

import (
	"context"
	"database/sql"
)

const deleteAllHotGames = `DELETE FROM hot_games`

func (q *Queries) DeleteAllHotGames(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllHotGames)
	return err
}

const insertHotGame = `INSERT INTO hot_games (game_id, rank, name, year_published, thumbnail, last_updated)
VALUES (?, ?, ?, ?, ?, ?)`

// InsertHotGameParams carries one hot-list row.
type InsertHotGameParams struct {
	GameID        int64
	Rank          int64
	Name          string
	YearPublished sql.NullInt64
	Thumbnail     sql.NullString
	LastUpdated   sql.NullTime
}

func (q *Queries) InsertHotGame(ctx context.Context, arg InsertHotGameParams) error {
	_, err := q.db.ExecContext(ctx, insertHotGame,
		arg.GameID, arg.Rank, arg.Name, arg.YearPublished, arg.Thumbnail, arg.LastUpdated,
	)
	return err
}

const listHotGames = `SELECT game_id, rank, name, year_published, thumbnail, last_updated
FROM hot_games ORDER BY rank`

func (q *Queries) ListHotGames(ctx context.Context) ([]HotGame, error) {
	rows, err := q.db.QueryContext(ctx, listHotGames)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []HotGame
	for rows.Next() {
		var h HotGame
		if err := rows.Scan(&h.GameID, &h.Rank, &h.Name, &h.YearPublished, &h.Thumbnail, &h.LastUpdated); err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	return result, rows.Err()
}
