package sqldb

import (
	"context"
	"database/sql"
)

const findGameByID = `SELECT id, name, year_published, min_players, max_players, playing_time, min_age,
	description, thumbnail, image, categories, mechanics, designers, artists, publishers, stats,
	last_updated, ttl_seconds
FROM games WHERE id = ?`

func (q *Queries) FindGameByID(ctx context.Context, id int64) (Game, error) {
	row := q.db.QueryRowContext(ctx, findGameByID, id)
	var g Game
	err := scanGame(row.Scan, &g)
	return g, err
}

const upsertGame = `INSERT INTO games (
	id, name, year_published, min_players, max_players, playing_time, min_age,
	description, thumbnail, image, categories, mechanics, designers, artists, publishers, stats,
	last_updated, ttl_seconds
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name = excluded.name,
	year_published = excluded.year_published,
	min_players = excluded.min_players,
	max_players = excluded.max_players,
	playing_time = excluded.playing_time,
	min_age = excluded.min_age,
	description = excluded.description,
	thumbnail = excluded.thumbnail,
	image = excluded.image,
	categories = excluded.categories,
	mechanics = excluded.mechanics,
	designers = excluded.designers,
	artists = excluded.artists,
	publishers = excluded.publishers,
	stats = excluded.stats,
	last_updated = excluded.last_updated,
	ttl_seconds = excluded.ttl_seconds`

// UpsertGameParams carries the full row for an insert-or-replace of a game.
type UpsertGameParams struct {
	ID            int64
	Name          string
	YearPublished sql.NullInt64
	MinPlayers    sql.NullInt64
	MaxPlayers    sql.NullInt64
	PlayingTime   sql.NullInt64
	MinAge        sql.NullInt64
	Description   sql.NullString
	Thumbnail     sql.NullString
	Image         sql.NullString
	Categories    string
	Mechanics     string
	Designers     string
	Artists       string
	Publishers    string
	Stats         sql.NullString
	LastUpdated   sql.NullTime
	TTLSeconds    int64
}

func (q *Queries) UpsertGame(ctx context.Context, arg UpsertGameParams) error {
	_, err := q.db.ExecContext(ctx, upsertGame,
		arg.ID, arg.Name, arg.YearPublished, arg.MinPlayers, arg.MaxPlayers, arg.PlayingTime, arg.MinAge,
		arg.Description, arg.Thumbnail, arg.Image, arg.Categories, arg.Mechanics, arg.Designers,
		arg.Artists, arg.Publishers, arg.Stats, arg.LastUpdated, arg.TTLSeconds,
	)
	return err
}

const searchGamesByName = `SELECT id, name, year_published, min_players, max_players, playing_time, min_age,
	description, thumbnail, image, categories, mechanics, designers, artists, publishers, stats,
	last_updated, ttl_seconds
FROM games WHERE name LIKE ? ESCAPE '\' ORDER BY name LIMIT ?`

// SearchGamesByNameParams holds the LIKE pattern and result cap for a search.
type SearchGamesByNameParams struct {
	Pattern string
	Limit   int64
}

func (q *Queries) SearchGamesByName(ctx context.Context, arg SearchGamesByNameParams) ([]Game, error) {
	rows, err := q.db.QueryContext(ctx, searchGamesByName, arg.Pattern, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Game
	for rows.Next() {
		var g Game
		if err := scanGame(rows.Scan, &g); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	return result, rows.Err()
}

const listGames = `SELECT id, name, year_published, min_players, max_players, playing_time, min_age,
	description, thumbnail, image, categories, mechanics, designers, artists, publishers, stats,
	last_updated, ttl_seconds
FROM games ORDER BY id`

func (q *Queries) ListGames(ctx context.Context) ([]Game, error) {
	rows, err := q.db.QueryContext(ctx, listGames)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Game
	for rows.Next() {
		var g Game
		if err := scanGame(rows.Scan, &g); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	return result, rows.Err()
}

func scanGame(scan func(dest ...any) error, g *Game) error {
	return scan(
		&g.ID, &g.Name, &g.YearPublished, &g.MinPlayers, &g.MaxPlayers, &g.PlayingTime, &g.MinAge,
		&g.Description, &g.Thumbnail, &g.Image, &g.Categories, &g.Mechanics, &g.Designers,
		&g.Artists, &g.Publishers, &g.Stats, &g.LastUpdated, &g.TTLSeconds,
	)
}
