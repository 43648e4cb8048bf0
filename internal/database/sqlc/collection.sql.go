package sqldb

import (
	"context"
	"database/sql"
)

const deleteCollectionByUsername = `DELETE FROM collection_items WHERE username = ?`

func (q *Queries) DeleteCollectionByUsername(ctx context.Context, username string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteCollectionByUsername, username)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const insertCollectionItem = `INSERT INTO collection_items (
	username, game_id, subtype, own, prev_owned, for_trade, want, want_to_play, want_to_buy,
	wishlist, preordered, played, has_parts, want_parts, rating, num_plays, rank_snapshot, last_updated
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// InsertCollectionItemParams carries one membership row.
type InsertCollectionItemParams struct {
	Username     string
	GameID       int64
	Subtype      string
	Own          int64
	PrevOwned    int64
	ForTrade     int64
	Want         int64
	WantToPlay   int64
	WantToBuy    int64
	Wishlist     int64
	Preordered   int64
	Played       int64
	HasParts     int64
	WantParts    int64
	Rating       sql.NullFloat64
	NumPlays     int64
	RankSnapshot sql.NullString
	LastUpdated  sql.NullTime
}

func (q *Queries) InsertCollectionItem(ctx context.Context, arg InsertCollectionItemParams) error {
	_, err := q.db.ExecContext(ctx, insertCollectionItem,
		arg.Username, arg.GameID, arg.Subtype, arg.Own, arg.PrevOwned, arg.ForTrade, arg.Want,
		arg.WantToPlay, arg.WantToBuy, arg.Wishlist, arg.Preordered, arg.Played, arg.HasParts,
		arg.WantParts, arg.Rating, arg.NumPlays, arg.RankSnapshot, arg.LastUpdated,
	)
	return err
}

const listCollectionByUsername = `SELECT ci.username, ci.game_id, g.name, g.year_published, ci.subtype,
	ci.own, ci.prev_owned, ci.for_trade, ci.want, ci.want_to_play, ci.want_to_buy, ci.wishlist,
	ci.preordered, ci.played, ci.has_parts, ci.want_parts, ci.rating, ci.num_plays,
	ci.rank_snapshot, ci.last_updated
FROM collection_items ci
JOIN games g ON g.id = ci.game_id
WHERE ci.username = ? ORDER BY ci.game_id`

// ListCollectionByUsernameRow joins each membership row with its game's
// name and year.
type ListCollectionByUsernameRow struct {
	CollectionItem
	GameName string
	GameYear sql.NullInt64
}

func (q *Queries) ListCollectionByUsername(ctx context.Context, username string) ([]ListCollectionByUsernameRow, error) {
	rows, err := q.db.QueryContext(ctx, listCollectionByUsername, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ListCollectionByUsernameRow
	for rows.Next() {
		var item ListCollectionByUsernameRow
		if err := rows.Scan(
			&item.Username, &item.GameID, &item.GameName, &item.GameYear, &item.Subtype,
			&item.Own, &item.PrevOwned, &item.ForTrade,
			&item.Want, &item.WantToPlay, &item.WantToBuy, &item.Wishlist, &item.Preordered,
			&item.Played, &item.HasParts, &item.WantParts, &item.Rating, &item.NumPlays,
			&item.RankSnapshot, &item.LastUpdated,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}
