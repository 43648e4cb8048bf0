package sqldb

import "database/sql"

// Game mirrors a row of the games table.
type Game struct {
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

// User mirrors a row of the users table.
type User struct {
	Username    string
	LastUpdated sql.NullTime
}

// CollectionItem mirrors a row of the collection_items table.
type CollectionItem struct {
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

// Play mirrors a row of the plays table.
type Play struct {
	ID          int64
	Username    string
	GameID      int64
	PlayedAt    string
	Quantity    int64
	Comment     sql.NullString
	Players     string
	LastUpdated sql.NullTime
}

// HotGame mirrors a row of the hot_games table.
type HotGame struct {
	GameID        int64
	Rank          int64
	Name          string
	YearPublished sql.NullInt64
	Thumbnail     sql.NullString
	LastUpdated   sql.NullTime
}

// RequestLog mirrors a row of the request_log table.
type RequestLog struct {
	ID          int64
	Endpoint    string
	RequestedAt sql.NullTime
}
