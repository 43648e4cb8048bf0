package database

import "time"

// GameRecord represents a row in the games table. A game is replaced
// wholesale on every sync; individual fields are never patched.
type GameRecord struct {
	ID            int64
	Name          string
	YearPublished int64
	MinPlayers    int64
	MaxPlayers    int64
	PlayingTime   int64
	MinAge        int64
	Description   string
	Thumbnail     string
	Image         string
	Categories    []string
	Mechanics     []string
	Designers     []string
	Artists       []string
	Publishers    []string
	Stats         *GameStats
	LastUpdated   time.Time
	TTL           time.Duration
}

// GameStats holds the optional ratings block attached to a game.
type GameStats struct {
	Average      float64     `json:"average"`
	BayesAverage float64     `json:"bayesAverage"`
	UsersRated   int64       `json:"usersRated"`
	Ranks        []RankEntry `json:"ranks,omitempty"`
}

// RankEntry is one named rank inside a stats block or a collection item's
// rank snapshot. Value 0 means unranked.
type RankEntry struct {
	Type         string `json:"type"`
	Name         string `json:"name"`
	FriendlyName string `json:"friendlyName"`
	Value        int64  `json:"value"`
}

// UserRecord represents a row in the users table.
type UserRecord struct {
	Username    string
	LastUpdated time.Time
}

// CollectionStatus holds the ownership and engagement flags of a
// collection item.
type CollectionStatus struct {
	Own        bool
	PrevOwned  bool
	ForTrade   bool
	Want       bool
	WantToPlay bool
	WantToBuy  bool
	Wishlist   bool
	Preordered bool
	Played     bool
	HasParts   bool
	WantParts  bool
}

// CollectionItemRecord represents a row in the collection_items table,
// keyed by (username, game id).
type CollectionItemRecord struct {
	Username     string
	GameID       int64
	GameName     string
	GameYear     int64
	Subtype      string
	Status       CollectionStatus
	Rating       *float64
	NumPlays     int64
	RankSnapshot []RankEntry
	LastUpdated  time.Time
}

// PlayerResult is one per-player line inside a logged play.
type PlayerResult struct {
	Name  string   `json:"name"`
	Score *float64 `json:"score,omitempty"`
	Win   bool     `json:"win"`
}

// PlayRecord represents a row in the plays table, keyed by the
// upstream-assigned play id.
type PlayRecord struct {
	ID          int64
	Username    string
	GameID      int64
	GameName    string
	Date        string
	Quantity    int64
	Comment     string
	Players     []PlayerResult
	LastUpdated time.Time
}

// HotGameRecord is one entry of the hot-list snapshot. The snapshot is
// replaced atomically as a whole; entries carry no individual TTL.
type HotGameRecord struct {
	GameID        int64
	Rank          int64
	Name          string
	YearPublished int64
	Thumbnail     string
	LastUpdated   time.Time
}

// RequestLogRecord is one entry of the append-only request ledger.
type RequestLogRecord struct {
	ID          int64
	Endpoint    string
	RequestedAt time.Time
}
