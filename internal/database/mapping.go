package database

import (
	"encoding/json"
	"fmt"
	"time"

	sqldb "github.com/geekcache/geekcache/internal/database/sqlc"
)

func encodeStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	return encodeJSON(values)
}

func mapGameRow(row sqldb.Game) (GameRecord, error) {
	record := GameRecord{
		ID:            row.ID,
		Name:          row.Name,
		YearPublished: optionalInt64(row.YearPublished),
		MinPlayers:    optionalInt64(row.MinPlayers),
		MaxPlayers:    optionalInt64(row.MaxPlayers),
		PlayingTime:   optionalInt64(row.PlayingTime),
		MinAge:        optionalInt64(row.MinAge),
		Description:   optionalString(row.Description),
		Thumbnail:     optionalString(row.Thumbnail),
		Image:         optionalString(row.Image),
		LastUpdated:   optionalTime(row.LastUpdated),
		TTL:           time.Duration(row.TTLSeconds) * time.Second,
	}

	var err error
	if record.Categories, err = decodeStrings(row.Categories); err != nil {
		return GameRecord{}, fmt.Errorf("game %d categories: %w", row.ID, err)
	}
	if record.Mechanics, err = decodeStrings(row.Mechanics); err != nil {
		return GameRecord{}, fmt.Errorf("game %d mechanics: %w", row.ID, err)
	}
	if record.Designers, err = decodeStrings(row.Designers); err != nil {
		return GameRecord{}, fmt.Errorf("game %d designers: %w", row.ID, err)
	}
	if record.Artists, err = decodeStrings(row.Artists); err != nil {
		return GameRecord{}, fmt.Errorf("game %d artists: %w", row.ID, err)
	}
	if record.Publishers, err = decodeStrings(row.Publishers); err != nil {
		return GameRecord{}, fmt.Errorf("game %d publishers: %w", row.ID, err)
	}

	if row.Stats.Valid && row.Stats.String != "" {
		var stats GameStats
		if err := json.Unmarshal([]byte(row.Stats.String), &stats); err != nil {
			return GameRecord{}, fmt.Errorf("game %d stats: %w", row.ID, err)
		}
		record.Stats = &stats
	}

	return record, nil
}

func gameParams(record GameRecord) (sqldb.UpsertGameParams, error) {
	categories, err := encodeStrings(record.Categories)
	if err != nil {
		return sqldb.UpsertGameParams{}, err
	}
	mechanics, err := encodeStrings(record.Mechanics)
	if err != nil {
		return sqldb.UpsertGameParams{}, err
	}
	designers, err := encodeStrings(record.Designers)
	if err != nil {
		return sqldb.UpsertGameParams{}, err
	}
	artists, err := encodeStrings(record.Artists)
	if err != nil {
		return sqldb.UpsertGameParams{}, err
	}
	publishers, err := encodeStrings(record.Publishers)
	if err != nil {
		return sqldb.UpsertGameParams{}, err
	}

	params := sqldb.UpsertGameParams{
		ID:            record.ID,
		Name:          record.Name,
		YearPublished: nullInt64(record.YearPublished),
		MinPlayers:    nullInt64(record.MinPlayers),
		MaxPlayers:    nullInt64(record.MaxPlayers),
		PlayingTime:   nullInt64(record.PlayingTime),
		MinAge:        nullInt64(record.MinAge),
		Description:   nullString(record.Description),
		Thumbnail:     nullString(record.Thumbnail),
		Image:         nullString(record.Image),
		Categories:    categories,
		Mechanics:     mechanics,
		Designers:     designers,
		Artists:       artists,
		Publishers:    publishers,
		LastUpdated:   nullTime(record.LastUpdated),
		TTLSeconds:    int64(record.TTL / time.Second),
	}

	if record.Stats != nil {
		encoded, err := encodeJSON(record.Stats)
		if err != nil {
			return sqldb.UpsertGameParams{}, err
		}
		params.Stats = nullString(encoded)
	}

	return params, nil
}

func mapCollectionItemRow(row sqldb.ListCollectionByUsernameRow) (CollectionItemRecord, error) {
	record := CollectionItemRecord{
		Username: row.Username,
		GameID:   row.GameID,
		GameName: row.GameName,
		GameYear: optionalInt64(row.GameYear),
		Subtype:  row.Subtype,
		Status: CollectionStatus{
			Own:        int64ToBool(row.Own),
			PrevOwned:  int64ToBool(row.PrevOwned),
			ForTrade:   int64ToBool(row.ForTrade),
			Want:       int64ToBool(row.Want),
			WantToPlay: int64ToBool(row.WantToPlay),
			WantToBuy:  int64ToBool(row.WantToBuy),
			Wishlist:   int64ToBool(row.Wishlist),
			Preordered: int64ToBool(row.Preordered),
			Played:     int64ToBool(row.Played),
			HasParts:   int64ToBool(row.HasParts),
			WantParts:  int64ToBool(row.WantParts),
		},
		Rating:      optionalFloatPtr(row.Rating),
		NumPlays:    row.NumPlays,
		LastUpdated: optionalTime(row.LastUpdated),
	}

	if row.RankSnapshot.Valid && row.RankSnapshot.String != "" {
		if err := json.Unmarshal([]byte(row.RankSnapshot.String), &record.RankSnapshot); err != nil {
			return CollectionItemRecord{}, fmt.Errorf("collection item %s/%d rank snapshot: %w", row.Username, row.GameID, err)
		}
	}

	return record, nil
}

func collectionItemParams(record CollectionItemRecord) (sqldb.InsertCollectionItemParams, error) {
	params := sqldb.InsertCollectionItemParams{
		Username:    record.Username,
		GameID:      record.GameID,
		Subtype:     record.Subtype,
		Own:         boolToInt64(record.Status.Own),
		PrevOwned:   boolToInt64(record.Status.PrevOwned),
		ForTrade:    boolToInt64(record.Status.ForTrade),
		Want:        boolToInt64(record.Status.Want),
		WantToPlay:  boolToInt64(record.Status.WantToPlay),
		WantToBuy:   boolToInt64(record.Status.WantToBuy),
		Wishlist:    boolToInt64(record.Status.Wishlist),
		Preordered:  boolToInt64(record.Status.Preordered),
		Played:      boolToInt64(record.Status.Played),
		HasParts:    boolToInt64(record.Status.HasParts),
		WantParts:   boolToInt64(record.Status.WantParts),
		Rating:      floatPtrToNullFloat64(record.Rating),
		NumPlays:    record.NumPlays,
		LastUpdated: nullTime(record.LastUpdated),
	}

	if len(record.RankSnapshot) > 0 {
		encoded, err := encodeJSON(record.RankSnapshot)
		if err != nil {
			return sqldb.InsertCollectionItemParams{}, err
		}
		params.RankSnapshot = nullString(encoded)
	}

	return params, nil
}

func mapPlayRow(row sqldb.ListPlaysByUsernameRow) (PlayRecord, error) {
	record := PlayRecord{
		ID:          row.ID,
		Username:    row.Username,
		GameID:      row.GameID,
		GameName:    row.GameName,
		Date:        row.PlayedAt,
		Quantity:    row.Quantity,
		Comment:     optionalString(row.Comment),
		LastUpdated: optionalTime(row.LastUpdated),
	}

	if row.Players != "" {
		if err := json.Unmarshal([]byte(row.Players), &record.Players); err != nil {
			return PlayRecord{}, fmt.Errorf("play %d players: %w", row.ID, err)
		}
	}

	return record, nil
}

func playParams(record PlayRecord) (sqldb.UpsertPlayParams, error) {
	players := record.Players
	if players == nil {
		players = []PlayerResult{}
	}
	encoded, err := encodeJSON(players)
	if err != nil {
		return sqldb.UpsertPlayParams{}, err
	}

	return sqldb.UpsertPlayParams{
		ID:          record.ID,
		Username:    record.Username,
		GameID:      record.GameID,
		PlayedAt:    record.Date,
		Quantity:    record.Quantity,
		Comment:     nullString(record.Comment),
		Players:     encoded,
		LastUpdated: nullTime(record.LastUpdated),
	}, nil
}

func mapHotGameRow(row sqldb.HotGame) HotGameRecord {
	return HotGameRecord{
		GameID:        row.GameID,
		Rank:          row.Rank,
		Name:          row.Name,
		YearPublished: optionalInt64(row.YearPublished),
		Thumbnail:     optionalString(row.Thumbnail),
		LastUpdated:   optionalTime(row.LastUpdated),
	}
}

func hotGameParams(record HotGameRecord) sqldb.InsertHotGameParams {
	return sqldb.InsertHotGameParams{
		GameID:        record.GameID,
		Rank:          record.Rank,
		Name:          record.Name,
		YearPublished: nullInt64(record.YearPublished),
		Thumbnail:     nullString(record.Thumbnail),
		LastUpdated:   nullTime(record.LastUpdated),
	}
}
