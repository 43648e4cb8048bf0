package syncer

import (
	"strconv"
	"strings"
	"time"

	"github.com/geekcache/geekcache/internal/bgg"
	"github.com/geekcache/geekcache/internal/database"
)

// linkBuckets maps the upstream link type tags onto the game record's
// ordered-set attributes.
var linkBuckets = map[string]func(r *database.GameRecord, value string){
	"boardgamecategory":  func(r *database.GameRecord, v string) { r.Categories = append(r.Categories, v) },
	"boardgamemechanic":  func(r *database.GameRecord, v string) { r.Mechanics = append(r.Mechanics, v) },
	"boardgamedesigner":  func(r *database.GameRecord, v string) { r.Designers = append(r.Designers, v) },
	"boardgameartist":    func(r *database.GameRecord, v string) { r.Artists = append(r.Artists, v) },
	"boardgamepublisher": func(r *database.GameRecord, v string) { r.Publishers = append(r.Publishers, v) },
}

// normalizeGame converts a thing item into a full game record. The
// primary name variant wins; alternates are dropped.
func normalizeGame(item bgg.ThingItem, at time.Time, ttl time.Duration) database.GameRecord {
	record := database.GameRecord{
		ID:            item.ID,
		Name:          primaryName(item.Names),
		YearPublished: attrInt(item.YearPublished),
		MinPlayers:    attrInt(item.MinPlayers),
		MaxPlayers:    attrInt(item.MaxPlayers),
		PlayingTime:   attrInt(item.PlayingTime),
		MinAge:        attrInt(item.MinAge),
		Description:   strings.TrimSpace(item.Description),
		Thumbnail:     strings.TrimSpace(item.Thumbnail),
		Image:         strings.TrimSpace(item.Image),
		LastUpdated:   at,
		TTL:           ttl,
	}

	for _, link := range item.Links {
		if bucket, ok := linkBuckets[link.Type]; ok {
			bucket(&record, link.Value)
		}
	}

	if item.Statistics != nil {
		record.Stats = normalizeStats(item.Statistics.Ratings)
	}

	return record
}

func normalizeStats(ratings bgg.Ratings) *database.GameStats {
	stats := &database.GameStats{
		Average:      attrFloat(ratings.Average),
		BayesAverage: attrFloat(ratings.BayesAverage),
		UsersRated:   attrInt(ratings.UsersRated),
	}
	for _, rank := range ratings.Ranks {
		stats.Ranks = append(stats.Ranks, normalizeRank(rank))
	}
	return stats
}

func normalizeRank(rank bgg.Rank) database.RankEntry {
	// "Not Ranked" becomes 0.
	value, _ := strconv.ParseInt(rank.Value, 10, 64)
	return database.RankEntry{
		Type:         rank.Type,
		Name:         rank.Name,
		FriendlyName: rank.FriendlyName,
		Value:        value,
	}
}

// normalizeCollectionItem converts a collection item into a membership
// row for the given user.
func normalizeCollectionItem(username string, item bgg.CollectionItem, at time.Time) database.CollectionItemRecord {
	year, _ := strconv.ParseInt(strings.TrimSpace(item.YearPublished), 10, 64)
	record := database.CollectionItemRecord{
		Username:    username,
		GameID:      item.ObjectID,
		GameName:    strings.TrimSpace(item.Name),
		GameYear:    year,
		Subtype:     item.Subtype,
		NumPlays:    item.NumPlays,
		LastUpdated: at,
	}

	if item.Status != nil {
		record.Status = database.CollectionStatus{
			Own:        item.Status.Own != 0,
			PrevOwned:  item.Status.PrevOwned != 0,
			ForTrade:   item.Status.ForTrade != 0,
			Want:       item.Status.Want != 0,
			WantToPlay: item.Status.WantToPlay != 0,
			WantToBuy:  item.Status.WantToBuy != 0,
			Wishlist:   item.Status.Wishlist != 0,
			Preordered: item.Status.Preordered != 0,
			HasParts:   item.Status.HasParts != 0,
			WantParts:  item.Status.WantParts != 0,
		}
	}
	record.Status.Played = item.NumPlays > 0

	if item.Stats != nil && item.Stats.Rating != nil {
		if rating, err := strconv.ParseFloat(item.Stats.Rating.Value, 64); err == nil {
			record.Rating = &rating
		}
		for _, rank := range item.Stats.Rating.Ranks {
			record.RankSnapshot = append(record.RankSnapshot, normalizeRank(rank))
		}
	}

	return record
}

// stubGame builds a minimal game record from collection data so a
// membership never references a missing game. The zero LastUpdated
// leaves the stub permanently stale until a real sync replaces it.
func stubGame(item bgg.CollectionItem, ttl time.Duration) database.GameRecord {
	year, _ := strconv.ParseInt(strings.TrimSpace(item.YearPublished), 10, 64)
	return database.GameRecord{
		ID:            item.ObjectID,
		Name:          strings.TrimSpace(item.Name),
		YearPublished: year,
		Thumbnail:     strings.TrimSpace(item.Thumbnail),
		Image:         strings.TrimSpace(item.Image),
		TTL:           ttl,
	}
}

// normalizePlay converts one logged play into a play record.
func normalizePlay(username string, play bgg.Play, at time.Time) database.PlayRecord {
	record := database.PlayRecord{
		ID:          play.ID,
		Username:    username,
		GameID:      play.Item.ObjectID,
		GameName:    strings.TrimSpace(play.Item.Name),
		Date:        play.Date,
		Quantity:    play.Quantity,
		Comment:     strings.TrimSpace(play.Comments),
		LastUpdated: at,
	}

	for _, player := range play.Players {
		result := database.PlayerResult{
			Name: playerName(player),
			Win:  player.Win != 0,
		}
		if score, err := strconv.ParseFloat(player.Score, 64); err == nil {
			result.Score = &score
		}
		record.Players = append(record.Players, result)
	}

	return record
}

func playerName(player bgg.PlayPlayer) string {
	if name := strings.TrimSpace(player.Name); name != "" {
		return name
	}
	return strings.TrimSpace(player.Username)
}

// normalizeHotItem converts one hot-list entry.
func normalizeHotItem(item bgg.HotItem, at time.Time) database.HotGameRecord {
	return database.HotGameRecord{
		GameID:        item.ID,
		Rank:          item.Rank,
		Name:          item.Name.Value,
		YearPublished: attrInt(item.YearPublished),
		Thumbnail:     item.Thumbnail.Value,
		LastUpdated:   at,
	}
}

func attrInt(attr bgg.ValueAttr) int64 {
	value, _ := strconv.ParseInt(strings.TrimSpace(attr.Value), 10, 64)
	return value
}

func attrFloat(attr bgg.ValueAttr) float64 {
	value, _ := strconv.ParseFloat(strings.TrimSpace(attr.Value), 64)
	return value
}

func primaryName(names []bgg.ThingName) string {
	for _, name := range names {
		if name.Type == "primary" {
			return name.Value
		}
	}
	if len(names) > 0 {
		return names[0].Value
	}
	return ""
}
