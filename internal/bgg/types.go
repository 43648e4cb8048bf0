package bgg

import "encoding/xml"

// ValueAttr is the upstream convention of carrying a scalar in a value
// attribute, e.g. <yearpublished value="2017"/>.
type ValueAttr struct {
	Value string `xml:"value,attr"`
}

// ThingName is one name variant of a thing. Type is "primary" or
// "alternate".
type ThingName struct {
	Type      string `xml:"type,attr"`
	SortIndex int    `xml:"sortindex,attr"`
	Value     string `xml:"value,attr"`
}

// Link is a typed relation attached to a thing, e.g. a category or a
// designer. The link type tag decides which attribute bucket it lands in.
type Link struct {
	Type  string `xml:"type,attr"`
	ID    int64  `xml:"id,attr"`
	Value string `xml:"value,attr"`
}

// Rank is one named rank entry inside a ratings block. Value is textual
// because the upstream reports "Not Ranked" for unranked items.
type Rank struct {
	Type         string `xml:"type,attr"`
	ID           int64  `xml:"id,attr"`
	Name         string `xml:"name,attr"`
	FriendlyName string `xml:"friendlyname,attr"`
	Value        string `xml:"value,attr"`
}

// Ratings is the statistics block of a thing.
type Ratings struct {
	UsersRated   ValueAttr `xml:"usersrated"`
	Average      ValueAttr `xml:"average"`
	BayesAverage ValueAttr `xml:"bayesaverage"`
	Ranks        []Rank    `xml:"ranks>rank"`
}

// Statistics wraps the optional ratings block of a thing response.
type Statistics struct {
	Page    int     `xml:"page,attr"`
	Ratings Ratings `xml:"ratings"`
}

// ThingItem is one item of a thing endpoint response.
type ThingItem struct {
	Type          string      `xml:"type,attr"`
	ID            int64       `xml:"id,attr"`
	Thumbnail     string      `xml:"thumbnail"`
	Image         string      `xml:"image"`
	Names         []ThingName `xml:"name"`
	Description   string      `xml:"description"`
	YearPublished ValueAttr   `xml:"yearpublished"`
	MinPlayers    ValueAttr   `xml:"minplayers"`
	MaxPlayers    ValueAttr   `xml:"maxplayers"`
	PlayingTime   ValueAttr   `xml:"playingtime"`
	MinAge        ValueAttr   `xml:"minage"`
	Links         []Link      `xml:"link"`
	Statistics    *Statistics `xml:"statistics"`
}

type thingDoc struct {
	XMLName    xml.Name    `xml:"items"`
	TermsOfUse string      `xml:"termsofuse,attr"`
	Items      []ThingItem `xml:"item"`
}

// CollectionRating is the personal rating block of a collection item.
// Value is "N/A" when the user has not rated the game.
type CollectionRating struct {
	Value        string    `xml:"value,attr"`
	Average      ValueAttr `xml:"average"`
	BayesAverage ValueAttr `xml:"bayesaverage"`
	Ranks        []Rank    `xml:"ranks>rank"`
}

// CollectionStats is the abbreviated stats block of a collection item.
type CollectionStats struct {
	MinPlayers  string            `xml:"minplayers,attr"`
	MaxPlayers  string            `xml:"maxplayers,attr"`
	PlayingTime string            `xml:"playingtime,attr"`
	Rating      *CollectionRating `xml:"rating"`
}

// CollectionItemStatus carries the ownership flags of a collection item.
type CollectionItemStatus struct {
	Own          int    `xml:"own,attr"`
	PrevOwned    int    `xml:"prevowned,attr"`
	ForTrade     int    `xml:"fortrade,attr"`
	Want         int    `xml:"want,attr"`
	WantToPlay   int    `xml:"wanttoplay,attr"`
	WantToBuy    int    `xml:"wanttobuy,attr"`
	Wishlist     int    `xml:"wishlist,attr"`
	Preordered   int    `xml:"preordered,attr"`
	HasParts     int    `xml:"hasparts,attr"`
	WantParts    int    `xml:"wantparts,attr"`
	LastModified string `xml:"lastmodified,attr"`
}

// CollectionItem is one item of a collection endpoint response.
type CollectionItem struct {
	ObjectType    string                `xml:"objecttype,attr"`
	ObjectID      int64                 `xml:"objectid,attr"`
	Subtype       string                `xml:"subtype,attr"`
	CollID        int64                 `xml:"collid,attr"`
	Name          string                `xml:"name"`
	YearPublished string                `xml:"yearpublished"`
	Thumbnail     string                `xml:"thumbnail"`
	Image         string                `xml:"image"`
	Stats         *CollectionStats      `xml:"stats"`
	Status        *CollectionItemStatus `xml:"status"`
	NumPlays      int64                 `xml:"numplays"`
}

// Collection is a decoded collection endpoint response.
type Collection struct {
	TotalItems int              `xml:"totalitems,attr"`
	TermsOfUse string           `xml:"termsofuse,attr"`
	Items      []CollectionItem `xml:"item"`
}

// PlayPlayer is one per-player line of a logged play.
type PlayPlayer struct {
	Username string `xml:"username,attr"`
	Name     string `xml:"name,attr"`
	Score    string `xml:"score,attr"`
	Win      int    `xml:"win,attr"`
}

// PlayItem identifies the thing a play was logged against.
type PlayItem struct {
	Name       string `xml:"name,attr"`
	ObjectType string `xml:"objecttype,attr"`
	ObjectID   int64  `xml:"objectid,attr"`
}

// Play is one logged play of a plays endpoint response.
type Play struct {
	ID       int64        `xml:"id,attr"`
	Date     string       `xml:"date,attr"`
	Quantity int64        `xml:"quantity,attr"`
	Comments string       `xml:"comments"`
	Item     PlayItem     `xml:"item"`
	Players  []PlayPlayer `xml:"players>player"`
}

// Plays is a decoded plays endpoint response.
type Plays struct {
	Username string `xml:"username,attr"`
	Total    int    `xml:"total,attr"`
	Page     int    `xml:"page,attr"`
	Items    []Play `xml:"play"`
}

// HotItem is one entry of a hot-list endpoint response.
type HotItem struct {
	ID            int64     `xml:"id,attr"`
	Rank          int64     `xml:"rank,attr"`
	Thumbnail     ValueAttr `xml:"thumbnail"`
	Name          ValueAttr `xml:"name"`
	YearPublished ValueAttr `xml:"yearpublished"`
}

type hotDoc struct {
	XMLName    xml.Name  `xml:"items"`
	TermsOfUse string    `xml:"termsofuse,attr"`
	Items      []HotItem `xml:"item"`
}

type errorDoc struct {
	Errors []struct {
		Message string `xml:"message"`
	} `xml:"error"`
}
