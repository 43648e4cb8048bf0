package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/geekcache/geekcache/internal/database"
	"github.com/geekcache/geekcache/internal/usecase"
)

// Server wraps the MCP server with cache-backed BGG tools
type Server struct {
	server *mcp.Server
	ops    *usecase.Operations
}

// NewServer creates a new MCP server instance over an already wired
// operations layer.
func NewServer(ops *usecase.Operations, version string) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "geekcache",
		Version: version,
	}, nil)

	s := &Server{
		server: mcpServer,
		ops:    ops,
	}

	s.registerTools()

	return s
}

// Run starts the MCP server with stdio transport
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	// bgg_game
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "bgg_game",
		Description: "Get details for a board game by its BGG id, refreshing stale cache entries from the API",
	}, s.handleGame)

	// bgg_search
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "bgg_search",
		Description: "Search cached board games by name substring",
	}, s.handleSearch)

	// bgg_collection
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "bgg_collection",
		Description: "Get a user's game collection, including expansions, with optional status filters",
	}, s.handleCollection)

	// bgg_plays
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "bgg_plays",
		Description: "Get a user's recent logged plays",
	}, s.handlePlays)

	// bgg_hot
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "bgg_hot",
		Description: "Get the current BGG hotness list",
	}, s.handleHot)

	// bgg_similar
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "bgg_similar",
		Description: "Find cached games similar to a reference game by name, categories and mechanics",
	}, s.handleSimilar)
}

// Input/Output types for each tool

type GameInput struct {
	ID           int64 `json:"id" jsonschema:"required,description=BGG game id"`
	ForceRefresh *bool `json:"forceRefresh,omitempty" jsonschema:"description=Bypass the cache TTL and refetch"`
}

type GameOutput struct {
	Game GameEntry `json:"game"`
}

type GameEntry struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	YearPublished int64    `json:"yearPublished,omitempty"`
	MinPlayers    int64    `json:"minPlayers,omitempty"`
	MaxPlayers    int64    `json:"maxPlayers,omitempty"`
	PlayingTime   int64    `json:"playingTime,omitempty"`
	MinAge        int64    `json:"minAge,omitempty"`
	Description   string   `json:"description,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	Image         string   `json:"image,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Mechanics     []string `json:"mechanics,omitempty"`
	Designers     []string `json:"designers,omitempty"`
	Artists       []string `json:"artists,omitempty"`
	Publishers    []string `json:"publishers,omitempty"`
	Average       float64  `json:"average,omitempty"`
	BayesAverage  float64  `json:"bayesAverage,omitempty"`
	UsersRated    int64    `json:"usersRated,omitempty"`
	LastUpdated   string   `json:"lastUpdated"`
}

type SearchInput struct {
	Query string `json:"query" jsonschema:"required,description=Name substring to match against cached games"`
}

type SearchOutput struct {
	Games []GameEntry `json:"games"`
}

type CollectionInput struct {
	Username     string `json:"username" jsonschema:"required,description=BGG username"`
	Own          *bool  `json:"own,omitempty" jsonschema:"description=Filter by owned status"`
	PrevOwned    *bool  `json:"prevOwned,omitempty" jsonschema:"description=Filter by previously-owned status"`
	ForTrade     *bool  `json:"forTrade,omitempty" jsonschema:"description=Filter by for-trade status"`
	Want         *bool  `json:"want,omitempty" jsonschema:"description=Filter by want-in-trade status"`
	WantToPlay   *bool  `json:"wantToPlay,omitempty" jsonschema:"description=Filter by want-to-play status"`
	WantToBuy    *bool  `json:"wantToBuy,omitempty" jsonschema:"description=Filter by want-to-buy status"`
	Wishlist     *bool  `json:"wishlist,omitempty" jsonschema:"description=Filter by wishlist status"`
	Preordered   *bool  `json:"preordered,omitempty" jsonschema:"description=Filter by preordered status"`
	Played       *bool  `json:"played,omitempty" jsonschema:"description=Filter by played status"`
	ForceRefresh *bool  `json:"forceRefresh,omitempty" jsonschema:"description=Bypass the cache TTL and refetch"`
}

type CollectionOutput struct {
	Status string            `json:"status"`
	Items  []CollectionEntry `json:"items,omitempty"`
}

type CollectionEntry struct {
	GameID        int64    `json:"gameId"`
	Name          string   `json:"name"`
	YearPublished int64    `json:"yearPublished,omitempty"`
	Subtype       string   `json:"subtype"`
	Own           bool     `json:"own"`
	PrevOwned     bool     `json:"prevOwned"`
	ForTrade      bool     `json:"forTrade"`
	Want          bool     `json:"want"`
	WantToPlay    bool     `json:"wantToPlay"`
	WantToBuy     bool     `json:"wantToBuy"`
	Wishlist      bool     `json:"wishlist"`
	Preordered    bool     `json:"preordered"`
	Played        bool     `json:"played"`
	Rating        *float64 `json:"rating,omitempty"`
	NumPlays      int64    `json:"numPlays"`
}

type PlaysInput struct {
	Username     string `json:"username" jsonschema:"required,description=BGG username"`
	MaxPlays     *int   `json:"maxPlays,omitempty" jsonschema:"description=Maximum number of plays to return (default 10)"`
	ForceRefresh *bool  `json:"forceRefresh,omitempty" jsonschema:"description=Refetch the play log from the API"`
}

type PlaysOutput struct {
	Plays []PlayEntry `json:"plays"`
}

type PlayEntry struct {
	ID       int64             `json:"id"`
	GameID   int64             `json:"gameId"`
	GameName string            `json:"gameName"`
	PlayedAt string            `json:"playedAt"`
	Quantity int64             `json:"quantity"`
	Comment  string            `json:"comment,omitempty"`
	Players  []PlayPlayerEntry `json:"players,omitempty"`
}

type PlayPlayerEntry struct {
	Name  string   `json:"name"`
	Score *float64 `json:"score,omitempty"`
	Win   bool     `json:"win"`
}

type HotInput struct {
	ForceRefresh *bool `json:"forceRefresh,omitempty" jsonschema:"description=Refetch the hotness list from the API"`
}

type HotOutput struct {
	Games []HotEntry `json:"games"`
}

type HotEntry struct {
	Rank          int64  `json:"rank"`
	GameID        int64  `json:"gameId"`
	Name          string `json:"name"`
	YearPublished int64  `json:"yearPublished,omitempty"`
	Thumbnail     string `json:"thumbnail,omitempty"`
}

type SimilarInput struct {
	ID    int64 `json:"id" jsonschema:"required,description=BGG id of the reference game"`
	Limit *int  `json:"limit,omitempty" jsonschema:"description=Maximum number of results (default 10)"`
}

type SimilarOutput struct {
	Games []SimilarEntry `json:"games"`
}

type SimilarEntry struct {
	Game  GameEntry `json:"game"`
	Score float64   `json:"score"`
}

func gameEntry(record *database.GameRecord) GameEntry {
	entry := GameEntry{
		ID:            record.ID,
		Name:          record.Name,
		YearPublished: record.YearPublished,
		MinPlayers:    record.MinPlayers,
		MaxPlayers:    record.MaxPlayers,
		PlayingTime:   record.PlayingTime,
		MinAge:        record.MinAge,
		Description:   record.Description,
		Thumbnail:     record.Thumbnail,
		Image:         record.Image,
		Categories:    record.Categories,
		Mechanics:     record.Mechanics,
		Designers:     record.Designers,
		Artists:       record.Artists,
		Publishers:    record.Publishers,
		LastUpdated:   record.LastUpdated.Format(time.RFC3339),
	}
	if record.Stats != nil {
		entry.Average = record.Stats.Average
		entry.BayesAverage = record.Stats.BayesAverage
		entry.UsersRated = record.Stats.UsersRated
	}
	return entry
}

// Tool handlers

func (s *Server) handleGame(ctx context.Context, req *mcp.CallToolRequest, input GameInput) (*mcp.CallToolResult, GameOutput, error) {
	force := input.ForceRefresh != nil && *input.ForceRefresh

	record, err := s.ops.EnsureGameFresh(ctx, input.ID, force)
	if err != nil {
		return nil, GameOutput{}, fmt.Errorf("failed to get game: %w", err)
	}
	if record == nil {
		return nil, GameOutput{}, fmt.Errorf("game not found: %d", input.ID)
	}

	return nil, GameOutput{Game: gameEntry(record)}, nil
}

func (s *Server) handleSearch(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	records, err := s.ops.SearchGames(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("failed to search games: %w", err)
	}

	games := make([]GameEntry, 0, len(records))
	for i := range records {
		games = append(games, gameEntry(&records[i]))
	}

	return nil, SearchOutput{Games: games}, nil
}

func (s *Server) handleCollection(ctx context.Context, req *mcp.CallToolRequest, input CollectionInput) (*mcp.CallToolResult, CollectionOutput, error) {
	force := input.ForceRefresh != nil && *input.ForceRefresh
	filters := usecase.CollectionFilters{
		Own:        input.Own,
		PrevOwned:  input.PrevOwned,
		ForTrade:   input.ForTrade,
		Want:       input.Want,
		WantToPlay: input.WantToPlay,
		WantToBuy:  input.WantToBuy,
		Wishlist:   input.Wishlist,
		Preordered: input.Preordered,
		Played:     input.Played,
	}

	result, err := s.ops.GetOrSyncCollection(ctx, input.Username, filters, force)
	if err != nil {
		return nil, CollectionOutput{}, fmt.Errorf("failed to get collection: %w", err)
	}

	items := make([]CollectionEntry, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, CollectionEntry{
			GameID:        item.GameID,
			Name:          item.GameName,
			YearPublished: item.GameYear,
			Subtype:       item.Subtype,
			Own:           item.Status.Own,
			PrevOwned:     item.Status.PrevOwned,
			ForTrade:      item.Status.ForTrade,
			Want:          item.Status.Want,
			WantToPlay:    item.Status.WantToPlay,
			WantToBuy:     item.Status.WantToBuy,
			Wishlist:      item.Status.Wishlist,
			Preordered:    item.Status.Preordered,
			Played:        item.Status.Played,
			Rating:        item.Rating,
			NumPlays:      item.NumPlays,
		})
	}

	return nil, CollectionOutput{
		Status: string(result.Status),
		Items:  items,
	}, nil
}

func (s *Server) handlePlays(ctx context.Context, req *mcp.CallToolRequest, input PlaysInput) (*mcp.CallToolResult, PlaysOutput, error) {
	force := input.ForceRefresh != nil && *input.ForceRefresh
	maxPlays := 0
	if input.MaxPlays != nil {
		maxPlays = *input.MaxPlays
	}

	records, err := s.ops.GetOrSyncPlays(ctx, input.Username, maxPlays, force)
	if err != nil {
		return nil, PlaysOutput{}, fmt.Errorf("failed to get plays: %w", err)
	}

	plays := make([]PlayEntry, 0, len(records))
	for _, record := range records {
		entry := PlayEntry{
			ID:       record.ID,
			GameID:   record.GameID,
			GameName: record.GameName,
			PlayedAt: record.Date,
			Quantity: record.Quantity,
			Comment:  record.Comment,
		}
		for _, player := range record.Players {
			entry.Players = append(entry.Players, PlayPlayerEntry{
				Name:  player.Name,
				Score: player.Score,
				Win:   player.Win,
			})
		}
		plays = append(plays, entry)
	}

	return nil, PlaysOutput{Plays: plays}, nil
}

func (s *Server) handleHot(ctx context.Context, req *mcp.CallToolRequest, input HotInput) (*mcp.CallToolResult, HotOutput, error) {
	force := input.ForceRefresh != nil && *input.ForceRefresh

	entries, err := s.ops.GetOrSyncHotList(ctx, force)
	if err != nil {
		return nil, HotOutput{}, fmt.Errorf("failed to get hot list: %w", err)
	}

	games := make([]HotEntry, 0, len(entries))
	for _, entry := range entries {
		games = append(games, HotEntry{
			Rank:          entry.Rank,
			GameID:        entry.GameID,
			Name:          entry.Name,
			YearPublished: entry.YearPublished,
			Thumbnail:     entry.Thumbnail,
		})
	}

	return nil, HotOutput{Games: games}, nil
}

func (s *Server) handleSimilar(ctx context.Context, req *mcp.CallToolRequest, input SimilarInput) (*mcp.CallToolResult, SimilarOutput, error) {
	limit := 0
	if input.Limit != nil {
		limit = *input.Limit
	}

	scored, err := s.ops.FindSimilar(ctx, input.ID, limit)
	if err != nil {
		return nil, SimilarOutput{}, fmt.Errorf("failed to find similar games: %w", err)
	}
	if scored == nil {
		return nil, SimilarOutput{}, fmt.Errorf("game not found: %d", input.ID)
	}

	games := make([]SimilarEntry, 0, len(scored))
	for i := range scored {
		games = append(games, SimilarEntry{
			Game:  gameEntry(&scored[i].Game),
			Score: scored[i].Score,
		})
	}

	return nil, SimilarOutput{Games: games}, nil
}
