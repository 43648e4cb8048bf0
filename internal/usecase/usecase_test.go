package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/geekcache/geekcache/internal/config"
	"github.com/geekcache/geekcache/internal/database"
	"github.com/geekcache/geekcache/internal/freshness"
	"github.com/geekcache/geekcache/internal/syncer"
)

type fakeFetcher struct {
	mu      sync.Mutex
	calls   []string
	handler func(endpoint string, params url.Values) ([]byte, error)
}

func (f *fakeFetcher) Fetch(_ context.Context, endpoint string, params url.Values) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, endpoint)
	f.mu.Unlock()
	return f.handler(endpoint, params)
}

func (f *fakeFetcher) count(endpoint string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int
	for _, call := range f.calls {
		if call == endpoint {
			n++
		}
	}
	return n
}

func setupOperations(t *testing.T, fetcher syncer.Fetcher) (*Operations, *database.Context) {
	t.Helper()

	dbCtx, err := database.CreateDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("CreateDatabase returned error: %v", err)
	}
	t.Cleanup(func() {
		_ = database.CloseDatabase(dbCtx)
	})

	cfg := config.SyncConfig{
		DefaultTTL:       7 * 24 * time.Hour,
		DeferredAttempts: 3,
		DeferredDelay:    time.Millisecond,
		CascadeDelay:     0,
	}
	policy := freshness.NewPolicy(database.NewGameRepository(dbCtx), cfg.DefaultTTL)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := syncer.New(fetcher, dbCtx, policy, cfg, logger)
	return New(dbCtx, policy, s, cfg), dbCtx
}

func thingXML(id int64, name string) []byte {
	return []byte(fmt.Sprintf(`<items termsofuse="x">
  <item type="boardgame" id="%d">
    <name type="primary" sortindex="1" value="%s"/>
    <yearpublished value="2017"/>
    <link type="boardgamecategory" id="1022" value="Adventure"/>
    <link type="boardgamemechanic" id="2689" value="Hand Management"/>
  </item>
</items>`, id, name))
}

func thingHandler(t *testing.T) func(string, url.Values) ([]byte, error) {
	return func(endpoint string, params url.Values) ([]byte, error) {
		if endpoint != "thing" {
			t.Errorf("unexpected endpoint %s", endpoint)
			return nil, errors.New("unexpected endpoint")
		}
		switch params.Get("id") {
		case "174430":
			return thingXML(174430, "Gloomhaven"), nil
		case "161936":
			return thingXML(161936, "Pandemic Legacy"), nil
		default:
			return []byte(`<items termsofuse="x"/>`), nil
		}
	}
}

func TestEnsureGameFreshServesCacheWithoutFetch(t *testing.T) {
	fetcher := &fakeFetcher{handler: thingHandler(t)}
	ops, _ := setupOperations(t, fetcher)
	ctx := context.Background()

	first, err := ops.EnsureGameFresh(ctx, 174430, false)
	if err != nil || first == nil {
		t.Fatalf("first EnsureGameFresh: %v, %v", first, err)
	}
	if got := fetcher.count("thing"); got != 1 {
		t.Fatalf("expected 1 fetch after cold read, got %d", got)
	}

	second, err := ops.EnsureGameFresh(ctx, 174430, false)
	if err != nil || second == nil {
		t.Fatalf("second EnsureGameFresh: %v, %v", second, err)
	}
	if got := fetcher.count("thing"); got != 1 {
		t.Fatalf("fresh record must not refetch, got %d fetches", got)
	}
}

func TestEnsureGameFreshForceRefetches(t *testing.T) {
	fetcher := &fakeFetcher{handler: thingHandler(t)}
	ops, _ := setupOperations(t, fetcher)
	ctx := context.Background()

	if _, err := ops.EnsureGameFresh(ctx, 174430, false); err != nil {
		t.Fatalf("cold read: %v", err)
	}
	if _, err := ops.EnsureGameFresh(ctx, 174430, true); err != nil {
		t.Fatalf("forced read: %v", err)
	}
	if got := fetcher.count("thing"); got != 2 {
		t.Fatalf("expected force to refetch, got %d fetches", got)
	}
}

func TestEnsureGameFreshNotFound(t *testing.T) {
	fetcher := &fakeFetcher{handler: func(string, url.Values) ([]byte, error) {
		return []byte(`<items termsofuse="x"/>`), nil
	}}
	ops, _ := setupOperations(t, fetcher)

	record, err := ops.EnsureGameFresh(context.Background(), 999999999, false)
	if err != nil {
		t.Fatalf("EnsureGameFresh returned error: %v", err)
	}
	if record != nil {
		t.Fatalf("expected nil record for unknown game, got %+v", record)
	}
}

func TestSearchGamesIsLocalOnly(t *testing.T) {
	fetcher := &fakeFetcher{handler: thingHandler(t)}
	ops, dbCtx := setupOperations(t, fetcher)
	ctx := context.Background()

	games := database.NewGameRepository(dbCtx)
	for id, name := range map[int64]string{
		174430: "Gloomhaven",
		161936: "Pandemic Legacy",
		224517: "Pandemic Iberia",
	} {
		if err := games.Upsert(ctx, database.GameRecord{ID: id, Name: name, LastUpdated: time.Now()}); err != nil {
			t.Fatalf("Upsert %d: %v", id, err)
		}
	}

	results, err := ops.SearchGames(ctx, "pandemic")
	if err != nil {
		t.Fatalf("SearchGames returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(results))
	}
	if fetcher.count("thing") != 0 {
		t.Fatal("search must never touch upstream")
	}
}

const collectionMixedXML = `<items totalitems="2" termsofuse="x">
  <item objecttype="thing" objectid="174430" subtype="boardgame" collid="101">
    <name sortindex="1">Gloomhaven</name>
    <status own="1" prevowned="0" fortrade="0" want="0" wanttoplay="0" wanttobuy="0" wishlist="0" preordered="0" lastmodified="2026-05-01 10:00:00"/>
    <numplays>12</numplays>
  </item>
  <item objecttype="thing" objectid="161936" subtype="boardgame" collid="102">
    <name sortindex="1">Pandemic Legacy</name>
    <status own="0" prevowned="1" fortrade="0" want="0" wanttoplay="0" wanttobuy="0" wishlist="0" preordered="0" lastmodified="2026-05-01 10:00:00"/>
    <numplays>0</numplays>
  </item>
</items>`

func collectionHandler(t *testing.T) func(string, url.Values) ([]byte, error) {
	things := thingHandler(t)
	return func(endpoint string, params url.Values) ([]byte, error) {
		switch endpoint {
		case "collection":
			if params.Get("subtype") == "boardgameexpansion" {
				return []byte(`<items totalitems="0" termsofuse="x"/>`), nil
			}
			return []byte(collectionMixedXML), nil
		case "thing":
			return things(endpoint, params)
		default:
			return nil, fmt.Errorf("unexpected endpoint %s", endpoint)
		}
	}
}

func TestGetOrSyncCollectionOwnedFilter(t *testing.T) {
	fetcher := &fakeFetcher{handler: collectionHandler(t)}
	ops, _ := setupOperations(t, fetcher)
	ctx := context.Background()

	owned := true
	result, err := ops.GetOrSyncCollection(ctx, "alice", CollectionFilters{Own: &owned}, false)
	if err != nil {
		t.Fatalf("GetOrSyncCollection returned error: %v", err)
	}
	if result.Status != CollectionSuccess {
		t.Fatalf("expected success status, got %s", result.Status)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected exactly the owned row, got %d", len(result.Items))
	}
	if result.Items[0].GameID != 174430 || !result.Items[0].Status.Own {
		t.Fatalf("unexpected filtered row %+v", result.Items[0])
	}

	// No filter returns both rows.
	all, err := ops.GetOrSyncCollection(ctx, "alice", CollectionFilters{}, false)
	if err != nil {
		t.Fatalf("unfiltered read: %v", err)
	}
	if len(all.Items) != 2 {
		t.Fatalf("expected 2 unfiltered rows, got %d", len(all.Items))
	}
}

func TestGetOrSyncCollectionServesCacheWhenFresh(t *testing.T) {
	fetcher := &fakeFetcher{handler: collectionHandler(t)}
	ops, _ := setupOperations(t, fetcher)
	ctx := context.Background()

	if _, err := ops.GetOrSyncCollection(ctx, "alice", CollectionFilters{}, false); err != nil {
		t.Fatalf("cold read: %v", err)
	}
	fetched := fetcher.count("collection")

	if _, err := ops.GetOrSyncCollection(ctx, "alice", CollectionFilters{}, false); err != nil {
		t.Fatalf("warm read: %v", err)
	}
	if fetcher.count("collection") != fetched {
		t.Fatal("fresh collection must not refetch")
	}
}

func TestGetOrSyncCollectionQueuedOnDeferred(t *testing.T) {
	fetcher := &fakeFetcher{handler: func(endpoint string, _ url.Values) ([]byte, error) {
		if endpoint != "collection" {
			return nil, fmt.Errorf("unexpected endpoint %s", endpoint)
		}
		return []byte(`<message>Please try again later for access.</message>`), nil
	}}
	ops, _ := setupOperations(t, fetcher)

	result, err := ops.GetOrSyncCollection(context.Background(), "alice", CollectionFilters{}, false)
	if err != nil {
		t.Fatalf("deferred outcome must not be an error: %v", err)
	}
	if result.Status != CollectionQueued {
		t.Fatalf("expected queued status, got %s", result.Status)
	}
	if len(result.Items) != 0 {
		t.Fatalf("queued result carries no items, got %d", len(result.Items))
	}
}

const playsXMLFixture = `<plays username="alice" userid="123" total="2" page="1" termsofuse="x">
  <play id="900001" date="2026-06-01" quantity="1">
    <item name="Gloomhaven" objecttype="thing" objectid="174430"/>
  </play>
  <play id="900002" date="2026-05-20" quantity="2">
    <item name="Gloomhaven" objecttype="thing" objectid="174430"/>
  </play>
</plays>`

func TestGetOrSyncPlaysSyncsOnlyWhenEmpty(t *testing.T) {
	things := thingHandler(t)
	fetcher := &fakeFetcher{handler: func(endpoint string, params url.Values) ([]byte, error) {
		switch endpoint {
		case "plays":
			return []byte(playsXMLFixture), nil
		case "thing":
			return things(endpoint, params)
		default:
			return nil, fmt.Errorf("unexpected endpoint %s", endpoint)
		}
	}}
	ops, _ := setupOperations(t, fetcher)
	ctx := context.Background()

	records, err := ops.GetOrSyncPlays(ctx, "alice", 0, false)
	if err != nil {
		t.Fatalf("cold read: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 plays, got %d", len(records))
	}
	if got := fetcher.count("plays"); got != 1 {
		t.Fatalf("expected 1 plays fetch, got %d", got)
	}

	if _, err := ops.GetOrSyncPlays(ctx, "alice", 0, false); err != nil {
		t.Fatalf("warm read: %v", err)
	}
	if got := fetcher.count("plays"); got != 1 {
		t.Fatal("stored plays must be served without refetch")
	}

	if _, err := ops.GetOrSyncPlays(ctx, "alice", 0, true); err != nil {
		t.Fatalf("forced read: %v", err)
	}
	if got := fetcher.count("plays"); got != 2 {
		t.Fatalf("expected force to refetch plays, got %d", got)
	}
}

const hotXMLFixture = `<items termsofuse="x">
  <item id="174430" rank="1">
    <name value="Gloomhaven"/>
    <yearpublished value="2017"/>
  </item>
</items>`

func TestGetOrSyncHotListSyncsOnlyWhenEmpty(t *testing.T) {
	things := thingHandler(t)
	fetcher := &fakeFetcher{handler: func(endpoint string, params url.Values) ([]byte, error) {
		switch endpoint {
		case "hot":
			return []byte(hotXMLFixture), nil
		case "thing":
			return things(endpoint, params)
		default:
			return nil, fmt.Errorf("unexpected endpoint %s", endpoint)
		}
	}}
	ops, _ := setupOperations(t, fetcher)
	ctx := context.Background()

	entries, err := ops.GetOrSyncHotList(ctx, false)
	if err != nil {
		t.Fatalf("cold read: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 hot entry, got %d", len(entries))
	}
	if got := fetcher.count("hot"); got != 1 {
		t.Fatalf("expected 1 hot fetch, got %d", got)
	}

	if _, err := ops.GetOrSyncHotList(ctx, false); err != nil {
		t.Fatalf("warm read: %v", err)
	}
	if got := fetcher.count("hot"); got != 1 {
		t.Fatal("cached snapshot must be served without refetch")
	}
}

func TestFindSimilarRanksSharedTraitsFirst(t *testing.T) {
	fetcher := &fakeFetcher{handler: thingHandler(t)}
	ops, dbCtx := setupOperations(t, fetcher)
	ctx := context.Background()

	games := database.NewGameRepository(dbCtx)
	fresh := time.Now()
	seed := []database.GameRecord{
		{ID: 1, Name: "Gloomhaven", Categories: []string{"Adventure"}, Mechanics: []string{"Hand Management"}, LastUpdated: fresh},
		{ID: 2, Name: "Gloomhaven Forgotten Circles", Categories: []string{"Adventure"}, Mechanics: []string{"Hand Management"}, LastUpdated: fresh},
		{ID: 3, Name: "Azul", Categories: []string{"Abstract"}, Mechanics: []string{"Pattern Building"}, LastUpdated: fresh},
	}
	for i := range seed {
		if err := games.Upsert(ctx, seed[i]); err != nil {
			t.Fatalf("Upsert %d: %v", seed[i].ID, err)
		}
	}

	scored, err := ops.FindSimilar(ctx, 1, 10)
	if err != nil {
		t.Fatalf("FindSimilar returned error: %v", err)
	}
	if len(scored) == 0 {
		t.Fatal("expected at least one similar game")
	}
	if scored[0].Game.ID != 2 {
		t.Fatalf("expected the related game first, got %d", scored[0].Game.ID)
	}
	for _, entry := range scored {
		if entry.Game.ID == 1 {
			t.Fatal("reference game must not appear in its own results")
		}
	}
}

func TestFindSimilarNilForUnknownGame(t *testing.T) {
	fetcher := &fakeFetcher{handler: func(string, url.Values) ([]byte, error) {
		return []byte(`<items termsofuse="x"/>`), nil
	}}
	ops, _ := setupOperations(t, fetcher)

	scored, err := ops.FindSimilar(context.Background(), 42, 10)
	if err != nil {
		t.Fatalf("FindSimilar returned error: %v", err)
	}
	if scored != nil {
		t.Fatalf("expected nil for unknown reference game, got %+v", scored)
	}
}
