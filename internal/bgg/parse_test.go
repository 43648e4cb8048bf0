package bgg

import (
	"errors"
	"testing"
)

const thingXML = `<?xml version="1.0" encoding="utf-8"?>
<items termsofuse="https://boardgamegeek.com/xmlapi/termsofuse">
  <item type="boardgame" id="174430">
    <thumbnail>https://cf.geekdo-images.com/thumb.jpg</thumbnail>
    <image>https://cf.geekdo-images.com/image.jpg</image>
    <name type="primary" sortindex="1" value="Gloomhaven"/>
    <name type="alternate" sortindex="1" value="Homoszały"/>
    <description>Vanquish monsters.</description>
    <yearpublished value="2017"/>
    <minplayers value="1"/>
    <maxplayers value="4"/>
    <playingtime value="120"/>
    <minage value="14"/>
    <link type="boardgamecategory" id="1022" value="Adventure"/>
    <link type="boardgamemechanic" id="2689" value="Hand Management"/>
    <link type="boardgamedesigner" id="69802" value="Isaac Childres"/>
    <statistics page="1">
      <ratings>
        <usersrated value="60000"/>
        <average value="8.6"/>
        <bayesaverage value="8.5"/>
        <ranks>
          <rank type="subtype" id="1" name="boardgame" friendlyname="Board Game Rank" value="3"/>
          <rank type="family" id="5496" name="thematic" friendlyname="Thematic Rank" value="Not Ranked"/>
        </ranks>
      </ratings>
    </statistics>
  </item>
</items>`

func TestParseThings(t *testing.T) {
	items, err := ParseThings([]byte(thingXML))
	if err != nil {
		t.Fatalf("ParseThings returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.ID != 174430 || item.Type != "boardgame" {
		t.Errorf("unexpected identity: %+v", item)
	}
	if len(item.Names) != 2 {
		t.Fatalf("expected 2 name variants, got %d", len(item.Names))
	}
	if item.Names[0].Type != "primary" || item.Names[0].Value != "Gloomhaven" {
		t.Errorf("unexpected primary name: %+v", item.Names[0])
	}
	if len(item.Links) != 3 {
		t.Fatalf("expected 3 links, got %d", len(item.Links))
	}
	if item.Statistics == nil {
		t.Fatal("expected statistics block")
	}
	if item.Statistics.Ratings.Average.Value != "8.6" {
		t.Errorf("unexpected average: %q", item.Statistics.Ratings.Average.Value)
	}
	if len(item.Statistics.Ratings.Ranks) != 2 {
		t.Fatalf("expected 2 ranks, got %d", len(item.Statistics.Ratings.Ranks))
	}
	if item.Statistics.Ratings.Ranks[1].Value != "Not Ranked" {
		t.Errorf("unranked rank lost: %+v", item.Statistics.Ratings.Ranks[1])
	}
}

func TestParseThingsSingleLinkBecomesSlice(t *testing.T) {
	const single = `<items><item type="boardgame" id="1">
		<name type="primary" sortindex="1" value="Die Macher"/>
		<link type="boardgamecategory" id="1021" value="Economic"/>
	</item></items>`

	items, err := ParseThings([]byte(single))
	if err != nil {
		t.Fatalf("ParseThings returned error: %v", err)
	}
	if len(items[0].Links) != 1 || len(items[0].Names) != 1 {
		t.Fatalf("single occurrences must decode as one-element slices: %+v", items[0])
	}
}

func TestParseThingsEmpty(t *testing.T) {
	items, err := ParseThings([]byte(`<items termsofuse="https://boardgamegeek.com/xmlapi/termsofuse"/>`))
	if err != nil {
		t.Fatalf("ParseThings returned error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

const collectionXML = `<?xml version="1.0" encoding="utf-8"?>
<items totalitems="2" termsofuse="https://boardgamegeek.com/xmlapi/termsofuse">
  <item objecttype="thing" objectid="174430" subtype="boardgame" collid="101">
    <name sortindex="1">Gloomhaven</name>
    <yearpublished>2017</yearpublished>
    <stats minplayers="1" maxplayers="4" playingtime="120">
      <rating value="9">
        <average value="8.6"/>
        <bayesaverage value="8.5"/>
        <ranks>
          <rank type="subtype" id="1" name="boardgame" friendlyname="Board Game Rank" value="3"/>
        </ranks>
      </rating>
    </stats>
    <status own="1" prevowned="0" fortrade="0" want="0" wanttoplay="0" wanttobuy="0" wishlist="0" preordered="0" lastmodified="2024-05-01 10:00:00"/>
    <numplays>12</numplays>
  </item>
  <item objecttype="thing" objectid="161936" subtype="boardgame" collid="102">
    <name sortindex="1">Pandemic Legacy</name>
    <stats minplayers="2" maxplayers="4" playingtime="60">
      <rating value="N/A"/>
    </stats>
    <status own="0" prevowned="1" fortrade="0" want="0" wanttoplay="0" wanttobuy="0" wishlist="0" preordered="0" lastmodified="2023-01-01 09:00:00"/>
    <numplays>0</numplays>
  </item>
</items>`

func TestParseCollection(t *testing.T) {
	col, err := ParseCollection([]byte(collectionXML))
	if err != nil {
		t.Fatalf("ParseCollection returned error: %v", err)
	}
	if col.TotalItems != 2 || len(col.Items) != 2 {
		t.Fatalf("expected 2 items, got %d/%d", col.TotalItems, len(col.Items))
	}

	first := col.Items[0]
	if first.ObjectID != 174430 || first.Name != "Gloomhaven" {
		t.Errorf("unexpected first item: %+v", first)
	}
	if first.Status == nil || first.Status.Own != 1 {
		t.Errorf("own flag lost: %+v", first.Status)
	}
	if first.Stats == nil || first.Stats.Rating == nil || first.Stats.Rating.Value != "9" {
		t.Errorf("rating lost: %+v", first.Stats)
	}
	if first.NumPlays != 12 {
		t.Errorf("expected 12 plays, got %d", first.NumPlays)
	}

	second := col.Items[1]
	if second.Status == nil || second.Status.PrevOwned != 1 || second.Status.Own != 0 {
		t.Errorf("prevowned flag lost: %+v", second.Status)
	}
	if second.Stats.Rating.Value != "N/A" {
		t.Errorf("unrated value lost: %q", second.Stats.Rating.Value)
	}
}

func TestParseCollectionDeferred(t *testing.T) {
	const deferred = `<message>
Your request for this collection has been accepted and will be processed. Please try again later for access.
</message>`

	_, err := ParseCollection([]byte(deferred))
	if !errors.Is(err, ErrDeferred) {
		t.Fatalf("expected ErrDeferred, got %v", err)
	}
}

func TestParseCollectionUpstreamError(t *testing.T) {
	const errXML = `<errors><error><message>Invalid username specified</message></error></errors>`

	_, err := ParseCollection([]byte(errXML))
	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Message != "Invalid username specified" {
		t.Errorf("unexpected message %q", ue.Message)
	}
}

func TestParseCollectionUnrecognizedShape(t *testing.T) {
	_, err := ParseCollection([]byte(`<html><body>rate limited</body></html>`))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Shape != "html" {
		t.Errorf("expected shape html, got %q", pe.Shape)
	}
}

const playsXML = `<?xml version="1.0" encoding="utf-8"?>
<plays username="alice" userid="123" total="2" page="1" termsofuse="https://boardgamegeek.com/xmlapi/termsofuse">
  <play id="900001" date="2024-06-01" quantity="1">
    <item name="Gloomhaven" objecttype="thing" objectid="174430"/>
    <comments>great session</comments>
    <players>
      <player username="alice" name="Alice" score="24" win="1"/>
      <player username="" name="Bob" score="" win="0"/>
    </players>
  </play>
  <play id="900002" date="2024-05-20" quantity="2">
    <item name="Pandemic Legacy" objecttype="thing" objectid="161936"/>
  </play>
</plays>`

func TestParsePlays(t *testing.T) {
	plays, err := ParsePlays([]byte(playsXML))
	if err != nil {
		t.Fatalf("ParsePlays returned error: %v", err)
	}
	if plays.Username != "alice" || plays.Total != 2 || len(plays.Items) != 2 {
		t.Fatalf("unexpected header: %+v", plays)
	}

	play := plays.Items[0]
	if play.ID != 900001 || play.Item.ObjectID != 174430 || play.Comments != "great session" {
		t.Errorf("unexpected play: %+v", play)
	}
	if len(play.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(play.Players))
	}
	if play.Players[0].Win != 1 || play.Players[0].Score != "24" {
		t.Errorf("unexpected winner: %+v", play.Players[0])
	}
	if plays.Items[1].Quantity != 2 || len(plays.Items[1].Players) != 0 {
		t.Errorf("unexpected second play: %+v", plays.Items[1])
	}
}

const hotXML = `<?xml version="1.0" encoding="utf-8"?>
<items termsofuse="https://boardgamegeek.com/xmlapi/termsofuse">
  <item id="174430" rank="1">
    <thumbnail value="https://cf.geekdo-images.com/thumb.jpg"/>
    <name value="Gloomhaven"/>
    <yearpublished value="2017"/>
  </item>
  <item id="161936" rank="2">
    <name value="Pandemic Legacy"/>
  </item>
</items>`

func TestParseHotList(t *testing.T) {
	items, err := ParseHotList([]byte(hotXML))
	if err != nil {
		t.Fatalf("ParseHotList returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != 174430 || items[0].Rank != 1 || items[0].Name.Value != "Gloomhaven" {
		t.Errorf("unexpected first entry: %+v", items[0])
	}
	if items[1].YearPublished.Value != "" {
		t.Errorf("missing yearpublished should stay empty, got %q", items[1].YearPublished.Value)
	}
}
