package similarity

import (
	"testing"

	"github.com/geekcache/geekcache/internal/database"
)

func TestScoreIdenticalGames(t *testing.T) {
	game := &database.GameRecord{
		Name:       "Gloomhaven",
		Categories: []string{"Adventure", "Fantasy"},
		Mechanics:  []string{"Hand Management"},
	}

	if got := Score(game, game); got < 0.99 {
		t.Fatalf("identical games should score ~1, got %f", got)
	}
}

func TestScoreUnrelatedGames(t *testing.T) {
	a := &database.GameRecord{Name: "Gloomhaven", Categories: []string{"Adventure"}}
	b := &database.GameRecord{Name: "Agricola", Categories: []string{"Farming"}}

	if got := Score(a, b); got != 0 {
		t.Fatalf("unrelated games should score 0, got %f", got)
	}
}

func TestScoreSequelOutranksStranger(t *testing.T) {
	reference := &database.GameRecord{
		Name:       "Pandemic",
		Categories: []string{"Medical"},
		Mechanics:  []string{"Cooperative Game", "Set Collection"},
	}
	sequel := &database.GameRecord{
		Name:       "Pandemic Legacy",
		Categories: []string{"Medical"},
		Mechanics:  []string{"Cooperative Game", "Legacy Game"},
	}
	stranger := &database.GameRecord{
		Name:       "Food Chain Magnate",
		Categories: []string{"Economic"},
		Mechanics:  []string{"Network Building"},
	}

	if Score(reference, sequel) <= Score(reference, stranger) {
		t.Fatal("sequel must outrank an unrelated game")
	}
}

func TestScoreNilSafe(t *testing.T) {
	if got := Score(nil, &database.GameRecord{Name: "x"}); got != 0 {
		t.Fatalf("nil reference should score 0, got %f", got)
	}
}
