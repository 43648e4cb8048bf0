package usecase

import (
	"context"
	"sort"

	"github.com/geekcache/geekcache/internal/database"
	"github.com/geekcache/geekcache/internal/similarity"
)

const defaultSimilarLimit = 10

// ScoredGame pairs a game with its similarity to a reference game.
type ScoredGame struct {
	Game  database.GameRecord
	Score float64
}

// FindSimilar scores every cached game against the reference game,
// which is made fresh first. A nil result means the reference game does
// not exist upstream.
func (o *Operations) FindSimilar(ctx context.Context, id int64, limit int) ([]ScoredGame, error) {
	reference, err := o.EnsureGameFresh(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if reference == nil {
		return nil, nil
	}

	if limit <= 0 {
		limit = defaultSimilarLimit
	}

	candidates, err := o.games.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	scored := make([]ScoredGame, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == reference.ID {
			continue
		}
		if score := similarity.Score(reference, &candidate); score > 0 {
			scored = append(scored, ScoredGame{Game: candidate, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}
