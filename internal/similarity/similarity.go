// Package similarity scores how alike two cached games are.
package similarity

import (
	"strings"

	"github.com/geekcache/geekcache/internal/database"
)

// Weights for the blended score. Name overlap dominates, with shared
// categories and mechanics breaking ties between unrelated titles.
const (
	nameWeight     = 0.4
	categoryWeight = 0.35
	mechanicWeight = 0.25
)

// Score returns a similarity in [0, 1] between two games.
func Score(a, b *database.GameRecord) float64 {
	if a == nil || b == nil {
		return 0
	}
	name := jaccard(tokens(a.Name), tokens(b.Name))
	categories := jaccard(a.Categories, b.Categories)
	mechanics := jaccard(a.Mechanics, b.Mechanics)
	return nameWeight*name + categoryWeight*categories + mechanicWeight*mechanics
}

func tokens(name string) []string {
	fields := strings.Fields(strings.ToLower(name))
	result := make([]string, 0, len(fields))
	for _, field := range fields {
		trimmed := strings.Trim(field, ",.:;!?'\"()-")
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[strings.ToLower(v)] = struct{}{}
	}

	union := len(set)
	var intersection int
	seen := make(map[string]struct{}, len(b))
	for _, v := range b {
		key := strings.ToLower(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := set[key]; ok {
			intersection++
		} else {
			union++
		}
	}

	return float64(intersection) / float64(union)
}
