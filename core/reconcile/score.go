package reconcile

import (
	"sort"

	"arche-openrefine/core/profile"
)

// Score sums the feature values multiplied by their property weight.
func Score(features []Feature, p *profile.Profile) float64 {
	var total float64
	for _, f := range features {
		total += f.Value * p.Weight(f.ID)
	}
	return total
}

// Rank orders candidates by descending score, keeping retrieval order among
// equal scores, and truncates the list to limit.
func Rank(candidates []Candidate, limit int) []Candidate {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if limit < 0 {
		limit = 0
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
