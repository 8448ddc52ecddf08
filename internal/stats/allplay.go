package stats

import "sort"

// AllPlayPct computes each team's seasonal all-play win rate: for every week
// it appears in, the fraction of the other teams it outscored, averaged over
// those weeks. Ties count for neither side. Weeks with one team or fewer
// contribute nothing. Results are always in [0, 1].
//
// Weeks are walked in ascending order so the float accumulation is
// bit-identical across runs on the same input.
func AllPlayPct(scores map[int]map[string]float64) map[string]float64 {
	weeks := make([]int, 0, len(scores))
	for w := range scores {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)

	fracs := make(map[string]float64)
	appearances := make(map[string]int)

	for _, w := range weeks {
		field := scores[w]
		n := len(field)
		if n <= 1 {
			continue
		}
		for team, score := range field {
			beaten := 0
			for other, otherScore := range field {
				if other != team && score > otherScore {
					beaten++
				}
			}
			fracs[team] += float64(beaten) / float64(n-1)
			appearances[team]++
		}
	}

	pct := make(map[string]float64, len(fracs))
	for team, total := range fracs {
		pct[team] = total / float64(appearances[team])
	}
	return pct
}
