package tycoon

import "sort"

// Leaderboard returns copies of teams ordered by revenue, highest first.
// Teams with equal revenue keep their original relative order.
func Leaderboard(teams []Team) []Team {
	ranked := make([]Team, len(teams))
	for i, t := range teams {
		ranked[i] = t.Clone()
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Metrics.Revenue > ranked[j].Metrics.Revenue
	})
	return ranked
}
