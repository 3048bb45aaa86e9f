package valuation

import (
	"sort"

	"github.com/riskibarqy/draft-assistant/internal/domain/player"
)

// ApplyVona returns a copy of the available players with VONA scores filled
// in from the given scarcity ranks.
//
// For an undepleted position (rank 0) the baseline is the best value score
// still available there, so the top player scores exactly 0 and everyone else
// measures the reach below them. For rank k the baseline is the k-th best
// value score; when fewer than k players remain the position is considered
// fully depleted and the raw value score passes through undiscounted.
func ApplyVona(available []RatedPlayer, scarcityRanks map[player.Position]int) []RatedPlayer {
	byPosition := make(map[player.Position][]float64)
	for _, p := range available {
		byPosition[p.Position] = append(byPosition[p.Position], p.ValueScore)
	}
	for _, scores := range byPosition {
		sort.SliceStable(scores, func(i, j int) bool { return scores[i] > scores[j] })
	}

	out := make([]RatedPlayer, len(available))
	for i, p := range available {
		out[i] = p
		scores := byPosition[p.Position]
		if len(scores) == 0 {
			out[i].VonaScore = 0
			continue
		}

		rank := scarcityRanks[p.Position]
		switch {
		case rank == 0:
			out[i].VonaScore = p.ValueScore - scores[0]
		case rank <= len(scores):
			out[i].VonaScore = p.ValueScore - scores[rank-1]
		default:
			out[i].VonaScore = p.ValueScore
		}
	}
	return out
}
