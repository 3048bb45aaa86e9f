package valuation

import (
	"sort"

	"github.com/riskibarqy/draft-assistant/internal/domain/player"
)

// PredictNextPicks returns the players most likely to be drafted within the
// given horizon: those with ADP data, ascending by ADP, at most horizon
// entries. When excludeBestVona is set the single highest-VONA player is
// removed first, modeling "the team on the clock takes the best value" before
// predicting the rest. The input snapshot is never mutated.
func PredictNextPicks(available []RatedPlayer, horizon int, excludeBestVona bool) []RatedPlayer {
	if horizon <= 0 {
		return nil
	}

	withADP := make([]RatedPlayer, 0, len(available))
	for _, p := range available {
		if p.ADP != nil {
			withADP = append(withADP, p)
		}
	}

	if excludeBestVona && len(withADP) > 0 {
		best := 0
		for i := 1; i < len(withADP); i++ {
			if withADP[i].VonaScore > withADP[best].VonaScore {
				best = i
			}
		}
		withADP = append(withADP[:best:best], withADP[best+1:]...)
	}

	sort.SliceStable(withADP, func(i, j int) bool {
		return *withADP[i].ADP < *withADP[j].ADP
	})

	if horizon < len(withADP) {
		withADP = withADP[:horizon]
	}
	return withADP
}

// CountPositions tallies predicted picks per position. Every tracked
// position appears in the result, zero included.
func CountPositions(predicted []RatedPlayer) map[player.Position]int {
	counts := make(map[player.Position]int, len(player.PositionOrder))
	for _, pos := range player.PositionOrder {
		counts[pos] = 0
	}
	for _, p := range predicted {
		if _, ok := counts[p.Position]; ok {
			counts[p.Position]++
		}
	}
	return counts
}

// ScarcityRanks turns predicted-pick counts into the ordinal depth used as
// each position's VONA baseline: count+1 when the position is expected to be
// depleted at all, 0 when no picks at the position are expected.
func ScarcityRanks(counts map[player.Position]int) map[player.Position]int {
	ranks := make(map[player.Position]int, len(player.PositionOrder))
	for _, pos := range player.PositionOrder {
		if count := counts[pos]; count > 0 {
			ranks[pos] = count + 1
		} else {
			ranks[pos] = 0
		}
	}
	return ranks
}
