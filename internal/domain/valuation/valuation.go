package valuation

import (
	"sort"

	"github.com/riskibarqy/draft-assistant/internal/domain/player"
)

// RatedPlayer is an available player augmented with draft-value scores.
type RatedPlayer struct {
	player.Player
	ValueScore float64
	VonaScore  float64
}

// ValueScore measures a projection against the position's replacement
// baseline. A zero baseline means "not computed yet" and degrades the score
// to zero instead of treating it as a legitimate low bar; a missing
// projection degrades the same way.
func ValueScore(projection *float64, replacementValue float64) float64 {
	if projection == nil || replacementValue == 0 {
		return 0
	}
	return *projection - replacementValue
}

// SortByADP stable-sorts players ascending by ADP with nil ADP last. It is
// the default presentation order for recommendations.
func SortByADP(players []RatedPlayer) {
	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i].ADP, players[j].ADP
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}
