package draft

// Slot is one entry in the full draft order, all coordinates 1-indexed.
type Slot struct {
	Pick  int
	Round int
	Team  int
}

// Order expands a draft shape into the complete ordered pick sequence.
// Straight drafts iterate teams 1..N every round; snake drafts reverse the
// direction on even rounds.
func Order(numTeams, numRounds int, t Type) []Slot {
	order := make([]Slot, 0, numTeams*numRounds)
	pick := 1
	for round := 1; round <= numRounds; round++ {
		reversed := t == TypeSnake && round%2 == 0
		for i := 0; i < numTeams; i++ {
			team := i + 1
			if reversed {
				team = numTeams - i
			}
			order = append(order, Slot{Pick: pick, Round: round, Team: team})
			pick++
		}
	}
	return order
}

// PicksUntilNextTurn counts how many picks happen between currentPick and the
// same team's next turn. In a snake draft the team's slot mirrors across the
// round boundary, which also makes the last slot of a round pick twice in a
// row (distance 0) without special casing.
func PicksUntilNextTurn(currentPick, numTeams int, t Type) int {
	positionInRound := ((currentPick - 1) % numTeams) + 1
	remainingInRound := numTeams - positionInRound

	var nextRoundPosition int
	if t == TypeSnake {
		nextRoundPosition = numTeams - positionInRound + 1
	} else {
		nextRoundPosition = positionInRound
	}

	return remainingInRound + nextRoundPosition - 1
}
