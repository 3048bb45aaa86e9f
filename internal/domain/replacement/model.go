package replacement

import (
	"fmt"
	"time"

	"github.com/riskibarqy/draft-assistant/internal/domain/player"
)

// Level is the replacement baseline for one position within one session.
// Rank is user configured; Value is recomputed on demand from the projection
// pool and holds 0 until the first recompute (the "unset" sentinel).
type Level struct {
	SessionID int64
	Position  player.Position
	Rank      int
	Value     float64
	UpdatedAt time.Time
}

func (l Level) Validate() error {
	if l.SessionID == 0 {
		return fmt.Errorf("replacement level session id is required")
	}
	if _, ok := player.AllPositions[l.Position]; !ok {
		return fmt.Errorf("invalid replacement position: %s", l.Position)
	}
	if l.Rank < 1 {
		return fmt.Errorf("replacement rank must be >= 1, got %d", l.Rank)
	}

	return nil
}

// DefaultRanks are the stock replacement ranks seeded into every new session.
func DefaultRanks() map[player.Position]int {
	return map[player.Position]int{
		player.PositionQuarterback:  22,
		player.PositionRunningBack:  36,
		player.PositionWideReceiver: 48,
		player.PositionTightEnd:     18,
		player.PositionKicker:       12,
		player.PositionDefense:      12,
	}
}
