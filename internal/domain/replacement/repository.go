package replacement

import (
	"context"

	"github.com/riskibarqy/draft-assistant/internal/domain/player"
)

// Repository describes replacement-level persistence needs from use cases.
// Levels are scoped to a draft session, never shared across sessions.
type Repository interface {
	Levels(ctx context.Context, sessionID int64) ([]Level, error)
	// Seed installs one row per position with the given ranks and zero
	// values for a freshly created session.
	Seed(ctx context.Context, sessionID int64, ranks map[player.Position]int) error
	UpdateRanks(ctx context.Context, sessionID int64, ranks map[player.Position]int) error
	SetValue(ctx context.Context, sessionID int64, position player.Position, value float64) error
	DeleteForSession(ctx context.Context, sessionID int64) error
}
