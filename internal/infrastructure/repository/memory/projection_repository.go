package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/draft-assistant/internal/domain/player"
)

type ProjectionRepository struct {
	mu      sync.RWMutex
	players []player.Player
}

func NewProjectionRepository(players []player.Player) *ProjectionRepository {
	items := make([]player.Player, 0, len(players))
	items = append(items, players...)

	return &ProjectionRepository{players: items}
}

func (r *ProjectionRepository) ListProjections(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	out = append(out, r.players...)
	return out, nil
}

// Replace swaps the projection pool, used when a new projection file lands.
func (r *ProjectionRepository) Replace(_ context.Context, players []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]player.Player, 0, len(players))
	items = append(items, players...)
	r.players = items

	return nil
}
