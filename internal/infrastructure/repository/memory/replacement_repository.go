package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/draft-assistant/internal/domain/player"
	"github.com/riskibarqy/draft-assistant/internal/domain/replacement"
)

type ReplacementRepository struct {
	mu     sync.RWMutex
	levels map[int64]map[player.Position]replacement.Level
}

func NewReplacementRepository() *ReplacementRepository {
	return &ReplacementRepository{levels: make(map[int64]map[player.Position]replacement.Level)}
}

func (r *ReplacementRepository) Levels(_ context.Context, sessionID int64) ([]replacement.Level, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.levels[sessionID]
	out := make([]replacement.Level, 0, len(rows))
	for _, level := range rows {
		out = append(out, level)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *ReplacementRepository) Seed(_ context.Context, sessionID int64, ranks map[player.Position]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make(map[player.Position]replacement.Level, len(ranks))
	for position, rank := range ranks {
		rows[position] = replacement.Level{
			SessionID: sessionID,
			Position:  position,
			Rank:      rank,
		}
	}
	r.levels[sessionID] = rows

	return nil
}

func (r *ReplacementRepository) UpdateRanks(_ context.Context, sessionID int64, ranks map[player.Position]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, ok := r.levels[sessionID]
	if !ok {
		return nil
	}
	for position, rank := range ranks {
		level, ok := rows[position]
		if !ok {
			level = replacement.Level{SessionID: sessionID, Position: position}
		}
		level.Rank = rank
		rows[position] = level
	}

	return nil
}

func (r *ReplacementRepository) SetValue(_ context.Context, sessionID int64, position player.Position, value float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, ok := r.levels[sessionID]
	if !ok {
		return nil
	}
	level, ok := rows[position]
	if !ok {
		return nil
	}
	level.Value = value
	rows[position] = level

	return nil
}

func (r *ReplacementRepository) DeleteForSession(_ context.Context, sessionID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.levels, sessionID)
	return nil
}
