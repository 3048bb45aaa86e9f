package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/draft-assistant/internal/domain/player"
	"github.com/riskibarqy/draft-assistant/internal/domain/replacement"
	"github.com/riskibarqy/draft-assistant/internal/platform/logging"
)

const defaultRecomputeWorkers = 4

// ReplacementService maintains per-session replacement levels: the projected
// points of the rank-th best player at each position, the baseline every
// value score is measured against.
type ReplacementService struct {
	levels      replacement.Repository
	projections player.ProjectionRepository
	maxWorkers  int
	logger      *logging.Logger
}

func NewReplacementService(
	levels replacement.Repository,
	projections player.ProjectionRepository,
	maxWorkers int,
	logger *logging.Logger,
) *ReplacementService {
	if logger == nil {
		logger = logging.NewNop()
	}
	if maxWorkers <= 0 {
		maxWorkers = defaultRecomputeWorkers
	}

	return &ReplacementService{
		levels:      levels,
		projections: projections,
		maxWorkers:  maxWorkers,
		logger:      logger,
	}
}

func (s *ReplacementService) Levels(ctx context.Context, sessionID int64) (map[player.Position]replacement.Level, error) {
	rows, err := s.levels.Levels(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get replacement levels: %w", err)
	}

	out := make(map[player.Position]replacement.Level, len(rows))
	for _, level := range rows {
		out[level.Position] = level
	}
	return out, nil
}

// UpdateRanks changes the ranks for a session. Stored values keep their old
// baselines until the caller runs Recompute; that staleness is part of the
// contract, not a bug.
func (s *ReplacementService) UpdateRanks(ctx context.Context, sessionID int64, ranks map[player.Position]int) error {
	if len(ranks) == 0 {
		return fmt.Errorf("%w: no ranks given", ErrInvalidInput)
	}
	for position, rank := range ranks {
		if _, ok := player.AllPositions[position]; !ok {
			return fmt.Errorf("%w: unknown position %s", ErrInvalidInput, position)
		}
		if rank < 1 {
			return fmt.Errorf("%w: rank for %s must be positive, got %d", ErrInvalidInput, position, rank)
		}
	}

	if err := s.levels.UpdateRanks(ctx, sessionID, ranks); err != nil {
		return fmt.Errorf("update replacement ranks: %w", err)
	}
	return nil
}

// Recompute reads the full projection pool, sorts each position by projected
// points descending, and stores the rank-th value per position. Positions
// with fewer players than their rank get the 0.0 sentinel. The per-position
// work fans out over a bounded worker pool.
func (s *ReplacementService) Recompute(ctx context.Context, sessionID int64) (map[player.Position]float64, error) {
	ctx, span := startUsecaseSpan(ctx, "ReplacementService.Recompute")
	defer span.End()

	rows, err := s.levels.Levels(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get replacement levels: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: session=%d has no replacement levels", ErrNotFound, sessionID)
	}

	pool, err := s.projections.ListProjections(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list projections: %v", ErrDependencyUnavailable, err)
	}

	byPosition := make(map[player.Position][]float64, len(player.AllPositions))
	for _, p := range pool {
		if p.Projection == nil {
			continue
		}
		byPosition[p.Position] = append(byPosition[p.Position], *p.Projection)
	}
	for _, projections := range byPosition {
		sort.Sort(sort.Reverse(sort.Float64Slice(projections)))
	}

	workers, err := ants.NewPool(s.maxWorkers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workers.Release()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		values = make(map[player.Position]float64, len(rows))
		errs   []error
	)

	for _, row := range rows {
		level := row
		wg.Add(1)
		err := workers.Submit(func() {
			defer wg.Done()

			value := 0.0
			if projections := byPosition[level.Position]; len(projections) >= level.Rank {
				value = projections[level.Rank-1]
			}

			setErr := s.levels.SetValue(ctx, sessionID, level.Position, value)

			mu.Lock()
			defer mu.Unlock()
			if setErr != nil {
				errs = append(errs, fmt.Errorf("set replacement value for %s: %w", level.Position, setErr))
				return
			}
			values[level.Position] = value
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			errs = append(errs, fmt.Errorf("submit recompute for %s: %w", level.Position, err))
			mu.Unlock()
		}
	}
	wg.Wait()

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	s.logger.DebugContext(ctx, "replacement levels recomputed",
		"session_id", sessionID,
		"positions", len(values),
	)

	return values, nil
}
