package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/draft-assistant/internal/domain/draft"
	"github.com/riskibarqy/draft-assistant/internal/domain/player"
	"github.com/riskibarqy/draft-assistant/internal/domain/replacement"
	"github.com/riskibarqy/draft-assistant/internal/domain/valuation"
	"github.com/riskibarqy/draft-assistant/internal/platform/logging"
)

// ValuationService layers value scores, scarcity prediction, and VONA on top
// of the draft state. It reads through DraftService so the available pool
// and scores always agree on the same picks.
type ValuationService struct {
	drafts *DraftService
	levels replacement.Repository
	strict bool
	logger *logging.Logger
}

// NewValuationService wires the scoring pipeline. When strict is set,
// scoring fails with ErrReplacementNotReady if any position present in the
// available pool still has a zero replacement value; otherwise those players
// degrade to a zero value score.
func NewValuationService(
	drafts *DraftService,
	levels replacement.Repository,
	strict bool,
	logger *logging.Logger,
) *ValuationService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &ValuationService{
		drafts: drafts,
		levels: levels,
		strict: strict,
		logger: logger,
	}
}

// Recommendations scores every available player for the session: value
// score against the replacement baseline, then VONA against the scarcity
// forecast for the picks before the drafter's next turn. The result is
// ordered by ADP ascending with unknown ADP last.
func (s *ValuationService) Recommendations(ctx context.Context, sessionID int64) ([]valuation.RatedPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "ValuationService.Recommendations")
	defer span.End()

	session, config, err := s.drafts.sessionWithConfig(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	rated, err := s.ratedAvailable(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Past the final pick there is no next turn to forecast, so VONA
	// collapses to zero and only value scores remain meaningful.
	if session.CurrentPick > config.TotalPicks() {
		valuation.SortByADP(rated)
		return rated, nil
	}

	horizon := draft.PicksUntilNextTurn(session.CurrentPick, config.NumTeams, config.Type)
	predicted := valuation.PredictNextPicks(rated, horizon, false)
	ranks := valuation.ScarcityRanks(valuation.CountPositions(predicted))

	scored := valuation.ApplyVona(rated, ranks)
	valuation.SortByADP(scored)

	s.logger.DebugContext(ctx, "recommendations scored",
		"session_id", sessionID,
		"available", len(scored),
		"horizon", horizon,
	)

	return scored, nil
}

// PredictedNextPicks returns the ADP-likely selections before the drafter is
// back on the clock. excludeBestVona drops the single highest-VONA player
// from the forecast, modeling the drafter taking that player themselves.
func (s *ValuationService) PredictedNextPicks(ctx context.Context, sessionID int64, excludeBestVona bool) ([]valuation.RatedPlayer, error) {
	session, config, err := s.drafts.sessionWithConfig(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.CurrentPick > config.TotalPicks() {
		return nil, nil
	}

	scored, err := s.Recommendations(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	horizon := draft.PicksUntilNextTurn(session.CurrentPick, config.NumTeams, config.Type)
	return valuation.PredictNextPicks(scored, horizon, excludeBestVona), nil
}

// RecordScoredPick looks the player up in the current recommendations and
// records the pick with the bye/ADP/projection and value/VONA scores shown
// at that moment. A player outside the projection pool is recorded as given,
// with no scores to capture.
func (s *ValuationService) RecordScoredPick(ctx context.Context, sessionID int64, name string, position player.Position, team string) (draft.Pick, error) {
	scored, err := s.Recommendations(ctx, sessionID)
	if err != nil {
		return draft.Pick{}, err
	}

	input := RecordPickInput{
		SessionID:  sessionID,
		PlayerName: name,
		PlayerTeam: team,
		Position:   position,
	}

	if matched, ok := matchRatedPlayer(scored, name, position, team); ok {
		input.PlayerName = matched.Name
		input.PlayerTeam = matched.Team
		input.ByeWeek = matched.ByeWeek
		input.ADP = matched.ADP
		input.Projection = matched.Projection
		input.ValueScore = matched.ValueScore
		input.VonaScore = matched.VonaScore
	}

	return s.drafts.RecordPick(ctx, input)
}

func matchRatedPlayer(scored []valuation.RatedPlayer, name string, position player.Position, team string) (valuation.RatedPlayer, bool) {
	key := player.SyntheticKey(name, position, team)
	for _, p := range scored {
		if p.Key() == key {
			return p, true
		}
	}

	normalized := player.NormalizeName(name)
	for _, p := range scored {
		if p.Position == position && player.NormalizeName(p.Name) == normalized {
			return p, true
		}
	}

	return valuation.RatedPlayer{}, false
}

// ratedAvailable joins the available pool with the session's replacement
// levels to produce value scores. VONA is left at zero for the caller.
func (s *ValuationService) ratedAvailable(ctx context.Context, sessionID int64) ([]valuation.RatedPlayer, error) {
	available, err := s.drafts.AvailablePlayers(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	rows, err := s.levels.Levels(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get replacement levels: %w", err)
	}
	baselines := make(map[player.Position]float64, len(rows))
	for _, level := range rows {
		baselines[level.Position] = level.Value
	}

	if s.strict {
		for _, p := range available {
			if baselines[p.Position] == 0 {
				return nil, fmt.Errorf("%w: position %s has no replacement value", ErrReplacementNotReady, p.Position)
			}
		}
	}

	rated := make([]valuation.RatedPlayer, 0, len(available))
	for _, p := range available {
		rated = append(rated, valuation.RatedPlayer{
			Player:     p,
			ValueScore: valuation.ValueScore(p.Projection, baselines[p.Position]),
		})
	}
	return rated, nil
}
