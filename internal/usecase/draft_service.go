package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/draft-assistant/internal/domain/draft"
	"github.com/riskibarqy/draft-assistant/internal/domain/player"
	"github.com/riskibarqy/draft-assistant/internal/domain/replacement"
	"github.com/riskibarqy/draft-assistant/internal/platform/logging"
)

// CreateConfigInput is the incoming payload for a new draft template.
type CreateConfigInput struct {
	Name      string `validate:"required"`
	NumTeams  int    `validate:"min=2"`
	NumRounds int    `validate:"min=1"`
	DraftType string `validate:"oneof=snake straight"`
}

// CreateSessionInput starts a live draft from an existing config. TeamNames
// is optional; when present it must name every team.
type CreateSessionInput struct {
	ConfigID  int64 `validate:"min=1"`
	Name      string
	TeamNames []string
}

// RecordPickInput captures the selected player plus the scores shown at the
// moment of the pick.
type RecordPickInput struct {
	SessionID  int64           `validate:"min=1"`
	PlayerName string          `validate:"required"`
	PlayerTeam string
	Position   player.Position `validate:"required"`
	ByeWeek    *int
	ADP        *float64
	Projection *float64
	ValueScore float64
	VonaScore  float64
}

// UpdateSettingsInput sets the per-session user preferences.
type UpdateSettingsInput struct {
	SessionID    int64 `validate:"min=1"`
	MyTeamNumber *int
	Notes        string
}

// PickInfo describes the slot currently on the clock.
type PickInfo struct {
	PickNumber  int
	RoundNumber int
	TeamNumber  int
	TeamName    string
	TotalPicks  int
}

// DraftService owns draft session state: configs, sessions, recorded picks,
// undo, and the available-player view.
type DraftService struct {
	repo         draft.Repository
	levels       replacement.Repository
	projections  player.ProjectionRepository
	defaultRanks map[player.Position]int
	validate     *validator.Validate
	logger       *logging.Logger
	now          func() time.Time
}

func NewDraftService(
	repo draft.Repository,
	levels replacement.Repository,
	projections player.ProjectionRepository,
	defaultRanks map[player.Position]int,
	logger *logging.Logger,
) *DraftService {
	if logger == nil {
		logger = logging.NewNop()
	}
	if len(defaultRanks) == 0 {
		defaultRanks = replacement.DefaultRanks()
	}

	return &DraftService{
		repo:         repo,
		levels:       levels,
		projections:  projections,
		defaultRanks: defaultRanks,
		validate:     validator.New(),
		logger:       logger,
		now:          time.Now,
	}
}

func (s *DraftService) CreateConfig(ctx context.Context, input CreateConfigInput) (draft.Config, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return draft.Config{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	config := draft.Config{
		Name:      input.Name,
		NumTeams:  input.NumTeams,
		NumRounds: input.NumRounds,
		Type:      draft.Type(input.DraftType),
		CreatedAt: s.now().UTC(),
	}
	if err := config.Validate(); err != nil {
		return draft.Config{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.CreateConfig(ctx, config)
	if err != nil {
		return draft.Config{}, fmt.Errorf("create draft config: %w", err)
	}

	s.logger.InfoContext(ctx, "draft config created",
		"config_id", created.ID,
		"num_teams", created.NumTeams,
		"num_rounds", created.NumRounds,
		"draft_type", created.Type,
	)

	return created, nil
}

func (s *DraftService) CreateSession(ctx context.Context, input CreateSessionInput) (draft.Session, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return draft.Session{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	config, exists, err := s.repo.GetConfig(ctx, input.ConfigID)
	if err != nil {
		return draft.Session{}, fmt.Errorf("get draft config: %w", err)
	}
	if !exists {
		return draft.Session{}, fmt.Errorf("%w: config=%d", ErrNotFound, input.ConfigID)
	}

	if len(input.TeamNames) > 0 && len(input.TeamNames) != config.NumTeams {
		return draft.Session{}, fmt.Errorf("%w: expected %d team names, got %d",
			ErrInvalidInput, config.NumTeams, len(input.TeamNames))
	}

	names := make(map[int]string, config.NumTeams)
	for teamNumber := 1; teamNumber <= config.NumTeams; teamNumber++ {
		name := draft.DefaultTeamName(teamNumber)
		if len(input.TeamNames) > 0 {
			if override := strings.TrimSpace(input.TeamNames[teamNumber-1]); override != "" {
				name = override
			}
		}
		names[teamNumber] = name
	}

	now := s.now().UTC()
	session := draft.Session{
		ConfigID:     config.ID,
		Name:         input.Name,
		CurrentPick:  1,
		CurrentRound: 1,
		CurrentTeam:  1,
		Status:       draft.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.CreateSession(ctx, session, names)
	if err != nil {
		return draft.Session{}, fmt.Errorf("create draft session: %w", err)
	}

	if err := s.levels.Seed(ctx, created.ID, s.defaultRanks); err != nil {
		return draft.Session{}, fmt.Errorf("seed replacement levels: %w", err)
	}

	s.logger.InfoContext(ctx, "draft session created",
		"session_id", created.ID,
		"config_id", config.ID,
	)

	return created, nil
}

func (s *DraftService) GetSession(ctx context.Context, sessionID int64) (draft.Session, error) {
	session, _, err := s.sessionWithConfig(ctx, sessionID)
	return session, err
}

func (s *DraftService) ListSessions(ctx context.Context) ([]draft.SessionSummary, error) {
	sessions, err := s.repo.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list draft sessions: %w", err)
	}
	return sessions, nil
}

// MostRecentSession returns the latest-updated session, if any. Session
// pickers use it to resume a draft after a page reload.
func (s *DraftService) MostRecentSession(ctx context.Context) (draft.SessionSummary, bool, error) {
	sessions, err := s.ListSessions(ctx)
	if err != nil {
		return draft.SessionSummary{}, false, err
	}
	if len(sessions) == 0 {
		return draft.SessionSummary{}, false, nil
	}
	return sessions[0], true, nil
}

// CurrentPickInfo resolves the slot on the clock. A nil result means the
// draft is complete.
func (s *DraftService) CurrentPickInfo(ctx context.Context, sessionID int64) (*PickInfo, error) {
	session, config, err := s.sessionWithConfig(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.CurrentPick > config.TotalPicks() {
		return nil, nil
	}

	order := draft.Order(config.NumTeams, config.NumRounds, config.Type)
	slot := order[session.CurrentPick-1]

	names, err := s.repo.TeamNames(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get team names: %w", err)
	}
	name, ok := names[slot.Team]
	if !ok || name == "" {
		name = draft.DefaultTeamName(slot.Team)
	}

	return &PickInfo{
		PickNumber:  slot.Pick,
		RoundNumber: slot.Round,
		TeamNumber:  slot.Team,
		TeamName:    name,
		TotalPicks:  config.TotalPicks(),
	}, nil
}

// RecordPick writes the pick at the current slot and advances the session,
// completing it when the order is exhausted. The write and the pointer move
// are one transaction in the repository.
func (s *DraftService) RecordPick(ctx context.Context, input RecordPickInput) (draft.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "DraftService.RecordPick")
	defer span.End()

	input.PlayerName = strings.TrimSpace(input.PlayerName)
	input.PlayerTeam = strings.TrimSpace(input.PlayerTeam)
	if err := s.validate.Struct(input); err != nil {
		return draft.Pick{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, ok := player.AllPositions[input.Position]; !ok {
		return draft.Pick{}, fmt.Errorf("%w: unknown position %s", ErrInvalidInput, input.Position)
	}

	session, config, err := s.sessionWithConfig(ctx, input.SessionID)
	if err != nil {
		return draft.Pick{}, err
	}

	if session.CurrentPick > config.TotalPicks() {
		return draft.Pick{}, fmt.Errorf("%w: draft is complete", ErrNoActivePick)
	}

	order := draft.Order(config.NumTeams, config.NumRounds, config.Type)
	slot := order[session.CurrentPick-1]

	pick := draft.Pick{
		SessionID:   session.ID,
		PickNumber:  slot.Pick,
		RoundNumber: slot.Round,
		TeamNumber:  slot.Team,
		PlayerKey:   player.SyntheticKey(input.PlayerName, input.Position, input.PlayerTeam),
		PlayerName:  input.PlayerName,
		PlayerTeam:  input.PlayerTeam,
		Position:    input.Position,
		ByeWeek:     input.ByeWeek,
		ADP:         input.ADP,
		Projection:  input.Projection,
		ValueScore:  input.ValueScore,
		VonaScore:   input.VonaScore,
		CreatedAt:   s.now().UTC(),
	}
	if err := pick.Validate(); err != nil {
		return draft.Pick{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var next *draft.Slot
	if session.CurrentPick < config.TotalPicks() {
		nextSlot := order[session.CurrentPick]
		next = &nextSlot
	}

	if err := s.repo.RecordPick(ctx, pick, next); err != nil {
		return draft.Pick{}, fmt.Errorf("record pick: %w", err)
	}

	s.logger.InfoContext(ctx, "pick recorded",
		"session_id", session.ID,
		"pick_number", pick.PickNumber,
		"round", pick.RoundNumber,
		"team", pick.TeamNumber,
		"player", pick.PlayerName,
		"position", pick.Position,
	)

	return pick, nil
}

// UndoLastPick removes the most recent pick and rewinds the session to that
// slot, reopening a completed draft. Only the most recent pick is ever
// removable.
func (s *DraftService) UndoLastPick(ctx context.Context, sessionID int64) (draft.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "DraftService.UndoLastPick")
	defer span.End()

	if _, _, err := s.sessionWithConfig(ctx, sessionID); err != nil {
		return draft.Pick{}, err
	}

	pick, undone, err := s.repo.UndoLastPick(ctx, sessionID)
	if err != nil {
		return draft.Pick{}, fmt.Errorf("undo last pick: %w", err)
	}
	if !undone {
		return draft.Pick{}, fmt.Errorf("%w: no picks recorded", ErrNoActivePick)
	}

	s.logger.InfoContext(ctx, "pick undone",
		"session_id", sessionID,
		"pick_number", pick.PickNumber,
		"player", pick.PlayerName,
	)

	return pick, nil
}

func (s *DraftService) ListPicks(ctx context.Context, sessionID int64) ([]draft.Pick, error) {
	if _, _, err := s.sessionWithConfig(ctx, sessionID); err != nil {
		return nil, err
	}

	picks, err := s.repo.ListPicks(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}
	return picks, nil
}

// TeamRoster returns one team's picks in draft order.
func (s *DraftService) TeamRoster(ctx context.Context, sessionID int64, teamNumber int) ([]draft.Pick, error) {
	_, config, err := s.sessionWithConfig(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if teamNumber < 1 || teamNumber > config.NumTeams {
		return nil, fmt.Errorf("%w: team %d out of range 1..%d", ErrInvalidInput, teamNumber, config.NumTeams)
	}

	picks, err := s.repo.ListPicks(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}

	roster := make([]draft.Pick, 0, config.NumRounds)
	for _, pick := range picks {
		if pick.TeamNumber == teamNumber {
			roster = append(roster, pick)
		}
	}
	return roster, nil
}

// AvailablePlayers is the projection pool minus everyone already drafted in
// the session, ordered by ADP ascending with unknown ADP last. Exclusion
// joins on the synthetic player key with a normalized-name fallback for rows
// recorded before keys existed.
func (s *DraftService) AvailablePlayers(ctx context.Context, sessionID int64) ([]player.Player, error) {
	if _, _, err := s.sessionWithConfig(ctx, sessionID); err != nil {
		return nil, err
	}

	picks, err := s.repo.ListPicks(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}

	pool, err := s.projections.ListProjections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projections: %w", err)
	}

	draftedKeys := make(map[string]struct{}, len(picks))
	draftedNames := make(map[string]struct{}, len(picks))
	for _, pick := range picks {
		if pick.PlayerKey != "" {
			draftedKeys[pick.PlayerKey] = struct{}{}
		}
		draftedNames[player.NormalizeName(pick.PlayerName)] = struct{}{}
	}

	available := make([]player.Player, 0, len(pool))
	for _, p := range pool {
		if _, drafted := draftedKeys[p.Key()]; drafted {
			continue
		}
		if _, drafted := draftedNames[player.NormalizeName(p.Name)]; drafted {
			continue
		}
		available = append(available, p)
	}

	sort.SliceStable(available, func(i, j int) bool {
		a, b := available[i].ADP, available[j].ADP
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})

	return available, nil
}

func (s *DraftService) TeamNames(ctx context.Context, sessionID int64) (map[int]string, error) {
	_, config, err := s.sessionWithConfig(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	names, err := s.repo.TeamNames(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get team names: %w", err)
	}

	out := make(map[int]string, config.NumTeams)
	for teamNumber := 1; teamNumber <= config.NumTeams; teamNumber++ {
		if name, ok := names[teamNumber]; ok && name != "" {
			out[teamNumber] = name
			continue
		}
		out[teamNumber] = draft.DefaultTeamName(teamNumber)
	}
	return out, nil
}

func (s *DraftService) UpdateTeamNames(ctx context.Context, sessionID int64, teamNames []string) error {
	_, config, err := s.sessionWithConfig(ctx, sessionID)
	if err != nil {
		return err
	}
	if len(teamNames) != config.NumTeams {
		return fmt.Errorf("%w: expected %d team names, got %d", ErrInvalidInput, config.NumTeams, len(teamNames))
	}

	names := make(map[int]string, config.NumTeams)
	for i, raw := range teamNames {
		name := strings.TrimSpace(raw)
		if name == "" {
			name = draft.DefaultTeamName(i + 1)
		}
		names[i+1] = name
	}

	if err := s.repo.UpdateTeamNames(ctx, sessionID, names); err != nil {
		return fmt.Errorf("update team names: %w", err)
	}
	return nil
}

func (s *DraftService) Settings(ctx context.Context, sessionID int64) (draft.Settings, error) {
	if _, _, err := s.sessionWithConfig(ctx, sessionID); err != nil {
		return draft.Settings{}, err
	}

	settings, exists, err := s.repo.GetSettings(ctx, sessionID)
	if err != nil {
		return draft.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	if !exists {
		return draft.Settings{SessionID: sessionID}, nil
	}
	return settings, nil
}

func (s *DraftService) UpdateSettings(ctx context.Context, input UpdateSettingsInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, config, err := s.sessionWithConfig(ctx, input.SessionID)
	if err != nil {
		return err
	}
	if input.MyTeamNumber != nil && (*input.MyTeamNumber < 1 || *input.MyTeamNumber > config.NumTeams) {
		return fmt.Errorf("%w: my team %d out of range 1..%d", ErrInvalidInput, *input.MyTeamNumber, config.NumTeams)
	}

	settings := draft.Settings{
		SessionID:    input.SessionID,
		MyTeamNumber: input.MyTeamNumber,
		Notes:        strings.TrimSpace(input.Notes),
		UpdatedAt:    s.now().UTC(),
	}
	if err := s.repo.UpsertSettings(ctx, settings); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

// DeleteSession cascades the session's picks, team names, settings, and
// replacement levels; the config is removed once orphaned.
func (s *DraftService) DeleteSession(ctx context.Context, sessionID int64) error {
	if _, _, err := s.sessionWithConfig(ctx, sessionID); err != nil {
		return err
	}

	if err := s.repo.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if err := s.levels.DeleteForSession(ctx, sessionID); err != nil {
		return fmt.Errorf("delete replacement levels: %w", err)
	}

	s.logger.InfoContext(ctx, "draft session deleted", "session_id", sessionID)
	return nil
}

func (s *DraftService) sessionWithConfig(ctx context.Context, sessionID int64) (draft.Session, draft.Config, error) {
	session, exists, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return draft.Session{}, draft.Config{}, fmt.Errorf("get session: %w", err)
	}
	if !exists {
		return draft.Session{}, draft.Config{}, fmt.Errorf("%w: session=%d", ErrNotFound, sessionID)
	}

	config, exists, err := s.repo.GetConfig(ctx, session.ConfigID)
	if err != nil {
		return draft.Session{}, draft.Config{}, fmt.Errorf("get config: %w", err)
	}
	if !exists {
		return draft.Session{}, draft.Config{}, fmt.Errorf("config %d missing for session %d", session.ConfigID, sessionID)
	}

	return session, config, nil
}
