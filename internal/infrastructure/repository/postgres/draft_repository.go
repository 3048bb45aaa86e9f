package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/draft-assistant/internal/domain/draft"
	"github.com/riskibarqy/draft-assistant/internal/domain/player"
	qb "github.com/riskibarqy/draft-assistant/internal/platform/querybuilder"
)

type DraftRepository struct {
	db *sqlx.DB
}

func NewDraftRepository(db *sqlx.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

func (r *DraftRepository) CreateConfig(ctx context.Context, config draft.Config) (draft.Config, error) {
	query, args, err := qb.InsertModel("draft_configs", configToRow(config), "RETURNING id", "id")
	if err != nil {
		return draft.Config{}, fmt.Errorf("build insert draft config query: %w", err)
	}

	if err := r.db.GetContext(ctx, &config.ID, query, args...); err != nil {
		return draft.Config{}, fmt.Errorf("insert draft config: %w", err)
	}

	return config, nil
}

func (r *DraftRepository) GetConfig(ctx context.Context, configID int64) (draft.Config, bool, error) {
	query, args, err := qb.Select("*").From("draft_configs").
		Where(qb.Eq("id", configID)).
		ToSQL()
	if err != nil {
		return draft.Config{}, false, fmt.Errorf("build get draft config query: %w", err)
	}

	var row draftConfigTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return draft.Config{}, false, nil
		}
		return draft.Config{}, false, fmt.Errorf("get draft config: %w", err)
	}

	return configFromRow(row), true, nil
}

func (r *DraftRepository) CreateSession(ctx context.Context, session draft.Session, teamNames map[int]string) (draft.Session, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return draft.Session{}, fmt.Errorf("begin tx create draft session: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	sessionQuery, sessionArgs, err := qb.InsertModel("draft_sessions", sessionToRow(session), "RETURNING id", "id")
	if err != nil {
		return draft.Session{}, fmt.Errorf("build insert draft session query: %w", err)
	}
	if err := tx.GetContext(ctx, &session.ID, sessionQuery, sessionArgs...); err != nil {
		return draft.Session{}, fmt.Errorf("insert draft session: %w", err)
	}

	if len(teamNames) > 0 {
		builder := qb.InsertInto("draft_teams").Columns("session_id", "team_number", "name")
		for teamNumber := 1; teamNumber <= len(teamNames); teamNumber++ {
			name, ok := teamNames[teamNumber]
			if !ok {
				continue
			}
			builder.Values(session.ID, teamNumber, name)
		}
		teamsQuery, teamsArgs, err := builder.ToSQL()
		if err != nil {
			return draft.Session{}, fmt.Errorf("build insert draft teams query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, teamsQuery, teamsArgs...); err != nil {
			return draft.Session{}, fmt.Errorf("insert draft teams: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return draft.Session{}, fmt.Errorf("commit create draft session tx: %w", err)
	}

	return session, nil
}

func (r *DraftRepository) GetSession(ctx context.Context, sessionID int64) (draft.Session, bool, error) {
	query, args, err := qb.Select("*").From("draft_sessions").
		Where(qb.Eq("id", sessionID)).
		ToSQL()
	if err != nil {
		return draft.Session{}, false, fmt.Errorf("build get draft session query: %w", err)
	}

	var row draftSessionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return draft.Session{}, false, nil
		}
		return draft.Session{}, false, fmt.Errorf("get draft session: %w", err)
	}

	return sessionFromRow(row), true, nil
}

func (r *DraftRepository) ListSessions(ctx context.Context) ([]draft.SessionSummary, error) {
	query, args, err := qb.Select(
		"s.id", "s.config_id", "s.name", "s.current_pick", "s.current_round", "s.current_team",
		"s.status", "s.created_at", "s.updated_at",
		"c.name AS config_name", "c.num_teams", "c.num_rounds", "c.draft_type",
		"(SELECT COUNT(*) FROM draft_picks p WHERE p.session_id = s.id) AS picks_made",
	).
		From("draft_sessions s JOIN draft_configs c ON c.id = s.config_id").
		OrderBy("s.updated_at DESC", "s.id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list draft sessions query: %w", err)
	}

	var rows []draftSessionSummaryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list draft sessions: %w", err)
	}

	out := make([]draft.SessionSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, draft.SessionSummary{
			Session:    sessionFromRow(row.draftSessionTableModel),
			ConfigName: row.ConfigName,
			NumTeams:   row.NumTeams,
			NumRounds:  row.NumRounds,
			Type:       draft.Type(row.DraftType),
			PicksMade:  row.PicksMade,
		})
	}

	return out, nil
}

func (r *DraftRepository) DeleteSession(ctx context.Context, sessionID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx delete draft session: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var configID int64
	configQuery, configArgs, err := qb.Select("config_id").From("draft_sessions").
		Where(qb.Eq("id", sessionID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build get session config query: %w", err)
	}
	if err := tx.GetContext(ctx, &configID, configQuery, configArgs...); err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("get session config: %w", err)
	}

	// Picks, teams, settings, and replacement levels go with the session via
	// ON DELETE CASCADE.
	deleteQuery, deleteArgs, err := qb.DeleteFrom("draft_sessions").
		Where(qb.Eq("id", sessionID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete draft session query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete draft session: %w", err)
	}

	configDeleteQuery, configDeleteArgs, err := qb.DeleteFrom("draft_configs").
		Where(
			qb.Eq("id", configID),
			qb.Expr("NOT EXISTS (SELECT 1 FROM draft_sessions WHERE config_id = ?)", configID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete orphan config query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, configDeleteQuery, configDeleteArgs...); err != nil {
		return fmt.Errorf("delete orphan config: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete draft session tx: %w", err)
	}

	return nil
}

func (r *DraftRepository) RecordPick(ctx context.Context, pick draft.Pick, next *draft.Slot) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx record pick: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	pickQuery, pickArgs, err := qb.InsertModel("draft_picks", pickToRow(pick), "", "id")
	if err != nil {
		return fmt.Errorf("build insert pick query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, pickQuery, pickArgs...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: session=%d pick=%d", draft.ErrDuplicatePick, pick.SessionID, pick.PickNumber)
		}
		return fmt.Errorf("insert pick: %w", err)
	}

	sessionBuilder := qb.Update("draft_sessions").Where(qb.Eq("id", pick.SessionID))
	if next != nil {
		sessionBuilder.
			Set("current_pick", next.Pick).
			Set("current_round", next.Round).
			Set("current_team", next.Team).
			Set("status", string(draft.StatusActive)).
			Set("updated_at", pick.CreatedAt)
	} else {
		sessionBuilder.
			Set("current_pick", pick.PickNumber+1).
			Set("status", string(draft.StatusCompleted)).
			Set("updated_at", pick.CreatedAt)
	}
	sessionQuery, sessionArgs, err := sessionBuilder.ToSQL()
	if err != nil {
		return fmt.Errorf("build advance session query: %w", err)
	}
	result, err := tx.ExecContext(ctx, sessionQuery, sessionArgs...)
	if err != nil {
		return fmt.Errorf("advance session: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected advance session: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("advance session: not found")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit record pick tx: %w", err)
	}

	return nil
}

func (r *DraftRepository) UndoLastPick(ctx context.Context, sessionID int64) (draft.Pick, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return draft.Pick{}, false, fmt.Errorf("begin tx undo pick: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	lastQuery, lastArgs, err := qb.Select("*").From("draft_picks").
		Where(qb.Eq("session_id", sessionID)).
		OrderBy("pick_number DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return draft.Pick{}, false, fmt.Errorf("build get last pick query: %w", err)
	}

	var row draftPickTableModel
	if err := tx.GetContext(ctx, &row, lastQuery, lastArgs...); err != nil {
		if isNotFound(err) {
			return draft.Pick{}, false, nil
		}
		return draft.Pick{}, false, fmt.Errorf("get last pick: %w", err)
	}

	deleteQuery, deleteArgs, err := qb.DeleteFrom("draft_picks").
		Where(qb.Eq("id", row.ID)).
		ToSQL()
	if err != nil {
		return draft.Pick{}, false, fmt.Errorf("build delete pick query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return draft.Pick{}, false, fmt.Errorf("delete pick: %w", err)
	}

	rewindQuery, rewindArgs, err := qb.Update("draft_sessions").
		Set("current_pick", row.PickNumber).
		Set("current_round", row.RoundNumber).
		Set("current_team", row.TeamNumber).
		Set("status", string(draft.StatusActive)).
		Where(qb.Eq("id", sessionID)).
		ToSQL()
	if err != nil {
		return draft.Pick{}, false, fmt.Errorf("build rewind session query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, rewindQuery, rewindArgs...); err != nil {
		return draft.Pick{}, false, fmt.Errorf("rewind session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return draft.Pick{}, false, fmt.Errorf("commit undo pick tx: %w", err)
	}

	return pickFromRow(row), true, nil
}

func (r *DraftRepository) ListPicks(ctx context.Context, sessionID int64) ([]draft.Pick, error) {
	query, args, err := qb.Select("*").From("draft_picks").
		Where(qb.Eq("session_id", sessionID)).
		OrderBy("pick_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list picks query: %w", err)
	}

	var rows []draftPickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}

	out := make([]draft.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pickFromRow(row))
	}
	return out, nil
}

func (r *DraftRepository) TeamNames(ctx context.Context, sessionID int64) (map[int]string, error) {
	query, args, err := qb.Select("*").From("draft_teams").
		Where(qb.Eq("session_id", sessionID)).
		OrderBy("team_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team names query: %w", err)
	}

	var rows []draftTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team names: %w", err)
	}

	out := make(map[int]string, len(rows))
	for _, row := range rows {
		out[row.TeamNumber] = row.Name
	}
	return out, nil
}

func (r *DraftRepository) UpdateTeamNames(ctx context.Context, sessionID int64, names map[int]string) error {
	if len(names) == 0 {
		return nil
	}

	builder := qb.InsertInto("draft_teams").Columns("session_id", "team_number", "name")
	for teamNumber := 1; teamNumber <= len(names); teamNumber++ {
		name, ok := names[teamNumber]
		if !ok {
			continue
		}
		builder.Values(sessionID, teamNumber, name)
	}
	query, args, err := builder.
		Suffix("ON CONFLICT (session_id, team_number) DO UPDATE SET name = EXCLUDED.name").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert team names query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert team names: %w", err)
	}
	return nil
}

func (r *DraftRepository) GetSettings(ctx context.Context, sessionID int64) (draft.Settings, bool, error) {
	query, args, err := qb.Select("*").From("draft_settings").
		Where(qb.Eq("session_id", sessionID)).
		ToSQL()
	if err != nil {
		return draft.Settings{}, false, fmt.Errorf("build get settings query: %w", err)
	}

	var row draftSettingsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return draft.Settings{}, false, nil
		}
		return draft.Settings{}, false, fmt.Errorf("get settings: %w", err)
	}

	return draft.Settings{
		SessionID:    row.SessionID,
		MyTeamNumber: nullInt64ToIntPtr(row.MyTeamNumber),
		Notes:        row.Notes,
		UpdatedAt:    row.UpdatedAt,
	}, true, nil
}

func (r *DraftRepository) UpsertSettings(ctx context.Context, settings draft.Settings) error {
	query, args, err := qb.InsertModel("draft_settings", draftSettingsTableModel{
		SessionID:    settings.SessionID,
		MyTeamNumber: intPtrToNullInt64(settings.MyTeamNumber),
		Notes:        settings.Notes,
		UpdatedAt:    settings.UpdatedAt,
	}, "ON CONFLICT (session_id) DO UPDATE SET my_team_number = EXCLUDED.my_team_number, "+
		"notes = EXCLUDED.notes, updated_at = EXCLUDED.updated_at")
	if err != nil {
		return fmt.Errorf("build upsert settings query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

func configToRow(config draft.Config) draftConfigTableModel {
	return draftConfigTableModel{
		ID:        config.ID,
		Name:      config.Name,
		NumTeams:  config.NumTeams,
		NumRounds: config.NumRounds,
		DraftType: string(config.Type),
		CreatedAt: config.CreatedAt,
	}
}

func sessionToRow(session draft.Session) draftSessionTableModel {
	return draftSessionTableModel{
		ID:           session.ID,
		ConfigID:     session.ConfigID,
		Name:         session.Name,
		CurrentPick:  session.CurrentPick,
		CurrentRound: session.CurrentRound,
		CurrentTeam:  session.CurrentTeam,
		Status:       string(session.Status),
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
	}
}

func pickToRow(pick draft.Pick) draftPickTableModel {
	return draftPickTableModel{
		SessionID:   pick.SessionID,
		PickNumber:  pick.PickNumber,
		RoundNumber: pick.RoundNumber,
		TeamNumber:  pick.TeamNumber,
		PlayerKey:   pick.PlayerKey,
		PlayerName:  pick.PlayerName,
		PlayerTeam:  pick.PlayerTeam,
		Position:    string(pick.Position),
		ByeWeek:     intPtrToNullInt64(pick.ByeWeek),
		ADP:         float64PtrToNull(pick.ADP),
		Projection:  float64PtrToNull(pick.Projection),
		ValueScore:  pick.ValueScore,
		VonaScore:   pick.VonaScore,
		CreatedAt:   pick.CreatedAt,
	}
}

func configFromRow(row draftConfigTableModel) draft.Config {
	return draft.Config{
		ID:        row.ID,
		Name:      row.Name,
		NumTeams:  row.NumTeams,
		NumRounds: row.NumRounds,
		Type:      draft.Type(row.DraftType),
		CreatedAt: row.CreatedAt,
	}
}

func sessionFromRow(row draftSessionTableModel) draft.Session {
	return draft.Session{
		ID:           row.ID,
		ConfigID:     row.ConfigID,
		Name:         row.Name,
		CurrentPick:  row.CurrentPick,
		CurrentRound: row.CurrentRound,
		CurrentTeam:  row.CurrentTeam,
		Status:       draft.Status(row.Status),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func pickFromRow(row draftPickTableModel) draft.Pick {
	return draft.Pick{
		SessionID:   row.SessionID,
		PickNumber:  row.PickNumber,
		RoundNumber: row.RoundNumber,
		TeamNumber:  row.TeamNumber,
		PlayerKey:   row.PlayerKey,
		PlayerName:  row.PlayerName,
		PlayerTeam:  row.PlayerTeam,
		Position:    player.Position(row.Position),
		ByeWeek:     nullInt64ToIntPtr(row.ByeWeek),
		ADP:         nullFloat64ToPtr(row.ADP),
		Projection:  nullFloat64ToPtr(row.Projection),
		ValueScore:  row.ValueScore,
		VonaScore:   row.VonaScore,
		CreatedAt:   row.CreatedAt,
	}
}
