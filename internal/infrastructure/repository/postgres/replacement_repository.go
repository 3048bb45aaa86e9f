package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/draft-assistant/internal/domain/player"
	"github.com/riskibarqy/draft-assistant/internal/domain/replacement"
	qb "github.com/riskibarqy/draft-assistant/internal/platform/querybuilder"
)

type replacementLevelTableModel struct {
	SessionID int64     `db:"session_id"`
	Position  string    `db:"position"`
	Rank      int       `db:"rank"`
	Value     float64   `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

type ReplacementRepository struct {
	db *sqlx.DB
}

func NewReplacementRepository(db *sqlx.DB) *ReplacementRepository {
	return &ReplacementRepository{db: db}
}

func (r *ReplacementRepository) Levels(ctx context.Context, sessionID int64) ([]replacement.Level, error) {
	query, args, err := qb.Select("*").From("replacement_levels").
		Where(qb.Eq("session_id", sessionID)).
		OrderBy("position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list replacement levels query: %w", err)
	}

	var rows []replacementLevelTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list replacement levels: %w", err)
	}

	out := make([]replacement.Level, 0, len(rows))
	for _, row := range rows {
		out = append(out, replacement.Level{
			SessionID: row.SessionID,
			Position:  player.Position(row.Position),
			Rank:      row.Rank,
			Value:     row.Value,
			UpdatedAt: row.UpdatedAt,
		})
	}

	return out, nil
}

func (r *ReplacementRepository) Seed(ctx context.Context, sessionID int64, ranks map[player.Position]int) error {
	if len(ranks) == 0 {
		return nil
	}

	now := time.Now().UTC()
	builder := qb.InsertInto("replacement_levels").
		Columns("session_id", "position", "rank", "value", "updated_at")
	for _, position := range player.PositionOrder {
		rank, ok := ranks[position]
		if !ok {
			continue
		}
		builder.Values(sessionID, string(position), rank, 0.0, now)
	}
	query, args, err := builder.
		Suffix("ON CONFLICT (session_id, position) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build seed replacement levels query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("seed replacement levels: %w", err)
	}
	return nil
}

func (r *ReplacementRepository) UpdateRanks(ctx context.Context, sessionID int64, ranks map[player.Position]int) error {
	for position, rank := range ranks {
		query, args, err := qb.Update("replacement_levels").
			Set("rank", rank).
			Set("updated_at", time.Now().UTC()).
			Where(
				qb.Eq("session_id", sessionID),
				qb.Eq("position", string(position)),
			).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build update rank query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update rank for %s: %w", position, err)
		}
	}
	return nil
}

func (r *ReplacementRepository) SetValue(ctx context.Context, sessionID int64, position player.Position, value float64) error {
	query, args, err := qb.Update("replacement_levels").
		Set("value", value).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("session_id", sessionID),
			qb.Eq("position", string(position)),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set replacement value query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set replacement value for %s: %w", position, err)
	}
	return nil
}

func (r *ReplacementRepository) DeleteForSession(ctx context.Context, sessionID int64) error {
	query, args, err := qb.DeleteFrom("replacement_levels").
		Where(qb.Eq("session_id", sessionID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete replacement levels query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete replacement levels: %w", err)
	}
	return nil
}
