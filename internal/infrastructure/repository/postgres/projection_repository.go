package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/draft-assistant/internal/domain/player"
	qb "github.com/riskibarqy/draft-assistant/internal/platform/querybuilder"
)

type playerProjectionTableModel struct {
	ID         int64           `db:"id"`
	PlayerKey  string          `db:"player_key"`
	Name       string          `db:"name"`
	Team       string          `db:"team"`
	Position   string          `db:"position"`
	ByeWeek    sql.NullInt64   `db:"bye_week"`
	ADP        sql.NullFloat64 `db:"adp"`
	Projection sql.NullFloat64 `db:"projection"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

type ProjectionRepository struct {
	db *sqlx.DB
}

func NewProjectionRepository(db *sqlx.DB) *ProjectionRepository {
	return &ProjectionRepository{db: db}
}

func (r *ProjectionRepository) ListProjections(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("player_projections").
		OrderBy("adp NULLS LAST", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list projections query: %w", err)
	}

	var rows []playerProjectionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list projections: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			Name:       row.Name,
			Team:       row.Team,
			Position:   player.Position(row.Position),
			ByeWeek:    nullInt64ToIntPtr(row.ByeWeek),
			ADP:        nullFloat64ToPtr(row.ADP),
			Projection: nullFloat64ToPtr(row.Projection),
		})
	}

	return out, nil
}

// Replace swaps the whole pool in one transaction, keyed by the synthetic
// player key so a reload never duplicates players.
func (r *ProjectionRepository) Replace(ctx context.Context, players []player.Player) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace projections: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM player_projections"); err != nil {
		return fmt.Errorf("clear projections: %w", err)
	}

	now := time.Now().UTC()
	for _, p := range players {
		row := playerProjectionTableModel{
			PlayerKey:  p.Key(),
			Name:       p.Name,
			Team:       p.Team,
			Position:   string(p.Position),
			ByeWeek:    intPtrToNullInt64(p.ByeWeek),
			ADP:        float64PtrToNull(p.ADP),
			Projection: float64PtrToNull(p.Projection),
			UpdatedAt:  now,
		}
		query, args, err := qb.InsertModel("player_projections", row,
			"ON CONFLICT (player_key) DO UPDATE SET name = EXCLUDED.name, team = EXCLUDED.team, "+
				"bye_week = EXCLUDED.bye_week, adp = EXCLUDED.adp, projection = EXCLUDED.projection, "+
				"updated_at = EXCLUDED.updated_at", "id")
		if err != nil {
			return fmt.Errorf("build insert projection query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert projection for %s: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace projections tx: %w", err)
	}

	return nil
}
