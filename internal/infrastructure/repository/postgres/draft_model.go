package postgres

import (
	"database/sql"
	"time"
)

type draftConfigTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	NumTeams  int       `db:"num_teams"`
	NumRounds int       `db:"num_rounds"`
	DraftType string    `db:"draft_type"`
	CreatedAt time.Time `db:"created_at"`
}

type draftSessionTableModel struct {
	ID           int64     `db:"id"`
	ConfigID     int64     `db:"config_id"`
	Name         string    `db:"name"`
	CurrentPick  int       `db:"current_pick"`
	CurrentRound int       `db:"current_round"`
	CurrentTeam  int       `db:"current_team"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type draftSessionSummaryTableModel struct {
	draftSessionTableModel
	ConfigName string `db:"config_name"`
	NumTeams   int    `db:"num_teams"`
	NumRounds  int    `db:"num_rounds"`
	DraftType  string `db:"draft_type"`
	PicksMade  int    `db:"picks_made"`
}

type draftPickTableModel struct {
	ID          int64           `db:"id"`
	SessionID   int64           `db:"session_id"`
	PickNumber  int             `db:"pick_number"`
	RoundNumber int             `db:"round_number"`
	TeamNumber  int             `db:"team_number"`
	PlayerKey   string          `db:"player_key"`
	PlayerName  string          `db:"player_name"`
	PlayerTeam  string          `db:"player_team"`
	Position    string          `db:"position"`
	ByeWeek     sql.NullInt64   `db:"bye_week"`
	ADP         sql.NullFloat64 `db:"adp"`
	Projection  sql.NullFloat64 `db:"projection"`
	ValueScore  float64         `db:"value_score"`
	VonaScore   float64         `db:"vona_score"`
	CreatedAt   time.Time       `db:"created_at"`
}

type draftTeamTableModel struct {
	SessionID  int64  `db:"session_id"`
	TeamNumber int    `db:"team_number"`
	Name       string `db:"name"`
}

type draftSettingsTableModel struct {
	SessionID    int64         `db:"session_id"`
	MyTeamNumber sql.NullInt64 `db:"my_team_number"`
	Notes        string        `db:"notes"`
	UpdatedAt    time.Time     `db:"updated_at"`
}
