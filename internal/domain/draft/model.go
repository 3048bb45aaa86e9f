package draft

import (
	"fmt"
	"time"

	"github.com/riskibarqy/draft-assistant/internal/domain/player"
)

// Type selects how pick order moves between rounds.
type Type string

const (
	TypeSnake    Type = "snake"
	TypeStraight Type = "straight"
)

var AllTypes = map[Type]struct{}{
	TypeSnake:    {},
	TypeStraight: {},
}

// Status tracks the lifecycle of a draft session.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Config is an immutable draft template shared by one or more sessions.
type Config struct {
	ID        int64
	Name      string
	NumTeams  int
	NumRounds int
	Type      Type
	CreatedAt time.Time
}

func (c Config) Validate() error {
	if c.NumTeams < 2 {
		return fmt.Errorf("draft needs at least 2 teams, got %d", c.NumTeams)
	}
	if c.NumRounds < 1 {
		return fmt.Errorf("draft needs at least 1 round, got %d", c.NumRounds)
	}
	if _, ok := AllTypes[c.Type]; !ok {
		return fmt.Errorf("invalid draft type: %s", c.Type)
	}

	return nil
}

// TotalPicks is the length of the full draft order.
func (c Config) TotalPicks() int {
	return c.NumTeams * c.NumRounds
}

// Session is one live draft built from a config. CurrentPick / CurrentRound /
// CurrentTeam always describe the slot that is on the clock; once CurrentPick
// exceeds the order length the session is completed.
type Session struct {
	ID           int64
	ConfigID     int64
	Name         string
	CurrentPick  int
	CurrentRound int
	CurrentTeam  int
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SessionSummary is a session joined with its config, used by session
// pickers.
type SessionSummary struct {
	Session
	ConfigName string
	NumTeams   int
	NumRounds  int
	Type       Type
	PicksMade  int
}

// Pick is one recorded selection. Immutable once written except that the most
// recent pick of a session may be deleted by undo.
type Pick struct {
	SessionID   int64
	PickNumber  int
	RoundNumber int
	TeamNumber  int
	PlayerKey   string
	PlayerName  string
	PlayerTeam  string
	Position    player.Position
	ByeWeek     *int
	ADP         *float64
	Projection  *float64
	ValueScore  float64
	VonaScore   float64
	CreatedAt   time.Time
}

func (p Pick) Validate() error {
	if p.SessionID == 0 {
		return fmt.Errorf("pick session id is required")
	}
	if p.PickNumber < 1 || p.RoundNumber < 1 || p.TeamNumber < 1 {
		return fmt.Errorf("pick coordinates must be 1-indexed")
	}
	if p.PlayerName == "" {
		return fmt.Errorf("pick player name is required")
	}
	if _, ok := player.AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid pick position: %s", p.Position)
	}

	return nil
}

// Settings holds the per-session user preferences.
type Settings struct {
	SessionID    int64
	MyTeamNumber *int
	Notes        string
	UpdatedAt    time.Time
}

// DefaultTeamName names teams that were not given an override.
func DefaultTeamName(teamNumber int) string {
	return fmt.Sprintf("Team %d", teamNumber)
}
