package draft

import (
	"context"
	"errors"
)

// ErrDuplicatePick reports a concurrent writer already recorded the same
// pick number for the session.
var ErrDuplicatePick = errors.New("duplicate pick number")

// Repository describes draft persistence needs from use cases.
//
// RecordPick and UndoLastPick carry the session pointer update inside the
// same transaction as the pick write; a pick without a pointer move (or the
// reverse) must never be observable.
type Repository interface {
	CreateConfig(ctx context.Context, config Config) (Config, error)
	GetConfig(ctx context.Context, configID int64) (Config, bool, error)

	CreateSession(ctx context.Context, session Session, teamNames map[int]string) (Session, error)
	GetSession(ctx context.Context, sessionID int64) (Session, bool, error)
	ListSessions(ctx context.Context) ([]SessionSummary, error)
	// DeleteSession cascades picks, team names, settings, and replacement
	// levels, and removes the config when no other session references it.
	DeleteSession(ctx context.Context, sessionID int64) error

	// RecordPick inserts the pick and either advances the session pointer to
	// next, or marks the session completed when next is nil.
	RecordPick(ctx context.Context, pick Pick, next *Slot) error
	// UndoLastPick deletes the highest-numbered pick, rewinds the session
	// pointer to its slot, and reopens the session. The bool is false when
	// the session has no picks.
	UndoLastPick(ctx context.Context, sessionID int64) (Pick, bool, error)
	ListPicks(ctx context.Context, sessionID int64) ([]Pick, error)

	TeamNames(ctx context.Context, sessionID int64) (map[int]string, error)
	UpdateTeamNames(ctx context.Context, sessionID int64, names map[int]string) error

	GetSettings(ctx context.Context, sessionID int64) (Settings, bool, error)
	UpsertSettings(ctx context.Context, settings Settings) error
}
