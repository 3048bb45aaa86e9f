package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/draft-assistant/internal/domain/draft"
)

// DraftRepository keeps all draft state behind one mutex, so RecordPick and
// UndoLastPick are atomic the same way the postgres transactions are.
type DraftRepository struct {
	mu sync.RWMutex

	configs  map[int64]draft.Config
	sessions map[int64]draft.Session
	picks    map[int64][]draft.Pick
	teams    map[int64]map[int]string
	settings map[int64]draft.Settings

	nextConfigID  int64
	nextSessionID int64
}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{
		configs:       make(map[int64]draft.Config),
		sessions:      make(map[int64]draft.Session),
		picks:         make(map[int64][]draft.Pick),
		teams:         make(map[int64]map[int]string),
		settings:      make(map[int64]draft.Settings),
		nextConfigID:  1,
		nextSessionID: 1,
	}
}

func (r *DraftRepository) CreateConfig(_ context.Context, config draft.Config) (draft.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	config.ID = r.nextConfigID
	r.nextConfigID++
	r.configs[config.ID] = config

	return config, nil
}

func (r *DraftRepository) GetConfig(_ context.Context, configID int64) (draft.Config, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	config, ok := r.configs[configID]
	if !ok {
		return draft.Config{}, false, nil
	}
	return config, true, nil
}

func (r *DraftRepository) CreateSession(_ context.Context, session draft.Session, teamNames map[int]string) (draft.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session.ID = r.nextSessionID
	r.nextSessionID++
	r.sessions[session.ID] = session

	names := make(map[int]string, len(teamNames))
	for teamNumber, name := range teamNames {
		names[teamNumber] = name
	}
	r.teams[session.ID] = names

	return session, nil
}

func (r *DraftRepository) GetSession(_ context.Context, sessionID int64) (draft.Session, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return draft.Session{}, false, nil
	}
	return session, true, nil
}

func (r *DraftRepository) ListSessions(_ context.Context) ([]draft.SessionSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]draft.SessionSummary, 0, len(r.sessions))
	for _, session := range r.sessions {
		config := r.configs[session.ConfigID]
		out = append(out, draft.SessionSummary{
			Session:    session,
			ConfigName: config.Name,
			NumTeams:   config.NumTeams,
			NumRounds:  config.NumRounds,
			Type:       config.Type,
			PicksMade:  len(r.picks[session.ID]),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}

func (r *DraftRepository) DeleteSession(_ context.Context, sessionID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil
	}

	delete(r.sessions, sessionID)
	delete(r.picks, sessionID)
	delete(r.teams, sessionID)
	delete(r.settings, sessionID)

	for _, other := range r.sessions {
		if other.ConfigID == session.ConfigID {
			return nil
		}
	}
	delete(r.configs, session.ConfigID)

	return nil
}

func (r *DraftRepository) RecordPick(_ context.Context, pick draft.Pick, next *draft.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[pick.SessionID]
	if !ok {
		return nil
	}

	for _, existing := range r.picks[pick.SessionID] {
		if existing.PickNumber == pick.PickNumber {
			return fmt.Errorf("%w: session=%d pick=%d", draft.ErrDuplicatePick, pick.SessionID, pick.PickNumber)
		}
	}

	r.picks[pick.SessionID] = append(r.picks[pick.SessionID], pick)

	if next != nil {
		session.CurrentPick = next.Pick
		session.CurrentRound = next.Round
		session.CurrentTeam = next.Team
		session.Status = draft.StatusActive
	} else {
		session.CurrentPick = pick.PickNumber + 1
		session.Status = draft.StatusCompleted
	}
	session.UpdatedAt = pick.CreatedAt
	r.sessions[pick.SessionID] = session

	return nil
}

func (r *DraftRepository) UndoLastPick(_ context.Context, sessionID int64) (draft.Pick, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	picks := r.picks[sessionID]
	if len(picks) == 0 {
		return draft.Pick{}, false, nil
	}

	last := picks[len(picks)-1]
	r.picks[sessionID] = picks[:len(picks)-1]

	session := r.sessions[sessionID]
	session.CurrentPick = last.PickNumber
	session.CurrentRound = last.RoundNumber
	session.CurrentTeam = last.TeamNumber
	session.Status = draft.StatusActive
	r.sessions[sessionID] = session

	return last, true, nil
}

func (r *DraftRepository) ListPicks(_ context.Context, sessionID int64) ([]draft.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	picks := r.picks[sessionID]
	out := make([]draft.Pick, 0, len(picks))
	out = append(out, picks...)
	return out, nil
}

func (r *DraftRepository) TeamNames(_ context.Context, sessionID int64) (map[int]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.teams[sessionID]
	out := make(map[int]string, len(names))
	for teamNumber, name := range names {
		out[teamNumber] = name
	}
	return out, nil
}

func (r *DraftRepository) UpdateTeamNames(_ context.Context, sessionID int64, names map[int]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make(map[int]string, len(names))
	for teamNumber, name := range names {
		updated[teamNumber] = name
	}
	r.teams[sessionID] = updated

	return nil
}

func (r *DraftRepository) GetSettings(_ context.Context, sessionID int64) (draft.Settings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings, ok := r.settings[sessionID]
	if !ok {
		return draft.Settings{}, false, nil
	}
	return settings, true, nil
}

func (r *DraftRepository) UpsertSettings(_ context.Context, settings draft.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings[settings.SessionID] = settings
	return nil
}
