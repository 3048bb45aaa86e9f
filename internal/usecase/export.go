package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/draft-assistant/internal/domain/player"
)

type exportPick struct {
	PickNumber  int             `json:"pick_number"`
	RoundNumber int             `json:"round_number"`
	TeamNumber  int             `json:"team_number"`
	TeamName    string          `json:"team_name"`
	PlayerName  string          `json:"player_name"`
	PlayerTeam  string          `json:"player_team,omitempty"`
	Position    player.Position `json:"position"`
	ByeWeek     *int            `json:"bye_week,omitempty"`
	ADP         *float64        `json:"adp,omitempty"`
	Projection  *float64        `json:"projection,omitempty"`
	ValueScore  float64         `json:"value_score"`
	VonaScore   float64         `json:"vona_score"`
	ProfileURL  string          `json:"profile_url,omitempty"`
}

type exportDocument struct {
	SessionID   int64        `json:"session_id"`
	SessionName string       `json:"session_name,omitempty"`
	ConfigName  string       `json:"config_name"`
	NumTeams    int          `json:"num_teams"`
	NumRounds   int          `json:"num_rounds"`
	DraftType   string       `json:"draft_type"`
	Status      string       `json:"status"`
	ExportedAt  time.Time    `json:"exported_at"`
	Teams       []string     `json:"teams"`
	Picks       []exportPick `json:"picks"`
}

// ExportSession renders the full draft board as a JSON document: config
// shape, team names in slot order, and every pick with the scores it was
// made at.
func (s *DraftService) ExportSession(ctx context.Context, sessionID int64) ([]byte, error) {
	session, config, err := s.sessionWithConfig(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	names, err := s.TeamNames(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	teams := make([]string, config.NumTeams)
	for teamNumber := 1; teamNumber <= config.NumTeams; teamNumber++ {
		teams[teamNumber-1] = names[teamNumber]
	}

	picks, err := s.repo.ListPicks(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}

	doc := exportDocument{
		SessionID:   session.ID,
		SessionName: session.Name,
		ConfigName:  config.Name,
		NumTeams:    config.NumTeams,
		NumRounds:   config.NumRounds,
		DraftType:   string(config.Type),
		Status:      string(session.Status),
		ExportedAt:  s.now().UTC(),
		Teams:       teams,
		Picks:       make([]exportPick, 0, len(picks)),
	}
	for _, pick := range picks {
		doc.Picks = append(doc.Picks, exportPick{
			PickNumber:  pick.PickNumber,
			RoundNumber: pick.RoundNumber,
			TeamNumber:  pick.TeamNumber,
			TeamName:    names[pick.TeamNumber],
			PlayerName:  pick.PlayerName,
			PlayerTeam:  pick.PlayerTeam,
			Position:    pick.Position,
			ByeWeek:     pick.ByeWeek,
			ADP:         pick.ADP,
			Projection:  pick.Projection,
			ValueScore:  pick.ValueScore,
			VonaScore:   pick.VonaScore,
			ProfileURL: player.Player{
				Name:     pick.PlayerName,
				Team:     pick.PlayerTeam,
				Position: pick.Position,
			}.ProfileURL(),
		})
	}

	payload, err := sonic.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return payload, nil
}
