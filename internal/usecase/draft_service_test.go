package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/riskibarqy/draft-assistant/internal/domain/draft"
	"github.com/riskibarqy/draft-assistant/internal/domain/player"
	"github.com/riskibarqy/draft-assistant/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/draft-assistant/internal/platform/logging"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

type draftFixture struct {
	drafts      *DraftService
	repo        *memory.DraftRepository
	levels      *memory.ReplacementRepository
	projections *memory.ProjectionRepository
}

func newDraftFixture(t *testing.T, pool []player.Player, ranks map[player.Position]int) draftFixture {
	t.Helper()

	repo := memory.NewDraftRepository()
	levels := memory.NewReplacementRepository()
	projections := memory.NewProjectionRepository(pool)

	service := NewDraftService(repo, levels, projections, ranks, logging.NewNop())
	service.now = func() time.Time { return time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC) }

	return draftFixture{
		drafts:      service,
		repo:        repo,
		levels:      levels,
		projections: projections,
	}
}

func (f draftFixture) startSession(t *testing.T, numTeams, numRounds int, draftType string) draft.Session {
	t.Helper()

	config, err := f.drafts.CreateConfig(context.Background(), CreateConfigInput{
		Name:      "test league",
		NumTeams:  numTeams,
		NumRounds: numRounds,
		DraftType: draftType,
	})
	if err != nil {
		t.Fatalf("create config failed: %v", err)
	}

	session, err := f.drafts.CreateSession(context.Background(), CreateSessionInput{ConfigID: config.ID})
	if err != nil {
		t.Fatalf("create session failed: %v", err)
	}
	return session
}

func (f draftFixture) pickPlayer(t *testing.T, sessionID int64, name string, position player.Position) draft.Pick {
	t.Helper()

	pick, err := f.drafts.RecordPick(context.Background(), RecordPickInput{
		SessionID:  sessionID,
		PlayerName: name,
		Position:   position,
	})
	if err != nil {
		t.Fatalf("record pick for %s failed: %v", name, err)
	}
	return pick
}

func TestDraftService_CreateConfig_RejectsInvalidInput(t *testing.T) {
	fixture := newDraftFixture(t, nil, nil)

	cases := []struct {
		name  string
		input CreateConfigInput
	}{
		{"missing name", CreateConfigInput{NumTeams: 10, NumRounds: 15, DraftType: "snake"}},
		{"one team", CreateConfigInput{Name: "x", NumTeams: 1, NumRounds: 15, DraftType: "snake"}},
		{"zero rounds", CreateConfigInput{Name: "x", NumTeams: 10, NumRounds: 0, DraftType: "snake"}},
		{"unknown draft type", CreateConfigInput{Name: "x", NumTeams: 10, NumRounds: 15, DraftType: "auction"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := fixture.drafts.CreateConfig(context.Background(), tc.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestDraftService_CreateSession_SeedsDefaultsAndLevels(t *testing.T) {
	fixture := newDraftFixture(t, nil, map[player.Position]int{
		player.PositionQuarterback: 22,
		player.PositionRunningBack: 36,
	})

	session := fixture.startSession(t, 4, 2, "snake")

	if session.CurrentPick != 1 || session.CurrentRound != 1 || session.CurrentTeam != 1 {
		t.Fatalf("expected session to start at pick 1 round 1 team 1, got %+v", session)
	}
	if session.Status != draft.StatusActive {
		t.Fatalf("expected active session, got %s", session.Status)
	}

	names, err := fixture.drafts.TeamNames(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("team names failed: %v", err)
	}
	if len(names) != 4 || names[3] != "Team 3" {
		t.Fatalf("expected 4 default team names, got %v", names)
	}

	levels, err := fixture.levels.Levels(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("levels failed: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("expected 2 seeded levels, got %d", len(levels))
	}
	for _, level := range levels {
		if level.Value != 0 {
			t.Fatalf("expected seeded level value 0, got %v for %s", level.Value, level.Position)
		}
	}
}

func TestDraftService_CreateSession_TeamNameOverrides(t *testing.T) {
	fixture := newDraftFixture(t, nil, nil)

	config, err := fixture.drafts.CreateConfig(context.Background(), CreateConfigInput{
		Name: "named teams", NumTeams: 2, NumRounds: 1, DraftType: "straight",
	})
	if err != nil {
		t.Fatalf("create config failed: %v", err)
	}

	if _, err := fixture.drafts.CreateSession(context.Background(), CreateSessionInput{
		ConfigID:  config.ID,
		TeamNames: []string{"only one"},
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short team list, got %v", err)
	}

	session, err := fixture.drafts.CreateSession(context.Background(), CreateSessionInput{
		ConfigID:  config.ID,
		TeamNames: []string{"The Sharks", "  "},
	})
	if err != nil {
		t.Fatalf("create session failed: %v", err)
	}

	names, err := fixture.drafts.TeamNames(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("team names failed: %v", err)
	}
	if names[1] != "The Sharks" {
		t.Fatalf("expected override for team 1, got %q", names[1])
	}
	if names[2] != "Team 2" {
		t.Fatalf("expected blank override to fall back to default, got %q", names[2])
	}
}

func TestDraftService_RecordPick_AdvancesSnakeOrder(t *testing.T) {
	fixture := newDraftFixture(t, nil, nil)
	session := fixture.startSession(t, 12, 15, "snake")

	for i := 0; i < 23; i++ {
		fixture.pickPlayer(t, session.ID, "Player "+string(rune('A'+i)), player.PositionRunningBack)
	}

	info, err := fixture.drafts.CurrentPickInfo(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("current pick info failed: %v", err)
	}
	if info == nil {
		t.Fatal("expected an active pick, got nil")
	}
	if info.PickNumber != 24 || info.RoundNumber != 2 || info.TeamNumber != 1 {
		t.Fatalf("expected pick 24 round 2 team 1, got %+v", info)
	}
	if info.TotalPicks != 180 {
		t.Fatalf("expected 180 total picks, got %d", info.TotalPicks)
	}
}

func TestDraftService_RecordPick_CompletionAndUndo(t *testing.T) {
	pool := []player.Player{
		{Name: "First Player", Position: player.PositionRunningBack, Projection: floatPtr(300)},
		{Name: "Second Player", Position: player.PositionWideReceiver, Projection: floatPtr(280)},
		{Name: "Bench Player", Position: player.PositionTightEnd, Projection: floatPtr(150)},
	}
	fixture := newDraftFixture(t, pool, nil)
	session := fixture.startSession(t, 2, 1, "snake")

	fixture.pickPlayer(t, session.ID, "First Player", player.PositionRunningBack)

	beforeLast := availableNames(t, fixture, session.ID)

	last := fixture.pickPlayer(t, session.ID, "Second Player", player.PositionWideReceiver)

	remaining := availableNames(t, fixture, session.ID)
	if len(remaining) != 1 || remaining[0] != "Bench Player" {
		t.Fatalf("expected only Bench Player available, got %v", remaining)
	}

	info, err := fixture.drafts.CurrentPickInfo(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("current pick info failed: %v", err)
	}
	if info != nil {
		t.Fatalf("expected nil pick info after completion, got %+v", info)
	}

	stored, err := fixture.drafts.GetSession(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("get session failed: %v", err)
	}
	if stored.Status != draft.StatusCompleted {
		t.Fatalf("expected completed session, got %s", stored.Status)
	}

	if _, err := fixture.drafts.RecordPick(context.Background(), RecordPickInput{
		SessionID:  session.ID,
		PlayerName: "Too Late",
		Position:   player.PositionTightEnd,
	}); !errors.Is(err, ErrNoActivePick) {
		t.Fatalf("expected ErrNoActivePick on completed draft, got %v", err)
	}

	undone, err := fixture.drafts.UndoLastPick(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if undone.PickNumber != last.PickNumber || undone.PlayerName != "Second Player" {
		t.Fatalf("expected undo of pick %d, got %+v", last.PickNumber, undone)
	}

	stored, err = fixture.drafts.GetSession(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("get session failed: %v", err)
	}
	if stored.Status != draft.StatusActive || stored.CurrentPick != 2 {
		t.Fatalf("expected reopened session at pick 2, got %+v", stored)
	}

	restored := availableNames(t, fixture, session.ID)
	if len(restored) != len(beforeLast) {
		t.Fatalf("expected available pool restored to %v, got %v", beforeLast, restored)
	}
	for i := range restored {
		if restored[i] != beforeLast[i] {
			t.Fatalf("expected available pool restored to %v, got %v", beforeLast, restored)
		}
	}
}

func availableNames(t *testing.T, fixture draftFixture, sessionID int64) []string {
	t.Helper()

	available, err := fixture.drafts.AvailablePlayers(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("available players failed: %v", err)
	}
	names := make([]string, 0, len(available))
	for _, p := range available {
		names = append(names, p.Name)
	}
	return names
}

func TestDraftService_UndoLastPick_EmptySession(t *testing.T) {
	fixture := newDraftFixture(t, nil, nil)
	session := fixture.startSession(t, 4, 2, "snake")

	if _, err := fixture.drafts.UndoLastPick(context.Background(), session.ID); !errors.Is(err, ErrNoActivePick) {
		t.Fatalf("expected ErrNoActivePick with no picks, got %v", err)
	}
}

func TestDraftService_AvailablePlayers_ExcludesDrafted(t *testing.T) {
	pool := []player.Player{
		{Name: "Christian McCaffrey", Team: "SF", Position: player.PositionRunningBack, ADP: floatPtr(1.2), Projection: floatPtr(322.6)},
		{Name: "CeeDee Lamb", Team: "DAL", Position: player.PositionWideReceiver, ADP: floatPtr(3.1), Projection: floatPtr(296.0)},
		{Name: "Mystery Rookie", Team: "FA", Position: player.PositionRunningBack, Projection: floatPtr(120.0)},
	}
	fixture := newDraftFixture(t, pool, nil)
	session := fixture.startSession(t, 2, 2, "snake")

	pick, err := fixture.drafts.RecordPick(context.Background(), RecordPickInput{
		SessionID:  session.ID,
		PlayerName: "christian  mccaffrey",
		PlayerTeam: "sf",
		Position:   player.PositionRunningBack,
	})
	if err != nil {
		t.Fatalf("record pick failed: %v", err)
	}
	if pick.PlayerKey != player.SyntheticKey("Christian McCaffrey", player.PositionRunningBack, "SF") {
		t.Fatalf("expected normalized synthetic key, got %s", pick.PlayerKey)
	}

	available, err := fixture.drafts.AvailablePlayers(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("available players failed: %v", err)
	}
	if len(available) != 2 {
		t.Fatalf("expected 2 available players, got %d", len(available))
	}
	if available[0].Name != "CeeDee Lamb" {
		t.Fatalf("expected ADP order with CeeDee Lamb first, got %s", available[0].Name)
	}
	if available[1].Name != "Mystery Rookie" {
		t.Fatalf("expected nil-ADP player last, got %s", available[1].Name)
	}
}

func TestDraftService_TeamRoster(t *testing.T) {
	fixture := newDraftFixture(t, nil, nil)
	session := fixture.startSession(t, 2, 2, "snake")

	fixture.pickPlayer(t, session.ID, "Pick One", player.PositionRunningBack)  // team 1
	fixture.pickPlayer(t, session.ID, "Pick Two", player.PositionWideReceiver) // team 2
	fixture.pickPlayer(t, session.ID, "Pick Three", player.PositionTightEnd)   // team 2, round 2

	roster, err := fixture.drafts.TeamRoster(context.Background(), session.ID, 2)
	if err != nil {
		t.Fatalf("team roster failed: %v", err)
	}
	if len(roster) != 2 || roster[0].PlayerName != "Pick Two" || roster[1].PlayerName != "Pick Three" {
		t.Fatalf("unexpected roster for team 2: %+v", roster)
	}

	if _, err := fixture.drafts.TeamRoster(context.Background(), session.ID, 3); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for team out of range, got %v", err)
	}
}

func TestDraftService_Settings_RoundTrip(t *testing.T) {
	fixture := newDraftFixture(t, nil, nil)
	session := fixture.startSession(t, 4, 2, "snake")

	settings, err := fixture.drafts.Settings(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("settings failed: %v", err)
	}
	if settings.MyTeamNumber != nil {
		t.Fatalf("expected empty default settings, got %+v", settings)
	}

	if err := fixture.drafts.UpdateSettings(context.Background(), UpdateSettingsInput{
		SessionID:    session.ID,
		MyTeamNumber: intPtr(9),
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for team out of range, got %v", err)
	}

	if err := fixture.drafts.UpdateSettings(context.Background(), UpdateSettingsInput{
		SessionID:    session.ID,
		MyTeamNumber: intPtr(3),
		Notes:        "  target RBs early  ",
	}); err != nil {
		t.Fatalf("update settings failed: %v", err)
	}

	settings, err = fixture.drafts.Settings(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("settings failed: %v", err)
	}
	if settings.MyTeamNumber == nil || *settings.MyTeamNumber != 3 {
		t.Fatalf("expected my team 3, got %+v", settings.MyTeamNumber)
	}
	if settings.Notes != "target RBs early" {
		t.Fatalf("expected trimmed notes, got %q", settings.Notes)
	}
}

func TestDraftService_UpdateTeamNames_RequiresFullList(t *testing.T) {
	fixture := newDraftFixture(t, nil, nil)
	session := fixture.startSession(t, 3, 1, "straight")

	if err := fixture.drafts.UpdateTeamNames(context.Background(), session.ID, []string{"a", "b"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short list, got %v", err)
	}

	if err := fixture.drafts.UpdateTeamNames(context.Background(), session.ID, []string{"Alpha", "", "Gamma"}); err != nil {
		t.Fatalf("update team names failed: %v", err)
	}

	names, err := fixture.drafts.TeamNames(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("team names failed: %v", err)
	}
	if names[1] != "Alpha" || names[2] != "Team 2" || names[3] != "Gamma" {
		t.Fatalf("unexpected team names: %v", names)
	}
}

func TestDraftService_DeleteSession_CascadesLevels(t *testing.T) {
	fixture := newDraftFixture(t, nil, nil)
	session := fixture.startSession(t, 4, 2, "snake")

	if err := fixture.drafts.DeleteSession(context.Background(), session.ID); err != nil {
		t.Fatalf("delete session failed: %v", err)
	}

	if _, err := fixture.drafts.GetSession(context.Background(), session.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	levels, err := fixture.levels.Levels(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("levels failed: %v", err)
	}
	if len(levels) != 0 {
		t.Fatalf("expected levels removed with session, got %d rows", len(levels))
	}
}

func TestDraftService_MostRecentSession(t *testing.T) {
	fixture := newDraftFixture(t, nil, nil)

	if _, found, err := fixture.drafts.MostRecentSession(context.Background()); err != nil || found {
		t.Fatalf("expected no session yet, got found=%v err=%v", found, err)
	}

	first := fixture.startSession(t, 2, 2, "snake")
	second := fixture.startSession(t, 2, 2, "snake")

	// Recording a pick touches the session, making it the most recent.
	fixture.drafts.now = func() time.Time { return time.Date(2026, 8, 30, 19, 0, 0, 0, time.UTC) }
	fixture.pickPlayer(t, first.ID, "Any Player", player.PositionRunningBack)

	recent, found, err := fixture.drafts.MostRecentSession(context.Background())
	if err != nil || !found {
		t.Fatalf("expected a session, got found=%v err=%v", found, err)
	}
	if recent.ID != first.ID {
		t.Fatalf("expected session %d most recent, got %d (other=%d)", first.ID, recent.ID, second.ID)
	}
	if recent.PicksMade != 1 {
		t.Fatalf("expected 1 pick made, got %d", recent.PicksMade)
	}
}
