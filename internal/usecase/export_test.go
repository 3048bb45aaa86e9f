package usecase

import (
	"context"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/draft-assistant/internal/domain/player"
)

func TestDraftService_ExportSession(t *testing.T) {
	fixture := newDraftFixture(t, nil, nil)
	session := fixture.startSession(t, 2, 2, "snake")

	if err := fixture.drafts.UpdateTeamNames(context.Background(), session.ID, []string{"Sharks", "Jets"}); err != nil {
		t.Fatalf("update team names failed: %v", err)
	}
	fixture.pickPlayer(t, session.ID, "RB One", player.PositionRunningBack)
	fixture.pickPlayer(t, session.ID, "WR One", player.PositionWideReceiver)

	payload, err := fixture.drafts.ExportSession(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("export session failed: %v", err)
	}

	var doc exportDocument
	if err := sonic.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("unmarshal export failed: %v", err)
	}

	if doc.SessionID != session.ID || doc.NumTeams != 2 || doc.NumRounds != 2 || doc.DraftType != "snake" {
		t.Fatalf("unexpected export header: %+v", doc)
	}
	if len(doc.Teams) != 2 || doc.Teams[0] != "Sharks" || doc.Teams[1] != "Jets" {
		t.Fatalf("unexpected teams: %v", doc.Teams)
	}
	if len(doc.Picks) != 2 {
		t.Fatalf("expected 2 picks, got %d", len(doc.Picks))
	}
	if doc.Picks[1].TeamName != "Jets" || doc.Picks[1].PlayerName != "WR One" {
		t.Fatalf("unexpected second pick: %+v", doc.Picks[1])
	}
	if doc.Picks[0].ADP != nil || doc.Picks[0].Projection != nil {
		t.Fatalf("expected omitted optional fields, got %+v", doc.Picks[0])
	}
	if want := "https://www.fantasypros.com/nfl/players/rb-one.php"; doc.Picks[0].ProfileURL != want {
		t.Fatalf("expected profile url %s, got %s", want, doc.Picks[0].ProfileURL)
	}
}
