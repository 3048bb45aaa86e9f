package valuation

import (
	"testing"

	"github.com/riskibarqy/draft-assistant/internal/domain/player"
)

func fp(v float64) *float64 { return &v }

func rated(name string, pos player.Position, adp *float64, value float64) RatedPlayer {
	return RatedPlayer{
		Player:     player.Player{Name: name, Position: pos, ADP: adp},
		ValueScore: value,
	}
}

func TestValueScore(t *testing.T) {
	tests := []struct {
		name        string
		projection  *float64
		replacement float64
		want        float64
	}{
		{"above replacement", fp(320), 250, 70},
		{"below replacement", fp(200), 250, -50},
		{"replacement unset degrades to zero", fp(320), 0, 0},
		{"missing projection degrades to zero", nil, 250, 0},
		{"both missing", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValueScore(tt.projection, tt.replacement); got != tt.want {
				t.Fatalf("ValueScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPredictNextPicks(t *testing.T) {
	pool := []RatedPlayer{
		rated("rb one", player.PositionRunningBack, fp(3), 80),
		rated("wr one", player.PositionWideReceiver, fp(1), 60),
		rated("qb one", player.PositionQuarterback, nil, 90),
		rated("te one", player.PositionTightEnd, fp(2), 40),
	}

	predicted := PredictNextPicks(pool, 2, false)
	if len(predicted) != 2 {
		t.Fatalf("expected 2 predicted picks, got %d", len(predicted))
	}
	if predicted[0].Name != "wr one" || predicted[1].Name != "te one" {
		t.Fatalf("expected ADP order wr one, te one; got %s, %s", predicted[0].Name, predicted[1].Name)
	}

	// nil-ADP players never appear regardless of horizon
	all := PredictNextPicks(pool, 10, false)
	if len(all) != 3 {
		t.Fatalf("expected 3 players with ADP, got %d", len(all))
	}

	// input order must be untouched
	if pool[0].Name != "rb one" || pool[1].Name != "wr one" {
		t.Fatalf("input snapshot was mutated: %v", pool)
	}

	if got := PredictNextPicks(pool, 0, false); got != nil {
		t.Fatalf("expected nil for zero horizon, got %v", got)
	}
}

func TestPredictNextPicksExcludesBestVona(t *testing.T) {
	pool := []RatedPlayer{
		rated("rb one", player.PositionRunningBack, fp(1), 80),
		rated("wr one", player.PositionWideReceiver, fp(2), 60),
		rated("te one", player.PositionTightEnd, fp(3), 40),
	}
	pool[0].VonaScore = 5
	pool[1].VonaScore = 25
	pool[2].VonaScore = 10

	predicted := PredictNextPicks(pool, 3, true)
	if len(predicted) != 2 {
		t.Fatalf("expected 2 picks after excluding best vona, got %d", len(predicted))
	}
	for _, p := range predicted {
		if p.Name == "wr one" {
			t.Fatalf("highest-vona player should have been excluded")
		}
	}
}

func TestCountPositionsAndScarcityRanks(t *testing.T) {
	predicted := []RatedPlayer{
		rated("rb one", player.PositionRunningBack, fp(1), 0),
		rated("rb two", player.PositionRunningBack, fp(2), 0),
		rated("wr one", player.PositionWideReceiver, fp(3), 0),
	}

	counts := CountPositions(predicted)
	if counts[player.PositionRunningBack] != 2 || counts[player.PositionWideReceiver] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
	if counts[player.PositionQuarterback] != 0 {
		t.Fatalf("expected zero count for QB, got %d", counts[player.PositionQuarterback])
	}

	ranks := ScarcityRanks(counts)
	if ranks[player.PositionRunningBack] != 3 {
		t.Fatalf("RB scarcity rank = %d, want 3", ranks[player.PositionRunningBack])
	}
	if ranks[player.PositionWideReceiver] != 2 {
		t.Fatalf("WR scarcity rank = %d, want 2", ranks[player.PositionWideReceiver])
	}
	if ranks[player.PositionQuarterback] != 0 {
		t.Fatalf("QB scarcity rank = %d, want 0", ranks[player.PositionQuarterback])
	}
}

func TestApplyVonaUndepletedPosition(t *testing.T) {
	available := []RatedPlayer{
		rated("qb one", player.PositionQuarterback, fp(10), 50),
		rated("qb two", player.PositionQuarterback, fp(20), 30),
		rated("qb three", player.PositionQuarterback, fp(30), 10),
	}
	ranks := map[player.Position]int{player.PositionQuarterback: 0}

	out := ApplyVona(available, ranks)
	if out[0].VonaScore != 0 {
		t.Fatalf("top player at undepleted position must score exactly 0, got %v", out[0].VonaScore)
	}
	if out[1].VonaScore != -20 || out[2].VonaScore != -40 {
		t.Fatalf("unexpected vona scores: %v, %v", out[1].VonaScore, out[2].VonaScore)
	}
	for _, p := range out[1:] {
		if p.VonaScore > 0 {
			t.Fatalf("non-top player at undepleted position must be <= 0, got %v", p.VonaScore)
		}
	}
}

func TestApplyVonaScarceAndDepletedPositions(t *testing.T) {
	available := []RatedPlayer{
		rated("rb one", player.PositionRunningBack, fp(1), 80),
		rated("rb two", player.PositionRunningBack, fp(2), 60),
		rated("rb three", player.PositionRunningBack, fp(3), 45),
		rated("te one", player.PositionTightEnd, fp(4), 25),
	}
	ranks := map[player.Position]int{
		player.PositionRunningBack: 3, // two RBs predicted gone before next turn
		player.PositionTightEnd:    2, // depletion beyond remaining TEs
	}

	out := ApplyVona(available, ranks)

	// baseline is the 3rd best RB (45)
	if out[0].VonaScore != 35 || out[1].VonaScore != 15 || out[2].VonaScore != 0 {
		t.Fatalf("unexpected RB vona scores: %v %v %v", out[0].VonaScore, out[1].VonaScore, out[2].VonaScore)
	}

	// only one TE remains, rank 2 exceeds it: raw value passes through
	if out[3].VonaScore != 25 {
		t.Fatalf("depleted TE should keep raw value score, got %v", out[3].VonaScore)
	}
}

func TestSortByADPNilLast(t *testing.T) {
	players := []RatedPlayer{
		rated("no adp", player.PositionKicker, nil, 0),
		rated("late", player.PositionRunningBack, fp(50), 0),
		rated("early", player.PositionWideReceiver, fp(2), 0),
	}
	SortByADP(players)
	if players[0].Name != "early" || players[1].Name != "late" || players[2].Name != "no adp" {
		t.Fatalf("unexpected order: %s, %s, %s", players[0].Name, players[1].Name, players[2].Name)
	}
}
