package player

import "testing"

func TestSyntheticKeyNormalizesFormattingDrift(t *testing.T) {
	a := SyntheticKey("Bijan Robinson", PositionRunningBack, "ATL")
	b := SyntheticKey("  bijan   ROBINSON ", PositionRunningBack, "atl")
	if a != b {
		t.Fatalf("expected identical keys for drifted formatting, got %s vs %s", a, b)
	}

	c := SyntheticKey("Bijan Robinson", PositionWideReceiver, "ATL")
	if a == c {
		t.Fatalf("expected position to change the key")
	}

	d := SyntheticKey("Bijan Robinson", PositionRunningBack, "DAL")
	if a == d {
		t.Fatalf("expected team to change the key")
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Josh   Allen ", "josh allen"},
		{"Ja'Marr Chase", "ja'marr chase"},
		{"Amon-Ra St. Brown", "amon-ra st brown"},
		{"KEN WALKER III", "ken walker iii"},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProfileURL(t *testing.T) {
	qb := Player{Name: "Josh Allen", Team: "BUF", Position: PositionQuarterback}
	if got, want := qb.ProfileURL(), "https://www.fantasypros.com/nfl/players/josh-allen-qb.php"; got != want {
		t.Fatalf("qb url = %s, want %s", got, want)
	}

	wr := Player{Name: "Amon-Ra St. Brown", Team: "DET", Position: PositionWideReceiver}
	if got, want := wr.ProfileURL(), "https://www.fantasypros.com/nfl/players/amon-ra-st-brown.php"; got != want {
		t.Fatalf("wr url = %s, want %s", got, want)
	}

	dst := Player{Name: "49ers", Team: "SF", Position: PositionDefense}
	if got, want := dst.ProfileURL(), "https://www.fantasypros.com/nfl/teams/san-francisco-defense.php"; got != want {
		t.Fatalf("dst url = %s, want %s", got, want)
	}
}

func TestPlayerValidate(t *testing.T) {
	p := Player{Name: "Josh Allen", Team: "BUF", Position: PositionQuarterback}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := (Player{Name: "", Position: PositionQuarterback}).Validate(); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := (Player{Name: "X", Position: Position("LB")}).Validate(); err == nil {
		t.Fatalf("expected error for unknown position")
	}
}
