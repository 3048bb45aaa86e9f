package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("pick_number", "player_name").
		From("draft_picks").
		Where(Eq("session_id", int64(7))).
		OrderBy("pick_number").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT pick_number, player_name FROM draft_picks WHERE session_id = $1 ORDER BY pick_number LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_MultiRowWithSuffix(t *testing.T) {
	query, args, err := InsertInto("draft_teams").
		Columns("session_id", "team_number", "name").
		Values(int64(7), 1, "Team 1").
		Values(int64(7), 2, "Team 2").
		Suffix("ON CONFLICT (session_id, team_number) DO UPDATE SET name = EXCLUDED.name").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO draft_teams (session_id, team_number, name) VALUES ($1, $2, $3), ($4, $5, $6) " +
		"ON CONFLICT (session_id, team_number) DO UPDATE SET name = EXCLUDED.name"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 6 || args[5] != "Team 2" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("draft_sessions").
		Set("current_pick", 24).
		Set("status", "active").
		Where(Eq("id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE draft_sessions SET current_pick = $1, status = $2 WHERE id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("replacement_levels").
		Where(Eq("session_id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM replacement_levels WHERE session_id = $1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("replacement_levels").ToSQL(); err == nil {
		t.Fatal("expected error for delete without conditions")
	}
}

func TestExprCondition(t *testing.T) {
	query, args, err := DeleteFrom("draft_configs").
		Where(
			Eq("id", int64(3)),
			Expr("NOT EXISTS (SELECT 1 FROM draft_sessions WHERE config_id = ?)", int64(3)),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM draft_configs WHERE id = $1 AND " +
		"NOT EXISTS (SELECT 1 FROM draft_sessions WHERE config_id = $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID        int64  `db:"id"`
		SessionID int64  `db:"session_id"`
		Position  string `db:"position"`
		Rank      int    `db:"rank"`
		ignored   string
		NoTag     string
	}

	query, args, err := InsertModel("replacement_levels", row{SessionID: 7, Position: "RB", Rank: 36}, "")
	if err != nil {
		t.Fatalf("build insert from model: %v", err)
	}

	wantQuery := "INSERT INTO replacement_levels (id, session_id, position, rank) VALUES ($1, $2, $3, $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[2] != "RB" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModelSkipsColumns(t *testing.T) {
	type row struct {
		ID        int64  `db:"id"`
		SessionID int64  `db:"session_id"`
		Position  string `db:"position"`
	}

	query, args, err := InsertModel("replacement_levels", row{SessionID: 7, Position: "RB"}, "RETURNING id", "id")
	if err != nil {
		t.Fatalf("build insert from model: %v", err)
	}

	wantQuery := "INSERT INTO replacement_levels (session_id, position) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[1] != "RB" {
		t.Fatalf("unexpected args: %+v", args)
	}
}
