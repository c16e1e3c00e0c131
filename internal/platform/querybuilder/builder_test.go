package querybuilder

import "testing"

func TestSelectWithInCondition(t *testing.T) {
	query, args, err := Select("id", "name").
		From("teams").
		Where(In("id", []any{"t1", "t2"})).
		OrderBy("name").
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT id, name FROM teams WHERE id IN ($1, $2) ORDER BY name"
	if query != want {
		t.Fatalf("unexpected query:\n got %s\nwant %s", query, want)
	}
	if len(args) != 2 || args[0] != "t1" || args[1] != "t2" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInConditionEmptySetNeverMatches(t *testing.T) {
	query, args, err := Select("id").
		From("players").
		Where(In("team_id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT id FROM players WHERE 1=0"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestExistsConditionNestsInBehavior(t *testing.T) {
	query, args, err := Select("p.id").
		From("players p").
		Where(Exists(
			"player_teams pt",
			Expr("pt.player_id = p.id"),
			IsNull("pt.end_date"),
			In("pt.team_id", []any{"t1"}),
		)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT p.id FROM players p WHERE EXISTS (SELECT 1 FROM player_teams pt" +
		" WHERE pt.player_id = p.id AND pt.end_date IS NULL AND pt.team_id IN ($1))"
	if query != want {
		t.Fatalf("unexpected query:\n got %s\nwant %s", query, want)
	}
	if len(args) != 1 || args[0] != "t1" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestExistsConditionEmptyScopeIsUnsatisfiable(t *testing.T) {
	query, _, err := Select("p.id").
		From("players p").
		Where(Exists(
			"player_teams pt",
			Expr("pt.player_id = p.id"),
			In("pt.team_id", nil),
		)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT p.id FROM players p WHERE EXISTS (SELECT 1 FROM player_teams pt" +
		" WHERE pt.player_id = p.id AND 1=0)"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("teams").
		Set("name", "Lions").
		Set("updated_at", "now").
		Where(Eq("id", "t1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}

	want := "UPDATE teams SET name = $1, updated_at = $2 WHERE id = $3"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestDeleteRequiresWhere(t *testing.T) {
	if _, _, err := DeleteFrom("matches").ToSQL(); err == nil {
		t.Fatalf("expected error for delete without where")
	}

	query, args, err := DeleteFrom("matches").Where(Eq("id", "m1")).ToSQL()
	if err != nil {
		t.Fatalf("build delete: %v", err)
	}
	if query != "DELETE FROM matches WHERE id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertModelUsesDBTags(t *testing.T) {
	type row struct {
		ID     string `db:"id"`
		Name   string `db:"name"`
		Hidden string `db:"-"`
	}

	query, args, err := InsertModel("teams", row{ID: "t1", Name: "Lions", Hidden: "x"}, "")
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}
	if query != "INSERT INTO teams (id, name) VALUES ($1, $2)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}
