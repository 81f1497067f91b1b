package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("teams").
		Where(Eq("id", "t1"), Neq("status", "retired")).
		OrderBy("name").
		Limit(5).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM teams WHERE id = $1 AND status <> $2 ORDER BY name LIMIT 5"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "t1" || args[1] != "retired" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderRangeAndNull(t *testing.T) {
	query, args, err := Select("id").
		From("activities").
		Where(Eq("team_id", "t1"), Gte("start_time", "a"), Lt("start_time", "b"), IsNull("result")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM activities WHERE team_id = $1 AND start_time >= $2 AND start_time < $3 AND result IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("teams").
		Columns("id", "name").
		Values("t1", "name-1").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO teams (id, name) VALUES ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("teams").
		Set("budget", int64(100)).
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "t1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE teams SET budget = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(100) || args[1] != "t1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilderRequiresSets(t *testing.T) {
	if _, _, err := Update("teams").Where(Eq("id", "t1")).ToSQL(); err == nil {
		t.Fatal("expected error for update without sets")
	}
}
