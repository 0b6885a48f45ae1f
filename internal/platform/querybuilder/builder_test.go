package querybuilder

import (
	"reflect"
	"testing"
)

type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

func TestBuilders(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		builder   sqlBuilder
		wantQuery string
		wantArgs  []any
	}{
		{
			name: "select with limit",
			builder: Select("id", "slug").From("teams").
				Where(Eq("league_id", "l1"), IsNull("deleted_at")).
				OrderBy("name_en ASC").
				Limit(10),
			wantQuery: "SELECT id, slug FROM teams WHERE league_id = $1 AND deleted_at IS NULL ORDER BY name_en ASC LIMIT 10",
			wantArgs:  []any{"l1"},
		},
		{
			name: "select or in expr",
			builder: Select("*").From("matches").Where(
				Or(Eq("home_team_id", "t1"), Eq("away_team_id", "t1")),
				In("status", []any{"live", "scheduled"}),
				Expr("kickoff_at >= ?", "2026-01-01"),
			),
			wantQuery: "SELECT * FROM matches WHERE (home_team_id = $1 OR away_team_id = $2) AND status IN ($3, $4) AND kickoff_at >= $5",
			wantArgs:  []any{"t1", "t1", "live", "scheduled", "2026-01-01"},
		},
		{
			name:      "empty in and empty or match nothing",
			builder:   Select("*").From("players").Where(In("id", nil), Or()),
			wantQuery: "SELECT * FROM players WHERE 1=0 AND 1=0",
		},
		{
			name:      "expr keeps unmatched placeholders",
			builder:   Select("*").From("players").Where(Expr("id = ANY(?::uuid[]) AND note <> '?'", "x")),
			wantQuery: "SELECT * FROM players WHERE id = ANY($1::uuid[]) AND note <> '?'",
			wantArgs:  []any{"x"},
		},
		{
			name:      "insert",
			builder:   Insert("leagues").Value("id", "l1").Value("name_en", "Premier League"),
			wantQuery: "INSERT INTO leagues (id, name_en) VALUES ($1, $2)",
			wantArgs:  []any{"l1", "Premier League"},
		},
		{
			name:      "update",
			builder:   Update("matches").Set("status", "live").Set("home_score", 1).Where(Eq("id", "m1")),
			wantQuery: "UPDATE matches SET status = $1, home_score = $2 WHERE id = $3",
			wantArgs:  []any{"live", 1, "m1"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			query, args, err := tc.builder.ToSQL()
			if err != nil {
				t.Fatalf("build query: %v", err)
			}
			if query != tc.wantQuery {
				t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", tc.wantQuery, query)
			}
			if len(args) != len(tc.wantArgs) || (len(args) > 0 && !reflect.DeepEqual(args, tc.wantArgs)) {
				t.Fatalf("unexpected args: want %+v got %+v", tc.wantArgs, args)
			}
		})
	}
}

func TestBuilders_RejectIncompleteStatements(t *testing.T) {
	t.Parallel()

	bad := map[string]sqlBuilder{
		"select without table":   Select("id"),
		"select without columns": Select().From("teams"),
		"insert without values":  Insert("teams"),
		"update without set":     Update("teams").Where(Eq("id", "t1")),
		"update without where":   Update("teams").Set("name_en", "x"),
	}
	for name, b := range bad {
		if _, _, err := b.ToSQL(); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

type base struct {
	CreatedAt string `db:"created_at"`
}

type cupRow struct {
	base
	ID      string `db:"id"`
	Slug    string `db:"slug"`
	NameEN  string `db:"name_en"`
	ignored string
	Skip    string `db:"-"`
}

func TestInsertModelAndUpdateModel(t *testing.T) {
	t.Parallel()

	row := cupRow{base: base{CreatedAt: "now"}, ID: "c1", Slug: "ethiopian-cup", NameEN: "Ethiopian Cup", ignored: "x", Skip: "y"}

	query, args, err := InsertModel("cups", row)
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	if query != "INSERT INTO cups (id, slug, name_en) VALUES ($1, $2, $3)" || len(args) != 3 {
		t.Fatalf("unexpected insert %q args %+v", query, args)
	}

	query, args, err = UpdateModel("cups", &row, []string{"id"}, Eq("id", row.ID), IsNull("deleted_at"))
	if err != nil {
		t.Fatalf("update model: %v", err)
	}
	want := "UPDATE cups SET slug = $1, name_en = $2 WHERE id = $3 AND deleted_at IS NULL"
	if query != want {
		t.Fatalf("unexpected update:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 3 || args[2] != "c1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestModelErrors(t *testing.T) {
	t.Parallel()

	var nilRow *cupRow
	if _, _, err := InsertModel("cups", nilRow); err == nil {
		t.Fatalf("expected nil model error")
	}
	if _, _, err := InsertModel("cups", 42); err == nil {
		t.Fatalf("expected non-struct error")
	}
	if _, _, err := InsertModel("cups", struct{ Name string }{"x"}); err == nil {
		t.Fatalf("expected untagged struct error")
	}
}
