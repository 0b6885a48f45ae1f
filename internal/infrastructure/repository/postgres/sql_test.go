package postgres

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/league-portal/internal/domain/cup"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches wrapped unique violation", func(t *testing.T) {
		err := fmt.Errorf("insert team: %w", &pq.Error{Code: "23505", Message: "duplicate key value"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for unique violation")
		}
	})

	t.Run("ignores other pq errors", func(t *testing.T) {
		err := &pq.Error{Code: "23503", Message: "foreign key violation"}
		if isUniqueViolation(err) {
			t.Fatalf("expected false for foreign key violation")
		}
	})

	t.Run("ignores plain errors", func(t *testing.T) {
		if isUniqueViolation(errors.New("pq: duplicate key")) {
			t.Fatalf("expected false for untyped error")
		}
	})
}

func TestMatchListQuery(t *testing.T) {
	t.Parallel()

	query, args, err := matchListQuery(match.Filter{
		LeagueID: "league-1",
		TeamID:   "team-1",
		Statuses: []match.Status{match.StatusLive, match.StatusScheduled},
	}).ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	want := "SELECT * FROM matches WHERE deleted_at IS NULL AND league_id = $1 AND (home_team_id = $2 OR away_team_id = $3) AND status IN ($4, $5) ORDER BY scheduled_at ASC, id ASC"
	if query != want {
		t.Fatalf("unexpected query:\n got %s\nwant %s", query, want)
	}
	if len(args) != 5 || args[0] != "league-1" || args[3] != "live" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestMatchListQuery_EmptyFilter(t *testing.T) {
	t.Parallel()

	query, args, err := matchListQuery(match.Filter{}).ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	if strings.Contains(query, "$") || len(args) != 0 {
		t.Fatalf("empty filter must not bind args: %s %v", query, args)
	}
}

func TestUpdateRowSkipsImmutableColumns(t *testing.T) {
	t.Parallel()

	row := cupToRow(cup.Cup{ID: "cup-1", Slug: "ethiopian-cup", NameEN: "Ethiopian Cup", UpdatedAt: time.Now()})
	query, _, err := qb.UpdateModel(cupsTable, row, immutableColumns, qb.Eq("id", row.ID), qb.IsNull("deleted_at"))
	if err != nil {
		t.Fatalf("build update: %v", err)
	}
	for _, col := range []string{"id =", "created_at =", "deleted_at ="} {
		if strings.Contains(query, "SET "+col) || strings.Contains(query, ", "+col) {
			t.Fatalf("update must not assign %s: %s", col, query)
		}
	}
	if !strings.Contains(query, "slug = ") {
		t.Fatalf("update should assign slug: %s", query)
	}
}

func TestOptionalColumnsRoundTrip(t *testing.T) {
	t.Parallel()

	undecided := cupEditionToRow(cup.Edition{ID: "ed-1", CupID: "cup-1", Season: "2025/26"})
	if undecided.WinnerTeamID != nil || undecided.RunnerUpTeamID != nil {
		t.Fatalf("empty team ids must be stored as NULL: %+v", undecided)
	}

	ownGoal := matchEventToRow(match.Event{ID: "ev-1", MatchID: "m-1", TeamID: "t-1", Type: match.EventOwnGoal})
	if ownGoal.PlayerID != nil {
		t.Fatalf("missing player must be stored as NULL")
	}
	if got := matchEventFromRow(ownGoal); got.PlayerID != "" || got.Type != match.EventOwnGoal {
		t.Fatalf("unexpected event from row: %+v", got)
	}
}
