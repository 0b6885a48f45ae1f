package player

import (
	"testing"
	"time"
)

func TestGroupByPosition(t *testing.T) {
	t.Parallel()

	squad := []Player{
		{ID: "p1", Position: PositionForward, JerseyNumber: 9},
		{ID: "p2", Position: PositionGoalkeeper, JerseyNumber: 1},
		{ID: "p3", Position: PositionForward, JerseyNumber: 7},
	}
	got := GroupByPosition(squad)
	if len(got[PositionForward]) != 2 || got[PositionForward][0].ID != "p3" {
		t.Fatalf("forwards should be ordered by jersey: %+v", got[PositionForward])
	}
	if len(got[PositionDefender]) != 0 {
		t.Fatalf("unexpected defenders: %+v", got[PositionDefender])
	}
}

func TestPlayer_Age(t *testing.T) {
	t.Parallel()

	dob := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)
	p := Player{DateOfBirth: &dob}
	if got := p.Age(time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC)); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
	if got := p.Age(time.Date(2026, 6, 16, 0, 0, 0, 0, time.UTC)); got != 26 {
		t.Fatalf("expected 26, got %d", got)
	}
}

func TestParsePosition(t *testing.T) {
	t.Parallel()

	if p, ok := ParsePosition(" mid "); !ok || p != PositionMidfielder {
		t.Fatalf("expected MID, got %q ok=%v", p, ok)
	}
	if _, ok := ParsePosition("winger"); ok {
		t.Fatalf("unknown position should not parse")
	}
}
