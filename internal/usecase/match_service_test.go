package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/infrastructure/repository/memory"
)

func newMatchServiceForTest(now time.Time) (*MatchService, *memory.MatchRepository) {
	matchRepo := memory.NewMatchRepository(memory.SeedMatches(now))
	svc := NewMatchService(
		matchRepo,
		memory.NewMatchEventRepository(memory.SeedMatchEvents()),
		memory.NewLeagueRepository(memory.SeedLeagues()),
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		&sequenceIDGen{},
	)
	svc.now = fixedNow(now)
	return svc, matchRepo
}

func TestMatchService_UpdateStatus_StampsPhaseTimestamps(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)
	svc, _ := newMatchServiceForTest(kickoff)
	ctx := context.Background()

	live, err := svc.UpdateStatus(ctx, memory.MatchIDScheduled, MatchStatusInput{Status: "live"})
	if err != nil {
		t.Fatalf("start match: %v", err)
	}
	if live.MatchStartedAt == nil || !live.MatchStartedAt.Equal(kickoff) {
		t.Fatalf("expected kickoff stamp %s, got %v", kickoff, live.MatchStartedAt)
	}

	secondHalf := kickoff.Add(62 * time.Minute)
	svc.now = fixedNow(secondHalf)
	home := 1
	updated, err := svc.UpdateStatus(ctx, memory.MatchIDScheduled, MatchStatusInput{Phase: "second_half", HomeScore: &home})
	if err != nil {
		t.Fatalf("start second half: %v", err)
	}
	if !updated.MatchStartedAt.Equal(kickoff) {
		t.Fatalf("kickoff stamp must not move: %v", updated.MatchStartedAt)
	}
	if updated.SecondHalfStartedAt == nil || !updated.SecondHalfStartedAt.Equal(secondHalf) {
		t.Fatalf("expected second half stamp, got %v", updated.SecondHalfStartedAt)
	}
	if updated.HomeScore != 1 || updated.Status != match.StatusLive {
		t.Fatalf("unexpected match after second half: %+v", updated)
	}

	display := match.Clock(updated, secondHalf.Add(10*time.Minute))
	if display.Minute < 45 || display.Phase != match.PhaseSecondHalf {
		t.Fatalf("second half clock should be at least 45, got %+v", display)
	}

	svc.now = fixedNow(secondHalf.Add(50 * time.Minute))
	done, err := svc.UpdateStatus(ctx, memory.MatchIDScheduled, MatchStatusInput{Status: "completed"})
	if err != nil {
		t.Fatalf("complete match: %v", err)
	}
	if done.ExtraTimeStartedAt != nil {
		t.Fatalf("extra time was never entered: %v", done.ExtraTimeStartedAt)
	}
	if got := match.Clock(done, time.Now()); got.Live || got.Label != match.FullTime {
		t.Fatalf("completed match should show full time, got %+v", got)
	}
}

func TestMatchService_UpdateStatus_RejectsBackwardTransition(t *testing.T) {
	t.Parallel()

	svc, _ := newMatchServiceForTest(time.Now())

	_, err := svc.UpdateStatus(context.Background(), memory.MatchIDCompleted, MatchStatusInput{Status: "live"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Fields[0].Field != "status" {
		t.Fatalf("expected status validation error, got %v", err)
	}
}

func TestMatchService_UpdateStatus_PhaseRequiresLive(t *testing.T) {
	t.Parallel()

	svc, _ := newMatchServiceForTest(time.Now())

	_, err := svc.UpdateStatus(context.Background(), memory.MatchIDScheduled, MatchStatusInput{Phase: "extra_time"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_CreateMatch_ValidatesForeignKeys(t *testing.T) {
	t.Parallel()

	svc, _ := newMatchServiceForTest(time.Now())
	ctx := context.Background()
	kickoff := time.Date(2026, 11, 1, 13, 0, 0, 0, time.UTC)

	_, err := svc.CreateMatch(ctx, MatchInput{
		LeagueID:    memory.LeagueIDPremierLeague,
		HomeTeamID:  memory.TeamIDSaintGeorge,
		AwayTeamID:  memory.TeamIDHadiyaHossana,
		ScheduledAt: kickoff,
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Fields[0].Field != "away_team_id" {
		t.Fatalf("expected away team league error, got %v", err)
	}

	_, err = svc.CreateMatch(ctx, MatchInput{
		LeagueID:    "00000000-0000-4000-8000-999999999999",
		HomeTeamID:  memory.TeamIDSaintGeorge,
		AwayTeamID:  memory.TeamIDBahirDar,
		ScheduledAt: kickoff,
	})
	if !errors.As(err, &vErr) || vErr.Fields[0].Field != "league_id" {
		t.Fatalf("expected league validation error, got %v", err)
	}

	created, err := svc.CreateMatch(ctx, MatchInput{
		LeagueID:    memory.LeagueIDPremierLeague,
		HomeTeamID:  memory.TeamIDSaintGeorge,
		AwayTeamID:  memory.TeamIDBahirDar,
		ScheduledAt: kickoff,
		Round:       "Matchday 6",
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	if created.Slug != "saint-george-vs-bahir-dar-kenema-2026-11-01" || created.Status != match.StatusScheduled {
		t.Fatalf("unexpected created match: %+v", created)
	}

	bySlug, err := svc.GetMatch(ctx, created.Slug)
	if err != nil || bySlug.ID != created.ID {
		t.Fatalf("expected match by slug, got %+v err=%v", bySlug, err)
	}

	_, err = svc.CreateMatch(ctx, MatchInput{
		Slug:        created.Slug,
		LeagueID:    memory.LeagueIDPremierLeague,
		HomeTeamID:  memory.TeamIDBahirDar,
		AwayTeamID:  memory.TeamIDSaintGeorge,
		ScheduledAt: kickoff,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected slug conflict, got %v", err)
	}
}

func TestMatchService_Events(t *testing.T) {
	t.Parallel()

	svc, _ := newMatchServiceForTest(time.Now())
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, memory.MatchIDLive, EventInput{
		TeamID:   memory.TeamIDSaintGeorge,
		PlayerID: "a1b2c3d4-0001-4000-8000-000000000005",
		Type:     "goal",
		Minute:   40,
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Fields[0].Field != "player_id" {
		t.Fatalf("expected player team mismatch, got %v", err)
	}

	_, err = svc.CreateEvent(ctx, memory.MatchIDLive, EventInput{TeamID: memory.TeamIDBahirDar, Type: "goal", Minute: 40})
	if !errors.As(err, &vErr) || vErr.Fields[0].Field != "team_id" {
		t.Fatalf("expected team not in match, got %v", err)
	}

	created, err := svc.CreateEvent(ctx, memory.MatchIDLive, EventInput{
		TeamID:      memory.TeamIDFasilKenema,
		PlayerID:    "a1b2c3d4-0001-4000-8000-000000000005",
		Type:        "red_card",
		Minute:      45,
		ExtraMinute: 1,
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	events, err := svc.ListEvents(ctx, "saint-george-vs-fasil-kenema")
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 3 || events[2].ID != created.ID || events[2].Label() != "45+1'" {
		t.Fatalf("unexpected events: %+v", events)
	}

	if err := svc.DeleteEvent(ctx, created.ID); err != nil {
		t.Fatalf("delete event: %v", err)
	}
	if err := svc.DeleteEvent(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestMatchService_DeleteMatch_RefusesLive(t *testing.T) {
	t.Parallel()

	svc, _ := newMatchServiceForTest(time.Now())
	if err := svc.DeleteMatch(context.Background(), memory.MatchIDLive); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestMatchService_ListMatches_Filters(t *testing.T) {
	t.Parallel()

	svc, _ := newMatchServiceForTest(time.Now())
	ctx := context.Background()

	got, err := svc.ListMatches(ctx, MatchQuery{TeamRef: "fasil-kenema", Statuses: []string{"completed"}})
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(got) != 1 || got[0].ID != memory.MatchIDCompleted {
		t.Fatalf("unexpected matches: %+v", got)
	}

	if _, err := svc.ListMatches(ctx, MatchQuery{Statuses: []string{"postponed"}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}
