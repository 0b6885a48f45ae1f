package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/infrastructure/repository/memory"
)

func newPageServiceForTest(now time.Time) *PageService {
	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches(now))
	standings := NewStandingService(memory.NewStandingRepository(nil), leagueRepo, teamRepo, matchRepo, &sequenceIDGen{})

	svc := NewPageService(
		leagueRepo,
		teamRepo,
		memory.NewPlayerRepository(memory.SeedPlayers()),
		matchRepo,
		memory.NewMatchEventRepository(memory.SeedMatchEvents()),
		memory.NewTopScorerRepository(memory.SeedTopScorers()),
		standings,
	)
	svc.now = fixedNow(now)
	return svc
}

func TestPageService_MatchPage(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)
	svc := newPageServiceForTest(now)

	page, err := svc.MatchPage(context.Background(), "saint-george-vs-fasil-kenema")
	if err != nil {
		t.Fatalf("match page: %v", err)
	}
	if page.HomeTeam.ID != memory.TeamIDSaintGeorge || page.AwayTeam.ID != memory.TeamIDFasilKenema {
		t.Fatalf("teams not loaded: %+v / %+v", page.HomeTeam, page.AwayTeam)
	}
	if page.League.ID != memory.LeagueIDPremierLeague {
		t.Fatalf("league not loaded: %+v", page.League)
	}
	if len(page.Events) != 2 || page.Events[0].Minute != 17 {
		t.Fatalf("events not ordered: %+v", page.Events)
	}
	if page.HomeFormation.Name != "4-3-3" || len(page.AwayFormation.Slots) != 11 {
		t.Fatalf("unexpected formations: %+v / %+v", page.HomeFormation.Name, page.AwayFormation.Name)
	}
	if !page.Clock.Live || page.Clock.Minute != 31 {
		t.Fatalf("unexpected clock: %+v", page.Clock)
	}
}

func TestPageService_MatchPage_NotFound(t *testing.T) {
	t.Parallel()

	svc := newPageServiceForTest(time.Now())
	if _, err := svc.MatchPage(context.Background(), "no-such-match"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPageService_TeamPage(t *testing.T) {
	t.Parallel()

	svc := newPageServiceForTest(time.Now())
	page, err := svc.TeamPage(context.Background(), "fasil-kenema")
	if err != nil {
		t.Fatalf("team page: %v", err)
	}
	if len(page.Squad[player.PositionForward]) != 1 || len(page.Squad[player.PositionMidfielder]) != 1 {
		t.Fatalf("unexpected squad grouping: %+v", page.Squad)
	}
	if len(page.Live) != 1 || len(page.Recent) != 1 || len(page.Upcoming) != 0 {
		t.Fatalf("unexpected match buckets: live=%d recent=%d upcoming=%d", len(page.Live), len(page.Recent), len(page.Upcoming))
	}
	if page.Formation.Name != "4-4-2" {
		t.Fatalf("unexpected formation %s", page.Formation.Name)
	}
}

func TestPageService_PlayerPage(t *testing.T) {
	t.Parallel()

	svc := newPageServiceForTest(time.Now())
	page, err := svc.PlayerPage(context.Background(), "mujib-kassim")
	if err != nil {
		t.Fatalf("player page: %v", err)
	}
	if page.Team.ID != memory.TeamIDFasilKenema || len(page.Tallies) != 1 || page.Tallies[0].Goals != 6 {
		t.Fatalf("unexpected player page: %+v", page)
	}
}

func TestPageService_LeagueOverview(t *testing.T) {
	t.Parallel()

	svc := newPageServiceForTest(time.Now())
	page, err := svc.LeagueOverview(context.Background(), "ethiopian-premier-league")
	if err != nil {
		t.Fatalf("league overview: %v", err)
	}
	if len(page.Teams) != 4 {
		t.Fatalf("expected 4 teams, got %d", len(page.Teams))
	}
	if !page.Standings.Computed || len(page.Standings.Rows) != 4 {
		t.Fatalf("expected computed standings for 4 teams, got %+v", page.Standings)
	}
	if len(page.TopScorers) != 3 || page.TopScorers[1].Assists != 3 {
		t.Fatalf("top scorers not ordered: %+v", page.TopScorers)
	}
	if len(page.Live) != 1 || len(page.Upcoming) != 1 || len(page.Completed) != 1 {
		t.Fatalf("unexpected buckets: live=%d upcoming=%d completed=%d", len(page.Live), len(page.Upcoming), len(page.Completed))
	}
}
