package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/league-portal/internal/infrastructure/repository/memory"
)

func TestStandingService_StoredRowsWinOverComputed(t *testing.T) {
	t.Parallel()

	now := time.Now()
	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches(now))
	svc := NewStandingService(memory.NewStandingRepository(nil), leagueRepo, teamRepo, matchRepo, &sequenceIDGen{})
	ctx := context.Background()

	computed, err := svc.ListStandings(ctx, "ethiopian-premier-league")
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}
	if !computed.Computed || computed.Rows[0].Played != 1 {
		t.Fatalf("expected computed table from the completed draw, got %+v", computed)
	}

	row, err := svc.CreateStanding(ctx, StandingInput{
		LeagueID: memory.LeagueIDPremierLeague,
		TeamID:   memory.TeamIDBahirDar,
		Played:   3, Won: 3, GoalsFor: 7, Points: 9, Form: "www",
	})
	if err != nil {
		t.Fatalf("create standing: %v", err)
	}
	if row.Season != "2025/26" || row.Form != "WWW" {
		t.Fatalf("season should default to the league season: %+v", row)
	}

	_, err = svc.CreateStanding(ctx, StandingInput{LeagueID: memory.LeagueIDPremierLeague, TeamID: memory.TeamIDBahirDar})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected duplicate row conflict, got %v", err)
	}
	_, err = svc.CreateStanding(ctx, StandingInput{LeagueID: memory.LeagueIDPremierLeague, TeamID: memory.TeamIDHadiyaHossana})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected team league mismatch, got %v", err)
	}

	stored, err := svc.ListStandings(ctx, memory.LeagueIDPremierLeague)
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}
	if stored.Computed || len(stored.Rows) != 1 || stored.Rows[0].Position != 1 {
		t.Fatalf("expected stored rows, got %+v", stored)
	}
}

func TestTopScorerService_DefaultsTeamFromPlayer(t *testing.T) {
	t.Parallel()

	svc := NewTopScorerService(
		memory.NewTopScorerRepository(nil),
		memory.NewLeagueRepository(memory.SeedLeagues()),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewTeamRepository(memory.SeedTeams()),
		&sequenceIDGen{},
	)
	ctx := context.Background()

	item, err := svc.CreateTopScorer(ctx, TopScorerInput{
		LeagueID: memory.LeagueIDPremierLeague,
		PlayerID: "a1b2c3d4-0001-4000-8000-000000000007",
		Goals:    4,
	})
	if err != nil {
		t.Fatalf("create top scorer: %v", err)
	}
	if item.TeamID != memory.TeamIDEthiopiaBunna || item.Season != "2025/26" {
		t.Fatalf("unexpected defaults: %+v", item)
	}

	_, err = svc.UpdateTopScorer(ctx, item.ID, TopScorerInput{
		LeagueID: memory.LeagueIDPremierLeague, PlayerID: item.PlayerID, Goals: 1, Penalties: 2,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected penalties > goals to be rejected, got %v", err)
	}
}

func TestCupService_EditionsAndDelete(t *testing.T) {
	t.Parallel()

	svc := NewCupService(
		memory.NewCupRepository(memory.SeedCups()),
		memory.NewCupEditionRepository(memory.SeedCupEditions()),
		memory.NewTeamRepository(memory.SeedTeams()),
		&sequenceIDGen{},
	)
	ctx := context.Background()

	edition, err := svc.CreateEdition(ctx, memory.CupIDEthiopianCup, EditionInput{Season: "2025/26"})
	if err != nil {
		t.Fatalf("create edition: %v", err)
	}
	if edition.Slug != "2025-26" || edition.Decided() {
		t.Fatalf("unexpected edition: %+v", edition)
	}

	_, err = svc.CreateEdition(ctx, memory.CupIDEthiopianCup, EditionInput{Season: "2025/26"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected edition slug conflict, got %v", err)
	}
	_, err = svc.UpdateEdition(ctx, edition.ID, EditionInput{Season: "2025/26", WinnerTeamID: "00000000-0000-4000-8000-999999999999"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Fields[0].Field != "winner_team_id" {
		t.Fatalf("expected winner validation error, got %v", err)
	}

	detail, err := svc.GetCup(ctx, "ethiopian-cup")
	if err != nil {
		t.Fatalf("get cup: %v", err)
	}
	if len(detail.Editions) != 2 || detail.Editions[0].Season != "2025/26" {
		t.Fatalf("editions should be latest first: %+v", detail.Editions)
	}

	if err := svc.DeleteCup(ctx, memory.CupIDEthiopianCup); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict while editions exist, got %v", err)
	}
}

func TestTeamService_CreateAndDelete(t *testing.T) {
	t.Parallel()

	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	svc := NewTeamService(teamRepo, memory.NewLeagueRepository(memory.SeedLeagues()), playerRepo, &sequenceIDGen{})
	ctx := context.Background()

	created, err := svc.CreateTeam(ctx, TeamInput{
		LeagueID:  memory.LeagueIDPremierLeague,
		NameEN:    "Mekelle 70 Enderta",
		NameAM:    "መቐለ 70 እንደርታ",
		Formation: "4-2-3-1",
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if created.Slug != "mekelle-70-enderta" {
		t.Fatalf("unexpected slug %s", created.Slug)
	}

	_, err = svc.CreateTeam(ctx, TeamInput{LeagueID: memory.LeagueIDPremierLeague, NameEN: "Dire Dawa", Formation: "4-5-1"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected unsupported formation error, got %v", err)
	}

	if err := svc.DeleteTeam(ctx, memory.TeamIDSaintGeorge); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for team with players, got %v", err)
	}
	if err := svc.DeleteTeam(ctx, created.ID); err != nil {
		t.Fatalf("delete empty team: %v", err)
	}
	if _, err := svc.GetTeam(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deleted team to be gone, got %v", err)
	}
}

func TestPlayerService_Validation(t *testing.T) {
	t.Parallel()

	svc := NewPlayerService(memory.NewPlayerRepository(nil), memory.NewTeamRepository(memory.SeedTeams()), &sequenceIDGen{})
	ctx := context.Background()

	_, err := svc.CreatePlayer(ctx, PlayerInput{TeamID: memory.TeamIDSaintGeorge, NameEN: "Shimelis Bekele", Position: "winger"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Fields[0].Field != "position" {
		t.Fatalf("expected position error, got %v", err)
	}

	future := time.Now().Add(48 * time.Hour)
	_, err = svc.CreatePlayer(ctx, PlayerInput{TeamID: memory.TeamIDSaintGeorge, NameEN: "Shimelis Bekele", Position: "MID", DateOfBirth: &future})
	if !errors.As(err, &vErr) || vErr.Fields[0].Field != "date_of_birth" {
		t.Fatalf("expected date_of_birth error, got %v", err)
	}

	p, err := svc.CreatePlayer(ctx, PlayerInput{TeamID: memory.TeamIDSaintGeorge, NameEN: "Shimelis Bekele", Position: "mid", JerseyNumber: 6})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if p.Slug != "shimelis-bekele" || p.Position != "MID" {
		t.Fatalf("unexpected player: %+v", p)
	}
}
