package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/league-portal/internal/domain/league"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	leaguemock "github.com/riskibarqy/league-portal/internal/mocks/domain/league"
	teammock "github.com/riskibarqy/league-portal/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

const premierLeagueID = "6f1c2a4e-8a49-4a5e-9d1f-0c1b2a3d4e01"

func TestLeagueService_ListTeamsByLeague_BySlugUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewLeagueService(leagueRepo, teamRepo, &sequenceIDGen{})
	expectedTeams := []team.Team{
		{ID: "t1", LeagueID: premierLeagueID, NameEN: "Saint George"},
		{ID: "t2", LeagueID: premierLeagueID, NameEN: "Fasil Kenema"},
	}

	leagueRepo.
		On("GetBySlug", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "ethiopian-premier-league").
		Return(league.League{ID: premierLeagueID, Slug: "ethiopian-premier-league"}, true, nil).
		Once()
	teamRepo.
		On("ListByLeague", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), premierLeagueID).
		Return(expectedTeams, nil).
		Once()

	got, err := service.ListTeamsByLeague(ctx, "ethiopian-premier-league")
	if err != nil {
		t.Fatalf("list teams by league: %v", err)
	}
	if len(got) != len(expectedTeams) || got[0].ID != "t1" {
		t.Fatalf("unexpected teams: %+v", got)
	}
}

func TestLeagueService_GetLeague_ByIDUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, teammock.NewRepository(t), &sequenceIDGen{})

	leagueRepo.
		On("GetByID", mock.Anything, premierLeagueID).
		Return(league.League{}, false, nil).
		Once()

	_, err := service.GetLeague(ctx, premierLeagueID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLeagueService_CreateLeague_SlugConflictUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, teammock.NewRepository(t), &sequenceIDGen{})

	leagueRepo.
		On("GetBySlug", mock.Anything, "ethiopian-premier-league").
		Return(league.League{ID: premierLeagueID, Slug: "ethiopian-premier-league"}, true, nil).
		Once()

	_, err := service.CreateLeague(ctx, LeagueInput{NameEN: "Ethiopian Premier League", Season: "2026/27"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	leagueRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLeagueService_CreateLeague_DerivesSlugUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, teammock.NewRepository(t), &sequenceIDGen{})

	leagueRepo.
		On("GetBySlug", mock.Anything, "ethiopian-women-s-premier-league").
		Return(league.League{}, false, nil).
		Once()
	leagueRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(l league.League) bool {
			return l.Slug == "ethiopian-women-s-premier-league" && l.Country == "ET" && !l.CreatedAt.IsZero()
		})).
		Return(nil).
		Once()

	got, err := service.CreateLeague(ctx, LeagueInput{
		NameEN:  "Ethiopian Women's Premier League",
		NameAM:  "የኢትዮጵያ ሴቶች ፕሪሚየር ሊግ",
		Country: "et",
		Season:  "2025/26",
	})
	if err != nil {
		t.Fatalf("create league: %v", err)
	}
	if got.ID == "" || got.Slug != "ethiopian-women-s-premier-league" {
		t.Fatalf("unexpected league: %+v", got)
	}
}

func TestLeagueService_CreateLeague_InvalidSlugUsingMockery(t *testing.T) {
	t.Parallel()

	service := NewLeagueService(leaguemock.NewRepository(t), teammock.NewRepository(t), &sequenceIDGen{})

	_, err := service.CreateLeague(context.Background(), LeagueInput{Slug: "Not A Slug", NameEN: "League", Season: "2026"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Fields[0].Field != "slug" {
		t.Fatalf("expected slug validation error, got %v", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("validation error should unwrap to ErrInvalidInput")
	}
}

func TestLeagueService_DeleteLeague_WithTeamsConflictUsingMockery(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	service := NewLeagueService(leagueRepo, teamRepo, &sequenceIDGen{})

	leagueRepo.On("GetByID", mock.Anything, premierLeagueID).
		Return(league.League{ID: premierLeagueID, Slug: "ethiopian-premier-league"}, true, nil).Once()
	teamRepo.On("ListByLeague", mock.Anything, premierLeagueID).
		Return([]team.Team{{ID: "t1"}}, nil).Once()

	err := service.DeleteLeague(context.Background(), premierLeagueID)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestLeagueService_ListLeagues_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, teammock.NewRepository(t), &sequenceIDGen{})

	boom := errors.New("db down")
	leagueRepo.On("List", mock.Anything).Return(nil, boom).Once()

	_, err := service.ListLeagues(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}
