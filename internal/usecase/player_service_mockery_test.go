package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	playermock "github.com/riskibarqy/league-portal/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/league-portal/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

const saintGeorgeID = "7a2d3b5f-9b5a-4b6f-8e20-1d2c3b4e5f01"

func TestPlayerService_CreatePlayer_DerivesSlugUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewPlayerService(playerRepo, teamRepo, &sequenceIDGen{})
	service.now = fixedNow(time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	teamRepo.
		On("GetByID", mock.Anything, saintGeorgeID).
		Return(team.Team{ID: saintGeorgeID, Slug: "saint-george"}, true, nil).
		Once()
	playerRepo.
		On("GetBySlug", mock.Anything, "abel-yalew").
		Return(player.Player{}, false, nil).
		Once()
	playerRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(p player.Player) bool {
			return p.Slug == "abel-yalew" && p.Position == player.PositionForward && p.Nationality == "ET"
		})).
		Return(nil).
		Once()

	got, err := service.CreatePlayer(ctx, PlayerInput{
		TeamID:       " " + saintGeorgeID,
		NameEN:       "Abel Yalew",
		Position:     "fwd",
		JerseyNumber: 9,
		Nationality:  "et",
	})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if got.ID == "" || got.TeamID != saintGeorgeID {
		t.Fatalf("unexpected player: %+v", got)
	}
}

func TestPlayerService_CreatePlayer_SlugTakenUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	service := NewPlayerService(playerRepo, teamRepo, &sequenceIDGen{})

	teamRepo.
		On("GetByID", mock.Anything, saintGeorgeID).
		Return(team.Team{ID: saintGeorgeID}, true, nil).
		Once()
	playerRepo.
		On("GetBySlug", mock.Anything, "abel-yalew").
		Return(player.Player{ID: "someone-else"}, true, nil).
		Once()

	_, err := service.CreatePlayer(ctx, PlayerInput{TeamID: saintGeorgeID, NameEN: "Abel Yalew", Position: "FWD"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected slug conflict, got %v", err)
	}
}

func TestPlayerService_GetPlayersByIDsUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo, teammock.NewRepository(t), &sequenceIDGen{})

	got, err := service.GetPlayersByIDs(ctx, nil)
	if err != nil || got != nil {
		t.Fatalf("empty ids should not hit the repository, got %v %v", got, err)
	}

	playerRepo.
		On("GetByIDs", mock.Anything, []string{"p1", "p2"}).
		Return(nil, errors.New("db down")).
		Once()
	if _, err := service.GetPlayersByIDs(ctx, []string{"p1", "p2"}); err == nil {
		t.Fatalf("expected repository error")
	}
}
