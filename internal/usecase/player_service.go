package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
)

// PlayerInput is the writable part of a player.
type PlayerInput struct {
	Slug         string
	TeamID       string
	NameEN       string
	NameAM       string
	Position     string
	JerseyNumber int
	Nationality  string
	PhotoURL     string
	DateOfBirth  *time.Time
}

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository, idGen idgen.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context, teamID string) ([]player.Player, error) {
	var (
		players []player.Player
		err     error
	)
	if teamID = strings.TrimSpace(teamID); teamID != "" {
		players, err = s.playerRepo.ListByTeam(ctx, teamID)
	} else {
		players, err = s.playerRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

// GetPlayersByIDs returns the players that exist among ids, in no particular order.
func (s *PlayerService) GetPlayersByIDs(ctx context.Context, ids []string) ([]player.Player, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	players, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get players by ids: %w", err)
	}
	return players, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, ref string) (player.Player, error) {
	return resolveRef(ctx, "player", ref, s.playerRepo.GetByID, s.playerRepo.GetBySlug)
}

func (s *PlayerService) CreatePlayer(ctx context.Context, in PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	id, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}
	now := s.now().UTC()
	p := player.Player{ID: id, CreatedAt: now}
	if err := s.apply(ctx, &p, in, now); err != nil {
		return player.Player{}, err
	}
	if err := s.playerRepo.Create(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return p, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, playerID string, in PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	p, err := loadByID(ctx, "player", playerID, s.playerRepo.GetByID)
	if err != nil {
		return player.Player{}, err
	}
	if err := s.apply(ctx, &p, in, s.now().UTC()); err != nil {
		return player.Player{}, err
	}
	if err := s.playerRepo.Update(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return p, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, playerID string) error {
	p, err := loadByID(ctx, "player", playerID, s.playerRepo.GetByID)
	if err != nil {
		return err
	}
	if err := s.playerRepo.Delete(ctx, p.ID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

func (s *PlayerService) apply(ctx context.Context, p *player.Player, in PlayerInput, now time.Time) error {
	if _, err := mustExist(ctx, "team", "team_id", in.TeamID, s.teamRepo.GetByID); err != nil {
		return err
	}
	position, ok := player.ParsePosition(in.Position)
	if !ok {
		return invalidField("position", "must be one of GK, DEF, MID, FWD")
	}
	if in.DateOfBirth != nil && in.DateOfBirth.After(now) {
		return invalidField("date_of_birth", "must be in the past")
	}
	value, err := pickSlug(in.Slug, in.NameEN, "player", p.ID)
	if err != nil {
		return err
	}
	if err := ensureSlugFree(ctx, "player", value, p.ID, s.playerRepo.GetBySlug, func(p player.Player) string { return p.ID }); err != nil {
		return err
	}

	p.Slug = value
	p.TeamID = strings.TrimSpace(in.TeamID)
	p.NameEN = strings.TrimSpace(in.NameEN)
	p.NameAM = strings.TrimSpace(in.NameAM)
	p.Position = position
	p.JerseyNumber = in.JerseyNumber
	p.Nationality = strings.ToUpper(strings.TrimSpace(in.Nationality))
	p.PhotoURL = strings.TrimSpace(in.PhotoURL)
	p.DateOfBirth = in.DateOfBirth
	p.UpdatedAt = now

	return domainInvalid(p.Validate())
}
