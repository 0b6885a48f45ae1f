package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/league"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
)

// TeamInput is the writable part of a team.
type TeamInput struct {
	Slug        string
	LeagueID    string
	NameEN      string
	NameAM      string
	ShortName   string
	LogoURL     string
	Stadium     string
	FoundedYear int
	Formation   string
}

type TeamService struct {
	teamRepo   team.Repository
	leagueRepo league.Repository
	playerRepo player.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewTeamService(teamRepo team.Repository, leagueRepo league.Repository, playerRepo player.Repository, idGen idgen.Generator) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		leagueRepo: leagueRepo,
		playerRepo: playerRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) GetTeam(ctx context.Context, ref string) (team.Team, error) {
	return resolveRef(ctx, "team", ref, s.teamRepo.GetByID, s.teamRepo.GetBySlug)
}

func (s *TeamService) CreateTeam(ctx context.Context, in TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	id, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}
	now := s.now().UTC()
	t := team.Team{ID: id, CreatedAt: now}
	if err := s.apply(ctx, &t, in, now); err != nil {
		return team.Team{}, err
	}
	if err := s.teamRepo.Create(ctx, t); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return t, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, teamID string, in TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UpdateTeam")
	defer span.End()

	t, err := loadByID(ctx, "team", teamID, s.teamRepo.GetByID)
	if err != nil {
		return team.Team{}, err
	}
	if err := s.apply(ctx, &t, in, s.now().UTC()); err != nil {
		return team.Team{}, err
	}
	if err := s.teamRepo.Update(ctx, t); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	return t, nil
}

// DeleteTeam refuses to remove a team that still has registered players.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID string) error {
	t, err := loadByID(ctx, "team", teamID, s.teamRepo.GetByID)
	if err != nil {
		return err
	}
	squad, err := s.playerRepo.ListByTeam(ctx, t.ID)
	if err != nil {
		return fmt.Errorf("list players by team: %w", err)
	}
	if len(squad) > 0 {
		return fmt.Errorf("%w: team %s still has %d players", ErrConflict, t.Slug, len(squad))
	}
	if err := s.teamRepo.Delete(ctx, t.ID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	return nil
}

func (s *TeamService) apply(ctx context.Context, t *team.Team, in TeamInput, now time.Time) error {
	if _, err := mustExist(ctx, "league", "league_id", in.LeagueID, s.leagueRepo.GetByID); err != nil {
		return err
	}
	value, err := pickSlug(in.Slug, in.NameEN, "team", t.ID)
	if err != nil {
		return err
	}
	if err := ensureSlugFree(ctx, "team", value, t.ID, s.teamRepo.GetBySlug, func(t team.Team) string { return t.ID }); err != nil {
		return err
	}

	t.Slug = value
	t.LeagueID = strings.TrimSpace(in.LeagueID)
	t.NameEN = strings.TrimSpace(in.NameEN)
	t.NameAM = strings.TrimSpace(in.NameAM)
	t.ShortName = strings.ToUpper(strings.TrimSpace(in.ShortName))
	t.LogoURL = strings.TrimSpace(in.LogoURL)
	t.Stadium = strings.TrimSpace(in.Stadium)
	t.FoundedYear = in.FoundedYear
	t.Formation = strings.TrimSpace(in.Formation)
	t.UpdatedAt = now

	return domainInvalid(t.Validate())
}
