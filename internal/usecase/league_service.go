package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/league"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
)

// LeagueInput is the writable part of a league.
type LeagueInput struct {
	Slug     string
	NameEN   string
	NameAM   string
	Country  string
	Season   string
	LogoURL  string
	IsActive bool
}

type LeagueService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewLeagueService(leagueRepo league.Repository, teamRepo team.Repository, idGen idgen.Generator) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

// GetLeague resolves a league by id or slug.
func (s *LeagueService) GetLeague(ctx context.Context, ref string) (league.League, error) {
	return resolveRef(ctx, "league", ref, s.leagueRepo.GetByID, s.leagueRepo.GetBySlug)
}

func (s *LeagueService) ListTeamsByLeague(ctx context.Context, ref string) ([]team.Team, error) {
	lg, err := s.GetLeague(ctx, ref)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByLeague(ctx, lg.ID)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}

	return teams, nil
}

func (s *LeagueService) CreateLeague(ctx context.Context, in LeagueInput) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CreateLeague")
	defer span.End()

	id, err := s.idGen.NewID()
	if err != nil {
		return league.League{}, fmt.Errorf("generate league id: %w", err)
	}
	now := s.now().UTC()
	lg := league.League{ID: id, CreatedAt: now}
	if err := s.apply(ctx, &lg, in, now); err != nil {
		return league.League{}, err
	}
	if err := s.leagueRepo.Create(ctx, lg); err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}

	return lg, nil
}

func (s *LeagueService) UpdateLeague(ctx context.Context, leagueID string, in LeagueInput) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.UpdateLeague")
	defer span.End()

	lg, err := loadByID(ctx, "league", leagueID, s.leagueRepo.GetByID)
	if err != nil {
		return league.League{}, err
	}
	if err := s.apply(ctx, &lg, in, s.now().UTC()); err != nil {
		return league.League{}, err
	}
	if err := s.leagueRepo.Update(ctx, lg); err != nil {
		return league.League{}, fmt.Errorf("update league: %w", err)
	}

	return lg, nil
}

// DeleteLeague refuses to remove a league that still has teams.
func (s *LeagueService) DeleteLeague(ctx context.Context, leagueID string) error {
	lg, err := loadByID(ctx, "league", leagueID, s.leagueRepo.GetByID)
	if err != nil {
		return err
	}
	teams, err := s.teamRepo.ListByLeague(ctx, lg.ID)
	if err != nil {
		return fmt.Errorf("list teams by league: %w", err)
	}
	if len(teams) > 0 {
		return fmt.Errorf("%w: league %s still has %d teams", ErrConflict, lg.Slug, len(teams))
	}
	if err := s.leagueRepo.Delete(ctx, lg.ID); err != nil {
		return fmt.Errorf("delete league: %w", err)
	}

	return nil
}

func (s *LeagueService) apply(ctx context.Context, lg *league.League, in LeagueInput, now time.Time) error {
	value, err := pickSlug(in.Slug, in.NameEN, "league", lg.ID)
	if err != nil {
		return err
	}
	if err := ensureSlugFree(ctx, "league", value, lg.ID, s.leagueRepo.GetBySlug, func(l league.League) string { return l.ID }); err != nil {
		return err
	}

	lg.Slug = value
	lg.NameEN = strings.TrimSpace(in.NameEN)
	lg.NameAM = strings.TrimSpace(in.NameAM)
	lg.Country = strings.ToUpper(strings.TrimSpace(in.Country))
	lg.Season = strings.TrimSpace(in.Season)
	lg.LogoURL = strings.TrimSpace(in.LogoURL)
	lg.IsActive = in.IsActive
	lg.UpdatedAt = now

	return domainInvalid(lg.Validate())
}
