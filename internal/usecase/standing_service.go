package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/league"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/standing"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
)

type StandingInput struct {
	LeagueID     string
	TeamID       string
	Season       string
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	Points       int
	Form         string
}

// StandingTable is a league table. Computed is true when no rows were stored and
// the table was derived from completed matches.
type StandingTable struct {
	League   league.League
	Rows     []standing.Standing
	Computed bool
}

type StandingService struct {
	standingRepo standing.Repository
	leagueRepo   league.Repository
	teamRepo     team.Repository
	matchRepo    match.Repository
	idGen        idgen.Generator
	now          func() time.Time
}

func NewStandingService(
	standingRepo standing.Repository,
	leagueRepo league.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	idGen idgen.Generator,
) *StandingService {
	return &StandingService{
		standingRepo: standingRepo,
		leagueRepo:   leagueRepo,
		teamRepo:     teamRepo,
		matchRepo:    matchRepo,
		idGen:        idGen,
		now:          time.Now,
	}
}

func (s *StandingService) ListStandings(ctx context.Context, leagueRef string) (StandingTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListStandings")
	defer span.End()

	lg, err := resolveRef(ctx, "league", leagueRef, s.leagueRepo.GetByID, s.leagueRepo.GetBySlug)
	if err != nil {
		return StandingTable{}, err
	}
	teams, err := s.teamRepo.ListByLeague(ctx, lg.ID)
	if err != nil {
		return StandingTable{}, fmt.Errorf("list teams by league: %w", err)
	}
	names := make(map[string]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.NameEN
	}
	nameOf := func(teamID string) string { return names[teamID] }

	rows, err := s.standingRepo.ListByLeague(ctx, lg.ID)
	if err != nil {
		return StandingTable{}, fmt.Errorf("list standings: %w", err)
	}
	if len(rows) > 0 {
		standing.Sort(rows, nameOf)
		return StandingTable{League: lg, Rows: rows}, nil
	}

	matches, err := s.matchRepo.List(ctx, match.Filter{LeagueID: lg.ID, Statuses: []match.Status{match.StatusCompleted}})
	if err != nil {
		return StandingTable{}, fmt.Errorf("list completed matches: %w", err)
	}
	teamIDs := make([]string, 0, len(teams))
	for _, t := range teams {
		teamIDs = append(teamIDs, t.ID)
	}

	return StandingTable{
		League:   lg,
		Rows:     standing.Compute(lg.ID, lg.Season, teamIDs, matches, nameOf),
		Computed: true,
	}, nil
}

func (s *StandingService) CreateStanding(ctx context.Context, in StandingInput) (standing.Standing, error) {
	id, err := s.idGen.NewID()
	if err != nil {
		return standing.Standing{}, fmt.Errorf("generate standing id: %w", err)
	}
	now := s.now().UTC()
	row := standing.Standing{ID: id, CreatedAt: now}
	if err := s.apply(ctx, &row, in, now); err != nil {
		return standing.Standing{}, err
	}
	if err := s.standingRepo.Create(ctx, row); err != nil {
		return standing.Standing{}, fmt.Errorf("create standing: %w", err)
	}
	return row, nil
}

func (s *StandingService) UpdateStanding(ctx context.Context, standingID string, in StandingInput) (standing.Standing, error) {
	row, err := loadByID(ctx, "standing", standingID, s.standingRepo.GetByID)
	if err != nil {
		return standing.Standing{}, err
	}
	if err := s.apply(ctx, &row, in, s.now().UTC()); err != nil {
		return standing.Standing{}, err
	}
	if err := s.standingRepo.Update(ctx, row); err != nil {
		return standing.Standing{}, fmt.Errorf("update standing: %w", err)
	}
	return row, nil
}

func (s *StandingService) DeleteStanding(ctx context.Context, standingID string) error {
	row, err := loadByID(ctx, "standing", standingID, s.standingRepo.GetByID)
	if err != nil {
		return err
	}
	if err := s.standingRepo.Delete(ctx, row.ID); err != nil {
		return fmt.Errorf("delete standing: %w", err)
	}
	return nil
}

func (s *StandingService) apply(ctx context.Context, row *standing.Standing, in StandingInput, now time.Time) error {
	lg, err := mustExist(ctx, "league", "league_id", in.LeagueID, s.leagueRepo.GetByID)
	if err != nil {
		return err
	}
	t, err := mustExist(ctx, "team", "team_id", in.TeamID, s.teamRepo.GetByID)
	if err != nil {
		return err
	}
	if t.LeagueID != lg.ID {
		return invalidField("team_id", "team does not play in this league")
	}

	existing, err := s.standingRepo.ListByLeague(ctx, lg.ID)
	if err != nil {
		return fmt.Errorf("list standings: %w", err)
	}
	for _, other := range existing {
		if other.ID != row.ID && other.TeamID == t.ID {
			return fmt.Errorf("%w: team %s already has a standing row", ErrConflict, t.Slug)
		}
	}

	season := strings.TrimSpace(in.Season)
	if season == "" {
		season = lg.Season
	}
	row.LeagueID = lg.ID
	row.TeamID = t.ID
	row.Season = season
	row.Played = in.Played
	row.Won = in.Won
	row.Drawn = in.Drawn
	row.Lost = in.Lost
	row.GoalsFor = in.GoalsFor
	row.GoalsAgainst = in.GoalsAgainst
	row.Points = in.Points
	row.Form = strings.ToUpper(strings.TrimSpace(in.Form))
	row.UpdatedAt = now

	return domainInvalid(row.Validate())
}
