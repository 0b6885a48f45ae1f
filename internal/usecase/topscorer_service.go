package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/league"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	"github.com/riskibarqy/league-portal/internal/domain/topscorer"
	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
)

// TopScorerInput defaults TeamID to the player's current team when empty.
type TopScorerInput struct {
	LeagueID  string
	PlayerID  string
	TeamID    string
	Season    string
	Goals     int
	Assists   int
	Penalties int
}

type TopScorerService struct {
	repo       topscorer.Repository
	leagueRepo league.Repository
	playerRepo player.Repository
	teamRepo   team.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewTopScorerService(
	repo topscorer.Repository,
	leagueRepo league.Repository,
	playerRepo player.Repository,
	teamRepo team.Repository,
	idGen idgen.Generator,
) *TopScorerService {
	return &TopScorerService{
		repo:       repo,
		leagueRepo: leagueRepo,
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *TopScorerService) ListTopScorers(ctx context.Context, leagueRef string) ([]topscorer.TopScorer, error) {
	lg, err := resolveRef(ctx, "league", leagueRef, s.leagueRepo.GetByID, s.leagueRepo.GetBySlug)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListByLeague(ctx, lg.ID)
	if err != nil {
		return nil, fmt.Errorf("list top scorers: %w", err)
	}
	topscorer.Sort(items)
	return items, nil
}

func (s *TopScorerService) ListByPlayer(ctx context.Context, playerID string) ([]topscorer.TopScorer, error) {
	items, err := s.repo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list top scorer tallies by player: %w", err)
	}
	return items, nil
}

func (s *TopScorerService) CreateTopScorer(ctx context.Context, in TopScorerInput) (topscorer.TopScorer, error) {
	id, err := s.idGen.NewID()
	if err != nil {
		return topscorer.TopScorer{}, fmt.Errorf("generate top scorer id: %w", err)
	}
	now := s.now().UTC()
	item := topscorer.TopScorer{ID: id, CreatedAt: now}
	if err := s.apply(ctx, &item, in, now); err != nil {
		return topscorer.TopScorer{}, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return topscorer.TopScorer{}, fmt.Errorf("create top scorer: %w", err)
	}
	return item, nil
}

func (s *TopScorerService) UpdateTopScorer(ctx context.Context, id string, in TopScorerInput) (topscorer.TopScorer, error) {
	item, err := loadByID(ctx, "top scorer", id, s.repo.GetByID)
	if err != nil {
		return topscorer.TopScorer{}, err
	}
	if err := s.apply(ctx, &item, in, s.now().UTC()); err != nil {
		return topscorer.TopScorer{}, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return topscorer.TopScorer{}, fmt.Errorf("update top scorer: %w", err)
	}
	return item, nil
}

func (s *TopScorerService) DeleteTopScorer(ctx context.Context, id string) error {
	item, err := loadByID(ctx, "top scorer", id, s.repo.GetByID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete top scorer: %w", err)
	}
	return nil
}

func (s *TopScorerService) apply(ctx context.Context, item *topscorer.TopScorer, in TopScorerInput, now time.Time) error {
	lg, err := mustExist(ctx, "league", "league_id", in.LeagueID, s.leagueRepo.GetByID)
	if err != nil {
		return err
	}
	p, err := mustExist(ctx, "player", "player_id", in.PlayerID, s.playerRepo.GetByID)
	if err != nil {
		return err
	}
	teamID := strings.TrimSpace(in.TeamID)
	if teamID == "" {
		teamID = p.TeamID
	}
	if _, err := mustExist(ctx, "team", "team_id", teamID, s.teamRepo.GetByID); err != nil {
		return err
	}
	season := strings.TrimSpace(in.Season)
	if season == "" {
		season = lg.Season
	}

	item.LeagueID = lg.ID
	item.PlayerID = p.ID
	item.TeamID = teamID
	item.Season = season
	item.Goals = in.Goals
	item.Assists = in.Assists
	item.Penalties = in.Penalties
	item.UpdatedAt = now

	return domainInvalid(item.Validate())
}
