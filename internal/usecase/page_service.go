package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/league"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	"github.com/riskibarqy/league-portal/internal/domain/topscorer"
	"github.com/sourcegraph/conc/pool"
)

const pageMatchLimit = 5

// Formation is a resolved formation with its pitch slots.
type Formation struct {
	Name  string
	Slots []team.Slot
}

func formationOf(t team.Team) Formation {
	name, slots := team.FormationSlots(t.Formation)
	return Formation{Name: name, Slots: slots}
}

type MatchPage struct {
	Match         match.Match
	League        league.League
	HomeTeam      team.Team
	AwayTeam      team.Team
	HomeFormation Formation
	AwayFormation Formation
	Events        []match.Event
	Clock         match.Display
}

type TeamPage struct {
	Team      team.Team
	League    league.League
	Squad     map[player.Position][]player.Player
	Formation Formation
	Live      []match.Match
	Recent    []match.Match
	Upcoming  []match.Match
}

type PlayerPage struct {
	Player  player.Player
	Team    team.Team
	Age     int
	Tallies []topscorer.TopScorer
}

type LeagueOverview struct {
	League     league.League
	Teams      []team.Team
	Standings  StandingTable
	TopScorers []topscorer.TopScorer
	Live       []match.Match
	Upcoming   []match.Match
	Completed  []match.Match
}

// PageService assembles the public pages, loading independent parts concurrently.
type PageService struct {
	leagueRepo    league.Repository
	teamRepo      team.Repository
	playerRepo    player.Repository
	matchRepo     match.Repository
	eventRepo     match.EventRepository
	topScorerRepo topscorer.Repository
	standings     *StandingService
	now           func() time.Time
}

func NewPageService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	eventRepo match.EventRepository,
	topScorerRepo topscorer.Repository,
	standings *StandingService,
) *PageService {
	return &PageService{
		leagueRepo:    leagueRepo,
		teamRepo:      teamRepo,
		playerRepo:    playerRepo,
		matchRepo:     matchRepo,
		eventRepo:     eventRepo,
		topScorerRepo: topScorerRepo,
		standings:     standings,
		now:           time.Now,
	}
}

func (s *PageService) MatchPage(ctx context.Context, ref string) (MatchPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PageService.MatchPage")
	defer span.End()

	m, err := resolveRef(ctx, "match", ref, s.matchRepo.GetByID, s.matchRepo.GetBySlug)
	if err != nil {
		return MatchPage{}, err
	}

	page := MatchPage{Match: m, Clock: match.Clock(m, s.now())}
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		lg, err := loadByID(ctx, "league", m.LeagueID, s.leagueRepo.GetByID)
		page.League = lg
		return err
	})
	p.Go(func(ctx context.Context) error {
		t, err := loadByID(ctx, "team", m.HomeTeamID, s.teamRepo.GetByID)
		page.HomeTeam = t
		page.HomeFormation = formationOf(t)
		return err
	})
	p.Go(func(ctx context.Context) error {
		t, err := loadByID(ctx, "team", m.AwayTeamID, s.teamRepo.GetByID)
		page.AwayTeam = t
		page.AwayFormation = formationOf(t)
		return err
	})
	p.Go(func(ctx context.Context) error {
		events, err := s.eventRepo.ListByMatch(ctx, m.ID)
		if err != nil {
			return fmt.Errorf("list match events: %w", err)
		}
		match.SortEvents(events)
		page.Events = events
		return nil
	})
	if err := p.Wait(); err != nil {
		return MatchPage{}, err
	}

	return page, nil
}

func (s *PageService) TeamPage(ctx context.Context, ref string) (TeamPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PageService.TeamPage")
	defer span.End()

	t, err := resolveRef(ctx, "team", ref, s.teamRepo.GetByID, s.teamRepo.GetBySlug)
	if err != nil {
		return TeamPage{}, err
	}

	page := TeamPage{Team: t, Formation: formationOf(t)}
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		lg, err := loadByID(ctx, "league", t.LeagueID, s.leagueRepo.GetByID)
		page.League = lg
		return err
	})
	p.Go(func(ctx context.Context) error {
		squad, err := s.playerRepo.ListByTeam(ctx, t.ID)
		if err != nil {
			return fmt.Errorf("list squad: %w", err)
		}
		page.Squad = player.GroupByPosition(squad)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		matches, err := s.matchRepo.List(ctx, match.Filter{TeamID: t.ID})
		if err != nil {
			return fmt.Errorf("list team matches: %w", err)
		}
		page.Live, page.Upcoming, page.Recent = splitMatches(matches)
		return nil
	})
	if err := p.Wait(); err != nil {
		return TeamPage{}, err
	}

	return page, nil
}

func (s *PageService) PlayerPage(ctx context.Context, ref string) (PlayerPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PageService.PlayerPage")
	defer span.End()

	pl, err := resolveRef(ctx, "player", ref, s.playerRepo.GetByID, s.playerRepo.GetBySlug)
	if err != nil {
		return PlayerPage{}, err
	}

	page := PlayerPage{Player: pl, Age: pl.Age(s.now())}
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		t, err := loadByID(ctx, "team", pl.TeamID, s.teamRepo.GetByID)
		page.Team = t
		return err
	})
	p.Go(func(ctx context.Context) error {
		tallies, err := s.topScorerRepo.ListByPlayer(ctx, pl.ID)
		if err != nil {
			return fmt.Errorf("list player tallies: %w", err)
		}
		sort.SliceStable(tallies, func(i, j int) bool { return tallies[i].Season > tallies[j].Season })
		page.Tallies = tallies
		return nil
	})
	if err := p.Wait(); err != nil {
		return PlayerPage{}, err
	}

	return page, nil
}

func (s *PageService) LeagueOverview(ctx context.Context, ref string) (LeagueOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PageService.LeagueOverview")
	defer span.End()

	lg, err := resolveRef(ctx, "league", ref, s.leagueRepo.GetByID, s.leagueRepo.GetBySlug)
	if err != nil {
		return LeagueOverview{}, err
	}

	page := LeagueOverview{League: lg}
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		teams, err := s.teamRepo.ListByLeague(ctx, lg.ID)
		if err != nil {
			return fmt.Errorf("list teams by league: %w", err)
		}
		page.Teams = teams
		return nil
	})
	p.Go(func(ctx context.Context) error {
		table, err := s.standings.ListStandings(ctx, lg.ID)
		page.Standings = table
		return err
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.topScorerRepo.ListByLeague(ctx, lg.ID)
		if err != nil {
			return fmt.Errorf("list top scorers: %w", err)
		}
		topscorer.Sort(items)
		page.TopScorers = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		matches, err := s.matchRepo.List(ctx, match.Filter{LeagueID: lg.ID})
		if err != nil {
			return fmt.Errorf("list league matches: %w", err)
		}
		page.Live, page.Upcoming, page.Completed = splitMatches(matches)
		return nil
	})
	if err := p.Wait(); err != nil {
		return LeagueOverview{}, err
	}

	return page, nil
}

// splitMatches buckets schedule-ordered matches. Upcoming keeps the earliest
// matches first and recent the latest first, each capped at pageMatchLimit.
func splitMatches(matches []match.Match) (live, upcoming, recent []match.Match) {
	live = []match.Match{}
	upcoming = []match.Match{}
	recent = []match.Match{}
	for _, m := range matches {
		switch m.Status {
		case match.StatusLive:
			live = append(live, m)
		case match.StatusScheduled:
			if len(upcoming) < pageMatchLimit {
				upcoming = append(upcoming, m)
			}
		case match.StatusCompleted:
			recent = append(recent, m)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].ScheduledAt.After(recent[j].ScheduledAt) })
	if len(recent) > pageMatchLimit {
		recent = recent[:pageMatchLimit]
	}
	return live, upcoming, recent
}
