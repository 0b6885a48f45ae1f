package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/league"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/team"
)

// LiveFilter narrows the live view. Query is a case-insensitive substring over
// team and league names in both languages. LeagueSlug must match exactly.
type LiveFilter struct {
	Query      string
	LeagueSlug string
}

func (f LiveFilter) IsZero() bool {
	return strings.TrimSpace(f.Query) == "" && strings.TrimSpace(f.LeagueSlug) == ""
}

// LiveMatch is a live match joined with its league and teams.
type LiveMatch struct {
	Match    match.Match
	League   league.League
	HomeTeam team.Team
	AwayTeam team.Team
	Clock    match.Display
}

type LiveLeagueGroup struct {
	League  league.League
	Matches []LiveMatch
}

type LiveService struct {
	matchRepo  match.Repository
	teamRepo   team.Repository
	leagueRepo league.Repository
	now        func() time.Time
}

func NewLiveService(matchRepo match.Repository, teamRepo team.Repository, leagueRepo league.Repository) *LiveService {
	return &LiveService{
		matchRepo:  matchRepo,
		teamRepo:   teamRepo,
		leagueRepo: leagueRepo,
		now:        time.Now,
	}
}

// ListLive returns live matches grouped by league.
func (s *LiveService) ListLive(ctx context.Context, filter LiveFilter) ([]LiveLeagueGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveService.ListLive")
	defer span.End()

	rows, err := s.liveRows(ctx)
	if err != nil {
		return nil, err
	}

	return GroupByLeague(FilterMatches(rows, filter)), nil
}

func (s *LiveService) liveRows(ctx context.Context) ([]LiveMatch, error) {
	matches, err := s.matchRepo.List(ctx, match.Filter{Statuses: []match.Status{match.StatusLive}})
	if err != nil {
		return nil, fmt.Errorf("list live matches: %w", err)
	}
	if len(matches) == 0 {
		return []LiveMatch{}, nil
	}

	teamIDs := make([]string, 0, len(matches)*2)
	for _, m := range matches {
		teamIDs = append(teamIDs, m.HomeTeamID, m.AwayTeamID)
	}
	teams, err := s.teamRepo.GetByIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("get live match teams: %w", err)
	}
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	teamByID := make(map[string]team.Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}
	leagueByID := make(map[string]league.League, len(leagues))
	for _, l := range leagues {
		leagueByID[l.ID] = l
	}
	lookupTeam := func(id string) team.Team {
		if t, ok := teamByID[id]; ok {
			return t
		}
		return team.Team{ID: id}
	}
	lookupLeague := func(id string) league.League {
		if l, ok := leagueByID[id]; ok {
			return l
		}
		return league.League{ID: id}
	}

	now := s.now()
	rows := make([]LiveMatch, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, LiveMatch{
			Match:    m,
			League:   lookupLeague(m.LeagueID),
			HomeTeam: lookupTeam(m.HomeTeamID),
			AwayTeam: lookupTeam(m.AwayTeamID),
			Clock:    match.Clock(m, now),
		})
	}
	return rows, nil
}

// FilterMatches keeps rows matching the filter and preserves their order.
func FilterMatches(rows []LiveMatch, filter LiveFilter) []LiveMatch {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	leagueSlug := strings.TrimSpace(filter.LeagueSlug)

	out := make([]LiveMatch, 0, len(rows))
	for _, row := range rows {
		if leagueSlug != "" && row.League.Slug != leagueSlug {
			continue
		}
		if query != "" && !row.matchesQuery(query) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func (r LiveMatch) matchesQuery(query string) bool {
	for _, name := range []string{
		r.HomeTeam.NameEN, r.HomeTeam.NameAM,
		r.AwayTeam.NameEN, r.AwayTeam.NameAM,
		r.League.NameEN, r.League.NameAM,
	} {
		if name != "" && strings.Contains(strings.ToLower(name), query) {
			return true
		}
	}
	return false
}

// GroupByLeague partitions rows by league id. Groups follow the order in which
// their league is first seen and rows keep their relative order.
func GroupByLeague(rows []LiveMatch) []LiveLeagueGroup {
	index := make(map[string]int)
	groups := make([]LiveLeagueGroup, 0)
	for _, row := range rows {
		key := row.Match.LeagueID
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, LiveLeagueGroup{League: row.League})
		}
		groups[pos].Matches = append(groups[pos].Matches, row)
	}
	return groups
}

// flatten undoes GroupByLeague.
func flatten(groups []LiveLeagueGroup) []LiveMatch {
	var out []LiveMatch
	for _, g := range groups {
		out = append(out, g.Matches...)
	}
	return out
}
