package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/league"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
)

// MatchQuery narrows ListMatches. League and team accept an id or a slug.
type MatchQuery struct {
	LeagueRef string
	TeamRef   string
	Statuses  []string
}

// MatchInput is the schedule part of a match. Status and score change through UpdateStatus.
type MatchInput struct {
	Slug        string
	LeagueID    string
	HomeTeamID  string
	AwayTeamID  string
	ScheduledAt time.Time
	Venue       string
	Round       string
}

// MatchStatusInput moves a match along its lifecycle. Nil fields keep their value.
type MatchStatusInput struct {
	Status    string
	Phase     string
	HomeScore *int
	AwayScore *int
	Minute    *int
}

type EventInput struct {
	TeamID        string
	PlayerID      string
	Type          string
	Minute        int
	ExtraMinute   int
	DescriptionEN string
	DescriptionAM string
}

type MatchService struct {
	matchRepo  match.Repository
	eventRepo  match.EventRepository
	leagueRepo league.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	eventRepo match.EventRepository,
	leagueRepo league.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	idGen idgen.Generator,
) *MatchService {
	return &MatchService{
		matchRepo:  matchRepo,
		eventRepo:  eventRepo,
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *MatchService) ListMatches(ctx context.Context, q MatchQuery) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	var filter match.Filter
	if strings.TrimSpace(q.LeagueRef) != "" {
		lg, err := resolveRef(ctx, "league", q.LeagueRef, s.leagueRepo.GetByID, s.leagueRepo.GetBySlug)
		if err != nil {
			return nil, err
		}
		filter.LeagueID = lg.ID
	}
	if strings.TrimSpace(q.TeamRef) != "" {
		t, err := resolveRef(ctx, "team", q.TeamRef, s.teamRepo.GetByID, s.teamRepo.GetBySlug)
		if err != nil {
			return nil, err
		}
		filter.TeamID = t.ID
	}
	for _, raw := range q.Statuses {
		status, ok := match.ParseStatus(raw)
		if !ok {
			return nil, invalidField("status", fmt.Sprintf("unknown status %q", raw))
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	matches, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

func (s *MatchService) GetMatch(ctx context.Context, ref string) (match.Match, error) {
	return resolveRef(ctx, "match", ref, s.matchRepo.GetByID, s.matchRepo.GetBySlug)
}

func (s *MatchService) CreateMatch(ctx context.Context, in MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	id, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}
	now := s.now().UTC()
	m := match.Match{ID: id, Status: match.StatusScheduled, CreatedAt: now}
	if err := s.apply(ctx, &m, in, now); err != nil {
		return match.Match{}, err
	}
	if err := s.matchRepo.Create(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return m, nil
}

func (s *MatchService) UpdateMatch(ctx context.Context, matchID string, in MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateMatch")
	defer span.End()

	m, err := loadByID(ctx, "match", matchID, s.matchRepo.GetByID)
	if err != nil {
		return match.Match{}, err
	}
	if err := s.apply(ctx, &m, in, s.now().UTC()); err != nil {
		return match.Match{}, err
	}
	if err := s.matchRepo.Update(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}

	return m, nil
}

func (s *MatchService) DeleteMatch(ctx context.Context, matchID string) error {
	m, err := loadByID(ctx, "match", matchID, s.matchRepo.GetByID)
	if err != nil {
		return err
	}
	if m.Status == match.StatusLive {
		return fmt.Errorf("%w: match %s is live", ErrConflict, m.Slug)
	}
	if err := s.matchRepo.Delete(ctx, m.ID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	return nil
}

// UpdateStatus applies a status, phase and score change. Status only moves forward.
// Phase start times are stamped the first time a phase is entered and kept afterwards.
func (s *MatchService) UpdateStatus(ctx context.Context, matchID string, in MatchStatusInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateStatus")
	defer span.End()

	m, err := loadByID(ctx, "match", matchID, s.matchRepo.GetByID)
	if err != nil {
		return match.Match{}, err
	}

	next := m.Status
	if strings.TrimSpace(in.Status) != "" {
		parsed, ok := match.ParseStatus(in.Status)
		if !ok {
			return match.Match{}, invalidField("status", "must be one of scheduled, live, completed")
		}
		next = parsed
	}
	if !m.Status.CanTransition(next) {
		return match.Match{}, invalidField("status", fmt.Sprintf("cannot move from %s to %s", m.Status, next))
	}

	phase := match.PhaseNone
	if strings.TrimSpace(in.Phase) != "" {
		parsed, ok := match.ParsePhase(in.Phase)
		if !ok {
			return match.Match{}, invalidField("phase", "must be one of first_half, second_half, extra_time")
		}
		if next != match.StatusLive {
			return match.Match{}, invalidField("phase", "only applies to live matches")
		}
		phase = parsed
	}

	now := s.now().UTC()
	stamp := func(target **time.Time) {
		if *target == nil {
			at := now
			*target = &at
		}
	}
	if next == match.StatusLive {
		stamp(&m.MatchStartedAt)
		switch phase {
		case match.PhaseSecondHalf:
			stamp(&m.SecondHalfStartedAt)
		case match.PhaseExtraTime:
			stamp(&m.ExtraTimeStartedAt)
		}
	}
	m.Status = next

	if in.HomeScore != nil {
		m.HomeScore = *in.HomeScore
	}
	if in.AwayScore != nil {
		m.AwayScore = *in.AwayScore
	}
	if in.Minute != nil {
		minute := *in.Minute
		m.Minute = &minute
	}
	m.UpdatedAt = now

	if err := m.Validate(); err != nil {
		return match.Match{}, domainInvalid(err)
	}
	if err := s.matchRepo.Update(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("update match status: %w", err)
	}

	return m, nil
}

func (s *MatchService) ListEvents(ctx context.Context, matchRef string) ([]match.Event, error) {
	m, err := s.GetMatch(ctx, matchRef)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("list match events: %w", err)
	}
	match.SortEvents(events)
	return events, nil
}

func (s *MatchService) CreateEvent(ctx context.Context, matchID string, in EventInput) (match.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateEvent")
	defer span.End()

	m, err := loadByID(ctx, "match", matchID, s.matchRepo.GetByID)
	if err != nil {
		return match.Event{}, err
	}
	id, err := s.idGen.NewID()
	if err != nil {
		return match.Event{}, fmt.Errorf("generate event id: %w", err)
	}
	e := match.Event{ID: id, MatchID: m.ID, CreatedAt: s.now().UTC()}
	if err := s.applyEvent(ctx, m, &e, in); err != nil {
		return match.Event{}, err
	}
	if err := s.eventRepo.Create(ctx, e); err != nil {
		return match.Event{}, fmt.Errorf("create match event: %w", err)
	}

	return e, nil
}

func (s *MatchService) UpdateEvent(ctx context.Context, eventID string, in EventInput) (match.Event, error) {
	e, err := loadByID(ctx, "match event", eventID, s.eventRepo.GetByID)
	if err != nil {
		return match.Event{}, err
	}
	m, err := loadByID(ctx, "match", e.MatchID, s.matchRepo.GetByID)
	if err != nil {
		return match.Event{}, err
	}
	if err := s.applyEvent(ctx, m, &e, in); err != nil {
		return match.Event{}, err
	}
	if err := s.eventRepo.Update(ctx, e); err != nil {
		return match.Event{}, fmt.Errorf("update match event: %w", err)
	}

	return e, nil
}

func (s *MatchService) DeleteEvent(ctx context.Context, eventID string) error {
	e, err := loadByID(ctx, "match event", eventID, s.eventRepo.GetByID)
	if err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, e.ID); err != nil {
		return fmt.Errorf("delete match event: %w", err)
	}
	return nil
}

func (s *MatchService) apply(ctx context.Context, m *match.Match, in MatchInput, now time.Time) error {
	lg, err := mustExist(ctx, "league", "league_id", in.LeagueID, s.leagueRepo.GetByID)
	if err != nil {
		return err
	}
	home, err := mustExist(ctx, "team", "home_team_id", in.HomeTeamID, s.teamRepo.GetByID)
	if err != nil {
		return err
	}
	away, err := mustExist(ctx, "team", "away_team_id", in.AwayTeamID, s.teamRepo.GetByID)
	if err != nil {
		return err
	}
	if home.ID == away.ID {
		return invalidField("away_team_id", "must differ from home_team_id")
	}
	if home.LeagueID != lg.ID {
		return invalidField("home_team_id", "team does not play in this league")
	}
	if away.LeagueID != lg.ID {
		return invalidField("away_team_id", "team does not play in this league")
	}
	if in.ScheduledAt.IsZero() {
		return invalidField("scheduled_at", "is required")
	}

	name := fmt.Sprintf("%s vs %s %s", home.NameEN, away.NameEN, in.ScheduledAt.UTC().Format("2006-01-02"))
	value, err := pickSlug(in.Slug, name, "match", m.ID)
	if err != nil {
		return err
	}
	if err := ensureSlugFree(ctx, "match", value, m.ID, s.matchRepo.GetBySlug, func(m match.Match) string { return m.ID }); err != nil {
		return err
	}

	m.Slug = value
	m.LeagueID = lg.ID
	m.HomeTeamID = home.ID
	m.AwayTeamID = away.ID
	m.ScheduledAt = in.ScheduledAt.UTC()
	m.Venue = strings.TrimSpace(in.Venue)
	m.Round = strings.TrimSpace(in.Round)
	m.UpdatedAt = now

	return domainInvalid(m.Validate())
}

func (s *MatchService) applyEvent(ctx context.Context, m match.Match, e *match.Event, in EventInput) error {
	eventType, ok := match.ParseEventType(in.Type)
	if !ok {
		return invalidField("type", fmt.Sprintf("unknown event type %q", in.Type))
	}
	teamID := strings.TrimSpace(in.TeamID)
	if !m.Involves(teamID) {
		return invalidField("team_id", "team does not play in this match")
	}
	playerID := strings.TrimSpace(in.PlayerID)
	if playerID != "" {
		p, err := mustExist(ctx, "player", "player_id", playerID, s.playerRepo.GetByID)
		if err != nil {
			return err
		}
		if eventType != match.EventOwnGoal && p.TeamID != teamID {
			return invalidField("player_id", "player is not in the event team")
		}
	}

	e.TeamID = teamID
	e.PlayerID = playerID
	e.Type = eventType
	e.Minute = in.Minute
	e.ExtraMinute = in.ExtraMinute
	e.DescriptionEN = strings.TrimSpace(in.DescriptionEN)
	e.DescriptionAM = strings.TrimSpace(in.DescriptionAM)

	return domainInvalid(e.Validate())
}
