package postgres

import (
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/cup"
	"github.com/riskibarqy/league-portal/internal/domain/league"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/standing"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	"github.com/riskibarqy/league-portal/internal/domain/topscorer"
)

type leagueTableModel struct {
	ID        string     `db:"id"`
	Slug      string     `db:"slug"`
	NameEN    string     `db:"name_en"`
	NameAM    string     `db:"name_am"`
	Country   string     `db:"country"`
	Season    string     `db:"season"`
	LogoURL   string     `db:"logo_url"`
	IsActive  bool       `db:"is_active"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func leagueFromRow(row leagueTableModel) league.League {
	return league.League{
		ID:        row.ID,
		Slug:      row.Slug,
		NameEN:    row.NameEN,
		NameAM:    row.NameAM,
		Country:   row.Country,
		Season:    row.Season,
		LogoURL:   row.LogoURL,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func leagueToRow(l league.League) leagueTableModel {
	return leagueTableModel{
		ID:        l.ID,
		Slug:      l.Slug,
		NameEN:    l.NameEN,
		NameAM:    l.NameAM,
		Country:   l.Country,
		Season:    l.Season,
		LogoURL:   l.LogoURL,
		IsActive:  l.IsActive,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

type teamTableModel struct {
	ID          string     `db:"id"`
	Slug        string     `db:"slug"`
	LeagueID    string     `db:"league_id"`
	NameEN      string     `db:"name_en"`
	NameAM      string     `db:"name_am"`
	ShortName   string     `db:"short_name"`
	LogoURL     string     `db:"logo_url"`
	Stadium     string     `db:"stadium"`
	FoundedYear int        `db:"founded_year"`
	Formation   string     `db:"formation"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:          row.ID,
		Slug:        row.Slug,
		LeagueID:    row.LeagueID,
		NameEN:      row.NameEN,
		NameAM:      row.NameAM,
		ShortName:   row.ShortName,
		LogoURL:     row.LogoURL,
		Stadium:     row.Stadium,
		FoundedYear: row.FoundedYear,
		Formation:   row.Formation,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func teamToRow(t team.Team) teamTableModel {
	return teamTableModel{
		ID:          t.ID,
		Slug:        t.Slug,
		LeagueID:    t.LeagueID,
		NameEN:      t.NameEN,
		NameAM:      t.NameAM,
		ShortName:   t.ShortName,
		LogoURL:     t.LogoURL,
		Stadium:     t.Stadium,
		FoundedYear: t.FoundedYear,
		Formation:   t.Formation,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type playerTableModel struct {
	ID           string     `db:"id"`
	Slug         string     `db:"slug"`
	TeamID       string     `db:"team_id"`
	NameEN       string     `db:"name_en"`
	NameAM       string     `db:"name_am"`
	Position     string     `db:"position"`
	JerseyNumber int        `db:"jersey_number"`
	Nationality  string     `db:"nationality"`
	PhotoURL     string     `db:"photo_url"`
	DateOfBirth  *time.Time `db:"date_of_birth"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:           row.ID,
		Slug:         row.Slug,
		TeamID:       row.TeamID,
		NameEN:       row.NameEN,
		NameAM:       row.NameAM,
		Position:     player.Position(row.Position),
		JerseyNumber: row.JerseyNumber,
		Nationality:  row.Nationality,
		PhotoURL:     row.PhotoURL,
		DateOfBirth:  row.DateOfBirth,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func playerToRow(p player.Player) playerTableModel {
	return playerTableModel{
		ID:           p.ID,
		Slug:         p.Slug,
		TeamID:       p.TeamID,
		NameEN:       p.NameEN,
		NameAM:       p.NameAM,
		Position:     string(p.Position),
		JerseyNumber: p.JerseyNumber,
		Nationality:  p.Nationality,
		PhotoURL:     p.PhotoURL,
		DateOfBirth:  p.DateOfBirth,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type matchTableModel struct {
	ID                  string     `db:"id"`
	Slug                string     `db:"slug"`
	LeagueID            string     `db:"league_id"`
	HomeTeamID          string     `db:"home_team_id"`
	AwayTeamID          string     `db:"away_team_id"`
	ScheduledAt         time.Time  `db:"scheduled_at"`
	Status              string     `db:"status"`
	HomeScore           int        `db:"home_score"`
	AwayScore           int        `db:"away_score"`
	MatchStartedAt      *time.Time `db:"match_started_at"`
	SecondHalfStartedAt *time.Time `db:"second_half_started_at"`
	ExtraTimeStartedAt  *time.Time `db:"extra_time_started_at"`
	Minute              *int       `db:"minute"`
	Venue               string     `db:"venue"`
	Round               string     `db:"round"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
	DeletedAt           *time.Time `db:"deleted_at"`
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:                  row.ID,
		Slug:                row.Slug,
		LeagueID:            row.LeagueID,
		HomeTeamID:          row.HomeTeamID,
		AwayTeamID:          row.AwayTeamID,
		ScheduledAt:         row.ScheduledAt,
		Status:              match.Status(row.Status),
		HomeScore:           row.HomeScore,
		AwayScore:           row.AwayScore,
		MatchStartedAt:      row.MatchStartedAt,
		SecondHalfStartedAt: row.SecondHalfStartedAt,
		ExtraTimeStartedAt:  row.ExtraTimeStartedAt,
		Minute:              row.Minute,
		Venue:               row.Venue,
		Round:               row.Round,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}

func matchToRow(m match.Match) matchTableModel {
	return matchTableModel{
		ID:                  m.ID,
		Slug:                m.Slug,
		LeagueID:            m.LeagueID,
		HomeTeamID:          m.HomeTeamID,
		AwayTeamID:          m.AwayTeamID,
		ScheduledAt:         m.ScheduledAt,
		Status:              string(m.Status),
		HomeScore:           m.HomeScore,
		AwayScore:           m.AwayScore,
		MatchStartedAt:      m.MatchStartedAt,
		SecondHalfStartedAt: m.SecondHalfStartedAt,
		ExtraTimeStartedAt:  m.ExtraTimeStartedAt,
		Minute:              m.Minute,
		Venue:               m.Venue,
		Round:               m.Round,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

type matchEventTableModel struct {
	ID            string     `db:"id"`
	MatchID       string     `db:"match_id"`
	TeamID        string     `db:"team_id"`
	PlayerID      *string    `db:"player_id"`
	EventType     string     `db:"event_type"`
	Minute        int        `db:"minute"`
	ExtraMinute   int        `db:"extra_minute"`
	DescriptionEN string     `db:"description_en"`
	DescriptionAM string     `db:"description_am"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

func matchEventFromRow(row matchEventTableModel) match.Event {
	e := match.Event{
		ID:            row.ID,
		MatchID:       row.MatchID,
		TeamID:        row.TeamID,
		Type:          match.EventType(row.EventType),
		Minute:        row.Minute,
		ExtraMinute:   row.ExtraMinute,
		DescriptionEN: row.DescriptionEN,
		DescriptionAM: row.DescriptionAM,
		CreatedAt:     row.CreatedAt,
	}
	e.PlayerID = derefString(row.PlayerID)
	return e
}

func matchEventToRow(e match.Event) matchEventTableModel {
	row := matchEventTableModel{
		ID:            e.ID,
		MatchID:       e.MatchID,
		TeamID:        e.TeamID,
		EventType:     string(e.Type),
		Minute:        e.Minute,
		ExtraMinute:   e.ExtraMinute,
		DescriptionEN: e.DescriptionEN,
		DescriptionAM: e.DescriptionAM,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     time.Now().UTC(),
		PlayerID:      optionalString(e.PlayerID),
	}
	return row
}

type standingTableModel struct {
	ID           string     `db:"id"`
	LeagueID     string     `db:"league_id"`
	TeamID       string     `db:"team_id"`
	Season       string     `db:"season"`
	Position     int        `db:"position"`
	Played       int        `db:"played"`
	Won          int        `db:"won"`
	Drawn        int        `db:"drawn"`
	Lost         int        `db:"lost"`
	GoalsFor     int        `db:"goals_for"`
	GoalsAgainst int        `db:"goals_against"`
	Points       int        `db:"points"`
	Form         string     `db:"form"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

func standingFromRow(row standingTableModel) standing.Standing {
	return standing.Standing{
		ID:           row.ID,
		LeagueID:     row.LeagueID,
		TeamID:       row.TeamID,
		Season:       row.Season,
		Position:     row.Position,
		Played:       row.Played,
		Won:          row.Won,
		Drawn:        row.Drawn,
		Lost:         row.Lost,
		GoalsFor:     row.GoalsFor,
		GoalsAgainst: row.GoalsAgainst,
		Points:       row.Points,
		Form:         row.Form,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func standingToRow(s standing.Standing) standingTableModel {
	return standingTableModel{
		ID:           s.ID,
		LeagueID:     s.LeagueID,
		TeamID:       s.TeamID,
		Season:       s.Season,
		Position:     s.Position,
		Played:       s.Played,
		Won:          s.Won,
		Drawn:        s.Drawn,
		Lost:         s.Lost,
		GoalsFor:     s.GoalsFor,
		GoalsAgainst: s.GoalsAgainst,
		Points:       s.Points,
		Form:         s.Form,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

type topScorerTableModel struct {
	ID        string     `db:"id"`
	LeagueID  string     `db:"league_id"`
	PlayerID  string     `db:"player_id"`
	TeamID    string     `db:"team_id"`
	Season    string     `db:"season"`
	Goals     int        `db:"goals"`
	Assists   int        `db:"assists"`
	Penalties int        `db:"penalties"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func topScorerFromRow(row topScorerTableModel) topscorer.TopScorer {
	return topscorer.TopScorer{
		ID:        row.ID,
		LeagueID:  row.LeagueID,
		PlayerID:  row.PlayerID,
		TeamID:    row.TeamID,
		Season:    row.Season,
		Goals:     row.Goals,
		Assists:   row.Assists,
		Penalties: row.Penalties,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func topScorerToRow(t topscorer.TopScorer) topScorerTableModel {
	return topScorerTableModel{
		ID:        t.ID,
		LeagueID:  t.LeagueID,
		PlayerID:  t.PlayerID,
		TeamID:    t.TeamID,
		Season:    t.Season,
		Goals:     t.Goals,
		Assists:   t.Assists,
		Penalties: t.Penalties,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type cupTableModel struct {
	ID        string     `db:"id"`
	Slug      string     `db:"slug"`
	NameEN    string     `db:"name_en"`
	NameAM    string     `db:"name_am"`
	Country   string     `db:"country"`
	LogoURL   string     `db:"logo_url"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func cupFromRow(row cupTableModel) cup.Cup {
	return cup.Cup{
		ID:        row.ID,
		Slug:      row.Slug,
		NameEN:    row.NameEN,
		NameAM:    row.NameAM,
		Country:   row.Country,
		LogoURL:   row.LogoURL,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func cupToRow(c cup.Cup) cupTableModel {
	return cupTableModel{
		ID:        c.ID,
		Slug:      c.Slug,
		NameEN:    c.NameEN,
		NameAM:    c.NameAM,
		Country:   c.Country,
		LogoURL:   c.LogoURL,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type cupEditionTableModel struct {
	ID             string     `db:"id"`
	CupID          string     `db:"cup_id"`
	Slug           string     `db:"slug"`
	Season         string     `db:"season"`
	WinnerTeamID   *string    `db:"winner_team_id"`
	RunnerUpTeamID *string    `db:"runner_up_team_id"`
	FinalDate      *time.Time `db:"final_date"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

func cupEditionFromRow(row cupEditionTableModel) cup.Edition {
	return cup.Edition{
		ID:             row.ID,
		CupID:          row.CupID,
		Slug:           row.Slug,
		Season:         row.Season,
		WinnerTeamID:   derefString(row.WinnerTeamID),
		RunnerUpTeamID: derefString(row.RunnerUpTeamID),
		FinalDate:      row.FinalDate,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func cupEditionToRow(e cup.Edition) cupEditionTableModel {
	return cupEditionTableModel{
		ID:             e.ID,
		CupID:          e.CupID,
		Slug:           e.Slug,
		Season:         e.Season,
		WinnerTeamID:   optionalString(e.WinnerTeamID),
		RunnerUpTeamID: optionalString(e.RunnerUpTeamID),
		FinalDate:      e.FinalDate,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
