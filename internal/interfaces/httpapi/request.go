package httpapi

import (
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/usecase"
)

// Request payloads are validated by struct tags before they reach a service.
// Services still own the rules that need storage (slugs, foreign keys).

type leagueRequest struct {
	Slug     string `json:"slug" validate:"omitempty,max=120"`
	NameEN   string `json:"nameEn" validate:"required,max=120"`
	NameAM   string `json:"nameAm" validate:"max=120"`
	Country  string `json:"country" validate:"omitempty,iso3166_1_alpha2"`
	Season   string `json:"season" validate:"required,max=20"`
	LogoURL  string `json:"logoUrl" validate:"omitempty,url,max=500"`
	IsActive bool   `json:"isActive"`
}

func (r leagueRequest) toInput() usecase.LeagueInput {
	return usecase.LeagueInput{
		Slug:     strings.TrimSpace(r.Slug),
		NameEN:   strings.TrimSpace(r.NameEN),
		NameAM:   strings.TrimSpace(r.NameAM),
		Country:  strings.ToUpper(strings.TrimSpace(r.Country)),
		Season:   strings.TrimSpace(r.Season),
		LogoURL:  strings.TrimSpace(r.LogoURL),
		IsActive: r.IsActive,
	}
}

type teamRequest struct {
	Slug        string `json:"slug" validate:"omitempty,max=120"`
	LeagueID    string `json:"leagueId" validate:"required,uuid"`
	NameEN      string `json:"nameEn" validate:"required,max=120"`
	NameAM      string `json:"nameAm" validate:"max=120"`
	ShortName   string `json:"shortName" validate:"max=5"`
	LogoURL     string `json:"logoUrl" validate:"omitempty,url,max=500"`
	Stadium     string `json:"stadium" validate:"max=120"`
	FoundedYear int    `json:"foundedYear" validate:"omitempty,gte=1850"`
	Formation   string `json:"formation" validate:"max=10"`
}

func (r teamRequest) toInput() usecase.TeamInput {
	return usecase.TeamInput{
		Slug:        strings.TrimSpace(r.Slug),
		LeagueID:    strings.TrimSpace(r.LeagueID),
		NameEN:      strings.TrimSpace(r.NameEN),
		NameAM:      strings.TrimSpace(r.NameAM),
		ShortName:   strings.ToUpper(strings.TrimSpace(r.ShortName)),
		LogoURL:     strings.TrimSpace(r.LogoURL),
		Stadium:     strings.TrimSpace(r.Stadium),
		FoundedYear: r.FoundedYear,
		Formation:   strings.TrimSpace(r.Formation),
	}
}

type playerRequest struct {
	Slug         string `json:"slug" validate:"omitempty,max=120"`
	TeamID       string `json:"teamId" validate:"required,uuid"`
	NameEN       string `json:"nameEn" validate:"required,max=120"`
	NameAM       string `json:"nameAm" validate:"max=120"`
	Position     string `json:"position" validate:"required"`
	JerseyNumber int    `json:"jerseyNumber" validate:"gte=0,lte=99"`
	Nationality  string `json:"nationality" validate:"max=60"`
	PhotoURL     string `json:"photoUrl" validate:"omitempty,url,max=500"`
	DateOfBirth  string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
}

func (r playerRequest) toInput() usecase.PlayerInput {
	return usecase.PlayerInput{
		Slug:         strings.TrimSpace(r.Slug),
		TeamID:       strings.TrimSpace(r.TeamID),
		NameEN:       strings.TrimSpace(r.NameEN),
		NameAM:       strings.TrimSpace(r.NameAM),
		Position:     r.Position,
		JerseyNumber: r.JerseyNumber,
		Nationality:  strings.TrimSpace(r.Nationality),
		PhotoURL:     strings.TrimSpace(r.PhotoURL),
		DateOfBirth:  parseOptionalDate(r.DateOfBirth),
	}
}

type matchRequest struct {
	Slug        string `json:"slug" validate:"omitempty,max=120"`
	LeagueID    string `json:"leagueId" validate:"required,uuid"`
	HomeTeamID  string `json:"homeTeamId" validate:"required,uuid"`
	AwayTeamID  string `json:"awayTeamId" validate:"required,uuid,nefield=HomeTeamID"`
	ScheduledAt string `json:"scheduledAt" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Venue       string `json:"venue" validate:"max=120"`
	Round       string `json:"round" validate:"max=60"`
}

func (r matchRequest) toInput() usecase.MatchInput {
	scheduled, _ := time.Parse(time.RFC3339, r.ScheduledAt)
	return usecase.MatchInput{
		Slug:        strings.TrimSpace(r.Slug),
		LeagueID:    strings.TrimSpace(r.LeagueID),
		HomeTeamID:  strings.TrimSpace(r.HomeTeamID),
		AwayTeamID:  strings.TrimSpace(r.AwayTeamID),
		ScheduledAt: scheduled.UTC(),
		Venue:       strings.TrimSpace(r.Venue),
		Round:       strings.TrimSpace(r.Round),
	}
}

type matchStatusRequest struct {
	Status    string `json:"status" validate:"required,oneof=scheduled live completed"`
	Phase     string `json:"phase" validate:"omitempty,oneof=first_half second_half extra_time"`
	HomeScore *int   `json:"homeScore" validate:"omitempty,gte=0"`
	AwayScore *int   `json:"awayScore" validate:"omitempty,gte=0"`
	Minute    *int   `json:"minute" validate:"omitempty,gte=0,lte=135"`
}

func (r matchStatusRequest) toInput() usecase.MatchStatusInput {
	return usecase.MatchStatusInput{
		Status:    r.Status,
		Phase:     r.Phase,
		HomeScore: r.HomeScore,
		AwayScore: r.AwayScore,
		Minute:    r.Minute,
	}
}

type eventRequest struct {
	TeamID        string `json:"teamId" validate:"required,uuid"`
	PlayerID      string `json:"playerId" validate:"omitempty,uuid"`
	Type          string `json:"type" validate:"required"`
	Minute        int    `json:"minute" validate:"gte=0,lte=120"`
	ExtraMinute   int    `json:"extraMinute" validate:"gte=0,lte=15"`
	DescriptionEN string `json:"descriptionEn" validate:"max=500"`
	DescriptionAM string `json:"descriptionAm" validate:"max=500"`
}

func (r eventRequest) toInput() usecase.EventInput {
	return usecase.EventInput{
		TeamID:        strings.TrimSpace(r.TeamID),
		PlayerID:      strings.TrimSpace(r.PlayerID),
		Type:          r.Type,
		Minute:        r.Minute,
		ExtraMinute:   r.ExtraMinute,
		DescriptionEN: strings.TrimSpace(r.DescriptionEN),
		DescriptionAM: strings.TrimSpace(r.DescriptionAM),
	}
}

type standingRequest struct {
	LeagueID     string `json:"leagueId" validate:"required,uuid"`
	TeamID       string `json:"teamId" validate:"required,uuid"`
	Season       string `json:"season" validate:"max=20"`
	Played       int    `json:"played" validate:"gte=0"`
	Won          int    `json:"won" validate:"gte=0"`
	Drawn        int    `json:"drawn" validate:"gte=0"`
	Lost         int    `json:"lost" validate:"gte=0"`
	GoalsFor     int    `json:"goalsFor" validate:"gte=0"`
	GoalsAgainst int    `json:"goalsAgainst" validate:"gte=0"`
	Points       int    `json:"points" validate:"gte=0"`
	Form         string `json:"form" validate:"max=5"`
}

func (r standingRequest) toInput() usecase.StandingInput {
	return usecase.StandingInput{
		LeagueID:     strings.TrimSpace(r.LeagueID),
		TeamID:       strings.TrimSpace(r.TeamID),
		Season:       strings.TrimSpace(r.Season),
		Played:       r.Played,
		Won:          r.Won,
		Drawn:        r.Drawn,
		Lost:         r.Lost,
		GoalsFor:     r.GoalsFor,
		GoalsAgainst: r.GoalsAgainst,
		Points:       r.Points,
		Form:         strings.ToUpper(strings.TrimSpace(r.Form)),
	}
}

type topScorerRequest struct {
	LeagueID  string `json:"leagueId" validate:"required,uuid"`
	PlayerID  string `json:"playerId" validate:"required,uuid"`
	TeamID    string `json:"teamId" validate:"omitempty,uuid"`
	Season    string `json:"season" validate:"max=20"`
	Goals     int    `json:"goals" validate:"gte=0"`
	Assists   int    `json:"assists" validate:"gte=0"`
	Penalties int    `json:"penalties" validate:"gte=0"`
}

func (r topScorerRequest) toInput() usecase.TopScorerInput {
	return usecase.TopScorerInput{
		LeagueID:  strings.TrimSpace(r.LeagueID),
		PlayerID:  strings.TrimSpace(r.PlayerID),
		TeamID:    strings.TrimSpace(r.TeamID),
		Season:    strings.TrimSpace(r.Season),
		Goals:     r.Goals,
		Assists:   r.Assists,
		Penalties: r.Penalties,
	}
}

type cupRequest struct {
	Slug    string `json:"slug" validate:"omitempty,max=120"`
	NameEN  string `json:"nameEn" validate:"required,max=120"`
	NameAM  string `json:"nameAm" validate:"max=120"`
	Country string `json:"country" validate:"omitempty,iso3166_1_alpha2"`
	LogoURL string `json:"logoUrl" validate:"omitempty,url,max=500"`
}

func (r cupRequest) toInput() usecase.CupInput {
	return usecase.CupInput{
		Slug:    strings.TrimSpace(r.Slug),
		NameEN:  strings.TrimSpace(r.NameEN),
		NameAM:  strings.TrimSpace(r.NameAM),
		Country: strings.ToUpper(strings.TrimSpace(r.Country)),
		LogoURL: strings.TrimSpace(r.LogoURL),
	}
}

type cupEditionRequest struct {
	Slug           string `json:"slug" validate:"omitempty,max=120"`
	Season         string `json:"season" validate:"required,max=20"`
	WinnerTeamID   string `json:"winnerTeamId" validate:"omitempty,uuid"`
	RunnerUpTeamID string `json:"runnerUpTeamId" validate:"omitempty,uuid"`
	FinalDate      string `json:"finalDate" validate:"omitempty,datetime=2006-01-02"`
}

func (r cupEditionRequest) toInput() usecase.EditionInput {
	return usecase.EditionInput{
		Slug:           strings.TrimSpace(r.Slug),
		Season:         strings.TrimSpace(r.Season),
		WinnerTeamID:   strings.TrimSpace(r.WinnerTeamID),
		RunnerUpTeamID: strings.TrimSpace(r.RunnerUpTeamID),
		FinalDate:      parseOptionalDate(r.FinalDate),
	}
}

// parseOptionalDate expects a value already checked by the datetime validator.
func parseOptionalDate(v string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil
	}
	return &t
}
