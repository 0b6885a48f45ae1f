package httpapi

import (
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/cup"
	"github.com/riskibarqy/league-portal/internal/domain/league"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/standing"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	"github.com/riskibarqy/league-portal/internal/domain/topscorer"
	"github.com/riskibarqy/league-portal/internal/usecase"
)

const dateLayout = "2006-01-02"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	v := formatTime(*t)
	return &v
}

func formatDatePtr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.UTC().Format(dateLayout)
	return &v
}

type leagueDTO struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	NameEN    string `json:"nameEn"`
	NameAM    string `json:"nameAm"`
	Country   string `json:"country"`
	Season    string `json:"season"`
	LogoURL   string `json:"logoUrl"`
	IsActive  bool   `json:"isActive"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func leagueToDTO(l league.League, lang string) leagueDTO {
	return leagueDTO{
		ID:        l.ID,
		Slug:      l.Slug,
		Name:      l.Name(lang),
		NameEN:    l.NameEN,
		NameAM:    l.NameAM,
		Country:   l.Country,
		Season:    l.Season,
		LogoURL:   l.LogoURL,
		IsActive:  l.IsActive,
		UpdatedAt: formatTime(l.UpdatedAt),
	}
}

type teamDTO struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	LeagueID    string `json:"leagueId"`
	Name        string `json:"name"`
	NameEN      string `json:"nameEn"`
	NameAM      string `json:"nameAm"`
	ShortName   string `json:"shortName"`
	LogoURL     string `json:"logoUrl"`
	Stadium     string `json:"stadium"`
	FoundedYear int    `json:"foundedYear,omitempty"`
	Formation   string `json:"formation"`
}

func teamToDTO(t team.Team, lang string) teamDTO {
	return teamDTO{
		ID:          t.ID,
		Slug:        t.Slug,
		LeagueID:    t.LeagueID,
		Name:        t.Name(lang),
		NameEN:      t.NameEN,
		NameAM:      t.NameAM,
		ShortName:   t.ShortName,
		LogoURL:     t.LogoURL,
		Stadium:     t.Stadium,
		FoundedYear: t.FoundedYear,
		Formation:   t.Formation,
	}
}

func teamsToDTO(items []team.Team, lang string) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, t := range items {
		out = append(out, teamToDTO(t, lang))
	}
	return out
}

type playerDTO struct {
	ID           string  `json:"id"`
	Slug         string  `json:"slug"`
	TeamID       string  `json:"teamId"`
	Name         string  `json:"name"`
	NameEN       string  `json:"nameEn"`
	NameAM       string  `json:"nameAm"`
	Position     string  `json:"position"`
	JerseyNumber int     `json:"jerseyNumber"`
	Nationality  string  `json:"nationality"`
	PhotoURL     string  `json:"photoUrl"`
	DateOfBirth  *string `json:"dateOfBirth,omitempty"`
}

func playerToDTO(p player.Player, lang string) playerDTO {
	return playerDTO{
		ID:           p.ID,
		Slug:         p.Slug,
		TeamID:       p.TeamID,
		Name:         p.Name(lang),
		NameEN:       p.NameEN,
		NameAM:       p.NameAM,
		Position:     string(p.Position),
		JerseyNumber: p.JerseyNumber,
		Nationality:  p.Nationality,
		PhotoURL:     p.PhotoURL,
		DateOfBirth:  formatDatePtr(p.DateOfBirth),
	}
}

func playersToDTO(items []player.Player, lang string) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerToDTO(p, lang))
	}
	return out
}

type clockDTO struct {
	Label    string `json:"label"`
	Live     bool   `json:"live"`
	Minute   int    `json:"minute,omitempty"`
	Stoppage int    `json:"stoppage,omitempty"`
	Phase    string `json:"phase,omitempty"`
}

func clockToDTO(d match.Display) clockDTO {
	return clockDTO{
		Label:    d.Label,
		Live:     d.Live,
		Minute:   d.Minute,
		Stoppage: d.Stoppage,
		Phase:    string(d.Phase),
	}
}

type matchDTO struct {
	ID                  string   `json:"id"`
	Slug                string   `json:"slug"`
	LeagueID            string   `json:"leagueId"`
	HomeTeamID          string   `json:"homeTeamId"`
	AwayTeamID          string   `json:"awayTeamId"`
	ScheduledAt         string   `json:"scheduledAt"`
	Status              string   `json:"status"`
	HomeScore           int      `json:"homeScore"`
	AwayScore           int      `json:"awayScore"`
	MatchStartedAt      *string  `json:"matchStartedAt,omitempty"`
	SecondHalfStartedAt *string  `json:"secondHalfStartedAt,omitempty"`
	ExtraTimeStartedAt  *string  `json:"extraTimeStartedAt,omitempty"`
	Minute              *int     `json:"minute,omitempty"`
	Venue               string   `json:"venue"`
	Round               string   `json:"round"`
	Clock               clockDTO `json:"clock"`
}

func matchToDTO(m match.Match, now time.Time) matchDTO {
	return matchDTO{
		ID:                  m.ID,
		Slug:                m.Slug,
		LeagueID:            m.LeagueID,
		HomeTeamID:          m.HomeTeamID,
		AwayTeamID:          m.AwayTeamID,
		ScheduledAt:         formatTime(m.ScheduledAt),
		Status:              string(m.Status),
		HomeScore:           m.HomeScore,
		AwayScore:           m.AwayScore,
		MatchStartedAt:      formatTimePtr(m.MatchStartedAt),
		SecondHalfStartedAt: formatTimePtr(m.SecondHalfStartedAt),
		ExtraTimeStartedAt:  formatTimePtr(m.ExtraTimeStartedAt),
		Minute:              m.Minute,
		Venue:               m.Venue,
		Round:               m.Round,
		Clock:               clockToDTO(match.Clock(m, now)),
	}
}

func matchesToDTO(items []match.Match, now time.Time) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchToDTO(m, now))
	}
	return out
}

type eventDTO struct {
	ID            string `json:"id"`
	MatchID       string `json:"matchId"`
	TeamID        string `json:"teamId"`
	PlayerID      string `json:"playerId,omitempty"`
	Type          string `json:"type"`
	Minute        int    `json:"minute"`
	ExtraMinute   int    `json:"extraMinute,omitempty"`
	Label         string `json:"label"`
	DescriptionEN string `json:"descriptionEn,omitempty"`
	DescriptionAM string `json:"descriptionAm,omitempty"`
}

func eventToDTO(e match.Event) eventDTO {
	return eventDTO{
		ID:            e.ID,
		MatchID:       e.MatchID,
		TeamID:        e.TeamID,
		PlayerID:      e.PlayerID,
		Type:          string(e.Type),
		Minute:        e.Minute,
		ExtraMinute:   e.ExtraMinute,
		Label:         e.Label(),
		DescriptionEN: e.DescriptionEN,
		DescriptionAM: e.DescriptionAM,
	}
}

func eventsToDTO(items []match.Event) []eventDTO {
	out := make([]eventDTO, 0, len(items))
	for _, e := range items {
		out = append(out, eventToDTO(e))
	}
	return out
}

type standingDTO struct {
	ID             string `json:"id,omitempty"`
	LeagueID       string `json:"leagueId"`
	TeamID         string `json:"teamId"`
	TeamName       string `json:"teamName,omitempty"`
	Season         string `json:"season"`
	Position       int    `json:"position"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
	Form           string `json:"form"`
}

func standingToDTO(s standing.Standing, teamName string) standingDTO {
	return standingDTO{
		ID:             s.ID,
		LeagueID:       s.LeagueID,
		TeamID:         s.TeamID,
		TeamName:       teamName,
		Season:         s.Season,
		Position:       s.Position,
		Played:         s.Played,
		Won:            s.Won,
		Drawn:          s.Drawn,
		Lost:           s.Lost,
		GoalsFor:       s.GoalsFor,
		GoalsAgainst:   s.GoalsAgainst,
		GoalDifference: s.GoalDifference(),
		Points:         s.Points,
		Form:           s.Form,
	}
}

type standingTableDTO struct {
	League   leagueDTO     `json:"league"`
	Computed bool          `json:"computed"`
	Rows     []standingDTO `json:"rows"`
}

func standingTableToDTO(table usecase.StandingTable, teamNames map[string]string, lang string) standingTableDTO {
	rows := make([]standingDTO, 0, len(table.Rows))
	for _, s := range table.Rows {
		rows = append(rows, standingToDTO(s, teamNames[s.TeamID]))
	}
	return standingTableDTO{
		League:   leagueToDTO(table.League, lang),
		Computed: table.Computed,
		Rows:     rows,
	}
}

type topScorerDTO struct {
	ID         string `json:"id"`
	LeagueID   string `json:"leagueId"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName,omitempty"`
	TeamID     string `json:"teamId"`
	TeamName   string `json:"teamName,omitempty"`
	Season     string `json:"season"`
	Goals      int    `json:"goals"`
	Assists    int    `json:"assists"`
	Penalties  int    `json:"penalties"`
}

func topScorerToDTO(t topscorer.TopScorer, playerName, teamName string) topScorerDTO {
	return topScorerDTO{
		ID:         t.ID,
		LeagueID:   t.LeagueID,
		PlayerID:   t.PlayerID,
		PlayerName: playerName,
		TeamID:     t.TeamID,
		TeamName:   teamName,
		Season:     t.Season,
		Goals:      t.Goals,
		Assists:    t.Assists,
		Penalties:  t.Penalties,
	}
}

func topScorersToDTO(items []topscorer.TopScorer, playerNames, teamNames map[string]string) []topScorerDTO {
	out := make([]topScorerDTO, 0, len(items))
	for _, t := range items {
		out = append(out, topScorerToDTO(t, playerNames[t.PlayerID], teamNames[t.TeamID]))
	}
	return out
}

type cupDTO struct {
	ID      string `json:"id"`
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	NameEN  string `json:"nameEn"`
	NameAM  string `json:"nameAm"`
	Country string `json:"country"`
	LogoURL string `json:"logoUrl"`
}

func cupToDTO(c cup.Cup, lang string) cupDTO {
	name := c.NameEN
	if lang == "am" && c.NameAM != "" {
		name = c.NameAM
	}
	return cupDTO{
		ID:      c.ID,
		Slug:    c.Slug,
		Name:    name,
		NameEN:  c.NameEN,
		NameAM:  c.NameAM,
		Country: c.Country,
		LogoURL: c.LogoURL,
	}
}

type cupEditionDTO struct {
	ID             string  `json:"id"`
	CupID          string  `json:"cupId"`
	Slug           string  `json:"slug"`
	Season         string  `json:"season"`
	WinnerTeamID   string  `json:"winnerTeamId,omitempty"`
	RunnerUpTeamID string  `json:"runnerUpTeamId,omitempty"`
	FinalDate      *string `json:"finalDate,omitempty"`
	Decided        bool    `json:"decided"`
}

func cupEditionToDTO(e cup.Edition) cupEditionDTO {
	return cupEditionDTO{
		ID:             e.ID,
		CupID:          e.CupID,
		Slug:           e.Slug,
		Season:         e.Season,
		WinnerTeamID:   e.WinnerTeamID,
		RunnerUpTeamID: e.RunnerUpTeamID,
		FinalDate:      formatDatePtr(e.FinalDate),
		Decided:        e.Decided(),
	}
}

type cupDetailDTO struct {
	Cup      cupDTO          `json:"cup"`
	Editions []cupEditionDTO `json:"editions"`
}

func cupDetailToDTO(d usecase.CupDetail, lang string) cupDetailDTO {
	editions := make([]cupEditionDTO, 0, len(d.Editions))
	for _, e := range d.Editions {
		editions = append(editions, cupEditionToDTO(e))
	}
	return cupDetailDTO{Cup: cupToDTO(d.Cup, lang), Editions: editions}
}

type liveTeamDTO struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	LogoURL   string `json:"logoUrl"`
}

func liveTeamToDTO(t team.Team, lang string) liveTeamDTO {
	return liveTeamDTO{ID: t.ID, Slug: t.Slug, Name: t.Name(lang), ShortName: t.ShortName, LogoURL: t.LogoURL}
}

type liveMatchDTO struct {
	ID        string      `json:"id"`
	Slug      string      `json:"slug"`
	HomeTeam  liveTeamDTO `json:"homeTeam"`
	AwayTeam  liveTeamDTO `json:"awayTeam"`
	HomeScore int         `json:"homeScore"`
	AwayScore int         `json:"awayScore"`
	Venue     string      `json:"venue"`
	Clock     clockDTO    `json:"clock"`
}

type liveGroupDTO struct {
	League  leagueDTO      `json:"league"`
	Matches []liveMatchDTO `json:"matches"`
}

func liveGroupsToDTO(groups []usecase.LiveLeagueGroup, lang string) []liveGroupDTO {
	out := make([]liveGroupDTO, 0, len(groups))
	for _, g := range groups {
		matches := make([]liveMatchDTO, 0, len(g.Matches))
		for _, lm := range g.Matches {
			matches = append(matches, liveMatchDTO{
				ID:        lm.Match.ID,
				Slug:      lm.Match.Slug,
				HomeTeam:  liveTeamToDTO(lm.HomeTeam, lang),
				AwayTeam:  liveTeamToDTO(lm.AwayTeam, lang),
				HomeScore: lm.Match.HomeScore,
				AwayScore: lm.Match.AwayScore,
				Venue:     lm.Match.Venue,
				Clock:     clockToDTO(lm.Clock),
			})
		}
		out = append(out, liveGroupDTO{League: leagueToDTO(g.League, lang), Matches: matches})
	}
	return out
}

type liveSnapshotDTO struct {
	Sequence    uint64         `json:"sequence"`
	GeneratedAt string         `json:"generatedAt,omitempty"`
	Groups      []liveGroupDTO `json:"groups"`
}

func liveSnapshotToDTO(s usecase.LiveSnapshot, lang string) liveSnapshotDTO {
	return liveSnapshotDTO{
		Sequence:    s.Sequence,
		GeneratedAt: formatTime(s.GeneratedAt),
		Groups:      liveGroupsToDTO(s.Groups, lang),
	}
}

type slotDTO struct {
	Role string  `json:"role"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type formationDTO struct {
	Name  string    `json:"name"`
	Slots []slotDTO `json:"slots"`
}

func formationToDTO(f usecase.Formation) formationDTO {
	slots := make([]slotDTO, 0, len(f.Slots))
	for _, s := range f.Slots {
		slots = append(slots, slotDTO{Role: s.Role, X: s.X, Y: s.Y})
	}
	return formationDTO{Name: f.Name, Slots: slots}
}

type matchPageDTO struct {
	Match         matchDTO     `json:"match"`
	League        leagueDTO    `json:"league"`
	HomeTeam      teamDTO      `json:"homeTeam"`
	AwayTeam      teamDTO      `json:"awayTeam"`
	HomeFormation formationDTO `json:"homeFormation"`
	AwayFormation formationDTO `json:"awayFormation"`
	Events        []eventDTO   `json:"events"`
}

func matchPageToDTO(p usecase.MatchPage, lang string, now time.Time) matchPageDTO {
	m := matchToDTO(p.Match, now)
	m.Clock = clockToDTO(p.Clock)
	return matchPageDTO{
		Match:         m,
		League:        leagueToDTO(p.League, lang),
		HomeTeam:      teamToDTO(p.HomeTeam, lang),
		AwayTeam:      teamToDTO(p.AwayTeam, lang),
		HomeFormation: formationToDTO(p.HomeFormation),
		AwayFormation: formationToDTO(p.AwayFormation),
		Events:        eventsToDTO(p.Events),
	}
}

type squadGroupDTO struct {
	Position string      `json:"position"`
	Players  []playerDTO `json:"players"`
}

type teamPageDTO struct {
	Team      teamDTO         `json:"team"`
	League    leagueDTO       `json:"league"`
	Formation formationDTO    `json:"formation"`
	Squad     []squadGroupDTO `json:"squad"`
	Live      []matchDTO      `json:"live"`
	Recent    []matchDTO      `json:"recent"`
	Upcoming  []matchDTO      `json:"upcoming"`
}

func teamPageToDTO(p usecase.TeamPage, lang string, now time.Time) teamPageDTO {
	squad := make([]squadGroupDTO, 0, len(player.Positions))
	for _, pos := range player.Positions {
		squad = append(squad, squadGroupDTO{Position: string(pos), Players: playersToDTO(p.Squad[pos], lang)})
	}
	return teamPageDTO{
		Team:      teamToDTO(p.Team, lang),
		League:    leagueToDTO(p.League, lang),
		Formation: formationToDTO(p.Formation),
		Squad:     squad,
		Live:      matchesToDTO(p.Live, now),
		Recent:    matchesToDTO(p.Recent, now),
		Upcoming:  matchesToDTO(p.Upcoming, now),
	}
}

type playerPageDTO struct {
	Player  playerDTO      `json:"player"`
	Team    teamDTO        `json:"team"`
	Age     int            `json:"age,omitempty"`
	Tallies []topScorerDTO `json:"tallies"`
}

func playerPageToDTO(p usecase.PlayerPage, lang string) playerPageDTO {
	tallies := make([]topScorerDTO, 0, len(p.Tallies))
	for _, t := range p.Tallies {
		tallies = append(tallies, topScorerToDTO(t, p.Player.Name(lang), p.Team.Name(lang)))
	}
	return playerPageDTO{
		Player:  playerToDTO(p.Player, lang),
		Team:    teamToDTO(p.Team, lang),
		Age:     p.Age,
		Tallies: tallies,
	}
}

type leagueOverviewDTO struct {
	League     leagueDTO        `json:"league"`
	Teams      []teamDTO        `json:"teams"`
	Standings  standingTableDTO `json:"standings"`
	TopScorers []topScorerDTO   `json:"topScorers"`
	Live       []matchDTO       `json:"live"`
	Upcoming   []matchDTO       `json:"upcoming"`
	Completed  []matchDTO       `json:"completed"`
}

func leagueOverviewToDTO(o usecase.LeagueOverview, playerNames map[string]string, lang string, now time.Time) leagueOverviewDTO {
	teamNames := teamNameIndex(o.Teams, lang)
	return leagueOverviewDTO{
		League:     leagueToDTO(o.League, lang),
		Teams:      teamsToDTO(o.Teams, lang),
		Standings:  standingTableToDTO(o.Standings, teamNames, lang),
		TopScorers: topScorersToDTO(o.TopScorers, playerNames, teamNames),
		Live:       matchesToDTO(o.Live, now),
		Upcoming:   matchesToDTO(o.Upcoming, now),
		Completed:  matchesToDTO(o.Completed, now),
	}
}

func teamNameIndex(teams []team.Team, lang string) map[string]string {
	out := make(map[string]string, len(teams))
	for _, t := range teams {
		out[t.ID] = t.Name(lang)
	}
	return out
}

func playerNameIndex(players []player.Player, lang string) map[string]string {
	out := make(map[string]string, len(players))
	for _, p := range players {
		out[p.ID] = p.Name(lang)
	}
	return out
}

type uploadResultDTO struct {
	Success     bool   `json:"success"`
	PublicURL   string `json:"publicUrl"`
	Bucket      string `json:"bucket"`
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}
