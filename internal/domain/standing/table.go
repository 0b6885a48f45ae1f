package standing

import (
	"sort"

	"github.com/riskibarqy/league-portal/internal/domain/match"
)

// Sort orders rows by points, goal difference, goals for, then team name, and
// rewrites Position to match. nameOf may be nil.
func Sort(rows []Standing, nameOf func(teamID string) string) {
	name := func(id string) string {
		if nameOf == nil {
			return id
		}
		return nameOf(id)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference() != b.GoalDifference() {
			return a.GoalDifference() > b.GoalDifference()
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return name(a.TeamID) < name(b.TeamID)
	})
	for i := range rows {
		rows[i].Position = i + 1
	}
}

// Compute derives a table from completed matches. Every team in teamIDs gets a row,
// even without games played. Form lists the latest results first.
func Compute(leagueID, season string, teamIDs []string, matches []match.Match, nameOf func(string) string) []Standing {
	byTeam := make(map[string]*Standing, len(teamIDs))
	rows := make([]*Standing, 0, len(teamIDs))
	ensure := func(teamID string) *Standing {
		if row, ok := byTeam[teamID]; ok {
			return row
		}
		row := &Standing{LeagueID: leagueID, TeamID: teamID, Season: season}
		byTeam[teamID] = row
		rows = append(rows, row)
		return row
	}
	for _, id := range teamIDs {
		ensure(id)
	}

	completed := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.LeagueID == leagueID && m.Status == match.StatusCompleted {
			completed = append(completed, m)
		}
	}
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].ScheduledAt.After(completed[j].ScheduledAt)
	})

	for _, m := range completed {
		for _, teamID := range []string{m.HomeTeamID, m.AwayTeamID} {
			gf, ga, _ := m.Result(teamID)
			row := ensure(teamID)
			row.Played++
			row.GoalsFor += gf
			row.GoalsAgainst += ga
			var mark byte
			switch {
			case gf > ga:
				row.Won++
				row.Points += 3
				mark = 'W'
			case gf == ga:
				row.Drawn++
				row.Points++
				mark = 'D'
			default:
				row.Lost++
				mark = 'L'
			}
			if len(row.Form) < formLength {
				row.Form += string(mark)
			}
		}
	}

	out := make([]Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	Sort(out, nameOf)
	return out
}
