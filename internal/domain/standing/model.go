package standing

import (
	"fmt"
	"strings"
	"time"
)

const formLength = 5

// Standing represents a league table row for one team.
type Standing struct {
	ID           string
	LeagueID     string
	TeamID       string
	Season       string
	Position     int
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	Points       int
	Form         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s Standing) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

func (s Standing) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("standing id is required")
	}
	if s.LeagueID == "" || s.TeamID == "" {
		return fmt.Errorf("standing league id and team id are required")
	}
	if s.Season == "" {
		return fmt.Errorf("standing season is required")
	}
	if s.Played < 0 || s.Won < 0 || s.Drawn < 0 || s.Lost < 0 || s.GoalsFor < 0 || s.GoalsAgainst < 0 {
		return fmt.Errorf("standing counters must not be negative")
	}
	if s.Won+s.Drawn+s.Lost != s.Played {
		return fmt.Errorf("standing won+drawn+lost must equal played")
	}
	if len(s.Form) > formLength || strings.Trim(s.Form, "WDL") != "" {
		return fmt.Errorf("standing form %q must be up to %d of W, D, L", s.Form, formLength)
	}

	return nil
}
