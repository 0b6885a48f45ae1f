package player

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/platform/slug"
)

type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

// Positions lists positions in squad display order.
var Positions = []Position{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward}

func ParsePosition(v string) (Position, bool) {
	p := Position(strings.ToUpper(strings.TrimSpace(v)))
	for _, known := range Positions {
		if p == known {
			return p, true
		}
	}
	return "", false
}

// Player belongs to one team's squad.
type Player struct {
	ID           string
	Slug         string
	TeamID       string
	NameEN       string
	NameAM       string
	Position     Position
	JerseyNumber int
	Nationality  string
	PhotoURL     string
	DateOfBirth  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if !slug.Valid(p.Slug) {
		return fmt.Errorf("player slug %q is invalid", p.Slug)
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.NameEN == "" {
		return fmt.Errorf("player english name is required")
	}
	if _, ok := ParsePosition(string(p.Position)); !ok {
		return fmt.Errorf("player position %q is invalid", p.Position)
	}
	if p.JerseyNumber < 0 || p.JerseyNumber > 99 {
		return fmt.Errorf("player jersey number %d is out of range", p.JerseyNumber)
	}

	return nil
}

func (p Player) Name(lang string) string {
	if lang == "am" && p.NameAM != "" {
		return p.NameAM
	}
	return p.NameEN
}

// Age returns completed years at now, or 0 when the birth date is unknown.
func (p Player) Age(now time.Time) int {
	if p.DateOfBirth == nil {
		return 0
	}
	dob := *p.DateOfBirth
	years := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		years--
	}
	return max(years, 0)
}

// GroupByPosition buckets a squad by position, ordered by jersey number.
func GroupByPosition(players []Player) map[Position][]Player {
	out := make(map[Position][]Player, len(Positions))
	for _, p := range players {
		out[p.Position] = append(out[p.Position], p)
	}
	for pos := range out {
		items := out[pos]
		sortByJersey(items)
	}
	return out
}

func sortByJersey(items []Player) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && items[j].JerseyNumber < items[j-1].JerseyNumber; j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}
