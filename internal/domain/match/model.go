package match

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/platform/slug"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
)

func ParseStatus(v string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(v))) {
	case StatusScheduled:
		return StatusScheduled, true
	case StatusLive:
		return StatusLive, true
	case StatusCompleted:
		return StatusCompleted, true
	default:
		return "", false
	}
}

// rank orders statuses along the match lifecycle.
func (s Status) rank() int {
	switch s {
	case StatusScheduled:
		return 0
	case StatusLive:
		return 1
	case StatusCompleted:
		return 2
	default:
		return -1
	}
}

// CanTransition reports whether a match may move from s to next. Status only moves forward.
func (s Status) CanTransition(next Status) bool {
	return next.rank() >= 0 && next.rank() >= s.rank()
}

// Match is a fixture between two teams of one league.
type Match struct {
	ID                  string
	Slug                string
	LeagueID            string
	HomeTeamID          string
	AwayTeamID          string
	ScheduledAt         time.Time
	Status              Status
	HomeScore           int
	AwayScore           int
	MatchStartedAt      *time.Time
	SecondHalfStartedAt *time.Time
	ExtraTimeStartedAt  *time.Time
	Minute              *int
	Venue               string
	Round               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if !slug.Valid(m.Slug) {
		return fmt.Errorf("match slug %q is invalid", m.Slug)
	}
	if m.LeagueID == "" {
		return fmt.Errorf("match league id is required")
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match home and away teams are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match home and away teams must differ")
	}
	if m.ScheduledAt.IsZero() {
		return fmt.Errorf("match scheduled time is required")
	}
	if m.Status.rank() < 0 {
		return fmt.Errorf("match status %q is invalid", m.Status)
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return fmt.Errorf("match score cannot be negative")
	}
	if m.Minute != nil && (*m.Minute < 0 || *m.Minute > MaxMinute+maxStoppage) {
		return fmt.Errorf("match minute %d is out of range", *m.Minute)
	}

	return nil
}

func (m Match) Involves(teamID string) bool {
	return teamID != "" && (m.HomeTeamID == teamID || m.AwayTeamID == teamID)
}

// Result returns goals for and against from the given team's perspective.
func (m Match) Result(teamID string) (goalsFor, goalsAgainst int, ok bool) {
	switch teamID {
	case m.HomeTeamID:
		return m.HomeScore, m.AwayScore, true
	case m.AwayTeamID:
		return m.AwayScore, m.HomeScore, true
	default:
		return 0, 0, false
	}
}
