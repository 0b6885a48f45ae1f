package match

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type EventType string

const (
	EventGoal          EventType = "goal"
	EventOwnGoal       EventType = "own_goal"
	EventPenaltyGoal   EventType = "penalty_goal"
	EventPenaltyMissed EventType = "penalty_missed"
	EventYellowCard    EventType = "yellow_card"
	EventRedCard       EventType = "red_card"
	EventSubstitution  EventType = "substitution"
)

var eventTypes = map[EventType]struct{}{
	EventGoal:          {},
	EventOwnGoal:       {},
	EventPenaltyGoal:   {},
	EventPenaltyMissed: {},
	EventYellowCard:    {},
	EventRedCard:       {},
	EventSubstitution:  {},
}

func ParseEventType(v string) (EventType, bool) {
	t := EventType(strings.ToLower(strings.TrimSpace(v)))
	_, ok := eventTypes[t]
	return t, ok
}

// IsGoal reports whether the event changes the score.
func (t EventType) IsGoal() bool {
	return t == EventGoal || t == EventOwnGoal || t == EventPenaltyGoal
}

// Event is something that happened during a match at a given minute.
type Event struct {
	ID            string
	MatchID       string
	TeamID        string
	PlayerID      string
	Type          EventType
	Minute        int
	ExtraMinute   int
	DescriptionEN string
	DescriptionAM string
	CreatedAt     time.Time
}

func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event id is required")
	}
	if e.MatchID == "" {
		return fmt.Errorf("event match id is required")
	}
	if e.TeamID == "" {
		return fmt.Errorf("event team id is required")
	}
	if _, ok := eventTypes[e.Type]; !ok {
		return fmt.Errorf("event type %q is invalid", e.Type)
	}
	if e.Minute < 0 || e.Minute > MaxMinute {
		return fmt.Errorf("event minute %d is out of range", e.Minute)
	}
	if e.ExtraMinute < 0 || e.ExtraMinute > maxStoppage {
		return fmt.Errorf("event extra minute %d is out of range", e.ExtraMinute)
	}

	return nil
}

// Label renders the event minute as 67' or 90+3'.
func (e Event) Label() string {
	if e.ExtraMinute > 0 {
		return fmt.Sprintf("%d+%d'", e.Minute, e.ExtraMinute)
	}
	return fmt.Sprintf("%d'", e.Minute)
}

// SortEvents orders events chronologically in place.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Minute != b.Minute {
			return a.Minute < b.Minute
		}
		if a.ExtraMinute != b.ExtraMinute {
			return a.ExtraMinute < b.ExtraMinute
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}
