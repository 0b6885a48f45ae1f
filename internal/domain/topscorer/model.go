package topscorer

import (
	"fmt"
	"sort"
	"time"
)

// TopScorer is a season tally for one player in one league.
type TopScorer struct {
	ID        string
	LeagueID  string
	PlayerID  string
	TeamID    string
	Season    string
	Goals     int
	Assists   int
	Penalties int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t TopScorer) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("top scorer id is required")
	}
	if t.LeagueID == "" || t.PlayerID == "" || t.TeamID == "" {
		return fmt.Errorf("top scorer league, player and team are required")
	}
	if t.Season == "" {
		return fmt.Errorf("top scorer season is required")
	}
	if t.Goals < 0 || t.Assists < 0 || t.Penalties < 0 {
		return fmt.Errorf("top scorer counters must not be negative")
	}
	if t.Penalties > t.Goals {
		return fmt.Errorf("top scorer penalties cannot exceed goals")
	}

	return nil
}

// Sort orders by goals then assists, both descending. Equal tallies keep input order.
func Sort(items []TopScorer) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Goals != items[j].Goals {
			return items[i].Goals > items[j].Goals
		}
		return items[i].Assists > items[j].Assists
	})
}
