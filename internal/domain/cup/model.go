package cup

import (
	"fmt"
	"time"

	"github.com/riskibarqy/league-portal/internal/platform/slug"
)

// Cup is a knockout competition that runs in editions.
type Cup struct {
	ID        string
	Slug      string
	NameEN    string
	NameAM    string
	Country   string
	LogoURL   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Cup) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("cup id is required")
	}
	if !slug.Valid(c.Slug) {
		return fmt.Errorf("cup slug %q is invalid", c.Slug)
	}
	if c.NameEN == "" {
		return fmt.Errorf("cup english name is required")
	}
	return nil
}

// Edition is one season of a cup.
type Edition struct {
	ID             string
	CupID          string
	Slug           string
	Season         string
	WinnerTeamID   string
	RunnerUpTeamID string
	FinalDate      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (e Edition) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("cup edition id is required")
	}
	if e.CupID == "" {
		return fmt.Errorf("cup edition cup id is required")
	}
	if !slug.Valid(e.Slug) {
		return fmt.Errorf("cup edition slug %q is invalid", e.Slug)
	}
	if e.Season == "" {
		return fmt.Errorf("cup edition season is required")
	}
	if e.WinnerTeamID != "" && e.WinnerTeamID == e.RunnerUpTeamID {
		return fmt.Errorf("cup edition winner and runner-up must differ")
	}
	return nil
}

func (e Edition) Decided() bool {
	return e.WinnerTeamID != ""
}
