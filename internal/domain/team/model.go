package team

import (
	"fmt"
	"time"

	"github.com/riskibarqy/league-portal/internal/platform/slug"
)

// Team is a club competing in a league.
type Team struct {
	ID          string
	Slug        string
	LeagueID    string
	NameEN      string
	NameAM      string
	ShortName   string
	LogoURL     string
	Stadium     string
	FoundedYear int
	Formation   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if !slug.Valid(t.Slug) {
		return fmt.Errorf("team slug %q is invalid", t.Slug)
	}
	if t.LeagueID == "" {
		return fmt.Errorf("team league id is required")
	}
	if t.NameEN == "" {
		return fmt.Errorf("team english name is required")
	}
	if t.FoundedYear != 0 && (t.FoundedYear < 1850 || t.FoundedYear > time.Now().Year()) {
		return fmt.Errorf("team founded year %d is out of range", t.FoundedYear)
	}
	if t.Formation != "" && !IsSupportedFormation(t.Formation) {
		return fmt.Errorf("team formation %q is not supported", t.Formation)
	}

	return nil
}

// Name returns the display name for lang ("am" or "en"), falling back to english.
func (t Team) Name(lang string) string {
	if lang == "am" && t.NameAM != "" {
		return t.NameAM
	}
	return t.NameEN
}
