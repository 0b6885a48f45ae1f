package league

import (
	"fmt"
	"time"

	"github.com/riskibarqy/league-portal/internal/platform/slug"
)

// League is a domestic competition with one active season.
type League struct {
	ID        string
	Slug      string
	NameEN    string
	NameAM    string
	Country   string
	Season    string
	LogoURL   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if !slug.Valid(l.Slug) {
		return fmt.Errorf("league slug %q is invalid", l.Slug)
	}
	if l.NameEN == "" {
		return fmt.Errorf("league english name is required")
	}
	if l.Season == "" {
		return fmt.Errorf("league season is required")
	}

	return nil
}

func (l League) Name(lang string) string {
	if lang == "am" && l.NameAM != "" {
		return l.NameAM
	}
	return l.NameEN
}
