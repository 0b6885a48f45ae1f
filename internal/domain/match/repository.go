package match

import "context"

// Filter narrows match listings. Zero values match everything.
type Filter struct {
	LeagueID string
	TeamID   string
	Statuses []Status
}

func (f Filter) Matches(m Match) bool {
	if f.LeagueID != "" && m.LeagueID != f.LeagueID {
		return false
	}
	if f.TeamID != "" && !m.Involves(f.TeamID) {
		return false
	}
	if len(f.Statuses) == 0 {
		return true
	}
	for _, s := range f.Statuses {
		if m.Status == s {
			return true
		}
	}
	return false
}

// Repository describes match persistence needs from use cases.
// List returns matches ordered by scheduled time.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	GetBySlug(ctx context.Context, slug string) (Match, bool, error)
	Create(ctx context.Context, m Match) error
	Update(ctx context.Context, m Match) error
	Delete(ctx context.Context, matchID string) error
}

type EventRepository interface {
	ListByMatch(ctx context.Context, matchID string) ([]Event, error)
	GetByID(ctx context.Context, eventID string) (Event, bool, error)
	Create(ctx context.Context, e Event) error
	Update(ctx context.Context, e Event) error
	Delete(ctx context.Context, eventID string) error
}
