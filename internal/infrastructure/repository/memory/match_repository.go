package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/league-portal/internal/domain/match"
)

type MatchRepository struct {
	rows *table[match.Match]
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	return &MatchRepository{rows: newTable(func(m match.Match) string { return m.ID }, matches)}
}

func (r *MatchRepository) List(_ context.Context, filter match.Filter) ([]match.Match, error) {
	out := r.rows.list(filter.Matches)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	m, ok := r.rows.get(matchID)
	return m, ok, nil
}

func (r *MatchRepository) GetBySlug(_ context.Context, slug string) (match.Match, bool, error) {
	m, ok := r.rows.find(func(m match.Match) bool { return m.Slug == slug })
	return m, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) error {
	r.rows.put(m)
	return nil
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) error {
	r.rows.replace(m)
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID string) error {
	r.rows.remove(matchID)
	return nil
}

type MatchEventRepository struct {
	rows *table[match.Event]
}

func NewMatchEventRepository(events []match.Event) *MatchEventRepository {
	return &MatchEventRepository{rows: newTable(func(e match.Event) string { return e.ID }, events)}
}

func (r *MatchEventRepository) ListByMatch(_ context.Context, matchID string) ([]match.Event, error) {
	out := r.rows.list(func(e match.Event) bool { return e.MatchID == matchID })
	match.SortEvents(out)
	return out, nil
}

func (r *MatchEventRepository) GetByID(_ context.Context, eventID string) (match.Event, bool, error) {
	e, ok := r.rows.get(eventID)
	return e, ok, nil
}

func (r *MatchEventRepository) Create(_ context.Context, e match.Event) error {
	r.rows.put(e)
	return nil
}

func (r *MatchEventRepository) Update(_ context.Context, e match.Event) error {
	r.rows.replace(e)
	return nil
}

func (r *MatchEventRepository) Delete(_ context.Context, eventID string) error {
	r.rows.remove(eventID)
	return nil
}
