package memory

import (
	"context"

	"github.com/riskibarqy/league-portal/internal/domain/league"
)

type LeagueRepository struct {
	rows *table[league.League]
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	return &LeagueRepository{rows: newTable(func(l league.League) string { return l.ID }, leagues)}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	return r.rows.list(nil), nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	l, ok := r.rows.get(leagueID)
	return l, ok, nil
}

func (r *LeagueRepository) GetBySlug(_ context.Context, slug string) (league.League, bool, error) {
	l, ok := r.rows.find(func(l league.League) bool { return l.Slug == slug })
	return l, ok, nil
}

func (r *LeagueRepository) Create(_ context.Context, l league.League) error {
	r.rows.put(l)
	return nil
}

func (r *LeagueRepository) Update(_ context.Context, l league.League) error {
	r.rows.replace(l)
	return nil
}

func (r *LeagueRepository) Delete(_ context.Context, leagueID string) error {
	r.rows.remove(leagueID)
	return nil
}
