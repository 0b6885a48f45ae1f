package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/league-portal/internal/domain/standing"
	"github.com/riskibarqy/league-portal/internal/domain/topscorer"
)

type StandingRepository struct {
	rows *table[standing.Standing]
}

func NewStandingRepository(rows []standing.Standing) *StandingRepository {
	return &StandingRepository{rows: newTable(func(s standing.Standing) string { return s.ID }, rows)}
}

func (r *StandingRepository) ListByLeague(_ context.Context, leagueID string) ([]standing.Standing, error) {
	out := r.rows.list(func(s standing.Standing) bool { return s.LeagueID == leagueID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *StandingRepository) GetByID(_ context.Context, standingID string) (standing.Standing, bool, error) {
	s, ok := r.rows.get(standingID)
	return s, ok, nil
}

func (r *StandingRepository) Create(_ context.Context, s standing.Standing) error {
	r.rows.put(s)
	return nil
}

func (r *StandingRepository) Update(_ context.Context, s standing.Standing) error {
	r.rows.replace(s)
	return nil
}

func (r *StandingRepository) Delete(_ context.Context, standingID string) error {
	r.rows.remove(standingID)
	return nil
}

type TopScorerRepository struct {
	rows *table[topscorer.TopScorer]
}

func NewTopScorerRepository(rows []topscorer.TopScorer) *TopScorerRepository {
	return &TopScorerRepository{rows: newTable(func(t topscorer.TopScorer) string { return t.ID }, rows)}
}

func (r *TopScorerRepository) ListByLeague(_ context.Context, leagueID string) ([]topscorer.TopScorer, error) {
	out := r.rows.list(func(t topscorer.TopScorer) bool { return t.LeagueID == leagueID })
	topscorer.Sort(out)
	return out, nil
}

func (r *TopScorerRepository) ListByPlayer(_ context.Context, playerID string) ([]topscorer.TopScorer, error) {
	return r.rows.list(func(t topscorer.TopScorer) bool { return t.PlayerID == playerID }), nil
}

func (r *TopScorerRepository) GetByID(_ context.Context, id string) (topscorer.TopScorer, bool, error) {
	t, ok := r.rows.get(id)
	return t, ok, nil
}

func (r *TopScorerRepository) Create(_ context.Context, t topscorer.TopScorer) error {
	r.rows.put(t)
	return nil
}

func (r *TopScorerRepository) Update(_ context.Context, t topscorer.TopScorer) error {
	r.rows.replace(t)
	return nil
}

func (r *TopScorerRepository) Delete(_ context.Context, id string) error {
	r.rows.remove(id)
	return nil
}
