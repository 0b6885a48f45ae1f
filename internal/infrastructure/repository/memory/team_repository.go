package memory

import (
	"context"

	"github.com/riskibarqy/league-portal/internal/domain/team"
)

type TeamRepository struct {
	rows *table[team.Team]
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	return &TeamRepository{rows: newTable(func(t team.Team) string { return t.ID }, teams)}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	return r.rows.list(nil), nil
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID string) ([]team.Team, error) {
	return r.rows.list(func(t team.Team) bool { return t.LeagueID == leagueID }), nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	t, ok := r.rows.get(teamID)
	return t, ok, nil
}

func (r *TeamRepository) GetBySlug(_ context.Context, slug string) (team.Team, bool, error) {
	t, ok := r.rows.find(func(t team.Team) bool { return t.Slug == slug })
	return t, ok, nil
}

func (r *TeamRepository) GetByIDs(_ context.Context, teamIDs []string) ([]team.Team, error) {
	wanted := idSet(teamIDs)
	return r.rows.list(func(t team.Team) bool {
		_, ok := wanted[t.ID]
		return ok
	}), nil
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) error {
	r.rows.put(t)
	return nil
}

func (r *TeamRepository) Update(_ context.Context, t team.Team) error {
	r.rows.replace(t)
	return nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID string) error {
	r.rows.remove(teamID)
	return nil
}
