package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

const teamsTable = "teams"

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	b := live(teamsTable).Where(qb.IsNull("deleted_at")).OrderBy("name_en ASC")
	return selectRows(ctx, r.db, b, "teams", teamFromRow)
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	b := live(teamsTable).
		Where(qb.Eq("league_id", leagueID), qb.IsNull("deleted_at")).
		OrderBy("name_en ASC")
	return selectRows(ctx, r.db, b, "teams by league", teamFromRow)
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	b := live(teamsTable).Where(qb.Eq("id", teamID), qb.IsNull("deleted_at")).Limit(1)
	return getRow(ctx, r.db, b, "team by id", teamFromRow)
}

func (r *TeamRepository) GetBySlug(ctx context.Context, slug string) (team.Team, bool, error) {
	b := live(teamsTable).Where(qb.Eq("slug", slug), qb.IsNull("deleted_at")).Limit(1)
	return getRow(ctx, r.db, b, "team by slug", teamFromRow)
}

func (r *TeamRepository) GetByIDs(ctx context.Context, teamIDs []string) ([]team.Team, error) {
	if len(teamIDs) == 0 {
		return []team.Team{}, nil
	}
	b := live(teamsTable).
		Where(qb.In("id", anyStrings(teamIDs)), qb.IsNull("deleted_at")).
		OrderBy("name_en ASC")
	return selectRows(ctx, r.db, b, "teams by ids", teamFromRow)
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	return insertRow(ctx, r.db, teamsTable, teamToRow(t), "team")
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) error {
	return updateRow(ctx, r.db, teamsTable, teamToRow(t), t.ID, "team")
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	return softDelete(ctx, r.db, teamsTable, teamID, "team")
}
