package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/league"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

const leaguesTable = "leagues"

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	b := live(leaguesTable).
		Where(qb.IsNull("deleted_at")).
		OrderBy("is_active DESC", "name_en ASC")
	return selectRows(ctx, r.db, b, "leagues", leagueFromRow)
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	b := live(leaguesTable).Where(qb.Eq("id", leagueID), qb.IsNull("deleted_at")).Limit(1)
	return getRow(ctx, r.db, b, "league by id", leagueFromRow)
}

func (r *LeagueRepository) GetBySlug(ctx context.Context, slug string) (league.League, bool, error) {
	b := live(leaguesTable).Where(qb.Eq("slug", slug), qb.IsNull("deleted_at")).Limit(1)
	return getRow(ctx, r.db, b, "league by slug", leagueFromRow)
}

func (r *LeagueRepository) Create(ctx context.Context, l league.League) error {
	return insertRow(ctx, r.db, leaguesTable, leagueToRow(l), "league")
}

func (r *LeagueRepository) Update(ctx context.Context, l league.League) error {
	return updateRow(ctx, r.db, leaguesTable, leagueToRow(l), l.ID, "league")
}

func (r *LeagueRepository) Delete(ctx context.Context, leagueID string) error {
	return softDelete(ctx, r.db, leaguesTable, leagueID, "league")
}
