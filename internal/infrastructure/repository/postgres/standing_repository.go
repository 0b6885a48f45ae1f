package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/standing"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

const standingsTable = "standings"

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ListByLeague(ctx context.Context, leagueID string) ([]standing.Standing, error) {
	b := live(standingsTable).
		Where(qb.Eq("league_id", leagueID), qb.IsNull("deleted_at")).
		OrderBy("position ASC", "points DESC")
	return selectRows(ctx, r.db, b, "standings", standingFromRow)
}

func (r *StandingRepository) GetByID(ctx context.Context, standingID string) (standing.Standing, bool, error) {
	b := live(standingsTable).Where(qb.Eq("id", standingID), qb.IsNull("deleted_at")).Limit(1)
	return getRow(ctx, r.db, b, "standing by id", standingFromRow)
}

func (r *StandingRepository) Create(ctx context.Context, s standing.Standing) error {
	return insertRow(ctx, r.db, standingsTable, standingToRow(s), "standing")
}

func (r *StandingRepository) Update(ctx context.Context, s standing.Standing) error {
	return updateRow(ctx, r.db, standingsTable, standingToRow(s), s.ID, "standing")
}

func (r *StandingRepository) Delete(ctx context.Context, standingID string) error {
	return softDelete(ctx, r.db, standingsTable, standingID, "standing")
}
