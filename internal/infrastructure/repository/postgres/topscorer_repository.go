package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/topscorer"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

const topScorersTable = "top_scorers"

type TopScorerRepository struct {
	db *sqlx.DB
}

func NewTopScorerRepository(db *sqlx.DB) *TopScorerRepository {
	return &TopScorerRepository{db: db}
}

func (r *TopScorerRepository) ListByLeague(ctx context.Context, leagueID string) ([]topscorer.TopScorer, error) {
	b := live(topScorersTable).
		Where(qb.Eq("league_id", leagueID), qb.IsNull("deleted_at")).
		OrderBy("goals DESC", "assists DESC", "created_at ASC")
	return selectRows(ctx, r.db, b, "top scorers", topScorerFromRow)
}

func (r *TopScorerRepository) ListByPlayer(ctx context.Context, playerID string) ([]topscorer.TopScorer, error) {
	b := live(topScorersTable).
		Where(qb.Eq("player_id", playerID), qb.IsNull("deleted_at")).
		OrderBy("season DESC")
	return selectRows(ctx, r.db, b, "top scorers by player", topScorerFromRow)
}

func (r *TopScorerRepository) GetByID(ctx context.Context, id string) (topscorer.TopScorer, bool, error) {
	b := live(topScorersTable).Where(qb.Eq("id", id), qb.IsNull("deleted_at")).Limit(1)
	return getRow(ctx, r.db, b, "top scorer by id", topScorerFromRow)
}

func (r *TopScorerRepository) Create(ctx context.Context, t topscorer.TopScorer) error {
	return insertRow(ctx, r.db, topScorersTable, topScorerToRow(t), "top scorer")
}

func (r *TopScorerRepository) Update(ctx context.Context, t topscorer.TopScorer) error {
	return updateRow(ctx, r.db, topScorersTable, topScorerToRow(t), t.ID, "top scorer")
}

func (r *TopScorerRepository) Delete(ctx context.Context, id string) error {
	return softDelete(ctx, r.db, topScorersTable, id, "top scorer")
}
