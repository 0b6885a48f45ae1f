package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

const playersTable = "players"

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	b := live(playersTable).Where(qb.IsNull("deleted_at")).OrderBy("name_en ASC")
	return selectRows(ctx, r.db, b, "players", playerFromRow)
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	b := live(playersTable).
		Where(qb.Eq("team_id", teamID), qb.IsNull("deleted_at")).
		OrderBy("jersey_number ASC", "name_en ASC")
	return selectRows(ctx, r.db, b, "players by team", playerFromRow)
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	b := live(playersTable).Where(qb.Eq("id", playerID), qb.IsNull("deleted_at")).Limit(1)
	return getRow(ctx, r.db, b, "player by id", playerFromRow)
}

func (r *PlayerRepository) GetBySlug(ctx context.Context, slug string) (player.Player, bool, error) {
	b := live(playersTable).Where(qb.Eq("slug", slug), qb.IsNull("deleted_at")).Limit(1)
	return getRow(ctx, r.db, b, "player by slug", playerFromRow)
}

// GetByIDs binds the whole id list as one uuid[] argument.
func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}
	b := live(playersTable).
		Where(qb.Expr("id = ANY(?::uuid[])", pq.Array(playerIDs)), qb.IsNull("deleted_at")).
		OrderBy("jersey_number ASC")
	return selectRows(ctx, r.db, b, "players by ids", playerFromRow)
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	return insertRow(ctx, r.db, playersTable, playerToRow(p), "player")
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	return updateRow(ctx, r.db, playersTable, playerToRow(p), p.ID, "player")
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	return softDelete(ctx, r.db, playersTable, playerID, "player")
}
