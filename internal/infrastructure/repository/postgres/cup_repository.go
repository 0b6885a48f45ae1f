package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/cup"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

const (
	cupsTable        = "cups"
	cupEditionsTable = "cup_editions"
)

type CupRepository struct {
	db *sqlx.DB
}

func NewCupRepository(db *sqlx.DB) *CupRepository {
	return &CupRepository{db: db}
}

func (r *CupRepository) List(ctx context.Context) ([]cup.Cup, error) {
	b := live(cupsTable).Where(qb.IsNull("deleted_at")).OrderBy("name_en ASC")
	return selectRows(ctx, r.db, b, "cups", cupFromRow)
}

func (r *CupRepository) GetByID(ctx context.Context, cupID string) (cup.Cup, bool, error) {
	b := live(cupsTable).Where(qb.Eq("id", cupID), qb.IsNull("deleted_at")).Limit(1)
	return getRow(ctx, r.db, b, "cup by id", cupFromRow)
}

func (r *CupRepository) GetBySlug(ctx context.Context, slug string) (cup.Cup, bool, error) {
	b := live(cupsTable).Where(qb.Eq("slug", slug), qb.IsNull("deleted_at")).Limit(1)
	return getRow(ctx, r.db, b, "cup by slug", cupFromRow)
}

func (r *CupRepository) Create(ctx context.Context, c cup.Cup) error {
	return insertRow(ctx, r.db, cupsTable, cupToRow(c), "cup")
}

func (r *CupRepository) Update(ctx context.Context, c cup.Cup) error {
	return updateRow(ctx, r.db, cupsTable, cupToRow(c), c.ID, "cup")
}

func (r *CupRepository) Delete(ctx context.Context, cupID string) error {
	return softDelete(ctx, r.db, cupsTable, cupID, "cup")
}

type CupEditionRepository struct {
	db *sqlx.DB
}

func NewCupEditionRepository(db *sqlx.DB) *CupEditionRepository {
	return &CupEditionRepository{db: db}
}

func (r *CupEditionRepository) ListByCup(ctx context.Context, cupID string) ([]cup.Edition, error) {
	b := live(cupEditionsTable).
		Where(qb.Eq("cup_id", cupID), qb.IsNull("deleted_at")).
		OrderBy("season DESC")
	return selectRows(ctx, r.db, b, "cup editions", cupEditionFromRow)
}

func (r *CupEditionRepository) GetByID(ctx context.Context, editionID string) (cup.Edition, bool, error) {
	b := live(cupEditionsTable).Where(qb.Eq("id", editionID), qb.IsNull("deleted_at")).Limit(1)
	return getRow(ctx, r.db, b, "cup edition by id", cupEditionFromRow)
}

func (r *CupEditionRepository) GetBySlug(ctx context.Context, cupID, slug string) (cup.Edition, bool, error) {
	b := live(cupEditionsTable).
		Where(qb.Eq("cup_id", cupID), qb.Eq("slug", slug), qb.IsNull("deleted_at")).
		Limit(1)
	return getRow(ctx, r.db, b, "cup edition by slug", cupEditionFromRow)
}

func (r *CupEditionRepository) Create(ctx context.Context, e cup.Edition) error {
	return insertRow(ctx, r.db, cupEditionsTable, cupEditionToRow(e), "cup edition")
}

func (r *CupEditionRepository) Update(ctx context.Context, e cup.Edition) error {
	return updateRow(ctx, r.db, cupEditionsTable, cupEditionToRow(e), e.ID, "cup edition")
}

func (r *CupEditionRepository) Delete(ctx context.Context, editionID string) error {
	return softDelete(ctx, r.db, cupEditionsTable, editionID, "cup edition")
}
