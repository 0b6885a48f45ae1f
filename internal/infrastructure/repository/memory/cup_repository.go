package memory

import (
	"context"

	"github.com/riskibarqy/league-portal/internal/domain/cup"
)

type CupRepository struct {
	rows *table[cup.Cup]
}

func NewCupRepository(cups []cup.Cup) *CupRepository {
	return &CupRepository{rows: newTable(func(c cup.Cup) string { return c.ID }, cups)}
}

func (r *CupRepository) List(_ context.Context) ([]cup.Cup, error) {
	return r.rows.list(nil), nil
}

func (r *CupRepository) GetByID(_ context.Context, cupID string) (cup.Cup, bool, error) {
	c, ok := r.rows.get(cupID)
	return c, ok, nil
}

func (r *CupRepository) GetBySlug(_ context.Context, slug string) (cup.Cup, bool, error) {
	c, ok := r.rows.find(func(c cup.Cup) bool { return c.Slug == slug })
	return c, ok, nil
}

func (r *CupRepository) Create(_ context.Context, c cup.Cup) error {
	r.rows.put(c)
	return nil
}

func (r *CupRepository) Update(_ context.Context, c cup.Cup) error {
	r.rows.replace(c)
	return nil
}

func (r *CupRepository) Delete(_ context.Context, cupID string) error {
	r.rows.remove(cupID)
	return nil
}

type CupEditionRepository struct {
	rows *table[cup.Edition]
}

func NewCupEditionRepository(editions []cup.Edition) *CupEditionRepository {
	return &CupEditionRepository{rows: newTable(func(e cup.Edition) string { return e.ID }, editions)}
}

func (r *CupEditionRepository) ListByCup(_ context.Context, cupID string) ([]cup.Edition, error) {
	return r.rows.list(func(e cup.Edition) bool { return e.CupID == cupID }), nil
}

func (r *CupEditionRepository) GetByID(_ context.Context, editionID string) (cup.Edition, bool, error) {
	e, ok := r.rows.get(editionID)
	return e, ok, nil
}

func (r *CupEditionRepository) GetBySlug(_ context.Context, cupID, slug string) (cup.Edition, bool, error) {
	e, ok := r.rows.find(func(e cup.Edition) bool { return e.CupID == cupID && e.Slug == slug })
	return e, ok, nil
}

func (r *CupEditionRepository) Create(_ context.Context, e cup.Edition) error {
	r.rows.put(e)
	return nil
}

func (r *CupEditionRepository) Update(_ context.Context, e cup.Edition) error {
	r.rows.replace(e)
	return nil
}

func (r *CupEditionRepository) Delete(_ context.Context, editionID string) error {
	r.rows.remove(editionID)
	return nil
}
