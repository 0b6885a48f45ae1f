package cup

import "context"

type Repository interface {
	List(ctx context.Context) ([]Cup, error)
	GetByID(ctx context.Context, cupID string) (Cup, bool, error)
	GetBySlug(ctx context.Context, slug string) (Cup, bool, error)
	Create(ctx context.Context, c Cup) error
	Update(ctx context.Context, c Cup) error
	Delete(ctx context.Context, cupID string) error
}

type EditionRepository interface {
	ListByCup(ctx context.Context, cupID string) ([]Edition, error)
	GetByID(ctx context.Context, editionID string) (Edition, bool, error)
	GetBySlug(ctx context.Context, cupID, slug string) (Edition, bool, error)
	Create(ctx context.Context, e Edition) error
	Update(ctx context.Context, e Edition) error
	Delete(ctx context.Context, editionID string) error
}
