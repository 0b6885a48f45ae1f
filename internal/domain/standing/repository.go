package standing

import "context"

type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Standing, error)
	GetByID(ctx context.Context, standingID string) (Standing, bool, error)
	Create(ctx context.Context, s Standing) error
	Update(ctx context.Context, s Standing) error
	Delete(ctx context.Context, standingID string) error
}
