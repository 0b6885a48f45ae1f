package topscorer

import "context"

type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]TopScorer, error)
	ListByPlayer(ctx context.Context, playerID string) ([]TopScorer, error)
	GetByID(ctx context.Context, id string) (TopScorer, bool, error)
	Create(ctx context.Context, t TopScorer) error
	Update(ctx context.Context, t TopScorer) error
	Delete(ctx context.Context, id string) error
}
