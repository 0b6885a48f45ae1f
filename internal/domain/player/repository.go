package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	GetBySlug(ctx context.Context, slug string) (Player, bool, error)
	GetByIDs(ctx context.Context, playerIDs []string) ([]Player, error)
	Create(ctx context.Context, p Player) error
	Update(ctx context.Context, p Player) error
	Delete(ctx context.Context, playerID string) error
}
