package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	GetBySlug(ctx context.Context, slug string) (Team, bool, error)
	GetByIDs(ctx context.Context, teamIDs []string) ([]Team, error)
	Create(ctx context.Context, t Team) error
	Update(ctx context.Context, t Team) error
	Delete(ctx context.Context, teamID string) error
}
