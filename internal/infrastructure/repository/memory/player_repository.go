package memory

import (
	"context"

	"github.com/riskibarqy/league-portal/internal/domain/player"
)

type PlayerRepository struct {
	rows *table[player.Player]
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	return &PlayerRepository{rows: newTable(func(p player.Player) string { return p.ID }, players)}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	return r.rows.list(nil), nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	return r.rows.list(func(p player.Player) bool { return p.TeamID == teamID }), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	p, ok := r.rows.get(playerID)
	return p, ok, nil
}

func (r *PlayerRepository) GetBySlug(_ context.Context, slug string) (player.Player, bool, error) {
	p, ok := r.rows.find(func(p player.Player) bool { return p.Slug == slug })
	return p, ok, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	wanted := idSet(playerIDs)
	return r.rows.list(func(p player.Player) bool {
		_, ok := wanted[p.ID]
		return ok
	}), nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) error {
	r.rows.put(p)
	return nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	r.rows.replace(p)
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID string) error {
	r.rows.remove(playerID)
	return nil
}
