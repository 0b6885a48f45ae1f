package cache

import (
	"context"
	"sort"
	"strings"

	"github.com/riskibarqy/league-portal/internal/domain/cup"
	"github.com/riskibarqy/league-portal/internal/domain/league"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	basecache "github.com/riskibarqy/league-portal/internal/platform/cache"
)

// Reference data changes rarely and is read on every page, so reads go through
// the store and every write drops the aggregate's whole key space.
// Matches are never cached: live views must see score updates immediately.

type lookup[T any] struct {
	value  T
	exists bool
}

func loadOne[T any](ctx context.Context, store *basecache.Store, key string, get func(context.Context) (T, bool, error)) (T, bool, error) {
	cached, err := basecache.Load(ctx, store, key, func(ctx context.Context) (lookup[T], error) {
		item, exists, err := get(ctx)
		if err != nil {
			return lookup[T]{}, err
		}
		return lookup[T]{value: item, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return cached.value, cached.exists, nil
}

func loadMany[T any](ctx context.Context, store *basecache.Store, key string, list func(context.Context) ([]T, error)) ([]T, error) {
	items, err := basecache.Load(ctx, store, key, func(ctx context.Context) ([]T, error) {
		items, err := list(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]T(nil), items...), nil
}

func idsKey(prefix string, ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	return prefix + strings.Join(sorted, ",")
}

const (
	leaguePrefix = "league:"
	teamPrefix   = "team:"
	playerPrefix = "player:"
	cupPrefix    = "cup:"
)

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	return loadMany(ctx, r.cache, leaguePrefix+"list", r.next.List)
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	return loadOne(ctx, r.cache, leaguePrefix+"id:"+leagueID, func(ctx context.Context) (league.League, bool, error) {
		return r.next.GetByID(ctx, leagueID)
	})
}

func (r *LeagueRepository) GetBySlug(ctx context.Context, slug string) (league.League, bool, error) {
	return loadOne(ctx, r.cache, leaguePrefix+"slug:"+slug, func(ctx context.Context) (league.League, bool, error) {
		return r.next.GetBySlug(ctx, slug)
	})
}

func (r *LeagueRepository) Create(ctx context.Context, l league.League) error {
	return r.write(ctx, func() error { return r.next.Create(ctx, l) })
}

func (r *LeagueRepository) Update(ctx context.Context, l league.League) error {
	return r.write(ctx, func() error { return r.next.Update(ctx, l) })
}

func (r *LeagueRepository) Delete(ctx context.Context, leagueID string) error {
	return r.write(ctx, func() error { return r.next.Delete(ctx, leagueID) })
}

func (r *LeagueRepository) write(ctx context.Context, fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, leaguePrefix)
	return nil
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	return loadMany(ctx, r.cache, teamPrefix+"list", r.next.List)
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	return loadMany(ctx, r.cache, teamPrefix+"list:"+leagueID, func(ctx context.Context) ([]team.Team, error) {
		return r.next.ListByLeague(ctx, leagueID)
	})
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	return loadOne(ctx, r.cache, teamPrefix+"id:"+teamID, func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetByID(ctx, teamID)
	})
}

func (r *TeamRepository) GetBySlug(ctx context.Context, slug string) (team.Team, bool, error) {
	return loadOne(ctx, r.cache, teamPrefix+"slug:"+slug, func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetBySlug(ctx, slug)
	})
}

func (r *TeamRepository) GetByIDs(ctx context.Context, teamIDs []string) ([]team.Team, error) {
	return loadMany(ctx, r.cache, idsKey(teamPrefix+"ids:", teamIDs), func(ctx context.Context) ([]team.Team, error) {
		return r.next.GetByIDs(ctx, teamIDs)
	})
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	return r.write(ctx, func() error { return r.next.Create(ctx, t) })
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) error {
	return r.write(ctx, func() error { return r.next.Update(ctx, t) })
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	return r.write(ctx, func() error { return r.next.Delete(ctx, teamID) })
}

func (r *TeamRepository) write(ctx context.Context, fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, teamPrefix)
	return nil
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return loadMany(ctx, r.cache, playerPrefix+"list", r.next.List)
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	return loadMany(ctx, r.cache, playerPrefix+"list:"+teamID, func(ctx context.Context) ([]player.Player, error) {
		return r.next.ListByTeam(ctx, teamID)
	})
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	return loadOne(ctx, r.cache, playerPrefix+"id:"+playerID, func(ctx context.Context) (player.Player, bool, error) {
		return r.next.GetByID(ctx, playerID)
	})
}

func (r *PlayerRepository) GetBySlug(ctx context.Context, slug string) (player.Player, bool, error) {
	return loadOne(ctx, r.cache, playerPrefix+"slug:"+slug, func(ctx context.Context) (player.Player, bool, error) {
		return r.next.GetBySlug(ctx, slug)
	})
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	return loadMany(ctx, r.cache, idsKey(playerPrefix+"ids:", playerIDs), func(ctx context.Context) ([]player.Player, error) {
		return r.next.GetByIDs(ctx, playerIDs)
	})
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	return r.write(ctx, func() error { return r.next.Create(ctx, p) })
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	return r.write(ctx, func() error { return r.next.Update(ctx, p) })
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	return r.write(ctx, func() error { return r.next.Delete(ctx, playerID) })
}

func (r *PlayerRepository) write(ctx context.Context, fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, playerPrefix)
	return nil
}

type CupRepository struct {
	next  cup.Repository
	cache *basecache.Store
}

func NewCupRepository(next cup.Repository, cache *basecache.Store) *CupRepository {
	return &CupRepository{next: next, cache: cache}
}

func (r *CupRepository) List(ctx context.Context) ([]cup.Cup, error) {
	return loadMany(ctx, r.cache, cupPrefix+"list", r.next.List)
}

func (r *CupRepository) GetByID(ctx context.Context, cupID string) (cup.Cup, bool, error) {
	return loadOne(ctx, r.cache, cupPrefix+"id:"+cupID, func(ctx context.Context) (cup.Cup, bool, error) {
		return r.next.GetByID(ctx, cupID)
	})
}

func (r *CupRepository) GetBySlug(ctx context.Context, slug string) (cup.Cup, bool, error) {
	return loadOne(ctx, r.cache, cupPrefix+"slug:"+slug, func(ctx context.Context) (cup.Cup, bool, error) {
		return r.next.GetBySlug(ctx, slug)
	})
}

func (r *CupRepository) Create(ctx context.Context, c cup.Cup) error {
	return r.write(ctx, func() error { return r.next.Create(ctx, c) })
}

func (r *CupRepository) Update(ctx context.Context, c cup.Cup) error {
	return r.write(ctx, func() error { return r.next.Update(ctx, c) })
}

func (r *CupRepository) Delete(ctx context.Context, cupID string) error {
	return r.write(ctx, func() error { return r.next.Delete(ctx, cupID) })
}

func (r *CupRepository) write(ctx context.Context, fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, cupPrefix)
	return nil
}
