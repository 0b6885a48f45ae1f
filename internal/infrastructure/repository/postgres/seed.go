package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

// BootstrapSeed copies the built-in demo catalogue into an empty database in
// one transaction. Nothing happens once a live league row exists, and rows
// whose id is already taken are skipped.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var seeded bool
	if err := db.GetContext(ctx, &seeded, `SELECT EXISTS (SELECT 1 FROM leagues WHERE deleted_at IS NULL)`); err != nil {
		return fmt.Errorf("check existing leagues: %w", err)
	}
	if seeded {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// parents before children so foreign keys resolve
	steps := []func() error{
		func() error { return seedTable(ctx, tx, leaguesTable, memory.SeedLeagues(), leagueToRow) },
		func() error { return seedTable(ctx, tx, teamsTable, memory.SeedTeams(), teamToRow) },
		func() error { return seedTable(ctx, tx, playersTable, memory.SeedPlayers(), playerToRow) },
		func() error { return seedTable(ctx, tx, matchesTable, memory.SeedMatches(time.Now()), matchToRow) },
		func() error { return seedTable(ctx, tx, matchEventsTable, memory.SeedMatchEvents(), matchEventToRow) },
		func() error { return seedTable(ctx, tx, topScorersTable, memory.SeedTopScorers(), topScorerToRow) },
		func() error { return seedTable(ctx, tx, cupsTable, memory.SeedCups(), cupToRow) },
		func() error { return seedTable(ctx, tx, cupEditionsTable, memory.SeedCupEditions(), cupEditionToRow) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

func seedTable[T any, M any](ctx context.Context, tx *sqlx.Tx, table string, items []T, toRow func(T) M) error {
	for i, item := range items {
		query, args, err := qb.InsertModel(table, toRow(item))
		if err != nil {
			return fmt.Errorf("build seed %s[%d]: %w", table, i, err)
		}
		if _, err := tx.ExecContext(ctx, query+" ON CONFLICT (id) DO NOTHING", args...); err != nil {
			return fmt.Errorf("seed %s[%d]: %w", table, i, err)
		}
	}
	return nil
}
