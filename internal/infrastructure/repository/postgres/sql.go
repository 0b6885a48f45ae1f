package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
	"github.com/riskibarqy/league-portal/internal/usecase"
)

const uniqueViolation = "23505"

// immutableColumns are never rewritten by an UPDATE.
var immutableColumns = []string{"id", "created_at", "deleted_at"}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func anyStrings(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

func selectRows[M any, T any](ctx context.Context, db *sqlx.DB, b *qb.SelectBuilder, what string, toDomain func(M) T) ([]T, error) {
	query, args, err := b.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s query: %w", what, err)
	}

	var rows []M
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", what, err)
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out, nil
}

func getRow[M any, T any](ctx context.Context, db *sqlx.DB, b *qb.SelectBuilder, what string, toDomain func(M) T) (T, bool, error) {
	var zero T
	query, args, err := b.ToSQL()
	if err != nil {
		return zero, false, fmt.Errorf("build get %s query: %w", what, err)
	}

	var row M
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("get %s: %w", what, err)
	}
	return toDomain(row), true, nil
}

func insertRow(ctx context.Context, db *sqlx.DB, table string, model any, what string) error {
	query, args, err := qb.InsertModel(table, model)
	if err != nil {
		return fmt.Errorf("build insert %s query: %w", what, err)
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: insert %s: %v", usecase.ErrConflict, what, err)
		}
		return fmt.Errorf("insert %s: %w", what, err)
	}
	return nil
}

func updateRow(ctx context.Context, db *sqlx.DB, table string, model any, id, what string) error {
	query, args, err := qb.UpdateModel(table, model, immutableColumns, qb.Eq("id", id), qb.IsNull("deleted_at"))
	if err != nil {
		return fmt.Errorf("build update %s query: %w", what, err)
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: update %s: %v", usecase.ErrConflict, what, err)
		}
		return fmt.Errorf("update %s: %w", what, err)
	}
	return nil
}

// softDelete stamps deleted_at so the slug becomes reusable while history stays.
func softDelete(ctx context.Context, db *sqlx.DB, table, id, what string) error {
	now := time.Now().UTC()
	query, args, err := qb.Update(table).
		Set("deleted_at", now).
		Set("updated_at", now).
		Where(qb.Eq("id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete %s query: %w", what, err)
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %s: %w", what, err)
	}
	return nil
}

func live(table string) *qb.SelectBuilder {
	return qb.Select("*").From(table)
}
