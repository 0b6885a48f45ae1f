package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

const (
	matchesTable     = "matches"
	matchEventsTable = "match_events"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	return selectRows(ctx, r.db, matchListQuery(filter), "matches", matchFromRow)
}

func matchListQuery(filter match.Filter) *qb.SelectBuilder {
	conditions := []qb.Condition{qb.IsNull("deleted_at")}
	if filter.LeagueID != "" {
		conditions = append(conditions, qb.Eq("league_id", filter.LeagueID))
	}
	if filter.TeamID != "" {
		conditions = append(conditions, qb.Or(
			qb.Eq("home_team_id", filter.TeamID),
			qb.Eq("away_team_id", filter.TeamID),
		))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]any, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		conditions = append(conditions, qb.In("status", statuses))
	}

	return live(matchesTable).Where(conditions...).OrderBy("scheduled_at ASC", "id ASC")
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	b := live(matchesTable).Where(qb.Eq("id", matchID), qb.IsNull("deleted_at")).Limit(1)
	return getRow(ctx, r.db, b, "match by id", matchFromRow)
}

func (r *MatchRepository) GetBySlug(ctx context.Context, slug string) (match.Match, bool, error) {
	b := live(matchesTable).Where(qb.Eq("slug", slug), qb.IsNull("deleted_at")).Limit(1)
	return getRow(ctx, r.db, b, "match by slug", matchFromRow)
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	return insertRow(ctx, r.db, matchesTable, matchToRow(m), "match")
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	return updateRow(ctx, r.db, matchesTable, matchToRow(m), m.ID, "match")
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	return softDelete(ctx, r.db, matchesTable, matchID, "match")
}

type MatchEventRepository struct {
	db *sqlx.DB
}

func NewMatchEventRepository(db *sqlx.DB) *MatchEventRepository {
	return &MatchEventRepository{db: db}
}

func (r *MatchEventRepository) ListByMatch(ctx context.Context, matchID string) ([]match.Event, error) {
	b := live(matchEventsTable).
		Where(qb.Eq("match_id", matchID), qb.IsNull("deleted_at")).
		OrderBy("minute ASC", "extra_minute ASC", "created_at ASC")
	return selectRows(ctx, r.db, b, "match events", matchEventFromRow)
}

func (r *MatchEventRepository) GetByID(ctx context.Context, eventID string) (match.Event, bool, error) {
	b := live(matchEventsTable).Where(qb.Eq("id", eventID), qb.IsNull("deleted_at")).Limit(1)
	return getRow(ctx, r.db, b, "match event by id", matchEventFromRow)
}

func (r *MatchEventRepository) Create(ctx context.Context, e match.Event) error {
	return insertRow(ctx, r.db, matchEventsTable, matchEventToRow(e), "match event")
}

func (r *MatchEventRepository) Update(ctx context.Context, e match.Event) error {
	return updateRow(ctx, r.db, matchEventsTable, matchEventToRow(e), e.ID, "match event")
}

func (r *MatchEventRepository) Delete(ctx context.Context, eventID string) error {
	return softDelete(ctx, r.db, matchEventsTable, eventID, "match event")
}
