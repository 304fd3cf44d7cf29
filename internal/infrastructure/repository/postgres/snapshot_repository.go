package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/galero/internal/domain/edition"
	"github.com/riskibarqy/galero/internal/domain/goal"
	"github.com/riskibarqy/galero/internal/domain/match"
	"github.com/riskibarqy/galero/internal/domain/placement"
	"github.com/riskibarqy/galero/internal/domain/player"
	"github.com/riskibarqy/galero/internal/domain/team"
	qb "github.com/riskibarqy/galero/internal/platform/querybuilder"
)

var ErrSchemaMissing = fmt.Errorf("competition schema is missing, run migrations first")

type SnapshotRepository struct {
	db *sqlx.DB
}

func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// ReadSnapshot loads every table inside one read-only repeatable-read
// transaction so the engine never sees a half-written edition.
func (r *SnapshotRepository) ReadSnapshot(ctx context.Context) (placement.Snapshot, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return placement.Snapshot{}, fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	editions, err := selectRows[editionTableModel](ctx, tx, tableEditions, qb.IsNull("deleted_at"))
	if err != nil {
		return placement.Snapshot{}, err
	}
	teams, err := selectRows[teamTableModel](ctx, tx, tableTeams, qb.IsNull("deleted_at"))
	if err != nil {
		return placement.Snapshot{}, err
	}
	players, err := selectRows[playerTableModel](ctx, tx, tablePlayers, qb.IsNull("deleted_at"))
	if err != nil {
		return placement.Snapshot{}, err
	}
	memberships, err := selectRows[teamPlayerTableModel](ctx, tx, tableTeamPlayers)
	if err != nil {
		return placement.Snapshot{}, err
	}
	matches, err := selectRows[matchTableModel](ctx, tx, tableMatches, qb.IsNull("deleted_at"))
	if err != nil {
		return placement.Snapshot{}, err
	}
	goals, err := selectRows[goalTableModel](ctx, tx, tableGoals, qb.IsNull("deleted_at"))
	if err != nil {
		return placement.Snapshot{}, err
	}

	if err := tx.Commit(); err != nil {
		return placement.Snapshot{}, fmt.Errorf("commit snapshot tx: %w", err)
	}

	return snapshotFromRows(editions, teams, players, memberships, matches, goals)
}

func snapshotFromRows(
	editions []editionTableModel,
	teams []teamTableModel,
	players []playerTableModel,
	memberships []teamPlayerTableModel,
	matches []matchTableModel,
	goals []goalTableModel,
) (placement.Snapshot, error) {
	out := placement.Snapshot{
		Editions:    make([]edition.Edition, 0, len(editions)),
		Teams:       make([]team.Team, 0, len(teams)),
		Players:     make([]player.Player, 0, len(players)),
		Memberships: make([]team.Membership, 0, len(memberships)),
		Matches:     make([]match.Match, 0, len(matches)),
		Goals:       make([]goal.Goal, 0, len(goals)),
	}
	for _, row := range editions {
		out.Editions = append(out.Editions, row.toDomain())
	}
	for _, row := range teams {
		out.Teams = append(out.Teams, row.toDomain())
	}
	for _, row := range players {
		out.Players = append(out.Players, row.toDomain())
	}
	for _, row := range memberships {
		out.Memberships = append(out.Memberships, row.toDomain())
	}
	for _, row := range matches {
		item, err := row.toDomain()
		if err != nil {
			return placement.Snapshot{}, fmt.Errorf("map match %d: %w", row.ID, err)
		}
		out.Matches = append(out.Matches, item)
	}
	for _, row := range goals {
		item, err := row.toDomain()
		if err != nil {
			return placement.Snapshot{}, fmt.Errorf("map goal %d: %w", row.ID, err)
		}
		out.Goals = append(out.Goals, item)
	}
	return out, nil
}

func selectRows[T any](ctx context.Context, q sqlx.QueryerContext, table string, where ...qb.Condition) ([]T, error) {
	var model T
	cols, err := qb.Columns(model)
	if err != nil {
		return nil, fmt.Errorf("columns for %s: %w", table, err)
	}

	orderBy := cols[0]
	if table == tableTeamPlayers {
		orderBy = "team_id, player_id"
	}

	query, args, err := qb.Select(cols...).From(table).Where(where...).OrderBy(orderBy).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s query: %w", table, err)
	}

	var rows []T
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("select %s: %w", table, ErrSchemaMissing)
		}
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	return rows, nil
}
