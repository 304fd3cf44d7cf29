package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/galero/internal/domain/placement"
	qb "github.com/riskibarqy/galero/internal/platform/querybuilder"
)

// BootstrapSeed writes the snapshot when no edition exists yet. It returns
// false when the database already holds data.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, snapshot placement.Snapshot) (bool, error) {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM editions WHERE deleted_at IS NULL`); err != nil {
		if isUndefinedTable(err) {
			return false, fmt.Errorf("count editions for bootstrap seed: %w", ErrSchemaMissing)
		}
		return false, fmt.Errorf("count editions for bootstrap seed: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	statements, err := seedStatements(snapshot)
	if err != nil {
		return false, err
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
			return false, fmt.Errorf("seed %s: %w", stmt.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed tx: %w", err)
	}
	return true, nil
}

type seedStatement struct {
	table string
	query string
	args  []any
}

// seedStatements orders inserts by foreign key dependency and resyncs every
// bigserial afterwards since ids are written explicitly.
func seedStatements(s placement.Snapshot) ([]seedStatement, error) {
	var out []seedStatement
	add := func(table string, query string, args []any, err error) error {
		if err != nil {
			return fmt.Errorf("build seed %s query: %w", table, err)
		}
		out = append(out, seedStatement{table: table, query: query, args: args})
		return nil
	}

	if len(s.Editions) > 0 {
		rows := make([]editionTableModel, 0, len(s.Editions))
		for _, e := range s.Editions {
			rows = append(rows, editionRow(e))
		}
		query, args, err := qb.InsertModels(tableEditions, rows, "ON CONFLICT (id) DO NOTHING")
		if err := add(tableEditions, query, args, err); err != nil {
			return nil, err
		}
	}
	if len(s.Players) > 0 {
		rows := make([]playerTableModel, 0, len(s.Players))
		for _, p := range s.Players {
			rows = append(rows, playerRow(p))
		}
		query, args, err := qb.InsertModels(tablePlayers, rows, "ON CONFLICT (id) DO NOTHING")
		if err := add(tablePlayers, query, args, err); err != nil {
			return nil, err
		}
	}
	if len(s.Teams) > 0 {
		rows := make([]teamTableModel, 0, len(s.Teams))
		for _, t := range s.Teams {
			rows = append(rows, teamRow(t))
		}
		query, args, err := qb.InsertModels(tableTeams, rows, "ON CONFLICT (id) DO NOTHING")
		if err := add(tableTeams, query, args, err); err != nil {
			return nil, err
		}
	}
	if len(s.Memberships) > 0 {
		rows := make([]teamPlayerTableModel, 0, len(s.Memberships))
		for _, m := range s.Memberships {
			rows = append(rows, teamPlayerRow(m))
		}
		query, args, err := qb.InsertModels(tableTeamPlayers, rows, "ON CONFLICT (team_id, player_id) DO NOTHING")
		if err := add(tableTeamPlayers, query, args, err); err != nil {
			return nil, err
		}
	}
	if len(s.Matches) > 0 {
		rows := make([]matchTableModel, 0, len(s.Matches))
		for _, m := range s.Matches {
			rows = append(rows, matchRow(m))
		}
		query, args, err := qb.InsertModels(tableMatches, rows, "ON CONFLICT (id) DO NOTHING")
		if err := add(tableMatches, query, args, err); err != nil {
			return nil, err
		}
	}
	if len(s.Goals) > 0 {
		rows := make([]goalTableModel, 0, len(s.Goals))
		for _, g := range s.Goals {
			rows = append(rows, goalRow(g))
		}
		query, args, err := qb.InsertModels(tableGoals, rows, "ON CONFLICT (id) DO NOTHING")
		if err := add(tableGoals, query, args, err); err != nil {
			return nil, err
		}
	}

	for _, table := range []string{tableEditions, tablePlayers, tableTeams, tableMatches, tableGoals} {
		out = append(out, seedStatement{
			table: table + " sequence",
			query: fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 0) + 1, false)`, table, table),
		})
	}

	return out, nil
}
