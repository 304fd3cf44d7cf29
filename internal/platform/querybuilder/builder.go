// Package querybuilder renders the few PostgreSQL statements the snapshot
// repository issues: filtered table reads and idempotent bulk inserts.
// Placeholders are numbered $1..$n in the order values are bound.
package querybuilder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidQuery = errors.New("invalid query")

// stmt accumulates SQL text and its bound arguments.
type stmt struct {
	sql  strings.Builder
	args []any
}

func (s *stmt) write(parts ...string) {
	for _, p := range parts {
		s.sql.WriteString(p)
	}
}

func (s *stmt) bind(v any) {
	s.args = append(s.args, v)
	s.sql.WriteByte('$')
	s.sql.WriteString(strconv.Itoa(len(s.args)))
}

// Condition is one predicate of a WHERE clause. Conditions are ANDed.
type Condition func(s *stmt)

func Eq(column string, value any) Condition {
	return func(s *stmt) {
		s.write(column, " = ")
		s.bind(value)
	}
}

// IsNull filters live rows when applied to a soft-delete column.
func IsNull(column string) Condition {
	return func(s *stmt) { s.write(column, " IS NULL") }
}

func IsNotNull(column string) Condition {
	return func(s *stmt) { s.write(column, " IS NOT NULL") }
}

func (s *stmt) where(conds []Condition) {
	for i, c := range conds {
		if i == 0 {
			s.write(" WHERE ")
		} else {
			s.write(" AND ")
		}
		c(s)
	}
}

type SelectBuilder struct {
	columns []string
	table   string
	conds   []Condition
	order   []string
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = strings.TrimSpace(table)
	return b
}

func (b *SelectBuilder) Where(conds ...Condition) *SelectBuilder {
	b.conds = append(b.conds, conds...)
	return b
}

func (b *SelectBuilder) OrderBy(columns ...string) *SelectBuilder {
	for _, c := range columns {
		if c = strings.TrimSpace(c); c != "" {
			b.order = append(b.order, c)
		}
	}
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	switch {
	case len(b.columns) == 0:
		return "", nil, fmt.Errorf("%w: select without columns", ErrInvalidQuery)
	case b.table == "":
		return "", nil, fmt.Errorf("%w: select without table", ErrInvalidQuery)
	}

	var s stmt
	s.write("SELECT ", strings.Join(b.columns, ", "), " FROM ", b.table)
	s.where(b.conds)
	if len(b.order) > 0 {
		s.write(" ORDER BY ", strings.Join(b.order, ", "))
	}
	return s.sql.String(), s.args, nil
}

// InsertBuilder renders a single multi-row INSERT, optionally followed by a
// conflict clause such as "ON CONFLICT (id) DO NOTHING".
type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: strings.TrimSpace(table)}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

func (b *InsertBuilder) Suffix(clause string) *InsertBuilder {
	b.suffix = strings.TrimSpace(clause)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case b.table == "":
		return "", nil, fmt.Errorf("%w: insert without table", ErrInvalidQuery)
	case len(b.columns) == 0:
		return "", nil, fmt.Errorf("%w: insert without columns", ErrInvalidQuery)
	case len(b.rows) == 0:
		return "", nil, fmt.Errorf("%w: insert without rows", ErrInvalidQuery)
	}

	var s stmt
	s.args = make([]any, 0, len(b.rows)*len(b.columns))
	s.write("INSERT INTO ", b.table, " (", strings.Join(b.columns, ", "), ") VALUES ")
	for r, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("%w: row %d carries %d values for %d columns", ErrInvalidQuery, r, len(row), len(b.columns))
		}
		if r > 0 {
			s.write(", ")
		}
		s.write("(")
		for i, v := range row {
			if i > 0 {
				s.write(", ")
			}
			s.bind(v)
		}
		s.write(")")
	}
	if b.suffix != "" {
		s.write(" ", b.suffix)
	}
	return s.sql.String(), s.args, nil
}
