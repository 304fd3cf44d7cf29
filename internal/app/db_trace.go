package app

import (
	"database/sql"
	"regexp"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelsql"

	// registers the "postgres" driver used below
	_ "github.com/lib/pq"
)

const maxTracedQueryLength = 512

var queryWhitespaceRegex = regexp.MustCompile(`\s+`)

// openTracedSQL opens a lib/pq pool whose queries are recorded as spans on
// the active trace.
func openTracedSQL(dsn, dbName string) (*sql.DB, error) {
	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if dbName != "" {
		opts = append(opts, otelsql.WithDBName(dbName))
	}
	return otelsql.Open("postgres", dsn, opts...)
}

func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}
