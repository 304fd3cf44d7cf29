package postgres

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
)

// isUndefinedTable reports a missing relation, which means migrations have
// not been applied yet.
func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "42P01"
	}
	return err != nil && strings.Contains(err.Error(), "(42P01)")
}

func nullInt32ToIntPtr(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int32)
	return &out
}

func intPtrToNullInt32(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}
