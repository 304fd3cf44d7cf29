package placement

import crerr "github.com/cockroachdb/errors"

var (
	// ErrNotFound is returned when a required player or edition is unknown.
	ErrNotFound = crerr.New("not found")
	// ErrInvalidState means the snapshot breaks an invariant the engine relies on,
	// e.g. a drawn final. The affected computation fails as a whole.
	ErrInvalidState = crerr.New("invalid state")
	// ErrInvalidArgument is returned for non-positive limits.
	ErrInvalidArgument = crerr.New("invalid argument")
)

func notFoundf(format string, args ...any) error {
	return crerr.Wrapf(ErrNotFound, format, args...)
}

func invalidStatef(format string, args ...any) error {
	return crerr.Wrapf(ErrInvalidState, format, args...)
}

func checkLimit(limit int) error {
	if limit < 1 {
		return crerr.Wrapf(ErrInvalidArgument, "limit must be >= 1, got %d", limit)
	}
	return nil
}
