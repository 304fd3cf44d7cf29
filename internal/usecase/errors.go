package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/galero/internal/domain/placement"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrInvalidState          = errors.New("inconsistent competition data")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// engineError maps engine sentinels onto usecase sentinels while keeping the
// original chain intact for errors.Is.
func engineError(op string, err error) error {
	switch {
	case errors.Is(err, placement.ErrNotFound):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, op, err)
	case errors.Is(err, placement.ErrInvalidArgument):
		return fmt.Errorf("%w: %s: %w", ErrInvalidInput, op, err)
	case errors.Is(err, placement.ErrInvalidState):
		return fmt.Errorf("%w: %s: %w", ErrInvalidState, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
